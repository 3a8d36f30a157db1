// seehuhn.de/go/overlay - annotation and measurement overlays for paged documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNoFormat is returned by [Format] if the unit chain is empty.
var ErrNoFormat = errors.New("measure: no number formats provided")

// Format converts a real-world value into text using the unit chain formats.
//
// Every unit except the last one shows only the integer part of the value
// converted into this unit.  The remainder is passed on to the next unit.
// The last unit shows the remaining value according to its FractionFormat.
// Units which would show zero are omitted, unless the whole value is zero.
func Format(value float64, formats []*NumberFormat) (string, error) {
	if len(formats) == 0 {
		return "", ErrNoFormat
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("measure: cannot format %g", value)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	var parts []string
	cur := value
	for i, nf := range formats {
		v := cur * nf.ConversionFactor
		if i == len(formats)-1 {
			if s := nf.formatLast(v, len(parts) == 0); s != "" {
				parts = append(parts, s)
			}
			break
		}

		ip := math.Floor(v)
		if ip != 0 {
			parts = append(parts, nf.label(nf.integer(int64(ip))))
		}
		cur = v - ip
		if cur == 0 {
			break
		}
	}

	if len(parts) == 0 {
		last := formats[len(formats)-1]
		return last.label("0"), nil
	}
	return sign + strings.Join(parts, " "), nil
}

// formatLast formats the final stage of a unit chain.  If alone is false,
// a value which rounds to zero gives the empty string.
func (nf *NumberFormat) formatLast(v float64, alone bool) string {
	var num string
	switch nf.FractionFormat {
	case FractionFraction:
		num = nf.fraction(v)
	case FractionRound:
		num = nf.integer(int64(math.Floor(v + 0.5)))
	case FractionTruncate:
		num = nf.integer(int64(math.Floor(v)))
	default:
		num = nf.decimal(v)
	}
	if num == "0" && !alone {
		return ""
	}
	return nf.label(num)
}

// integer formats a whole number, with thousands separators.
func (nf *NumberFormat) integer(n int64) string {
	s := strconv.FormatInt(n, 10)
	if nf.ThousandsSeparator != "" {
		s = groupThousands(s, nf.ThousandsSeparator)
	}
	return s
}

// decimal formats v with the number of decimal places given by Precision.
func (nf *NumberFormat) decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', nf.decimalPlaces(), 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if hasFrac && !nf.ForceExactFraction {
		fracPart = strings.TrimRight(fracPart, "0")
	}
	if nf.ThousandsSeparator != "" {
		intPart = groupThousands(intPart, nf.ThousandsSeparator)
	}
	if fracPart == "" {
		return intPart
	}
	return intPart + nf.decimalSeparator() + fracPart
}

// fraction formats v as a whole number followed by a fraction with
// denominator Precision.
func (nf *NumberFormat) fraction(v float64) string {
	den := int64(nf.Precision)
	if den <= 0 {
		den = 1
	}
	whole := int64(math.Floor(v))
	num := int64(math.Floor((v-float64(whole))*float64(den) + 0.5))
	if num == den {
		whole++
		num = 0
	}
	if num == 0 {
		return nf.integer(whole)
	}
	if !nf.ForceExactFraction {
		g := gcd(num, den)
		num /= g
		den /= g
	}
	frac := strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
	if whole == 0 {
		return frac
	}
	return nf.integer(whole) + " " + frac
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
