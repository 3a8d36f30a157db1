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

// FractionalFormat specifies how the fractional part of the last unit in a
// chain is displayed.
type FractionalFormat byte

const (
	FractionDecimal  FractionalFormat = iota // show as decimal
	FractionFraction                         // show as fraction
	FractionRound                            // round to whole unit
	FractionTruncate                         // truncate to whole unit
)

func (f FractionalFormat) String() string {
	switch f {
	case FractionDecimal:
		return "decimal"
	case FractionFraction:
		return "fraction"
	case FractionRound:
		return "round"
	case FractionTruncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// NumberFormat describes one unit in a chain of display units.
type NumberFormat struct {
	// Unit is the label shown next to the number.
	Unit string

	// ConversionFactor converts the value passed on from the previous unit
	// (or the initial value, for the first unit) into this unit.
	ConversionFactor float64

	// Precision is a power of ten giving the decimal resolution (100 means
	// two decimal places), or the denominator when fractions are shown.
	Precision int

	// FractionFormat controls the display of the fractional part.
	FractionFormat FractionalFormat

	// ForceExactFraction keeps trailing zeros in decimals and prevents
	// reduction of fractions.
	ForceExactFraction bool

	// ThousandsSeparator is inserted between groups of three digits.
	ThousandsSeparator string

	// DecimalSeparator replaces the decimal point.
	// An empty string uses ".".
	DecimalSeparator string

	// PrefixSpacing is placed before the unit label.
	// An empty string uses a single space.
	PrefixSpacing string

	// SuffixSpacing is placed after the unit label.
	// An empty string uses a single space.
	SuffixSpacing string

	// PrefixLabel puts the unit label before the number.
	PrefixLabel bool
}

func (nf *NumberFormat) decimalSeparator() string {
	if nf.DecimalSeparator == "" {
		return "."
	}
	return nf.DecimalSeparator
}

func (nf *NumberFormat) prefixSpacing() string {
	if nf.PrefixSpacing == "" {
		return " "
	}
	return nf.PrefixSpacing
}

func (nf *NumberFormat) suffixSpacing() string {
	if nf.SuffixSpacing == "" {
		return " "
	}
	return nf.SuffixSpacing
}

// decimalPlaces converts Precision into a number of digits after the
// decimal point.
func (nf *NumberFormat) decimalPlaces() int {
	places := 0
	for p := nf.Precision; p >= 10; p /= 10 {
		places++
	}
	return places
}

// label attaches the unit label to a formatted number.
func (nf *NumberFormat) label(num string) string {
	if nf.Unit == "" {
		return num
	}
	if nf.PrefixLabel {
		return nf.Unit + nf.prefixSpacing() + num
	}
	return num + nf.suffixSpacing() + nf.Unit
}
