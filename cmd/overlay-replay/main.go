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

// Overlay-replay feeds a recorded script of pointer and key events through
// the interaction engine and writes the resulting document.
//
// Usage:
//
//	overlay-replay [flags] script.json
//
// The document is written to standard output unless -o is given.  With
// --png the page is also flattened into an image.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/overlay/internal/config"
	"seehuhn.de/go/overlay/project"
	"seehuhn.de/go/overlay/render"
	"seehuhn.de/go/overlay/scene"
	"seehuhn.de/go/overlay/tool"
)

type options struct {
	configFile string
	input      string
	output     string
	pngFile    string
	page       int
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	cmd := &cobra.Command{
		Use:   "overlay-replay [flags] script.json",
		Short: "Replay recorded input through the overlay engine",
		Long: `overlay-replay reads a script of pointer and key events, applies it to
an annotation document and writes the result as JSON.  The page can also be
flattened into a PNG image.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args[0], cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.configFile, "config", "c", "", "TOML settings file")
	flags.StringVarP(&opt.input, "input", "i", "", "document to start from")
	flags.StringVarP(&opt.output, "output", "o", "", "write the document to this file")
	flags.StringVar(&opt.pngFile, "png", "", "flatten the page into this PNG file")
	flags.IntVar(&opt.page, "page", 0, "page index shown in the view")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "log every event")
	return cmd
}

func run(opt *options, scriptFile string, stdout io.Writer) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opt.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	settings := &config.File{}
	if opt.configFile != "" {
		var err error
		settings, err = config.ReadFile(opt.configFile)
		if err != nil {
			return err
		}
	}
	cfg, err := settings.EngineConfig()
	if err != nil {
		return err
	}
	v, err := settings.PageView()
	if err != nil {
		return err
	}

	sc := scene.New()
	if opt.input != "" {
		sc, err = readDocument(opt.input)
		if err != nil {
			return err
		}
	}

	script, err := readScriptFile(scriptFile)
	if err != nil {
		return err
	}

	e := tool.New(sc, v, cfg)
	e.Log = log
	e.Page = opt.page
	if err := replay(e, script, log); err != nil {
		return err
	}
	e.Abort()

	if err := writeDocument(opt.output, sc, stdout); err != nil {
		return err
	}

	if opt.pngFile != "" {
		if err := writePNG(opt.pngFile, e); err != nil {
			return err
		}
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stderr, "%d events, %d shapes, %d measurements, %d undo steps\n",
			len(script.Events), len(sc.Shapes()), len(sc.Measurements()), e.History.Len()-1)
	}
	return nil
}

func readDocument(path string) (*scene.Scene, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	doc, err := project.Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Scene()
}

func readScriptFile(path string) (*Script, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	s, err := readScript(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// writeDocument writes the document to path, or to stdout if path is
// empty.
func writeDocument(path string, sc *scene.Scene, stdout io.Writer) error {
	doc := project.FromScene(sc)
	if path == "" {
		return doc.Write(stdout)
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func writePNG(path string, e *tool.Engine) error {
	r := render.NewRasterizer(e.View)
	r.DrawPage(e.Scene, e.Page)

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fd, r.Image); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
