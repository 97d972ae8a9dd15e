// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shaape/shaape"
)

const logo = `.-------------------------.
|                         |
| .---. .-----. .-----.   |
| |   | |     | |     |   |
| '---' +-->  | |  <--+   |
|       '-----' '-----'   |
|  ascii     2    image   |
|                         |
'-------------------------'
`

type config struct {
	in, out string
	format  string
	md      bool
	glob    string
	opts    shaape.Options
}

func mainImpl() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", logo)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	c := config{}
	flag.StringVar(&c.in, "i", "-", "Path to input text file. If set to \"-\" (hyphen), stdin is used.")
	flag.StringVar(&c.out, "o", "-", "Path to output file. If set to \"-\" (hyphen), stdout is used.")
	flag.StringVar(&c.format, "t", "", "Output format: png, jpeg, svg, eps or pdf. Defaults to the output file extension, else png.")
	flag.Float64Var(&c.opts.Scale, "s", 1, "Scale factor.")
	flag.Float64Var(&c.opts.Width, "W", 0, "Canvas width. The height follows unless -H is set.")
	flag.Float64Var(&c.opts.Height, "H", 0, "Canvas height. The width follows unless -W is set.")
	flag.BoolVar(&c.md, "md", false, "Input is Markdown; render every ```shaape fenced block to <output>-<n>.<ext>.")
	flag.StringVar(&c.glob, "glob", "", "Render every file matching this pattern (** supported) next to its source.")
	verbose := flag.Bool("v", false, "Log debug information to stderr.")
	flag.Parse()

	if *verbose {
		shaape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	f, err := pickFormat(c.format, c.out)
	if err != nil {
		return err
	}
	c.opts.Format = f
	if err := c.opts.Validate(); err != nil {
		return err
	}
	if c.glob != "" {
		return renderGlob(c)
	}

	var input []byte
	if c.in == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(c.in)
	}
	if err != nil {
		return err
	}
	if c.md {
		if c.out == "-" {
			return errors.New("-md requires -o")
		}
		return renderMarkdown(input, c.out, c.opts)
	}
	img, err := shaape.Render(string(input), c.opts)
	if err != nil {
		return err
	}
	if c.out == "-" {
		_, err := os.Stdout.Write(img)
		return err
	}
	return os.WriteFile(c.out, img, 0o666)
}

// pickFormat returns the explicit format, else the one matching the output extension, else
// PNG.
func pickFormat(name, out string) (shaape.Format, error) {
	if name != "" {
		return shaape.ParseFormat(name)
	}
	if out != "-" {
		if f, err := shaape.ParseFormat(filepath.Ext(out)); err == nil {
			return f, nil
		}
	}
	return shaape.PNG, nil
}

// renderMarkdown renders every diagram block of a Markdown document to numbered files derived
// from out.
func renderMarkdown(doc []byte, out string, opts shaape.Options) error {
	blocks := extractBlocks(doc)
	if len(blocks) == 0 {
		return errors.New("no shaape block found")
	}
	for i, b := range blocks {
		img, err := shaape.Render(b, opts)
		if err != nil {
			return fmt.Errorf("block %d: %w", i+1, err)
		}
		if err := os.WriteFile(numbered(out, i+1, opts.Format), img, 0o666); err != nil {
			return err
		}
	}
	return nil
}

// renderGlob renders every matching file in the current directory tree. The output replaces
// the source extension.
func renderGlob(c config) error {
	if !doublestar.ValidatePattern(c.glob) {
		return fmt.Errorf("invalid glob pattern: %s", c.glob)
	}
	var matches []string
	err := doublestar.GlobWalk(os.DirFS("."), c.glob, func(path string, d iofs.DirEntry) error {
		if !d.IsDir() {
			matches = append(matches, filepath.FromSlash(path))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no file matches %s", c.glob)
	}
	for _, m := range matches {
		src, err := os.ReadFile(m)
		if err != nil {
			return err
		}
		if c.md {
			err = renderMarkdown(src, m, c.opts)
		} else {
			var img []byte
			if img, err = shaape.Render(string(src), c.opts); err == nil {
				err = os.WriteFile(sibling(m, c.opts.Format), img, 0o666)
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		shaape.Logger().Debug("rendered", slog.String("path", m))
	}
	return nil
}

// sibling returns path with its extension replaced for format f.
func sibling(path string, f shaape.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Ext()
}

// numbered returns path with its extension replaced by -n and the extension of format f.
func numbered(path string, n int, f shaape.Format) string {
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, filepath.Ext(path)), n, f.Ext())
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "shaape: %s\n", err)
		os.Exit(1)
	}
}
