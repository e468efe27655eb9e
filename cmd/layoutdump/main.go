// SPDX-License-Identifier: Unlicense OR MIT

// Command layoutdump lays out scenes described in TOML files and
// prints the resulting geometry.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	destPath = flag.String("o", "", "render to a PNG file. With several scenes, a directory receiving one <scene>.png each.")
	width    = flag.Int("width", 0, "override the scene width")
	height   = flag.Int("height", 0, "override the scene height")
)

const mainUsage = `Layoutdump lays out the widget trees described by TOML scene files
and prints the allocation of every widget.

Usage:

	layoutdump [flags] scene.toml...

`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "layoutdump: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(out io.Writer, files []string) error {
	if len(files) == 0 {
		return errors.New("specify a scene file")
	}
	if *width < 0 || *height < 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}
	outs := make([]bytes.Buffer, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := dumpFile(&outs[i], f, pngPath(f, len(files))); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if len(files) > 1 {
			fmt.Fprintf(out, "# %s\n", files[i])
		}
		if _, err := outs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

// pngPath returns where the rendering of the scene file goes, or ""
// for none.
func pngPath(file string, n int) string {
	if *destPath == "" || n == 1 {
		return *destPath
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return filepath.Join(*destPath, base+".png")
}

func dumpFile(w io.Writer, file, png string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	s, err := decodeScene(string(data))
	if err != nil {
		return err
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}
	b, err := s.build()
	if err != nil {
		return err
	}
	b.layout(s)
	if err := b.dump(w); err != nil {
		return err
	}
	if png != "" {
		return b.render(png)
	}
	return nil
}
