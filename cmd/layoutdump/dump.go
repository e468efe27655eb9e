// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gioui.org/flowkit/widget"
)

// layout runs the layout passes and applies the initial scroll
// position of the scene.
func (b *built) layout(s *scene) {
	b.top.Realize()
	b.top.Layout()
	b.hadj.SetValue(s.ScrollX)
	b.vadj.SetValue(s.ScrollY)
}

// dump prints one line per widget, in tree order, with its
// allocation in content coordinates.
func (b *built) dump(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WIDGET\tTEXT\tX\tY\tWIDTH\tHEIGHT")
	var walk func(w widget.Widget, depth int)
	walk = func(w widget.Widget, depth int) {
		r := w.Allocation()
		fmt.Fprintf(tw, "%s%s\t%s\t%d\t%d\t%d\t%d\n",
			strings.Repeat("  ", depth), kind(w), caption(w), r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		if c, ok := w.(widget.Container); ok {
			c.Forall(func(child widget.Widget) {
				walk(child, depth+1)
			})
		}
	}
	b.host.Forall(func(w widget.Widget) {
		walk(w, 0)
	})
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "hadjustment %v\nvadjustment %v\n", b.hadj, b.vadj)
	return err
}

// render draws the scene into a PNG file.
func (b *built) render(path string) error {
	dst := image.NewRGBA(image.Rectangle{Max: b.top.Size()})
	b.top.Draw(dst, image.Point{})
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func kind(w widget.Widget) string {
	switch w := w.(type) {
	case *widget.Label:
		return "label"
	case *widget.Button:
		return "button"
	case *widget.Fixed:
		return "fixed"
	case *widget.Box:
		if w.Orientation == widget.Horizontal {
			return "hbox"
		}
		return "vbox"
	}
	return fmt.Sprintf("%T", w)
}

func caption(w widget.Widget) string {
	switch w := w.(type) {
	case *widget.Label:
		return fmt.Sprintf("%q", w.Text())
	case *widget.Button:
		return fmt.Sprintf("%q", w.Caption())
	}
	return "-"
}
