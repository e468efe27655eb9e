// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/flowkit/font/gofont"
	"gioui.org/flowkit/layout"
	"gioui.org/flowkit/managed"
	"gioui.org/flowkit/stacklayout"
	"gioui.org/flowkit/unit"
	"gioui.org/flowkit/widget"
)

// scene is the description of a tree read from a TOML file.
type scene struct {
	Host     string  `toml:"host"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Border   int     `toml:"border"`
	TextSize float32 `toml:"text_size"`
	ScrollX  float64 `toml:"scroll_x"`
	ScrollY  float64 `toml:"scroll_y"`
	Root     node    `toml:"root"`
}

type node struct {
	Kind     string `toml:"kind"`
	Text     string `toml:"text"`
	Wrap     bool   `toml:"wrap"`
	Pack     string `toml:"pack"`
	Padding  int    `toml:"padding"`
	Border   int    `toml:"border"`
	Spacing  int    `toml:"spacing"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Children []node `toml:"children"`
}

// built is a scene turned into a live tree.
type built struct {
	top  *widget.Toplevel
	host widget.Container
	hadj *widget.Adjustment
	vadj *widget.Adjustment
}

func decodeScene(data string) (*scene, error) {
	s := &scene{Host: "stack", Width: 320, Height: 240}
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	if s.Root.Kind == "" {
		return nil, errors.New("missing root")
	}
	return s, nil
}

// build creates the host and its tree inside a Toplevel the size of
// the scene.
func (s *scene) build() (*built, error) {
	th := widget.NewTheme(gofont.Collection())
	if s.TextSize > 0 {
		th.TextSize = unit.Sp(s.TextSize)
	}
	b := &built{
		top:  widget.NewToplevel(image.Pt(s.Width, s.Height)),
		hadj: widget.NewAdjustment(0, 0, 0, 0, 0, 0),
		vadj: widget.NewAdjustment(0, 0, 0, 0, 0, 0),
	}
	switch s.Host {
	case "stack":
		h := stacklayout.New(b.hadj, b.vadj)
		if err := buildStack(th, h, s.Root); err != nil {
			return nil, err
		}
		b.host = h
	case "managed":
		h := managed.New(b.hadj, b.vadj)
		w, err := buildWidget(th, s.Root)
		if err != nil {
			return nil, err
		}
		h.Add(w)
		b.host = h
	default:
		return nil, fmt.Errorf("unknown host %q", s.Host)
	}
	b.host.SetBorderWidth(s.Border)
	b.top.Add(b.host)
	return b, nil
}

// buildStack adds n to the current manager of h, pushing a new manager
// for flow and stack nodes.
func buildStack(th *widget.Theme, h *stacklayout.StackLayout, n node) error {
	var m layout.Manager
	switch n.Kind {
	case "flow":
		m = layout.NewFlow()
	case "stack":
		m = layout.NewStack()
	default:
		w, err := buildWidget(th, n)
		if err != nil {
			return err
		}
		h.Add(w)
		return nil
	}
	layout.Set(m, "border-width", n.Border)
	h.Push(m)
	defer h.Pop()
	for _, c := range n.Children {
		if err := buildStack(th, h, c); err != nil {
			return err
		}
	}
	return nil
}

func buildWidget(th *widget.Theme, n node) (widget.Widget, error) {
	switch n.Kind {
	case "label":
		l := widget.NewLabel(th, n.Text)
		l.SetLineWrap(n.Wrap)
		return l, nil
	case "button":
		return widget.NewButton(th, n.Text), nil
	case "fixed":
		return widget.NewFixed(n.Width, n.Height), nil
	case "hbox", "vbox":
		var b *widget.Box
		if n.Kind == "hbox" {
			b = widget.NewHBox(false, n.Spacing)
		} else {
			b = widget.NewVBox(false, n.Spacing)
		}
		b.SetBorderWidth(n.Border)
		for _, c := range n.Children {
			w, err := buildWidget(th, c)
			if err != nil {
				return nil, err
			}
			switch c.Pack {
			case "", "start":
				b.PackStart(w, false, false, c.Padding)
			case "end":
				b.PackEnd(w, false, false, c.Padding)
			default:
				return nil, fmt.Errorf("unknown pack type %q", c.Pack)
			}
		}
		return b, nil
	case "flow", "stack":
		return nil, fmt.Errorf("%s is a layout manager and needs a stack host", n.Kind)
	}
	return nil, fmt.Errorf("unknown kind %q", n.Kind)
}
