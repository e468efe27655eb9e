// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a collection of text.FontFace.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"gioui.org/flowkit/text"
)

var (
	regOnce    sync.Once
	reg        []text.FontFace
	once       sync.Once
	collection []text.FontFace
)

func loadRegular() {
	regOnce.Do(func() {
		reg = []text.FontFace{{Font: text.Font{Typeface: "Go"}, Face: parse(goregular.TTF)}}
		collection = append(collection, reg[0])
	})
}

// Regular returns a collection of only the Go regular font face.
func Regular() []text.FontFace {
	loadRegular()
	return reg
}

// Collection returns a collection of the proportional Go faces and
// the regular Go Mono face.
func Collection() []text.FontFace {
	loadRegular()
	once.Do(func() {
		register(text.Font{Typeface: "Go", Style: text.Italic}, goitalic.TTF)
		register(text.Font{Typeface: "Go", Weight: text.Bold}, gobold.TTF)
		register(text.Font{Typeface: "Go", Style: text.Italic, Weight: text.Bold}, gobolditalic.TTF)
		register(text.Font{Typeface: "Go", Weight: text.Medium}, gomedium.TTF)
		register(text.Font{Typeface: "Go", Weight: text.Medium, Style: text.Italic}, gomediumitalic.TTF)
		register(text.Font{Typeface: "Go Mono"}, gomono.TTF)
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func register(fnt text.Font, ttf []byte) {
	collection = append(collection, text.FontFace{Font: fnt, Face: parse(ttf)})
}

func parse(ttf []byte) *sfnt.Font {
	face, err := sfnt.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return face
}
