// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Shaper lays out text from a collection of font faces.
//
// If a font matches no face in the collection, Shaper falls back to
// a face of the same typeface and then to the first face.
//
// Layout results are cached and re-used when possible. A Shaper is
// not safe for concurrent use.
type Shaper struct {
	faces     []FontFace
	buf       sfnt.Buffer
	cache     layoutCache
	seg       *segment.Segmenter
	drawFaces map[faceKey]font.Face
}

type faceKey struct {
	font Font
	ppem fixed.Int26_6
}

// NewShaper returns a Shaper for the faces of collection.
func NewShaper(collection []FontFace) *Shaper {
	return &Shaper{faces: collection}
}

// Layout measures txt and breaks it into lines no wider than maxWidth
// pixels. Newlines always break. A maxWidth <= 0 means lines are only
// broken at newlines. A word wider than maxWidth is broken between
// runes.
func (s *Shaper) Layout(p Parameters, maxWidth int, txt string) Layout {
	if maxWidth < 0 {
		maxWidth = 0
	}
	key := layoutKey{ppem: p.PxPerEm, maxWidth: maxWidth, str: txt, font: p.Font}
	if l, ok := s.cache.Get(key); ok {
		return l
	}
	f := s.lookup(p.Font)
	if f == nil {
		return Layout{}
	}
	l := s.layoutText(f, p.PxPerEm, maxWidth, txt)
	s.cache.Put(key, l)
	return l
}

// Face returns a face suitable for drawing text measured with p.
func (s *Shaper) Face(p Parameters) (font.Face, error) {
	k := faceKey{font: p.Font, ppem: p.PxPerEm}
	if f, ok := s.drawFaces[k]; ok {
		return f, nil
	}
	f := s.lookup(p.Font)
	if f == nil {
		return nil, fmt.Errorf("text: no face for %+v", p.Font)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		// With 72 DPI a point equals a pixel.
		Size:    float64(p.PxPerEm) / 64,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	if s.drawFaces == nil {
		s.drawFaces = make(map[faceKey]font.Face)
	}
	s.drawFaces[k] = face
	return face, nil
}

func (s *Shaper) lookup(fnt Font) *sfnt.Font {
	if len(s.faces) == 0 {
		return nil
	}
	var fallback *sfnt.Font
	for _, f := range s.faces {
		if f.Font == fnt {
			return f.Face
		}
		if fallback == nil && f.Font.Typeface == fnt.Typeface {
			fallback = f.Face
		}
	}
	if fallback != nil {
		return fallback
	}
	return s.faces[0].Face
}

func (s *Shaper) layoutText(f *sfnt.Font, ppem fixed.Int26_6, maxWidth int, txt string) Layout {
	var tmpl Line
	if m, err := f.Metrics(&s.buf, ppem, font.HintingFull); err == nil {
		tmpl.Ascent = m.Ascent
		tmpl.Descent = m.Height - m.Ascent
	}
	maxDotX := fixed.Int26_6(math.MaxInt32)
	if maxWidth > 0 {
		maxDotX = fixed.I(maxWidth)
	}
	var lines []Line
	for _, para := range strings.Split(txt, "\n") {
		lines = s.wrap(lines, tmpl, f, ppem, maxDotX, para)
	}
	return Layout{Lines: lines}
}

// wrap appends the lines of a single paragraph to lines.
func (s *Shaper) wrap(lines []Line, tmpl Line, f *sfnt.Font, ppem, maxDotX fixed.Int26_6, para string) []Line {
	emit := func(txt string) {
		l := tmpl
		l.Text = txt
		l.Width = s.width(f, ppem, strings.TrimRightFunc(txt, unicode.IsSpace))
		lines = append(lines, l)
	}
	units := s.segments(para)
	var line strings.Builder
	var x fixed.Int26_6
	for i := 0; i < len(units); i++ {
		u := units[i]
		tw := s.width(f, ppem, strings.TrimRightFunc(u, unicode.IsSpace))
		if line.Len() > 0 && x+tw > maxDotX {
			emit(line.String())
			line.Reset()
			x = 0
		}
		if line.Len() == 0 && tw > maxDotX && utf8.RuneCountInString(u) > 1 {
			cut := s.fit(f, ppem, maxDotX, u)
			emit(u[:cut])
			units[i] = u[cut:]
			i--
			continue
		}
		line.WriteString(u)
		x += s.width(f, ppem, u)
	}
	emit(line.String())
	return lines
}

// fit returns the length of the longest prefix of str that fits in
// maxDotX. At least one rune is always included.
func (s *Shaper) fit(f *sfnt.Font, ppem, maxDotX fixed.Int26_6, str string) int {
	_, n := utf8.DecodeRuneInString(str)
	for n < len(str) {
		_, size := utf8.DecodeRuneInString(str[n:])
		if s.width(f, ppem, str[:n+size]) > maxDotX {
			break
		}
		n += size
	}
	return n
}

func (s *Shaper) width(f *sfnt.Font, ppem fixed.Int26_6, str string) fixed.Int26_6 {
	var w fixed.Int26_6
	var prev sfnt.GlyphIndex
	hasPrev := false
	for _, r := range str {
		g, err := f.GlyphIndex(&s.buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			// Fonts without a kern table report an error.
			if k, err := f.Kern(&s.buf, prev, g, ppem, font.HintingFull); err == nil {
				w += k
			}
		}
		a, err := f.GlyphAdvance(&s.buf, g, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		w += a
		prev, hasPrev = g, true
	}
	return w
}

// segments splits a paragraph at its line break opportunities. Each
// segment carries its trailing white space.
func (s *Shaper) segments(para string) []string {
	if para == "" {
		return nil
	}
	if s.seg == nil {
		s.seg = segment.NewSegmenter(uax14.NewLineWrap())
	}
	s.seg.Init(strings.NewReader(para))
	var out []string
	n := 0
	for s.seg.Next() {
		t := string(s.seg.Bytes())
		out = append(out, t)
		n += len(t)
	}
	if n != len(para) || (len(out) == 1 && strings.ContainsAny(strings.TrimSpace(para), " \t")) {
		return splitSpaces(para)
	}
	return out
}

// splitSpaces breaks after every run of white space.
func splitSpaces(para string) []string {
	var out []string
	start := 0
	inSpace := false
	for i, r := range para {
		sp := unicode.IsSpace(r)
		if inSpace && !sp {
			out = append(out, para[start:i])
			start = i
		}
		inSpace = sp
	}
	return append(out, para[start:])
}
