// Package banner renders large end-of-round text from a YAML glyph font.
//
// A font file looks like:
//
//	height: 5
//	spacing: 1
//	glyphs:
//	  A:
//	    - " ### "
//	    - "#   #"
//	    ...
//
// Every glyph must have exactly height rows. Rows may differ in width; they
// are padded to the widest row of the glyph.
package banner

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Font is a fixed-height bitmap font made of text rows.
type Font struct {
	Height  int                 `yaml:"height"`
	Spacing int                 `yaml:"spacing"`
	Glyphs  map[string][]string `yaml:"glyphs"`

	glyphs map[rune]glyph
}

type glyph struct {
	rows  []string
	width int
}

// Load reads and validates a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("banner: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("banner: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a font from YAML.
func Parse(data []byte) (*Font, error) {
	var f Font
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if f.Height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %d", f.Height)
	}
	if len(f.Glyphs) == 0 {
		return nil, fmt.Errorf("no glyphs")
	}
	if f.Spacing < 0 {
		f.Spacing = 0
	}

	f.glyphs = make(map[rune]glyph, len(f.Glyphs))
	for key, rows := range f.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("glyph key %q must be a single character", key)
		}
		if len(rows) != f.Height {
			return nil, fmt.Errorf("glyph %q has %d rows, expected %d", key, len(rows), f.Height)
		}
		w := 0
		for _, row := range rows {
			w = max(w, utf8.RuneCountInString(row))
		}
		padded := make([]string, len(rows))
		for i, row := range rows {
			padded[i] = row + strings.Repeat(" ", w-utf8.RuneCountInString(row))
		}
		f.glyphs[r] = glyph{rows: padded, width: w}
	}
	return &f, nil
}

// Has reports whether every rune of text has a glyph. Spaces always render.
func (f *Font) Has(text string) bool {
	for _, r := range strings.ToUpper(text) {
		if r == ' ' {
			continue
		}
		if _, ok := f.glyphs[r]; !ok {
			return false
		}
	}
	return true
}

// Render returns the banner rows for text. Letters are looked up upper-case.
// A space without a glyph is as wide as the font height.
// Returns nil if any other rune is missing.
func (f *Font) Render(text string) []string {
	if !f.Has(text) {
		return nil
	}
	lines := make([]strings.Builder, f.Height)
	gap := strings.Repeat(" ", f.Spacing)

	for i, r := range []rune(strings.ToUpper(text)) {
		g, ok := f.glyphs[r]
		if !ok {
			g = glyph{width: f.Height}
		}
		for row := range lines {
			if i > 0 {
				lines[row].WriteString(gap)
			}
			if g.rows != nil {
				lines[row].WriteString(g.rows[row])
			} else {
				lines[row].WriteString(strings.Repeat(" ", g.width))
			}
		}
	}

	out := make([]string, f.Height)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out
}

// Lines renders text with the font if it fits within maxWidth columns,
// otherwise it returns the plain text as a single line. A nil font always
// yields plain text.
func Lines(f *Font, text string, maxWidth int) []string {
	if f != nil {
		if rows := f.Render(text); rows != nil && utf8.RuneCountInString(rows[0]) <= maxWidth {
			return rows
		}
	}
	return []string{text}
}
