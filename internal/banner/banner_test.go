package banner

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

const tinyFont = `
height: 2
spacing: 1
glyphs:
  H:
    - "# #"
    - "# #"
  I:
    - "#"
    - "#"
`

func TestParseAndRender(t *testing.T) {
	f, err := Parse([]byte(tinyFont))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := f.Render("hi")
	want := []string{"# # #", "# # #"}
	if len(got) != len(want) {
		t.Fatalf("Render returned %d rows, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestRenderMissingGlyph(t *testing.T) {
	f, err := Parse([]byte(tinyFont))
	if err != nil {
		t.Fatal(err)
	}
	if f.Has("HX") {
		t.Error("Has should report the missing X glyph")
	}
	if f.Render("HX") != nil {
		t.Error("Render should return nil when a glyph is missing")
	}
	if rows := f.Render("H I"); rows == nil || utf8.RuneCountInString(rows[0]) != 3+1+2+1+1 {
		t.Errorf("space should render as a blank glyph, got %q", rows)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "height: [1"},
		{"no height", "glyphs:\n  A: [\"#\"]\n"},
		{"no glyphs", "height: 1\n"},
		{"wrong row count", "height: 2\nglyphs:\n  A: [\"#\"]\n"},
		{"multi-char key", "height: 1\nglyphs:\n  AB: [\"#\"]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLinesFallback(t *testing.T) {
	f, err := Parse([]byte(tinyFont))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		font  *Font
		text  string
		width int
		rows  int
	}{
		{"no font", nil, "HI", 80, 1},
		{"fits", f, "HI", 80, 2},
		{"too wide", f, "HI", 3, 1},
		{"missing glyph", f, "OK", 80, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(tc.font, tc.text, tc.width)
			if len(got) != tc.rows {
				t.Errorf("Lines returned %d rows, expected %d", len(got), tc.rows)
			}
			if tc.rows == 1 && got[0] != tc.text {
				t.Errorf("plain fallback = %q, expected %q", got[0], tc.text)
			}
		})
	}
}

func TestLoadBundledFont(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "configs", "fonts", "block.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, msg := range []string{"GAME OVER", "YOU WIN!", "PAUSED"} {
		rows := f.Render(msg)
		if len(rows) != 5 {
			t.Errorf("%q rendered %d rows, expected 5", msg, len(rows))
			continue
		}
		w := utf8.RuneCountInString(rows[0])
		for i, row := range rows {
			if utf8.RuneCountInString(row) != w {
				t.Errorf("%q row %d has ragged width", msg, i)
			}
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
