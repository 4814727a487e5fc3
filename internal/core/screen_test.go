package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.String() != "      \n      \n      " {
		t.Errorf("new screen = %q, expected blank rows", s.String())
	}
}

func TestScreenCellsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 1, '●', ColorRed)
	if c := s.GetCell(1, 1); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'X', ColorBlue) // Ignored
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, expected a blank cell", p[0], p[1], c)
		}
	}
	if strings.Contains(s.String(), "X") {
		t.Error("out of bounds writes should not reach the buffer")
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColored(0, 0, "abc", ColorGreen)

	s.Clear()

	for x := 0; x < 3; x++ {
		if c := s.GetCell(x, 0); c != (Cell{Rune: ' '}) {
			t.Errorf("cell %d = %+v after Clear", x, c)
		}
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"clipped on the right", func(s *Screen) { s.DrawText(5, 0, "Score: 10") }, "     Sco"},
		{"clipped on the left", func(s *Screen) { s.DrawText(-2, 0, "Blocks") }, "ocks    "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "WIN") }, "  WIN   "},
		{"centered and too wide", func(s *Screen) { s.DrawTextCentered(0, "GAME OVER!") }, "AME OVER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tc.draw(s)
			if got := s.String(); got != tc.want {
				t.Errorf("row = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawRectColored(NewRect(3, 1, 4, 4), '█', ColorOrange) // Runs off the bottom right

	want := "     \n   ██\n   ██"
	if s.String() != want {
		t.Errorf("screen =\n%s\nexpected\n%s", s.String(), want)
	}
	if c := s.GetCell(4, 2); c.Color != ColorOrange {
		t.Errorf("color = %v, expected orange", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '#')
	s.DrawBox(NewRect(1, 0, 4, 3))

	lines := strings.Split(s.String(), "\n")
	want := []string{"#┌──┐#", "#│##│#", "#└──┘#", "######"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.String() != "ab\nef\n  " {
		t.Errorf("screen = %q after shrinking width", s.String())
	}
}
