package core

import (
	"strings"
	"testing"
)

func TestNewScreenDimensions(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width = %d, want 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height = %d, want 12", s.Height())
	}

	// Freshly created screen should be all spaces
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		if strings.TrimSpace(row) != "" {
			t.Errorf("Row %d not empty on new screen: %q", y, row)
		}
	}
}

func TestSetAndGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorBlue)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' || cell.Color != ColorBlue {
		t.Errorf("GetCell(3,4) = %+v, want {'#', ColorBlue}", cell)
	}

	// Out-of-bounds writes are ignored, reads return a default cell
	s.SetCell(-1, 0, 'X', ColorRed)
	s.SetCell(10, 0, 'X', ColorRed)
	s.SetCell(0, 10, 'X', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want default cell", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "HEART", ColorRed)

	if got := s.Row(1); !strings.Contains(got, "HEART") {
		t.Errorf("Row 1 = %q, want to contain HEART", got)
	}
	if cell := s.GetCell(2, 1); cell.Color != ColorRed {
		t.Errorf("text cell color = %v, want ColorRed", cell.Color)
	}

	// Clipped text must not panic and keeps the visible part
	s.DrawText(18, 2, "CHASE", ColorGold)
	if cell := s.GetCell(19, 2); cell.Rune != 'H' {
		t.Errorf("clipped text cell = %q, want 'H'", cell.Rune)
	}
}

func TestDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 3)

	// Arrows and hearts are multibyte in UTF-8 but still one cell each.
	s.DrawText(2, 1, "↑/↓ ♥", ColorPink)

	want := []rune{'↑', '/', '↓', ' ', '♥'}
	for i, r := range want {
		if got := s.GetCell(2+i, 1).Rune; got != r {
			t.Errorf("cell x=%d = %q, want %q", 2+i, got, r)
		}
	}
	if got := s.GetCell(2+len(want), 1).Rune; got != ' ' {
		t.Errorf("cell past text = %q, want space", got)
	}
}

func TestDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(21, 3)

	// Five runes on a 21-wide screen center at x=8 regardless of byte length.
	s.DrawTextCentered(1, "→♥←♥→", ColorPink)

	if got := s.GetCell(8, 1).Rune; got != '→' {
		t.Errorf("centered text starts with %q at x=8, want '→'", got)
	}
	if got := s.GetCell(12, 1).Rune; got != '→' {
		t.Errorf("centered text ends with %q at x=12, want '→'", got)
	}
	if got := s.GetCell(7, 1).Rune; got != ' ' {
		t.Errorf("cell before text = %q, want space", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "HI", ColorDefault)

	if got := s.Row(1); !strings.Contains(got, "HI") {
		t.Errorf("Row 1 = %q, want to contain HI", got)
	}
	if cell := s.GetCell(9, 1); cell.Rune != 'H' {
		t.Errorf("centered text starts at %q, want 'H' at x=9", cell.Rune)
	}
}

func TestDrawRectAndBox(t *testing.T) {
	s := NewScreen(12, 8)

	s.DrawRect(NewRect(1, 1, 3, 2), '█', ColorBlue)
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.GetCell(x, y).Rune != '█' {
				t.Errorf("cell (%d,%d) = %q, want '█'", x, y, s.GetCell(x, y).Rune)
			}
		}
	}

	s.DrawBox(NewRect(5, 1, 5, 4), ColorGold)
	if s.GetCell(5, 1).Rune != '┌' || s.GetCell(9, 4).Rune != '┘' {
		t.Error("box corners not drawn")
	}
	if s.GetCell(7, 1).Rune != '─' || s.GetCell(5, 2).Rune != '│' {
		t.Error("box edges not drawn")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, '@', ColorYellow)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, want 20x10", s.Width(), s.Height())
	}
	if cell := s.GetCell(2, 2); cell.Rune != '@' {
		t.Errorf("content lost on grow: got %q", cell.Rune)
	}

	s.Resize(3, 3)
	if cell := s.GetCell(2, 2); cell.Rune != '@' {
		t.Errorf("content lost on shrink: got %q", cell.Rune)
	}
}

func TestStringRoundTrip(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab", ColorDefault)

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String produced %d lines, want 2", len(lines))
	}
	if lines[0] != "ab  " {
		t.Errorf("line 0 = %q, want %q", lines[0], "ab  ")
	}
}
