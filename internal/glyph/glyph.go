package glyph

import (
	"slices"
	"strings"
)

const (
	Height = 5
	Width  = 7
)

// Glyph is the ASCII-art rendering of a single rune, one string per row.
type Glyph [Height]string

var blank = Glyph{
	strings.Repeat(" ", Width),
	strings.Repeat(" ", Width),
	strings.Repeat(" ", Width),
	strings.Repeat(" ", Width),
	strings.Repeat(" ", Width),
}

// Blank returns the glyph used for runes the table does not know.
func Blank() Glyph {
	return blank
}

// Table maps displayable runes to glyphs. It is read-only once built.
type Table struct {
	glyphs map[rune]Glyph
}

func New() *Table {
	return &Table{
		glyphs: map[rune]Glyph{
			'0': {"  000  ", " 0   0 ", " 0   0 ", " 0   0 ", "  000  "},
			'1': {"   1   ", "  11   ", "   1   ", "   1   ", "  111  "},
			'2': {"  222  ", " 2   2 ", "   2   ", "  2    ", " 22222 "},
			'3': {"  333  ", " 3   3 ", "   33  ", " 3   3 ", "  333  "},
			'4': {" 4   4 ", " 4   4 ", " 44444 ", "     4 ", "     4 "},
			'5': {" 55555 ", " 5     ", " 55555 ", "     5 ", " 55555 "},
			'6': {"  666  ", " 6     ", " 66666 ", " 6   6 ", "  666  "},
			'7': {" 77777 ", "    7  ", "   7   ", "  7    ", " 7     "},
			'8': {"  888  ", " 8   8 ", "  888  ", " 8   8 ", "  888  "},
			'9': {"  999  ", " 9   9 ", "  9999 ", "     9 ", "  999  "},
			':': {"       ", "   7   ", "       ", "   7   ", "       "},
			' ': blank,
			'A': {"   A   ", "  A A  ", " AAAAA ", " A   A ", " A   A "},
			'M': {" M   M ", " MM MM ", " M M M ", " M   M ", " M   M "},
			'P': {"  PPP  ", " P   P ", " PPPP  ", " P     ", " P     "},
		},
	}
}

// Lookup returns the glyph for r, or the blank glyph when r is unsupported.
func (t *Table) Lookup(r rune) Glyph {
	g, ok := t.glyphs[r]
	if !ok {
		return blank
	}
	return g
}

// Row returns row i of r's glyph. Rows outside [0, Height) are blank.
func (t *Table) Row(r rune, i int) string {
	if i < 0 || i >= Height {
		return blank[0]
	}
	return t.Lookup(r)[i]
}

// Runes lists the supported runes in ascending order.
func (t *Table) Runes() []rune {
	runes := make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
