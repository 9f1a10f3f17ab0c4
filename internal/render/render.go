package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/tock/internal/glyph"
	"github.com/garrettladley/tock/internal/rgb"
)

// clearHome erases the screen and moves the cursor to row 1, column 1.
var clearHome = ansi.EraseEntireScreen + ansi.CursorPosition(1, 1)

const (
	sgrReset  = "\x1b[0m"
	separator = " "
)

// Renderer draws text as large glyphs using 24-bit foreground colors.
type Renderer struct {
	w     io.Writer
	table *glyph.Table
}

func New(w io.Writer, table *glyph.Table) *Renderer {
	return &Renderer{w: w, table: table}
}

// Render clears the terminal and draws text. The whole frame is written in a
// single call to the underlying writer.
func (r *Renderer) Render(text string, c rgb.Color) error {
	if _, err := r.w.Write(Frame(r.table, text, c)); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Message prints a single colored line below the current frame.
func (r *Renderer) Message(text string, c rgb.Color) error {
	if _, err := io.WriteString(r.w, foreground(c)+text+sgrReset+"\n"); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// Frame builds the bytes for one screen of text: a clear sequence followed by
// glyph.Height rows, each holding one colored segment per rune.
func Frame(table *glyph.Table, text string, c rgb.Color) []byte {
	var (
		buf   bytes.Buffer
		start = foreground(c)
		runes = []rune(text)
	)

	buf.WriteString(clearHome)
	for i := range glyph.Height {
		for _, ch := range runes {
			buf.WriteString(start)
			buf.WriteString(table.Row(ch, i))
			buf.WriteString(sgrReset)
			buf.WriteString(separator)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func foreground(c rgb.Color) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R(), c.G(), c.B())
}
