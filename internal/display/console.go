package display

import (
	"io"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/pterm/pterm"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Console emulates the panel on a terminal.
//
// Without a renderer it prints each label on its own line. With one it
// prints the rendered frame, two pixel rows per text line, so the layout can
// be checked without hardware.
type Console struct {
	w        io.Writer
	renderer *Renderer
	style    *pterm.Style
}

// NewConsole returns a Console writing to w. renderer may be nil.
func NewConsole(w io.Writer, renderer *Renderer) *Console {
	return &Console{
		w:        w,
		renderer: renderer,
		style:    pterm.NewStyle(pterm.FgLightGreen, pterm.Bold),
	}
}

// NewStdoutConsole returns a Console on stdout that handles ANSI sequences
// on every platform.
func NewStdoutConsole(renderer *Renderer) *Console {
	return NewConsole(colorable.NewColorableStdout(), renderer)
}

func (c *Console) String() string {
	return "Console"
}

// Show writes the label or its frame.
func (c *Console) Show(text string) error {
	var out string
	if c.renderer == nil {
		out = c.style.Sprint(text) + "\n"
	} else {
		out = c.style.Sprint(frameString(c.renderer.Render(text)))
	}
	_, err := io.WriteString(c.w, out)
	return err
}

// Close resets the terminal attributes.
func (c *Console) Close() error {
	_, err := io.WriteString(c.w, "\033[0m")
	return err
}

// frameString draws img with half block characters inside a border.
func frameString(img *image1bit.VerticalLSB) string {
	b := img.Bounds()
	var sb strings.Builder
	border := "+" + strings.Repeat("-", b.Dx()) + "+\n"

	sb.WriteString(border)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		sb.WriteByte('|')
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.BitAt(x, y) == image1bit.On
			bottom := y+1 < b.Max.Y && img.BitAt(x, y+1) == image1bit.On
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
