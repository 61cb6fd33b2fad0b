package feedback

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/randomtoy/ideawheel/internal/domain"
	"github.com/randomtoy/ideawheel/internal/ports"
)

// tokenColors maps palette tokens to terminal colors.
var tokenColors = map[string]lipgloss.Color{
	"coral":     lipgloss.Color("#FF7F50"),
	"tangerine": lipgloss.Color("#F28500"),
	"sunflower": lipgloss.Color("#FFDA03"),
	"mint":      lipgloss.Color("#3EB489"),
	"sky":       lipgloss.Color("#87CEEB"),
	"lavender":  lipgloss.Color("#B57EDC"),
	"rose":      lipgloss.Color("#FF66CC"),
	"sage":      lipgloss.Color("#9CAF88"),
}

var (
	tickStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3EB489"))
)

// ColorFor returns the terminal color for a palette token. Unknown tokens
// are passed through, so hex values and ANSI numbers work as tokens too.
func ColorFor(token string) lipgloss.Color {
	if c, ok := tokenColors[token]; ok {
		return c
	}
	return lipgloss.Color(token)
}

// Swatch renders a section label in its palette color.
func Swatch(s domain.Section) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorFor(s.Color)).Render(s.Item.Label)
}

// Terminal prints a glyph per pulse. Safe for use from timer goroutines.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Pulse(kind ports.PulseKind) {
	glyph := tickStyle.Render("·")
	if kind == ports.PulseSuccess {
		glyph = successStyle.Render("✓") + "\n"
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprint(t.w, glyph)
}

// Println writes a line, serialized with pulse output.
func (t *Terminal) Println(a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, a...)
}
