package trace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles used by Render. Callers that want unstyled
// output use PlainTheme (or Plain directly).
type Theme struct {
	Label  lipgloss.Style
	Letter lipgloss.Style
	Result lipgloss.Style
}

// DefaultTheme dims the row labels and highlights the ciphertext.
func DefaultTheme() Theme {
	return Theme{
		Label:  lipgloss.NewStyle().Faint(true),
		Letter: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle().Bold(true),
	}
}

// PlainTheme renders without any terminal styling.
func PlainTheme() Theme {
	return Theme{}
}

var labels = [4]string{"Text:", "Key:", "Shift:", "Result:"}

// labelWidth is the fixed gutter all four rows share, wide enough for the
// longest label plus two spaces.
const labelWidth = 9

// Render formats the four rows of tr with the given theme. The returned
// string has no trailing newline.
func (tr Trace) Render(th Theme) string {
	rows := [4]string{tr.Text, tr.Key, tr.Shift, tr.Result}
	var b strings.Builder
	for i, label := range labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		gutter := fmt.Sprintf("%-*s", labelWidth, label)
		b.WriteString(th.Label.Render(gutter))
		if i == 3 {
			b.WriteString(th.Result.Render(rows[i]))
		} else {
			b.WriteString(th.Letter.Render(rows[i]))
		}
	}
	return b.String()
}

// Plain is shorthand for rendering with no styling at all.
func (tr Trace) Plain() string {
	return tr.Render(PlainTheme())
}
