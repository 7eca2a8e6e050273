package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/younwookim/mgui/internal/domain/ui"
)

var (
	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	hiddenStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)
)

// Dump renders the tree as indented lines, one element per line. The element
// with the selected ID is highlighted and followed by its properties.
func Dump(root *ui.Root, selected ui.ElementID) string {
	var b strings.Builder
	for _, e := range Collect(root) {
		fe := e.Element.Base()
		r := fe.LayoutRect()

		line := kindStyle.Render(e.Element.Kind().String())
		if fe.Name != "" {
			line += " " + nameStyle.Render(fe.Name)
		}
		line += " " + rectStyle.Render(fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height))
		if fe.Hidden {
			line = hiddenStyle.Render(line)
		}
		if fe.ID() == selected {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}

		b.WriteString(strings.Repeat("  ", e.Depth))
		b.WriteString(line)
		b.WriteByte('\n')

		if fe.ID() == selected {
			indent := strings.Repeat("  ", e.Depth+2)
			for _, l := range Describe(root, e.Element).Lines()[1:] {
				b.WriteString(indent + rectStyle.Render(l) + "\n")
			}
		}
	}
	return b.String()
}
