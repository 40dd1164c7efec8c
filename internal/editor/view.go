package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"notemark/internal/diag"
)

var (
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	suggStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	tooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if underline := m.underlineRow(); underline != "" {
		b.WriteString(underline)
		b.WriteString("\n")
	}

	if len(m.popup) > 0 {
		b.WriteString(m.popupView())
	}

	if m.tooltip != "" {
		b.WriteString(tooltipStyle.Render(m.tooltip))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.statusLine()))
	b.WriteString("\n")
	return b.String()
}

// underlineRow draws severity-colored markers under the diagnosed
// ranges of the input line. Display columns come from runewidth so the
// markers stay aligned past wide characters.
func (m *Model) underlineRow() string {
	if m.bag == nil || m.bag.Len() == 0 {
		return ""
	}
	value := m.input.Value()
	if value == "" {
		return ""
	}

	width := runewidth.StringWidth(value)
	row := make([]rune, width)
	sevs := make([]diag.Severity, width)
	for i := range row {
		row[i] = ' '
	}

	marked := false
	for _, d := range m.bag.Items() {
		start, end := int(d.Primary.Start), int(d.Primary.End)
		if start >= len(value) {
			continue
		}
		if end > len(value) {
			end = len(value)
		}
		from := runewidth.StringWidth(value[:start])
		to := runewidth.StringWidth(value[:end])
		for col := from; col < to && col < width; col++ {
			if row[col] == ' ' || d.Severity > sevs[col] {
				row[col] = '~'
				sevs[col] = d.Severity
				marked = true
			}
		}
	}
	if !marked {
		return ""
	}

	// The prompt shifts the input by its own width.
	pad := strings.Repeat(" ", runewidth.StringWidth(m.input.Prompt))
	var b strings.Builder
	b.WriteString(pad)
	for col := 0; col < width; col++ {
		if row[col] == ' ' {
			b.WriteString(" ")
			continue
		}
		b.WriteString(severityStyle(sevs[col]).Render("~"))
	}
	return b.String()
}

func (m *Model) popupView() string {
	var b strings.Builder
	for i, item := range m.popup {
		line := item.label
		if item.detail != "" {
			line = fmt.Sprintf("%s  %s", item.label, dimStyle.Render(item.detail))
		}
		if i == m.popupIndex {
			b.WriteString(selStyle.Render(" " + item.label + " "))
			if item.detail != "" {
				b.WriteString(" " + dimStyle.Render(item.detail))
			}
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) statusLine() string {
	if m.bag == nil {
		return "enter: accept  esc: quit"
	}
	errs, warns, suggs := 0, 0, 0
	for _, d := range m.bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		default:
			suggs++
		}
	}
	counts := fmt.Sprintf("%d errors, %d warnings, %d suggestions", errs, warns, suggs)
	return counts + "  ·  tab: complete  ctrl+f: fix  enter: accept  esc: quit"
}

func severityStyle(sev diag.Severity) lipgloss.Style {
	switch sev {
	case diag.SevError:
		return errStyle
	case diag.SevWarning:
		return warnStyle
	default:
		return suggStyle
	}
}
