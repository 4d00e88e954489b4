package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-photo-albums/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// fitText cuts v to at most max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// padCell fits v into exactly width terminal cells.
func padCell(v string, width int) string {
	v = fitText(v, width)
	if gap := width - lipgloss.Width(v); gap > 0 {
		v += strings.Repeat(" ", gap)
	}
	return v
}

// albumLabel is the album button caption: the first word of the title.
func albumLabel(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// userNameStyle colours a user name by sex. Unknown markers and absent
// users are left unstyled.
func userNameStyle(u *models.User) lipgloss.Style {
	if u == nil {
		return lipgloss.NewStyle()
	}
	switch u.Sex {
	case models.SexMale:
		return maleStyle
	case models.SexFemale:
		return femaleStyle
	default:
		return lipgloss.NewStyle()
	}
}
