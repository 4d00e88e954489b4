package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pageTitle       = "Photos from albums"
	noMatchingPhoto = "No photos matching selected criteria"
	resetButton     = "Reset all filters"

	sortIcon     = "⇅"
	sortDownIcon = "▼"
	sortUpIcon   = "▲"

	idColumnWidth     = 6
	albumColumnWidth  = 22
	userColumnWidth   = 12
	minTitleWidth     = 16
	defaultTitleWidth = 32
)

func (m galleryModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewFilters())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(noMatchingPhoto)
	} else {
		b.WriteString(m.viewTable())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return appStyle.Render(renderPage(pageTitle, b.String(), m.hotKeys()))
}

func (m galleryModel) viewFilters() string {
	var b strings.Builder

	b.WriteString(panelHeadingStyle.Render("Filters"))
	b.WriteString("\n")
	b.WriteString(m.focusMarker(focusUsers))
	b.WriteString(m.viewUserTabs())
	b.WriteString("\n")
	b.WriteString(m.focusMarker(focusSearch))
	b.WriteString(m.viewSearch())
	b.WriteString("\n")
	b.WriteString(m.focusMarker(focusAlbums))
	b.WriteString(m.viewAlbumButtons())
	b.WriteString("\n")
	b.WriteString(m.focusMarker(focusReset))
	b.WriteString(m.withCursor(focusReset, true, outlinedButtonStyle.Render("["+resetButton+"]")))

	return b.String()
}

func (m galleryModel) focusMarker(f focusArea) string {
	if m.focus == f {
		return focusMarkerStyle.Render("▸ ")
	}
	return "  "
}

func (m galleryModel) withCursor(f focusArea, atCursor bool, s string) string {
	if m.focus == f && atCursor {
		return cursorStyle.Render(s)
	}
	return s
}

func (m galleryModel) viewUserTabs() string {
	tabs := make([]string, 0, len(m.users)+1)
	for i := 0; i <= len(m.users); i++ {
		name := m.tabName(i)

		style := tabStyle
		if m.criteria.SelectedUserName == name {
			style = activeTabStyle
		}
		tabs = append(tabs, m.withCursor(focusUsers, i == m.userIdx, style.Render(name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m galleryModel) viewSearch() string {
	out := m.search.View()
	if m.search.Value() != "" {
		out += "  " + helpStyle.Render("[x] esc: clear")
	}
	return out
}

func (m galleryModel) viewAlbumButtons() string {
	buttons := make([]string, 0, len(m.albums)+1)

	allStyle := allButtonStyle
	if len(m.criteria.SelectedAlbumIDs) != 0 {
		allStyle = outlinedButtonStyle
	}
	buttons = append(buttons, m.withCursor(focusAlbums, m.albumIdx == 0, allStyle.Render("All")), " ")

	for i, album := range m.albums {
		style := buttonStyle
		if m.criteria.IsAlbumSelected(album.ID) {
			style = selectedButtonStyle
		}
		buttons = append(buttons, m.withCursor(focusAlbums, m.albumIdx == i+1, style.Render(albumLabel(album.Title))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m galleryModel) titleWidth() int {
	if m.width <= 0 {
		return defaultTitleWidth
	}
	// the rest of the row is taken by fixed-width columns and decorations
	w := m.width - idColumnWidth - albumColumnWidth - userColumnWidth - 24
	return max(w, minTitleWidth)
}

func (m galleryModel) viewTable() string {
	titleWidth := m.titleWidth()

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerCellStyle.Render(strings.Join([]string{
		padCell("ID "+sortIcon, idColumnWidth),
		padCell("Photo name "+sortDownIcon, titleWidth),
		padCell("Album name "+sortUpIcon, albumColumnWidth),
		padCell("User name "+sortIcon, userColumnWidth),
	}, " │ ")))
	b.WriteString("\n")

	for i, photo := range m.visible {
		marker := "  "
		if i == m.row {
			marker = selectedRowMark + " "
		}

		b.WriteString(marker)
		b.WriteString(idCellStyle.Render(padCell(strconv.FormatInt(photo.ID, 10), idColumnWidth)))
		b.WriteString(" │ ")
		b.WriteString(padCell(photo.Title, titleWidth))
		b.WriteString(" │ ")
		b.WriteString(padCell(photo.AlbumTitle(), albumColumnWidth))
		b.WriteString(" │ ")
		b.WriteString(userNameStyle(photo.User).Render(padCell(photo.UserName(), userColumnWidth)))
		b.WriteString(" │ ↓ ↑")
		if i < len(m.visible)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m galleryModel) hotKeys() string {
	switch m.focus {
	case focusSearch:
		return "type to search  esc: clear/leave  enter: to table  tab: next"
	case focusUsers:
		return "←/→: select user  /: search  r: reset  tab: next  v: about  q: quit"
	case focusAlbums:
		return "←/→: choose album  enter: toggle  /: search  r: reset  tab: next  v: about  q: quit"
	case focusReset:
		return "enter: reset all filters  tab: next  v: about  q: quit"
	default:
		return fmt.Sprintf("↑/↓: select  shift+↑/K: move up  shift+↓/J: move down  c: copy URL  /: search  r: reset  tab: next  v: about  q: quit  (%d shown)", len(m.visible))
	}
}
