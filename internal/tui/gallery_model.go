package tui

import (
	"fmt"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/internal/validators"
	"github.com/MKhiriev/go-photo-albums/models"
)

type focusArea int

const (
	focusUsers focusArea = iota
	focusSearch
	focusAlbums
	focusReset
	focusTable

	focusAreaCount
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// galleryModel renders one gallery session: the filter panel and the
// photo table. All state changes go through the session; the model only
// keeps what it last received from it plus cursor positions.
type galleryModel struct {
	gallery service.GalleryService

	users    []models.User
	albums   []models.Album
	visible  []models.EnrichedPhoto
	criteria models.FilterCriteria

	focus    focusArea
	userIdx  int // 0 is the "All" tab
	albumIdx int // 0 is the "All" button
	row      int

	search textinput.Model

	status    string
	statusSeq int
	errMsg    string

	width int
}

func newGalleryModel(gallery service.GalleryService) galleryModel {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "Search: "
	search.CharLimit = validators.MaxSearchQueryLength

	m := galleryModel{
		gallery: gallery,
		users:   gallery.Users(),
		albums:  gallery.Albums(),
		focus:   focusTable,
		search:  search,
	}
	m.refresh(gallery.VisiblePhotos())
	return m
}

func (m galleryModel) Init() tea.Cmd {
	return nil
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m galleryModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % focusAreaCount)
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
	}

	if m.focus == focusSearch {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.search):
		return m.setFocus(focusSearch)
	case key.Matches(msg, keys.reset):
		m.resetAll()
		return m, nil
	}

	m.errMsg = ""

	switch m.focus {
	case focusUsers:
		m.updateUsers(msg)
	case focusAlbums:
		m.updateAlbums(msg)
	case focusReset:
		if key.Matches(msg, keys.enter) {
			m.resetAll()
		}
	case focusTable:
		return m.updateTable(msg)
	}
	return m, nil
}

func (m galleryModel) setFocus(f focusArea) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == focusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

func (m galleryModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh(m.gallery.SetSearchQuery(""))
			return m, nil
		}
		return m.setFocus(focusTable)
	case msg.Type == tea.KeyEnter:
		return m.setFocus(focusTable)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.refresh(m.gallery.SetSearchQuery(value))
	}
	return m, cmd
}

func (m *galleryModel) updateUsers(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.left):
		if m.userIdx > 0 {
			m.userIdx--
		}
	case key.Matches(msg, keys.right):
		if m.userIdx < len(m.users) {
			m.userIdx++
		}
	default:
		return
	}
	m.refresh(m.gallery.SetSelectedUser(m.tabName(m.userIdx)))
}

func (m *galleryModel) updateAlbums(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.left):
		if m.albumIdx > 0 {
			m.albumIdx--
		}
	case key.Matches(msg, keys.right):
		if m.albumIdx < len(m.albums) {
			m.albumIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.albumIdx == 0 {
			m.refresh(m.gallery.ClearAlbumSelection())
			return
		}
		m.refresh(m.gallery.ToggleAlbum(m.albums[m.albumIdx-1].ID))
	}
}

func (m galleryModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.moveUp):
		m.reorder(models.MoveUp)
	case key.Matches(msg, keys.moveDown):
		m.reorder(models.MoveDown)
	case key.Matches(msg, keys.up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, keys.down):
		if m.row < len(m.visible)-1 {
			m.row++
		}
	case key.Matches(msg, keys.copy):
		return m.copySelectedURL()
	}
	return m, nil
}

func (m *galleryModel) reorder(direction models.MoveDirection) {
	photo, ok := m.selected()
	if !ok {
		return
	}

	visible, err := m.gallery.ReorderPhoto(photo.ID, direction)
	if err != nil {
		m.errMsg = fmt.Sprintf("Cannot move photo %d: %v", photo.ID, err)
		return
	}

	m.refresh(visible)
	if idx := slices.IndexFunc(m.visible, func(p models.EnrichedPhoto) bool { return p.ID == photo.ID }); idx >= 0 {
		m.row = idx
	}
}

func (m galleryModel) copySelectedURL() (tea.Model, tea.Cmd) {
	photo, ok := m.selected()
	if !ok {
		return m, nil
	}

	if err := copyToClipboard(photo.URL); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}

	m.statusSeq++
	m.status = fmt.Sprintf("Copied URL of photo %d", photo.ID)
	return m, clearStatusAfter(m.statusSeq)
}

func (m *galleryModel) resetAll() {
	m.search.SetValue("")
	m.userIdx = 0
	m.albumIdx = 0
	m.errMsg = ""
	m.refresh(m.gallery.ResetAllFilters())
}

// refresh stores a visible set returned by the session together with the
// criteria it was computed from.
func (m *galleryModel) refresh(visible []models.EnrichedPhoto) {
	m.visible = visible
	m.criteria = m.gallery.FilterCriteria()

	if m.row >= len(m.visible) {
		m.row = len(m.visible) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m galleryModel) selected() (models.EnrichedPhoto, bool) {
	if len(m.visible) == 0 || m.row < 0 || m.row >= len(m.visible) {
		return models.EnrichedPhoto{}, false
	}
	return m.visible[m.row], true
}

// tabName is the user filter value behind tab i.
func (m galleryModel) tabName(i int) string {
	if i == 0 {
		return models.AllUsers
	}
	return m.users[i-1].Name
}
