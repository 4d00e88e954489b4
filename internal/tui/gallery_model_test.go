package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testDataset() models.Dataset {
	return models.Dataset{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
		},
		Albums: []models.Album{
			{ID: 10, UserID: 1, Title: "Sea 2021"},
			{ID: 20, UserID: 2, Title: "Cats and dogs"},
		},
		Photos: []models.Photo{
			{ID: 100, AlbumID: 10, Title: "Sunset.png", URL: "https://img/100"},
			{ID: 101, AlbumID: 10, Title: "Beach.jpg", URL: "https://img/101"},
			{ID: 200, AlbumID: 20, Title: "Sunny cat.jpg", URL: "https://img/200"},
			{ID: 900, AlbumID: 999, Title: "Lost", URL: "https://img/900"},
		},
	}
}

func newTestModel(t *testing.T) galleryModel {
	t.Helper()
	return newGalleryModel(service.NewGallerySession(testDataset(), logger.Nop()))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m galleryModel, msgs ...tea.Msg) galleryModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(galleryModel)
		require.True(t, ok)
	}
	return m
}

func visibleIDs(m galleryModel) []int64 {
	ids := make([]int64, len(m.visible))
	for i, p := range m.visible {
		ids[i] = p.ID
	}
	return ids
}

func focusOn(t *testing.T, m galleryModel, f focusArea) galleryModel {
	t.Helper()
	for m.focus != f {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

// ─────────────────────────────────────────────
// initial state and view
// ─────────────────────────────────────────────

func TestGalleryModel_InitialView(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, focusTable, m.focus)
	assert.Equal(t, []int64{100, 101, 200, 900}, visibleIDs(m))

	view := m.View()
	for _, want := range []string{
		pageTitle, "Filters", "All", "Roma", "Anna", "Sea", "Cats", resetButton,
		"ID " + sortIcon, "Photo name " + sortDownIcon, "Album name " + sortUpIcon, "User name " + sortIcon,
		"Sunset.png", "Sea 2021", "Lost",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, noMatchingPhoto)
}

func TestGalleryModel_EmptyMessage(t *testing.T) {
	m := press(t, newTestModel(t), runes("/"), runes("zzz"))

	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), noMatchingPhoto)
}

// ─────────────────────────────────────────────
// filters
// ─────────────────────────────────────────────

func TestGalleryModel_Search(t *testing.T) {
	m := press(t, newTestModel(t), runes("/"))
	require.Equal(t, focusSearch, m.focus)

	m = press(t, m, runes("S"), runes("u"), runes("n"))
	assert.Equal(t, "Sun", m.criteria.SearchQuery)
	assert.Equal(t, []int64{100, 200}, visibleIDs(m))
	assert.Contains(t, m.View(), "esc: clear")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Su", m.criteria.SearchQuery)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.criteria.SearchQuery)
	assert.Len(t, m.visible, 4)
	assert.Equal(t, focusSearch, m.focus)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusTable, m.focus)
}

func TestGalleryModel_SearchCapturesShortcuts(t *testing.T) {
	m := press(t, newTestModel(t), runes("/"), runes("q"), runes("r"))

	assert.Equal(t, "qr", m.criteria.SearchQuery)
}

func TestGalleryModel_UserTabs(t *testing.T) {
	m := focusOn(t, newTestModel(t), focusUsers)

	m = press(t, m, runes("l"))
	assert.Equal(t, "Roma", m.criteria.SelectedUserName)
	assert.Equal(t, []int64{100, 101}, visibleIDs(m))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Anna", m.criteria.SelectedUserName)
	assert.Equal(t, []int64{200}, visibleIDs(m))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Anna", m.criteria.SelectedUserName)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.AllUsers, m.criteria.SelectedUserName)
	assert.Len(t, m.visible, 4)
}

func TestGalleryModel_AlbumButtons(t *testing.T) {
	m := focusOn(t, newTestModel(t), focusAlbums)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int64{10}, m.criteria.SelectedAlbumIDs)
	assert.Equal(t, []int64{100, 101}, visibleIDs(m))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes(" "))
	assert.Equal(t, []int64{10, 20}, m.criteria.SelectedAlbumIDs)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int64{10}, m.criteria.SelectedAlbumIDs)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.criteria.SelectedAlbumIDs)
	assert.Len(t, m.visible, 4)
}

func TestGalleryModel_Reset(t *testing.T) {
	m := focusOn(t, newTestModel(t), focusUsers)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, runes("/"), runes("b"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []int64{101}, visibleIDs(m))

	m = press(t, m, runes("r"))

	assert.Equal(t, models.DefaultFilterCriteria(), m.criteria)
	assert.Equal(t, "", m.search.Value())
	assert.Equal(t, 0, m.userIdx)
	assert.Len(t, m.visible, 4)
}

func TestGalleryModel_ResetButton(t *testing.T) {
	m := press(t, newTestModel(t), runes("/"), runes("cat"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.visible, 1)

	m = focusOn(t, m, focusReset)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, m.visible, 4)
}

// ─────────────────────────────────────────────
// table
// ─────────────────────────────────────────────

func TestGalleryModel_Reorder(t *testing.T) {
	m := press(t, newTestModel(t), runes("j"), runes("j"))
	require.Equal(t, 2, m.row)

	m = press(t, m, runes("K"))
	assert.Equal(t, []int64{100, 200, 101, 900}, visibleIDs(m))
	assert.Equal(t, 1, m.row)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftUp}, tea.KeyMsg{Type: tea.KeyShiftUp})
	assert.Equal(t, []int64{200, 100, 101, 900}, visibleIDs(m))
	assert.Equal(t, 0, m.row)

	m = press(t, m, runes("J"))
	assert.Equal(t, []int64{100, 200, 101, 900}, visibleIDs(m))
	assert.Empty(t, m.errMsg)
}

func TestGalleryModel_ReorderAcrossHiddenPhoto(t *testing.T) {
	m := press(t, newTestModel(t), runes("/"), runes("sun"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []int64{100, 200}, visibleIDs(m))

	m = press(t, m, runes("j"), runes("K"))

	assert.Equal(t, []int64{100, 200}, visibleIDs(m))
	assert.Equal(t, 1, m.row)
	assert.Equal(t, []int64{100, 200, 101, 900}, photoIDs(m.gallery.Photos()))
}

func TestGalleryModel_RowCursorIsClamped(t *testing.T) {
	m := press(t, newTestModel(t), runes("k"))
	assert.Equal(t, 0, m.row)

	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 3, m.row)

	m = press(t, m, runes("/"), runes("Sunset"))
	assert.Equal(t, 0, m.row)
}

func TestGalleryModel_CopyURL(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m := press(t, newTestModel(t), runes("j"))
	updated, cmd := m.Update(runes("c"))
	m = updated.(galleryModel)

	assert.Equal(t, "https://img/101", copied)
	assert.Contains(t, m.status, "101")
	require.NotNil(t, cmd)

	m = press(t, m, clearStatusMsg{seq: m.statusSeq - 1})
	assert.NotEmpty(t, m.status)
	m = press(t, m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestGalleryModel_CopyURLFails(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m := press(t, newTestModel(t), runes("c"))

	assert.Contains(t, m.errMsg, "no clipboard")
	assert.Contains(t, m.View(), "no clipboard")
}

func TestGalleryModel_Quit(t *testing.T) {
	_, cmd := newTestModel(t).Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func photoIDs(photos []models.EnrichedPhoto) []int64 {
	ids := make([]int64, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}
