package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-albums/models"
)

// RootModel wraps the gallery page:
// 1) handles the global Ctrl+C quit
// 2) shows the build info overlay
// 3) delegates all other messages to the page
type RootModel struct {
	page      galleryModel
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(page galleryModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		page:      page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.page.focus != focusSearch {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	updated, cmd := r.page.Update(msg)
	if page, ok := updated.(galleryModel); ok {
		r.page = page
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.page.View()
}
