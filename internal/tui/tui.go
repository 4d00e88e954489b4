package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/models"
)

// ErrNoGallerySession is returned by New when services carry no gallery.
var ErrNoGallerySession = errors.New("no gallery session")

type TUI struct {
	gallery service.GalleryService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Gallery == nil {
		return nil, ErrNoGallerySession
	}

	appInfo := services.AppInfo
	if appInfo == nil {
		appInfo = service.NewAppInfoService(models.AppBuildInfo{})
	}

	return &TUI{
		gallery: services.Gallery,
		appInfo: appInfo,
		logger:  logger,
	}, nil
}

// Run shows the gallery until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(newGalleryModel(t.gallery), t.appInfo.GetBuildInfo(ctx))

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("tui interrupted by user")
	}
	return nil
}
