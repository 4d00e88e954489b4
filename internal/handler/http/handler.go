package http

import (
	"sync"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/internal/validators"
)

type Handler struct {
	gallery service.GalleryService
	appInfo service.AppInfoService

	validator validators.Validator

	// mu serializes access to gallery.
	mu sync.Mutex

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gallery:   services.Gallery,
		appInfo:   services.AppInfo,
		validator: validators.NewGalleryRequestValidator(),
		logger:    logger,
	}
}
