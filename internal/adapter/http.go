package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/utils"
	"github.com/MKhiriev/go-photo-albums/models"
)

const (
	usersPath  = "/users"
	albumsPath = "/albums"
	photosPath = "/photos"
)

// HTTPDatasetAdapter reads users, albums and photos from a remote REST API.
// Fields the API returns beyond the gallery model are ignored.
type HTTPDatasetAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDatasetAdapter constructs an [HTTPDatasetAdapter] for
// cfg.RemoteAddress. A scheme-less address is treated as http.
// cfg.RequestTimeout bounds every request.
//
// Returns [ErrInvalidAddress] if the address is empty or cannot be parsed.
func NewHTTPDatasetAdapter(cfg config.Source, logger *logger.Logger) (*HTTPDatasetAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &HTTPDatasetAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUsers implements [store.DatasetRepository] via GET /users.
func (h *HTTPDatasetAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	return getJSON[models.User](ctx, h, usersPath)
}

// GetAlbums implements [store.DatasetRepository] via GET /albums.
func (h *HTTPDatasetAdapter) GetAlbums(ctx context.Context) ([]models.Album, error) {
	return getJSON[models.Album](ctx, h, albumsPath)
}

// GetPhotos implements [store.DatasetRepository] via GET /photos.
func (h *HTTPDatasetAdapter) GetPhotos(ctx context.Context) ([]models.Photo, error) {
	return getJSON[models.Photo](ctx, h, photosPath)
}

func getJSON[T any](ctx context.Context, h *HTTPDatasetAdapter, path string) ([]T, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPDatasetAdapter.getJSON").Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp, path); err != nil {
		h.logger.Err(err).Str("func", "HTTPDatasetAdapter.getJSON").Str("path", path).Int("status", resp.StatusCode()).Msg("unexpected response")
		return nil, err
	}

	items := make([]T, 0)
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingResponse, path, err)
	}

	h.logger.Debug().Str("path", path).Int("records", len(items)).Dur("took", resp.Time()).Msg("remote dataset table fetched")
	return items, nil
}
