package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/models"
)

// ─────────────────────────────────────────────
// fixtures
// ─────────────────────────────────────────────

func testDataset() models.Dataset {
	return models.Dataset{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
		},
		Albums: []models.Album{
			{ID: 10, UserID: 1, Title: "Sea 2021"},
			{ID: 20, UserID: 2, Title: "Cats"},
		},
		Photos: []models.Photo{
			{ID: 100, AlbumID: 10, Title: "Sunset.png", URL: "https://img/100"},
			{ID: 101, AlbumID: 10, Title: "Beach.jpg", URL: "https://img/101"},
			{ID: 200, AlbumID: 20, Title: "Sunny cat.jpg", URL: "https://img/200"},
			{ID: 900, AlbumID: 999, Title: "Lost", URL: "https://img/900"},
		},
	}
}

func newTestHandler() *Handler {
	return NewHandler(&service.Services{
		Gallery: service.NewGallerySession(testDataset(), logger.Nop()),
		AppInfo: service.NewAppInfoService(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123")),
	}, logger.Nop())
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func responseIDs(resp models.PhotosResponse) []int64 {
	ids := make([]int64, len(resp.Photos))
	for i, p := range resp.Photos {
		ids[i] = p.ID
	}
	return ids
}
