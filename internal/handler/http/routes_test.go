package http

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-albums/internal/app"
	"github.com/MKhiriev/go-photo-albums/internal/validators"
	"github.com/MKhiriev/go-photo-albums/models"
)

// ─────────────────────────────────────────────
// read endpoints
// ─────────────────────────────────────────────

func TestGetVisiblePhotos(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodGet, "/api/photos", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeBody[models.PhotosResponse](t, rr)
	assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, models.DefaultFilterCriteria(), resp.Criteria)

	require.NotNil(t, resp.Photos[0].Album)
	require.NotNil(t, resp.Photos[0].User)
	assert.Equal(t, "Sea 2021", resp.Photos[0].Album.Title)
	assert.Equal(t, "Roma", resp.Photos[0].User.Name)
	assert.Nil(t, resp.Photos[3].Album)
	assert.Nil(t, resp.Photos[3].User)
}

func TestGetAllPhotos_IgnoresFilters(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodPut, "/api/filters/user", `{"name":"Anna"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/photos/all", "")
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[models.PhotosResponse](t, rr)
	assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(resp))
	assert.Equal(t, "Anna", resp.Criteria.SelectedUserName)
}

func TestGetUsersAndAlbums(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testDataset().Users, decodeBody[[]models.User](t, rr))

	rr = doRequest(t, router, http.MethodGet, "/api/albums", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testDataset().Albums, decodeBody[[]models.Album](t, rr))
}

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.BuildInfoResponse{Version: "v1.2.3", Date: "2026-10-01", Commit: "abc123"},
		decodeBody[models.BuildInfoResponse](t, rr))
}

// ─────────────────────────────────────────────
// filters
// ─────────────────────────────────────────────

func TestFilters_Flow(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodPut, "/api/filters/user", `{"name":"Roma"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100, 101}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))

	rr = doRequest(t, router, http.MethodPut, "/api/filters/search", `{"query":"SUN"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))

	rr = doRequest(t, router, http.MethodPost, "/api/filters/albums/20", "")
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.PhotosResponse](t, rr)
	assert.Empty(t, resp.Photos)
	assert.NotNil(t, resp.Photos)
	assert.Equal(t, []int64{20}, resp.Criteria.SelectedAlbumIDs)

	rr = doRequest(t, router, http.MethodDelete, "/api/filters/albums", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))

	rr = doRequest(t, router, http.MethodGet, "/api/filters", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.FilterCriteria{SelectedUserName: "Roma", SearchQuery: "SUN", SelectedAlbumIDs: []int64{}},
		decodeBody[models.FilterCriteria](t, rr))

	rr = doRequest(t, router, http.MethodDelete, "/api/filters", "")
	require.Equal(t, http.StatusOK, rr.Code)
	resp = decodeBody[models.PhotosResponse](t, rr)
	assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(resp))
	assert.Equal(t, models.DefaultFilterCriteria(), resp.Criteria)
}

func TestToggleAlbum_TwiceRestores(t *testing.T) {
	router := newTestHandler().Init()

	doRequest(t, router, http.MethodPost, "/api/filters/albums/10", "")
	rr := doRequest(t, router, http.MethodPost, "/api/filters/albums/10", "")

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.PhotosResponse](t, rr)
	assert.Empty(t, resp.Criteria.SelectedAlbumIDs)
	assert.Equal(t, 4, resp.Total)
}

func TestSearch_EmptyQueryClears(t *testing.T) {
	router := newTestHandler().Init()

	doRequest(t, router, http.MethodPut, "/api/filters/search", `{"query":"cat"}`)
	rr := doRequest(t, router, http.MethodPut, "/api/filters/search", `{"query":""}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 4, decodeBody[models.PhotosResponse](t, rr).Total)
}

// ─────────────────────────────────────────────
// reorder
// ─────────────────────────────────────────────

func TestMovePhoto(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodPost, "/api/photos/200/move", `{"direction":"up"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100, 200, 101, 900}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))

	rr = doRequest(t, router, http.MethodPost, "/api/photos/200/move", `{"direction":"Down"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))

	rr = doRequest(t, router, http.MethodPost, "/api/photos/100/move", `{"direction":"up"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))
}

func TestMovePhoto_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown photo",
			path:       "/api/photos/404/move",
			body:       `{"direction":"up"}`,
			wantStatus: http.StatusNotFound,
			wantError:  app.MsgPhotoNotFound,
		},
		{
			name:       "unknown direction",
			path:       "/api/photos/100/move",
			body:       `{"direction":"left"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDirection,
		},
		{
			name:       "id is not a number",
			path:       "/api/photos/abc/move",
			body:       `{"direction":"up"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "empty body",
			path:       "/api/photos/100/move",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "unknown field",
			path:       "/api/photos/100/move",
			body:       `{"direction":"up","steps":2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler().Init()

			rr := doRequest(t, router, http.MethodPost, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeBody[models.ErrorResponse](t, rr)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, rr.Header().Get(traceIDHeader), resp.TraceID)

			rr = doRequest(t, router, http.MethodGet, "/api/photos/all", "")
			assert.Equal(t, []int64{100, 101, 200, 900}, responseIDs(decodeBody[models.PhotosResponse](t, rr)))
		})
	}
}

func TestBadRequests(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodPut, "/api/filters/user", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodPut, "/api/filters/search", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/api/filters/albums/ten", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodPut, "/api/filters/user", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeBody[models.ErrorResponse](t, rr).Error)

	long := strings.Repeat("x", validators.MaxSearchQueryLength+1)
	rr = doRequest(t, router, http.MethodPut, "/api/filters/search", `{"query":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/filters", "")
	criteria := decodeBody[models.FilterCriteria](t, rr)
	assert.Equal(t, models.DefaultFilterCriteria(), criteria)
}

// ─────────────────────────────────────────────
// routing
// ─────────────────────────────────────────────

func TestInit_UnregisteredMethodIsNotFound(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/photos"},
		{http.MethodDelete, "/api/users"},
		{http.MethodPut, "/api/filters"},
		{http.MethodGet, "/api/filters/user"},
		{http.MethodGet, "/api/photos/100/move"},
		{http.MethodGet, "/api/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestHandler().Init()

	rr := doRequest(t, router, http.MethodGet, "/api/filters", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_ConcurrentRequestsAreSerialized(t *testing.T) {
	router := newTestHandler().Init()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doRequest(t, router, http.MethodPost, "/api/filters/albums/10", "")
			doRequest(t, router, http.MethodGet, "/api/photos", "")
		}()
	}
	wg.Wait()

	rr := doRequest(t, router, http.MethodGet, "/api/filters", "")
	assert.Empty(t, decodeBody[models.FilterCriteria](t, rr).SelectedAlbumIDs)
}
