package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// photos
	router.Get("/api/photos", h.getVisiblePhotos)
	router.Get("/api/photos/all", h.getAllPhotos)
	router.Post("/api/photos/{photoID}/move", h.movePhoto)

	// dataset
	router.Get("/api/users", h.getUsers)
	router.Get("/api/albums", h.getAlbums)

	// filters
	router.Get("/api/filters", h.getFilters)
	router.Delete("/api/filters", h.resetFilters)
	router.Put("/api/filters/user", h.selectUser)
	router.Put("/api/filters/search", h.setSearchQuery)
	router.Post("/api/filters/albums/{albumID}", h.toggleAlbum)
	router.Delete("/api/filters/albums", h.clearAlbums)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
