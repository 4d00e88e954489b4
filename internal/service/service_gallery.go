// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/models"
)

// gallerySession holds the state of one gallery view: the source tables,
// the working list built from them and the current filter criteria.
//
// The visible set is cached until the next change of the working list or
// the criteria.
type gallerySession struct {
	users  []models.User
	albums []models.Album

	photos   []models.EnrichedPhoto
	criteria models.FilterCriteria

	visible      []models.EnrichedPhoto
	visibleValid bool

	logger *logger.Logger
}

// NewGallerySession builds the working list from dataset and starts with
// [models.DefaultFilterCriteria].
func NewGallerySession(dataset models.Dataset, logger *logger.Logger) GalleryService {
	s := &gallerySession{
		users:    dataset.Users,
		albums:   dataset.Albums,
		photos:   BuildEnrichedPhotos(dataset.Users, dataset.Albums, dataset.Photos),
		criteria: models.DefaultFilterCriteria(),
		logger:   logger,
	}

	logger.Debug().
		Int("users", len(dataset.Users)).
		Int("albums", len(dataset.Albums)).
		Int("photos", len(s.photos)).
		Msg("gallery session created")

	return s
}

// VisiblePhotos returns the photos that pass the current criteria.
func (s *gallerySession) VisiblePhotos() []models.EnrichedPhoto {
	if !s.visibleValid {
		s.visible = ComputeVisiblePhotos(s.photos, s.criteria)
		s.visibleValid = true
	}
	return slices.Clone(s.visible)
}

// FilterCriteria returns a copy of the current criteria.
func (s *gallerySession) FilterCriteria() models.FilterCriteria {
	return s.criteria.Clone()
}

// Photos returns a copy of the whole working list, in its current order.
func (s *gallerySession) Photos() []models.EnrichedPhoto {
	return slices.Clone(s.photos)
}

func (s *gallerySession) Users() []models.User {
	return slices.Clone(s.users)
}

func (s *gallerySession) Albums() []models.Album {
	return slices.Clone(s.albums)
}

func (s *gallerySession) SetSelectedUser(name string) []models.EnrichedPhoto {
	s.criteria.SelectedUserName = name
	return s.invalidate()
}

func (s *gallerySession) SetSearchQuery(query string) []models.EnrichedPhoto {
	s.criteria.SearchQuery = query
	return s.invalidate()
}

func (s *gallerySession) ToggleAlbum(albumID int64) []models.EnrichedPhoto {
	s.criteria = ToggleAlbumSelection(s.criteria, albumID)
	return s.invalidate()
}

// ClearAlbumSelection drops the album constraint and keeps the user and
// search constraints.
func (s *gallerySession) ClearAlbumSelection() []models.EnrichedPhoto {
	s.criteria.SelectedAlbumIDs = []int64{}
	return s.invalidate()
}

func (s *gallerySession) ResetAllFilters() []models.EnrichedPhoto {
	s.criteria = ResetFilters(s.criteria)
	return s.invalidate()
}

// ReorderPhoto moves a photo within the working list. On error the list
// is left as it was.
func (s *gallerySession) ReorderPhoto(photoID int64, direction models.MoveDirection) ([]models.EnrichedPhoto, error) {
	reordered, err := ReorderPhoto(s.photos, photoID, direction)
	if err != nil {
		return nil, err
	}

	s.photos = reordered
	return s.invalidate(), nil
}

func (s *gallerySession) invalidate() []models.EnrichedPhoto {
	s.visibleValid = false
	return s.VisiblePhotos()
}
