package service

import "github.com/MKhiriev/go-photo-albums/models"

// ToggleAlbumSelection removes albumID from the selection when present and
// appends it otherwise. The remaining ids keep their order. criteria is not
// modified.
func ToggleAlbumSelection(criteria models.FilterCriteria, albumID int64) models.FilterCriteria {
	next := criteria.Clone()

	ids := make([]int64, 0, len(criteria.SelectedAlbumIDs)+1)
	removed := false
	for _, id := range criteria.SelectedAlbumIDs {
		if id == albumID {
			removed = true
			continue
		}
		ids = append(ids, id)
	}
	if !removed {
		ids = append(ids, albumID)
	}

	next.SelectedAlbumIDs = ids
	return next
}

// ResetFilters returns models.DefaultFilterCriteria whatever criteria holds.
func ResetFilters(criteria models.FilterCriteria) models.FilterCriteria {
	return models.DefaultFilterCriteria()
}
