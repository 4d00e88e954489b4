package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-photo-albums/models"
)

// ReorderPhoto swaps the photo identified by photoID with its neighbour in
// direction and returns the new list. Moving the first photo up or the
// last photo down returns an unchanged copy. The input slice is never
// modified.
//
// The whole working list is reordered, so a photo hidden by the current
// filters still moves relative to its hidden neighbours.
func ReorderPhoto(photos []models.EnrichedPhoto, photoID int64, direction models.MoveDirection) ([]models.EnrichedPhoto, error) {
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	i := slices.IndexFunc(photos, func(p models.EnrichedPhoto) bool { return p.ID == photoID })
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", ErrPhotoNotFound, photoID)
	}

	reordered := slices.Clone(photos)

	switch direction {
	case models.MoveUp:
		if i > 0 {
			reordered[i], reordered[i-1] = reordered[i-1], reordered[i]
		}
	case models.MoveDown:
		if i < len(reordered)-1 {
			reordered[i], reordered[i+1] = reordered[i+1], reordered[i]
		}
	}

	return reordered, nil
}
