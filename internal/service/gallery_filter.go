package service

import (
	"strings"

	"github.com/MKhiriev/go-photo-albums/models"
)

// ComputeVisiblePhotos returns, in their original order, the photos that
// satisfy all three constraints of criteria:
//   - the user name equals SelectedUserName, unless it is models.AllUsers;
//   - the title contains SearchQuery, ignoring case;
//   - the album is among SelectedAlbumIDs, unless that list is empty.
//
// A photo without a resolved user never matches a specific user name.
func ComputeVisiblePhotos(photos []models.EnrichedPhoto, criteria models.FilterCriteria) []models.EnrichedPhoto {
	query := strings.ToLower(criteria.SearchQuery)

	var albums map[int64]struct{}
	if len(criteria.SelectedAlbumIDs) > 0 {
		albums = make(map[int64]struct{}, len(criteria.SelectedAlbumIDs))
		for _, id := range criteria.SelectedAlbumIDs {
			albums[id] = struct{}{}
		}
	}

	visible := make([]models.EnrichedPhoto, 0, len(photos))
	for _, photo := range photos {
		if !matchesUser(photo, criteria.SelectedUserName) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(photo.Title), query) {
			continue
		}
		if albums != nil {
			if _, ok := albums[photo.AlbumID]; !ok {
				continue
			}
		}
		visible = append(visible, photo)
	}

	return visible
}

func matchesUser(photo models.EnrichedPhoto, name string) bool {
	if name == models.AllUsers {
		return true
	}
	return photo.User != nil && photo.User.Name == name
}
