// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-photo-albums/models"

// BuildEnrichedPhotos joins every photo with its album and the album's
// user. A photo whose album is missing gets neither album nor user; an
// album whose user is missing yields a photo with an album and no user.
// When ids repeat, the first record with a given id wins.
//
// The result has one entry per photo in input order. Album and User point
// into the albums and users slices, which must not be modified afterwards.
func BuildEnrichedPhotos(users []models.User, albums []models.Album, photos []models.Photo) []models.EnrichedPhoto {
	usersByID := make(map[int64]*models.User, len(users))
	for i := range users {
		if _, ok := usersByID[users[i].ID]; !ok {
			usersByID[users[i].ID] = &users[i]
		}
	}

	albumsByID := make(map[int64]*models.Album, len(albums))
	for i := range albums {
		if _, ok := albumsByID[albums[i].ID]; !ok {
			albumsByID[albums[i].ID] = &albums[i]
		}
	}

	enriched := make([]models.EnrichedPhoto, len(photos))
	for i, photo := range photos {
		enriched[i].Photo = photo

		album, ok := albumsByID[photo.AlbumID]
		if !ok {
			continue
		}
		enriched[i].Album = album
		enriched[i].User = usersByID[album.UserID]
	}

	return enriched
}
