package models

import "slices"

// AllUsers is the user-filter sentinel that disables filtering by user.
const AllUsers = "All"

// FilterCriteria holds the three independent constraints whose conjunction
// decides which photos are visible.
type FilterCriteria struct {
	// SelectedUserName is AllUsers or the exact name of a user.
	SelectedUserName string `json:"selectedUserName"`

	// SearchQuery is matched case-insensitively as a substring of the photo
	// title. An empty query places no constraint.
	SearchQuery string `json:"searchQuery"`

	// SelectedAlbumIDs lists the albums to show, in toggle order. An empty
	// list places no constraint; it never means "show nothing".
	SelectedAlbumIDs []int64 `json:"selectedAlbumIds"`
}

// DefaultFilterCriteria returns the initial criteria: all users, no search
// text and no album restriction.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SelectedUserName: AllUsers,
		SearchQuery:      "",
		SelectedAlbumIDs: []int64{},
	}
}

// Clone returns a copy that shares no memory with c.
func (c FilterCriteria) Clone() FilterCriteria {
	ids := make([]int64, len(c.SelectedAlbumIDs))
	copy(ids, c.SelectedAlbumIDs)
	c.SelectedAlbumIDs = ids
	return c
}

// IsAlbumSelected reports whether albumID is part of the album selection.
func (c FilterCriteria) IsAlbumSelected(albumID int64) bool {
	return slices.Contains(c.SelectedAlbumIDs, albumID)
}
