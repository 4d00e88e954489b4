package models

// Photo is a base photo record from the source dataset.
type Photo struct {
	ID int64 `json:"id"`

	// AlbumID references Album.ID and may dangle.
	AlbumID int64 `json:"albumId"`

	Title string `json:"title"`
	URL   string `json:"url"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

// EnrichedPhoto is a Photo together with its resolved album and user.
//
// Album and User point at shared, immutable source records and are nil when
// the corresponding foreign key does not resolve. User is nil whenever Album
// is nil.
type EnrichedPhoto struct {
	Photo

	Album *Album `json:"album,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// AlbumTitle returns the resolved album title or an empty string.
func (p EnrichedPhoto) AlbumTitle() string {
	if p.Album == nil {
		return ""
	}
	return p.Album.Title
}

// UserName returns the resolved user name or an empty string.
func (p EnrichedPhoto) UserName() string {
	if p.User == nil {
		return ""
	}
	return p.User.Name
}
