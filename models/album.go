package models

// Album groups photos and belongs to a single user.
type Album struct {
	ID int64 `json:"id"`

	// UserID references User.ID. The reference may dangle; consumers
	// treat a missing user as absent rather than as an error.
	UserID int64 `json:"userId"`

	Title string `json:"title"`
}

// TableName returns the name of the database table
// associated with the Album model.
func (a Album) TableName() string {
	return "albums"
}
