package models

// Sex is the single-letter marker the source data uses for a user's sex.
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User is an album owner as supplied by the source dataset.
// Users are immutable once loaded and are shared by reference between
// every enriched photo that resolves to them.
type User struct {
	// ID is the unique identifier of the user within the dataset.
	ID int64 `json:"id"`

	// Name is the display name. The user filter matches on it, so two
	// users sharing a name cannot be told apart by that filter.
	Name string `json:"name"`

	// Sex is "m" or "f". Any other value is rendered without colouring.
	Sex Sex `json:"sex"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
