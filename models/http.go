package models

// SelectUserRequest is the body of PUT /api/filters/user.
type SelectUserRequest struct {
	// Name is a user name or AllUsers.
	Name string `json:"name"`
}

// SearchRequest is the body of PUT /api/filters/search.
type SearchRequest struct {
	// Query may be empty, which clears the search constraint.
	Query string `json:"query"`
}

// MoveRequest is the body of POST /api/photos/{photoID}/move.
type MoveRequest struct {
	// Direction is "up" or "down".
	Direction string `json:"direction"`
}
