package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserName      = errors.New("user name is required")
	ErrUserNameTooLong    = errors.New("user name is too long")
	ErrSearchQueryTooLong = errors.New("search query is too long")
	ErrInvalidDirection   = errors.New("direction must be \"up\" or \"down\"")
)
