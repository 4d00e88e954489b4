package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-photo-albums/models"
)

// Field names accepted by GalleryRequestValidator.
const (
	FieldName      = "name"
	FieldQuery     = "query"
	FieldDirection = "direction"
)

const (
	// MaxUserNameLength bounds SelectUserRequest.Name, in runes.
	MaxUserNameLength = 128
	// MaxSearchQueryLength bounds SearchRequest.Query, in runes.
	MaxSearchQueryLength = 256
)

// GalleryRequestValidator validates the request bodies of the gallery API:
// SelectUserRequest, SearchRequest and MoveRequest, by value or pointer.
type GalleryRequestValidator struct{}

func NewGalleryRequestValidator() Validator {
	return &GalleryRequestValidator{}
}

func (v *GalleryRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SelectUserRequest:
		return v.validateSelectUser(value, fields...)
	case *models.SelectUserRequest:
		return v.validateSelectUser(*value, fields...)

	case models.SearchRequest:
		return v.validateSearch(value, fields...)
	case *models.SearchRequest:
		return v.validateSearch(*value, fields...)

	case models.MoveRequest:
		return v.validateMove(value, fields...)
	case *models.MoveRequest:
		return v.validateMove(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GalleryRequestValidator) validateSelectUser(request models.SelectUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				return ErrEmptyUserName
			}
			if utf8.RuneCountInString(request.Name) > MaxUserNameLength {
				return ErrUserNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSearch accepts an empty query, which clears the search.
func (v *GalleryRequestValidator) validateSearch(request models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if utf8.RuneCountInString(request.Query) > MaxSearchQueryLength {
				return ErrSearchQueryTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GalleryRequestValidator) validateMove(request models.MoveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirection}
	}

	for _, f := range fields {
		switch f {
		case FieldDirection:
			if _, err := models.ParseMoveDirection(request.Direction); err != nil {
				return ErrInvalidDirection
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
