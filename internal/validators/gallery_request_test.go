// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-albums/models"
)

func TestNewGalleryRequestValidator(t *testing.T) {
	require.NotNil(t, NewGalleryRequestValidator())
}

func TestGalleryRequestValidator_Validate(t *testing.T) {
	v := NewGalleryRequestValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "user name", obj: models.SelectUserRequest{Name: "Roma"}},
		{name: "All is a user name", obj: &models.SelectUserRequest{Name: models.AllUsers}},
		{name: "empty user name", obj: models.SelectUserRequest{}, wantErr: ErrEmptyUserName},
		{name: "long user name", obj: models.SelectUserRequest{Name: strings.Repeat("я", MaxUserNameLength+1)}, wantErr: ErrUserNameTooLong},
		{name: "user name at the limit", obj: models.SelectUserRequest{Name: strings.Repeat("я", MaxUserNameLength)}},

		{name: "empty query", obj: models.SearchRequest{}},
		{name: "query", obj: &models.SearchRequest{Query: " sun "}},
		{name: "long query", obj: models.SearchRequest{Query: strings.Repeat("a", MaxSearchQueryLength+1)}, wantErr: ErrSearchQueryTooLong},

		{name: "up", obj: models.MoveRequest{Direction: "up"}},
		{name: "Down with spaces", obj: &models.MoveRequest{Direction: " Down "}},
		{name: "sideways", obj: models.MoveRequest{Direction: "sideways"}, wantErr: ErrInvalidDirection},
		{name: "missing direction", obj: models.MoveRequest{}, wantErr: ErrInvalidDirection},

		{name: "unknown field", obj: models.MoveRequest{Direction: "up"}, fields: []string{"steps"}, wantErr: ErrUnknownField},
		{name: "explicit field", obj: models.SearchRequest{}, fields: []string{FieldQuery}},
		{name: "unsupported type", obj: models.Photo{}, wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
