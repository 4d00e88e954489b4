// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks API request bodies before they reach the
// gallery session.
//
// A Validator validates a whole value or, when field names are passed, only
// those fields. Validation rules live here so transports share them.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
