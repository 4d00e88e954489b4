// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request, before the gallery
// session is involved. Callers can match against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when the JSON body is missing,
	// malformed or carries unknown fields.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidPathParam is returned when an id in the URL path is not a
	// base-10 integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")
)
