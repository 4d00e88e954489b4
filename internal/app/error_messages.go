// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level wiring shared by the gallery
// binaries: dataset source selection and the messages written into HTTP
// error responses.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path parameter is not a valid id.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidDirection is returned when a move request names a direction
	// other than "up" or "down".
	MsgInvalidDirection = "invalid direction, expected \"up\" or \"down\""

	// MsgPhotoNotFound is returned when a move request targets a photo id
	// that is not part of the working list.
	MsgPhotoNotFound = "photo not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
