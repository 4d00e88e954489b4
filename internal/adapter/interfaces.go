// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a remote dataset source speaking to a
// JSONPlaceholder-style REST API.
//
// [HTTPDatasetAdapter] implements [store.DatasetRepository], so the service
// layer loads the gallery the same way from a remote API as from a file
// or database. Non-2xx responses are mapped by mapHTTPError to the sentinel
// values in errors.go so callers can use [errors.Is].
package adapter

import "github.com/MKhiriev/go-photo-albums/internal/store"

var _ store.DatasetRepository = (*HTTPDatasetAdapter)(nil)
