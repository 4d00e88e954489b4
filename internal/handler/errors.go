// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address, so no transport would be served.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoGallerySession is returned by NewHandlers when services carry no
	// gallery session to expose.
	errNoGallerySession = errors.New("no gallery session to serve")
)
