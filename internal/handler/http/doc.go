// Package http implements the HTTP transport of the gallery.
//
// It exposes one gallery session as a JSON API: reading the visible photos,
// users, albums and filter criteria, changing the filters and reordering
// photos. Request tracing and access logging are handled by middleware
// before requests reach the session, and every request touching the session
// is handled to completion before the next one starts.
package http
