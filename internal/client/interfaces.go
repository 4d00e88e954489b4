// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable terminal gallery. Run blocks until the user quits;
// Close releases the dataset source.
type Client interface {
	Run() error
	Close()
}

var _ Client = (*App)(nil)
