// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal gallery application runtime.
//
// It wires the dataset source, the gallery services and the terminal UI
// into a single process lifecycle.
package client
