// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dataset is the set of source tables loaded once at startup.
// The tables are treated as immutable after loading.
type Dataset struct {
	Users  []User  `json:"users"`
	Albums []Album `json:"albums"`
	Photos []Photo `json:"photos"`
}

// IsEmpty reports whether the dataset carries no records at all.
func (d Dataset) IsEmpty() bool {
	return len(d.Users) == 0 && len(d.Albums) == 0 && len(d.Photos) == 0
}
