// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store reads the local news archive.
//
// The archive is a data directory (storage.local.data_dir) holding one entry
// per day, named YYYY-MM-DD: either a directory or a file such as
// 2025-12-17.db. The sync tool owns writes to it; this package only lists
// what is there so the CLI can report a basic status when the tool is not
// reachable.
package store

import (
	"context"

	"github.com/MKhiriev/news-radar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/archive_mock.go -package=mock

// Archive lists the archive dates present in local storage.
type Archive interface {
	// Dates returns the distinct archive dates in ascending order. A missing
	// data directory yields an empty list, not an error.
	Dates(ctx context.Context) ([]string, error)

	// Status summarizes Dates as a [models.LocalStatus].
	Status(ctx context.Context) (models.LocalStatus, error)
}
