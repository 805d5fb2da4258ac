// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the storage sync tool, the
// external service that copies archive dates from the remote object store
// into the local data directory.
//
// The primary abstraction is [SyncTool], which decouples the service layer
// from the transport. The package ships an HTTP/JSON implementation
// ([NewHTTPSyncTool]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is]. Transport failures (the
// tool is not running, the connection was refused or timed out) always wrap
// [ErrUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/news-radar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_tool_mock.go -package=mock

// SyncTool is the narrow contract of the storage sync tool.
type SyncTool interface {
	// SyncFromRemote pulls the most recent days of archive data from the
	// remote store. A result with Success false is not an error: the tool
	// ran and reported a structured failure in result.Error.
	SyncFromRemote(ctx context.Context, days int) (models.SyncResult, error)

	// StorageStatus describes the local archive, the remote store and the
	// pull settings as seen by the tool.
	StorageStatus(ctx context.Context) (models.StorageStatus, error)

	// ListAvailableDates lists the archive dates present locally and
	// remotely.
	ListAvailableDates(ctx context.Context) (models.AvailableDates, error)
}
