package service

import (
	"context"

	"github.com/MKhiriev/news-radar/models"
)

// PullService drives the storage sync tool on behalf of the CLI.
type PullService interface {
	// Pull asks the sync tool to pull the most recent days of archive data.
	// A run the tool reports as unsuccessful returns the result together
	// with an error wrapping ErrSyncFailed.
	Pull(ctx context.Context, days int) (models.SyncResult, error)

	// Status reports the storage status, falling back to a basic local
	// status when the sync tool cannot be reached.
	Status(ctx context.Context) (models.StorageStatus, error)

	// ListDates lists archive dates known locally and remotely. A listing
	// the tool reports as unsuccessful returns an error wrapping
	// ErrListDatesFailed.
	ListDates(ctx context.Context) (models.AvailableDates, error)
}

// PullServiceWrapper defines middleware composition for PullService.
// Implementations wrap an existing PullService to add behavior such as
// validation.
type PullServiceWrapper interface {
	Wrap(PullService) PullService
}
