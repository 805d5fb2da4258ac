package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/models"
)

type localArchive struct {
	dataDir string
	logger  *logger.Logger
}

// NewLocalArchive constructs an [Archive] over dataDir.
func NewLocalArchive(dataDir string, log *logger.Logger) Archive {
	if log == nil {
		log = logger.Nop()
	}
	return &localArchive{dataDir: dataDir, logger: log}
}

func (a *localArchive) Dates(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(a.dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug().Str("data_dir", a.dataDir).Msg("local archive does not exist")
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingArchive, a.dataDir, err)
	}

	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		date, ok := archiveDate(e.Name())
		if !ok {
			continue
		}
		if !slices.Contains(dates, date) {
			dates = append(dates, date)
		}
	}
	slices.Sort(dates)

	return dates, nil
}

func (a *localArchive) Status(ctx context.Context) (models.LocalStatus, error) {
	status := models.LocalStatus{DataDir: a.dataDir}

	dates, err := a.Dates(ctx)
	if err != nil {
		return status, err
	}

	status.DateCount = len(dates)
	if len(dates) > 0 {
		status.DateRange = &models.DateRange{Start: dates[0], End: dates[len(dates)-1]}
	}
	return status, nil
}

// archiveDate extracts the date from entry names like "2025-12-17" or
// "2025-12-17.db".
func archiveDate(name string) (string, bool) {
	stem, _, _ := strings.Cut(name, ".")
	if _, err := time.Parse(config.DateLayout, stem); err != nil {
		return "", false
	}
	return stem, true
}
