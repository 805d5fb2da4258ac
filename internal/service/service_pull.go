package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/news-radar/internal/adapter"
	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/store"
	"github.com/MKhiriev/news-radar/models"
)

type pullService struct {
	tool     adapter.SyncTool
	archive  store.Archive
	settings config.Settings

	logger *logger.Logger
}

func NewPullService(tool adapter.SyncTool, archive store.Archive, settings config.Settings, log *logger.Logger) PullService {
	if log == nil {
		log = logger.Nop()
	}

	return &pullService{
		tool:     tool,
		archive:  archive,
		settings: settings,
		logger:   log,
	}
}

func (s *pullService) Pull(ctx context.Context, days int) (models.SyncResult, error) {
	if days < 1 {
		return models.SyncResult{}, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	s.logger.Info().Int("days", days).Msg("pulling from remote storage")

	result, err := s.tool.SyncFromRemote(ctx, days)
	if err != nil {
		return result, fmt.Errorf("sync from remote: %w", err)
	}

	if !result.Success {
		msg := "unknown error"
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		s.logger.Error().Str("message", msg).Msg("sync tool reported a failed pull")
		return result, fmt.Errorf("%w: %s", ErrSyncFailed, msg)
	}

	s.logger.Info().
		Int("synced_files", result.SyncedFiles).
		Int("synced_dates", len(result.SyncedDates)).
		Int("skipped_dates", len(result.SkippedDates)).
		Int("failed_dates", len(result.FailedDates)).
		Msg("pull finished")

	return result, nil
}

func (s *pullService) Status(ctx context.Context) (models.StorageStatus, error) {
	status, err := s.tool.StorageStatus(ctx)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, adapter.ErrUnavailable) {
		return status, fmt.Errorf("storage status: %w", err)
	}

	s.logger.Warn().Err(err).Msg("sync tool unavailable, reporting basic status")
	return s.basicStatus(ctx)
}

// basicStatus is built from configuration and the local archive alone.
func (s *pullService) basicStatus(ctx context.Context) (models.StorageStatus, error) {
	local, err := s.archive.Status(ctx)
	if err != nil {
		return models.StorageStatus{}, fmt.Errorf("basic storage status: %w", err)
	}

	local.RetentionDays = s.settings.Storage.Local.RetentionDays

	remote := s.settings.Storage.Remote
	return models.StorageStatus{
		Local: local,
		Remote: models.RemoteStatus{
			Configured:    remote.IsComplete(),
			EndpointURL:   remote.EndpointURL,
			BucketName:    remote.BucketName,
			RetentionDays: s.settings.Storage.RemoteRetentionDays,
		},
		Pull: models.PullStatus{
			Enabled: s.settings.Storage.Pull.Enabled,
			Days:    s.settings.Storage.Pull.Days,
		},
		Backend:  s.settings.Storage.Backend,
		Timezone: s.settings.App.Timezone,
		Basic:    true,
	}, nil
}

func (s *pullService) ListDates(ctx context.Context) (models.AvailableDates, error) {
	dates, err := s.tool.ListAvailableDates(ctx)
	if err != nil {
		return dates, fmt.Errorf("list available dates: %w", err)
	}

	if !dates.Success {
		msg := "unknown error"
		if dates.Error != nil && dates.Error.Message != "" {
			msg = dates.Error.Message
		}
		return dates, fmt.Errorf("%w: %s", ErrListDatesFailed, msg)
	}

	return dates, nil
}
