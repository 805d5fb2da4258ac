package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/validators"
	"github.com/MKhiriev/news-radar/models"
)

// PullValidationService refuses to pull while the remote storage
// configuration is incomplete, so the sync tool is never contacted with a
// configuration it cannot use.
type PullValidationService struct {
	inner     PullService
	validator validators.Validator
	remote    config.RemoteStorage

	logger *logger.Logger
}

func NewPullValidationService(remote config.RemoteStorage, log *logger.Logger) PullServiceWrapper {
	if log == nil {
		log = logger.Nop()
	}

	return &PullValidationService{
		validator: validators.NewRemoteStorageValidator(),
		remote:    remote,
		logger:    log,
	}
}

func (v *PullValidationService) Pull(ctx context.Context, days int) (models.SyncResult, error) {
	if err := v.validator.Validate(ctx, v.remote); err != nil {
		v.logger.Error().Err(err).Msg("remote storage configuration rejected")
		return models.SyncResult{}, fmt.Errorf("error during remote storage validation before pull: %w", err)
	}

	return v.inner.Pull(ctx, days)
}

func (v *PullValidationService) Status(ctx context.Context) (models.StorageStatus, error) {
	return v.inner.Status(ctx)
}

func (v *PullValidationService) ListDates(ctx context.Context) (models.AvailableDates, error) {
	return v.inner.ListDates(ctx)
}

func (v *PullValidationService) Wrap(inner PullService) PullService {
	v.inner = inner
	return v
}
