package service

import (
	"github.com/MKhiriev/news-radar/internal/adapter"
	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/store"
)

type Services struct {
	PullService PullService
}

// NewServices wires the pull service behind remote storage validation.
func NewServices(tool adapter.SyncTool, archive store.Archive, settings config.Settings, logger *logger.Logger) *Services {
	pull := NewPullService(tool, archive, settings, logger)

	return &Services{
		PullService: NewPullValidationService(settings.Storage.Remote, logger).Wrap(pull),
	}
}
