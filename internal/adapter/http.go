package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/utils"
	"github.com/MKhiriev/news-radar/models"
)

const (
	syncFromRemotePath = "/tools/sync_from_remote"
	storageStatusPath  = "/tools/storage_status"
	availableDatesPath = "/tools/available_dates"
)

type syncRequest struct {
	Days int `json:"days"`
}

type httpSyncTool struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSyncTool constructs an HTTP/JSON implementation of [SyncTool].
// It normalises the base URL from cfg.Endpoint and configures the
// underlying HTTP client with the resolved base URL and cfg.Timeout.
//
// Returns an error wrapping [ErrInvalidEndpoint] if cfg.Endpoint is empty or
// cannot be parsed as a URL.
func NewHTTPSyncTool(cfg config.SyncSettings, log *logger.Logger) (SyncTool, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &httpSyncTool{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout, log),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SyncFromRemote implements [SyncTool]. It POSTs {"days": days} to
// /tools/sync_from_remote and decodes the result object.
func (h *httpSyncTool) SyncFromRemote(ctx context.Context, days int) (models.SyncResult, error) {
	var result models.SyncResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(syncRequest{Days: days}).
		Post(syncFromRemotePath)
	if err != nil {
		return result, fmt.Errorf("sync from remote request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = decode(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode sync result: %w", err)
	}
	return result, nil
}

// StorageStatus implements [SyncTool]. It GETs /tools/storage_status.
func (h *httpSyncTool) StorageStatus(ctx context.Context) (models.StorageStatus, error) {
	var status models.StorageStatus

	resp, err := h.client.R().
		SetContext(ctx).
		Get(storageStatusPath)
	if err != nil {
		return status, fmt.Errorf("storage status request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	if err = decode(resp.Body(), &status); err != nil {
		return status, fmt.Errorf("decode storage status: %w", err)
	}
	return status, nil
}

// ListAvailableDates implements [SyncTool]. It GETs /tools/available_dates.
func (h *httpSyncTool) ListAvailableDates(ctx context.Context) (models.AvailableDates, error) {
	var dates models.AvailableDates

	resp, err := h.client.R().
		SetContext(ctx).
		Get(availableDatesPath)
	if err != nil {
		return dates, fmt.Errorf("available dates request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return dates, err
	}

	if err = decode(resp.Body(), &dates); err != nil {
		return dates, fmt.Errorf("decode available dates: %w", err)
	}
	return dates, nil
}

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
