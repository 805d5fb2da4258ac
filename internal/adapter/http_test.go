// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/utils"
	"github.com/MKhiriev/news-radar/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSyncTool creates an httpSyncTool pointed at serverURL.
func newTestSyncTool(t *testing.T, serverURL string) SyncTool {
	t.Helper()

	tool, err := NewHTTPSyncTool(config.SyncSettings{Endpoint: serverURL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return tool
}

// newTestServer starts a chi-routed server; routes are registered by fn.
func newTestServer(t *testing.T, fn func(r chi.Router)) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	fn(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPSyncTool ──────────────────────────────────────────────────────────

func TestNewHTTPSyncTool_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "   ", "http://"} {
		t.Run(endpoint, func(t *testing.T) {
			tool, err := NewHTTPSyncTool(config.SyncSettings{Endpoint: endpoint}, nil)

			assert.Nil(t, tool)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://127.0.0.1:8765", "http://127.0.0.1:8765"},
		{"http://127.0.0.1:8765/", "http://127.0.0.1:8765"},
		{"localhost:8765", "http://localhost:8765"},
		{"  https://sync.example.com/api/ ", "https://sync.example.com/api"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SyncFromRemote ───────────────────────────────────────────────────────────

func TestSyncFromRemote_Success(t *testing.T) {
	want := models.SyncResult{
		Success:      true,
		SyncedFiles:  4,
		SyncedDates:  []string{"2025-12-16", "2025-12-17"},
		SkippedDates: []string{"2025-12-15"},
		FailedDates:  []models.FailedDate{{Date: "2025-12-14", Error: "timeout"}},
	}

	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"days":3}`, string(body))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

			writeJSON(t, w, http.StatusOK, want)
		})
	})

	got, err := newTestSyncTool(t, srv.URL).SyncFromRemote(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSyncFromRemote_ReportedFailure(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"error":{"code":"REMOTE_NOT_CONFIGURED","message":"no bucket","suggestion":"set S3_BUCKET_NAME"}}`)
		})
	})

	got, err := newTestSyncTool(t, srv.URL).SyncFromRemote(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, got.Success)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.SyncError{
		Code:       "REMOTE_NOT_CONFIGURED",
		Message:    "no bucket",
		Suggestion: "set S3_BUCKET_NAME",
	}, *got.Error)
}

func TestSyncFromRemote_HTTPErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := newTestServer(t, func(r chi.Router) {
				r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = io.WriteString(w, "boom")
				})
			})

			_, err := newTestSyncTool(t, srv.URL).SyncFromRemote(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestSyncFromRemote_UnexpectedStatus(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	_, err := newTestSyncTool(t, srv.URL).SyncFromRemote(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSyncFromRemote_MalformedBody(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "not json")
		})
	})

	_, err := newTestSyncTool(t, srv.URL).SyncFromRemote(context.Background(), 1)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSyncFromRemote_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestSyncTool(t, url).SyncFromRemote(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSyncFromRemote_ContextCancelled(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/tools/sync_from_remote", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, models.SyncResult{Success: true})
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSyncTool(t, srv.URL).SyncFromRemote(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── StorageStatus ────────────────────────────────────────────────────────────

func TestStorageStatus_Success(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/tools/storage_status", func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))
			_, _ = io.WriteString(w, `{
				"local": {"data_dir": "output", "date_count": 2, "date_range": {"start": "2025-12-16", "end": "2025-12-17"}},
				"remote": {"configured": true, "endpoint_url": "https://s3", "bucket_name": "news", "date_count": 30},
				"pull": {"enabled": true, "days": 7}
			}`)
		})
	})

	got, err := newTestSyncTool(t, srv.URL).StorageStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StorageStatus{
		Local: models.LocalStatus{
			DataDir:   "output",
			DateCount: 2,
			DateRange: &models.DateRange{Start: "2025-12-16", End: "2025-12-17"},
		},
		Remote: models.RemoteStatus{Configured: true, EndpointURL: "https://s3", BucketName: "news", DateCount: 30},
		Pull:   models.PullStatus{Enabled: true, Days: 7},
	}, got)
}

func TestStorageStatus_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestSyncTool(t, url).StorageStatus(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── ListAvailableDates ───────────────────────────────────────────────────────

func TestListAvailableDates_Success(t *testing.T) {
	want := models.AvailableDates{
		Success:     true,
		LocalDates:  []string{"2025-12-17"},
		RemoteDates: []string{"2025-12-16", "2025-12-17"},
	}

	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/tools/available_dates", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, want)
		})
	})

	got, err := newTestSyncTool(t, srv.URL).ListAvailableDates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListAvailableDates_NotFound(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {})

	_, err := newTestSyncTool(t, srv.URL).ListAvailableDates(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}
