package utils

import (
	"time"

	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request sent through it carries an X-Request-ID header (generated
// when the caller did not set one) and every response is logged at debug
// level together with that id.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A non-positive
// timeout leaves resty's default (no timeout) in place. A nil logger
// disables logging.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8765", time.Minute, log)
//	resp, err := client.R().Get("/tools/storage_status")
func NewHTTPClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetLogger(restyLogger{log: log}).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, NewRequestID())
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("sync tool response")
		return nil
	})

	return &HTTPClient{Client: client}
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
