package adapter

import "errors"

var (
	ErrUnavailable         = errors.New("sync tool unavailable")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("sync tool internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrMalformedResponse   = errors.New("malformed sync tool response")
	ErrInvalidEndpoint     = errors.New("invalid sync tool endpoint")
)
