package service

import "errors"

var (
	ErrInvalidDays     = errors.New("days must be a positive integer")
	ErrSyncFailed      = errors.New("sync from remote failed")
	ErrListDatesFailed = errors.New("listing available dates failed")
)
