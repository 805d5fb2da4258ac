package models

// SyncResult is the outcome of one pull from the remote archive.
//
// When Success is false only Error is meaningful.
type SyncResult struct {
	Success      bool         `json:"success"`
	SyncedFiles  int          `json:"synced_files"`
	SyncedDates  []string     `json:"synced_dates,omitempty"`
	SkippedDates []string     `json:"skipped_dates,omitempty"`
	FailedDates  []FailedDate `json:"failed_dates,omitempty"`
	Error        *SyncError   `json:"error,omitempty"`
}

// FailedDate is a single archive date that could not be pulled.
type FailedDate struct {
	Date  string `json:"date"`
	Error string `json:"error,omitempty"`
}

// SyncError is the structured error object returned by the sync tool.
type SyncError struct {
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// DateRange is an inclusive span of archive dates in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StorageStatus describes the local archive, the remote store and the
// automatic pull settings.
type StorageStatus struct {
	Local  LocalStatus  `json:"local"`
	Remote RemoteStatus `json:"remote"`
	Pull   PullStatus   `json:"pull"`

	// Backend, Timezone and Basic are set only for the reduced status built
	// without the sync tool.
	Backend  string `json:"backend,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Basic    bool   `json:"-"`
}

// LocalStatus summarizes the dates present in the local data directory.
type LocalStatus struct {
	DataDir       string     `json:"data_dir"`
	DateCount     int        `json:"date_count"`
	DateRange     *DateRange `json:"date_range,omitempty"`
	RetentionDays int        `json:"retention_days,omitempty"`
}

// RemoteStatus summarizes the remote store. Only Configured is meaningful
// when Configured is false.
type RemoteStatus struct {
	Configured    bool       `json:"configured"`
	EndpointURL   string     `json:"endpoint_url,omitempty"`
	BucketName    string     `json:"bucket_name,omitempty"`
	DateCount     int        `json:"date_count"`
	DateRange     *DateRange `json:"date_range,omitempty"`
	RetentionDays int        `json:"retention_days,omitempty"`
}

// PullStatus mirrors storage.pull from the configuration.
type PullStatus struct {
	Enabled bool `json:"enabled"`
	Days    int  `json:"days"`
}

// AvailableDates lists the archive dates present locally and remotely.
type AvailableDates struct {
	Success     bool       `json:"success"`
	LocalDates  []string   `json:"local_dates"`
	RemoteDates []string   `json:"remote_dates"`
	Error       *SyncError `json:"error,omitempty"`
}
