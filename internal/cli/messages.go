package cli

// Exit codes returned by [App.Run].
const (
	ExitOK      = 0
	ExitFailure = 1
)

const (
	MsgConfigNotFound    = "configuration file %s not found"
	MsgRunFromRoot       = "run the command from the project root or pass --root"
	MsgInvalidOptions    = "invalid options: %v"
	MsgLoadConfig        = "failed to load configuration: %v"
	MsgSyncToolSetup     = "failed to set up the sync tool client: %v"
	MsgStatusFailed      = "failed to get storage status: %v"
	MsgListDatesFailed   = "failed to list available dates: %v"
	MsgPullFailed        = "pull failed: %v"
	HeaderStatus         = "Storage status"
	HeaderAvailableDates = "Available dates"
	HeaderPull           = "Pulling from remote storage"
)
