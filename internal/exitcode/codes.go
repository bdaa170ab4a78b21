package exitcode

// Exit codes for the bridge process.
// The supervisor can use these to decide restart strategy.
const (
	// Success - clean shutdown after a termination signal
	Success = 0

	// ConfigError - missing or invalid configuration
	// Don't restart: fix the config first
	ConfigError = 1

	// StorageError - failed to reach or prepare the MinIO bucket
	// Retry with backoff
	StorageError = 2

	// ApplicationError - unrecoverable error in the consume/flush loop
	// Retry with backoff; offsets for unflushed batches were not committed
	ApplicationError = 3
)
