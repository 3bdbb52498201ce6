package config

// Default configuration values.
const (
	// DefaultMarker is the deletion marker style: a blank line in the
	// edited listing requests deletion. Any single-character value is
	// treated as a prefix symbol instead (for example "#").
	DefaultMarker = "empty"

	// DefaultOutput is the default plan/result output format.
	DefaultOutput = "pretty"

	// DefaultRetentionDays is how long history entries are kept.
	DefaultRetentionDays = 90

	// DefaultLogLevel is the default file log level.
	DefaultLogLevel = "info"
)
