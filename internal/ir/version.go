package ir

// Version constants for the record schema and binary.
const (
	// SchemaVersion is the persisted record layout version.
	SchemaVersion = "1"

	// Version is the textvault release version.
	Version = "0.1.0"
)
