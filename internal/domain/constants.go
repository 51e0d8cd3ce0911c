package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for the history log (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// DefaultHistoryViewLimit is how many records the menu shows
	DefaultHistoryViewLimit = 5
	// DefaultHistoryListLimit is the default for the history subcommand
	DefaultHistoryListLimit = 20
	// DefaultHistoryFileName is the text log name used by the file backend
	DefaultHistoryFileName = "rot_cipher_history.txt"
	// DefaultHistoryDBName is the database name used by the sqlite backend
	DefaultHistoryDBName = "history.db"
)

// Time formats
const (
	// LogTimestampFormat is the timestamp layout written to the text log
	LogTimestampFormat = "2006-01-02 15:04:05"
)
