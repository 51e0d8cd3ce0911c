package commands

import "github.com/splo1t/rotcipher/internal/app"

// ContainerFunc returns the container built after flags are parsed.
type ContainerFunc func() *app.Container

// Error messages
const (
	ErrSessionUnavailable = "session service unavailable"
	ErrHistoryUnavailable = "history store unavailable"
	ErrDoctorUnavailable  = "doctor service unavailable"
	ErrInvalidLimit       = "--limit must be >= 0"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
)
