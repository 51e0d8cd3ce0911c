package domain

import "time"

// LogEntry records one successful encode or decode.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Operation Direction `json:"operation"`
	Shift     int       `json:"shift"`
	Original  string    `json:"original"`
	Result    string    `json:"result"`
}

// NewLogEntry builds the entry for a request and its result.
func NewLogEntry(req CipherRequest, result string, at time.Time) LogEntry {
	return LogEntry{
		Timestamp: at,
		Operation: req.Direction,
		Shift:     req.Shift.Int(),
		Original:  req.Text,
		Result:    result,
	}
}
