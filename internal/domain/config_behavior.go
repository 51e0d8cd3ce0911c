package domain

import "fmt"

// InitialShift returns the configured starting shift.
// An unset value means DefaultShift.
func (c *Config) InitialShift() (ShiftValue, error) {
	if c.Cipher.DefaultShift == 0 {
		return MustShift(DefaultShift), nil
	}
	s, err := NewShift(c.Cipher.DefaultShift)
	if err != nil {
		return ShiftValue{}, fmt.Errorf("cipher.default_shift: %w", err)
	}
	return s, nil
}

// HistoryBackendOrDefault resolves an empty backend to the text log.
func (c *Config) HistoryBackendOrDefault() HistoryBackend {
	if c.History.Backend == "" {
		return HistoryBackendFile
	}
	return c.History.Backend
}

// HistoryViewLimitOrDefault returns the number of records the menu shows.
func (c *Config) HistoryViewLimitOrDefault() int {
	if c.History.ViewLimit <= 0 {
		return DefaultHistoryViewLimit
	}
	return c.History.ViewLimit
}

// IsKnown reports whether b names a supported backend.
func (b HistoryBackend) IsKnown() bool {
	switch b {
	case HistoryBackendFile, HistoryBackendSQLite:
		return true
	default:
		return false
	}
}
