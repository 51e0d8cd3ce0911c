package config

import (
	"fmt"

	"github.com/splo1t/rotcipher/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if _, err := cfg.InitialShift(); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.Backend != "" && !history.Backend.IsKnown() {
		return fmt.Errorf("history.backend must be file|sqlite, got %s", history.Backend)
	}
	if history.ViewLimit < 0 {
		return fmt.Errorf("history.view_limit must be >= 0")
	}
	return nil
}
