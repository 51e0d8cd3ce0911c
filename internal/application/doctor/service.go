package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/ports"
)

// selfTest is a known ROT3 vector the engine must reproduce.
var selfTest = struct{ plain, cipher string }{"Hello, World!", "Khoor, Zruog!"}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryRepository
}

// Run executes checks and returns a report. The error is non-nil when at
// least one check failed.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if shift, err := cfg.InitialShift(); err != nil {
		checks = append(checks, fail("Default shift", err.Error()))
	} else {
		checks = append(checks, ok("Default shift", shift.String()))
	}

	checks = append(checks, cipherCheck())

	if s.HistoryStore == nil {
		checks = append(checks, warn("History", "history store not initialized"))
	} else {
		checks = append(checks, historyReadCheck(ctx, s.HistoryStore))
		checks = append(checks, historyWriteCheck(s.HistoryStore.Path()))
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func cipherCheck() domain.HealthCheck {
	req := domain.CipherRequest{Text: selfTest.plain, Shift: domain.MustShift(3), Direction: domain.Encode}
	enc := req.Apply()
	back := domain.CipherRequest{Text: enc, Shift: req.Shift, Direction: req.Direction.Inverse()}.Apply()
	if enc != selfTest.cipher || back != selfTest.plain {
		return fail("Cipher engine", fmt.Sprintf("self-test produced %q, reversed to %q", enc, back))
	}
	return ok("Cipher engine", "self-test passed")
}

func historyReadCheck(ctx context.Context, store ports.HistoryRepository) domain.HealthCheck {
	entries, err := store.Recent(ctx, 0)
	if err != nil {
		return fail("History read", err.Error())
	}
	return ok("History read", fmt.Sprintf("%d records in %s", len(entries), store.Path()))
}

// historyWriteCheck probes the log directory without touching the log.
func historyWriteCheck(path string) domain.HealthCheck {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("History write", err.Error())
	}
	probe, err := os.CreateTemp(dir, ".rotcipher-probe-*")
	if err != nil {
		return warn("History write", fmt.Sprintf("%s not writable: %v", dir, err))
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return ok("History write", dir+" writable")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
