package doctor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/infrastructure/history"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func statuses(report domain.HealthReport) map[string]domain.HealthStatus {
	out := make(map[string]domain.HealthStatus, len(report.Checks))
	for _, c := range report.Checks {
		out[c.Name] = c.Status
	}
	return out
}

func TestDoctorAllChecksPass(t *testing.T) {
	store := history.NewFileStore(filepath.Join(t.TempDir(), "logs", "history.txt"))
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{ConfigFormatVersion: "1"}},
		HistoryStore:   store,
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, map[string]domain.HealthStatus{
		"Config file":   domain.HealthOK,
		"Default shift": domain.HealthOK,
		"Cipher engine": domain.HealthOK,
		"History read":  domain.HealthOK,
		"History write": domain.HealthOK,
	}, statuses(report))
}

func TestDoctorStopsOnConfigFailure(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfigProvider{err: errors.New("bad yaml")}}

	report, err := svc.Run(context.Background())
	require.Error(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)
}

func TestDoctorFlagsBadShiftAndMissingStore(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{Cipher: domain.CipherSettings{DefaultShift: 30}}},
	}

	report, err := svc.Run(context.Background())
	require.Error(t, err)
	got := statuses(report)
	assert.Equal(t, domain.HealthError, got["Default shift"])
	assert.Equal(t, domain.HealthWarn, got["History"])
}
