package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/splo1t/rotcipher/internal/application/doctor"
	"github.com/splo1t/rotcipher/internal/application/session"
	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/infrastructure/config"
	"github.com/splo1t/rotcipher/internal/infrastructure/history"
	"github.com/splo1t/rotcipher/internal/pkg/filesystem"
	"github.com/splo1t/rotcipher/internal/pkg/logger"
	"github.com/splo1t/rotcipher/internal/ports"
)

// Options are the process-level overrides collected from flags.
type Options struct {
	ConfigPath  string
	HistoryPath string

	// Shift overrides cipher.default_shift when non-zero.
	Shift   int
	Verbose bool
	NoColor bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	SessionService *session.Service
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryRepository
	Logger         *logger.ZapLogger
	SessionID      string

	closer io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.HistoryPath != "" {
		cfg.History.Path = filesystem.ExpandPath(opts.HistoryPath)
	}
	if opts.Shift != 0 {
		cfg.Cipher.DefaultShift = opts.Shift
	}
	if opts.NoColor {
		cfg.UI.Color = false
	}

	initial, err := cfg.InitialShift()
	if err != nil {
		return nil, err
	}

	base, err := logger.New(opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	sessionID := uuid.NewString()
	log := base.With(map[string]interface{}{"session": sessionID})

	historyStore, closer, err := history.Open(ctx, cfg.HistoryBackendOrDefault(), cfg.History.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("container ready", map[string]interface{}{
		"config":  cfgLoader.Path(),
		"history": historyStore.Path(),
		"backend": string(cfg.HistoryBackendOrDefault()),
		"shift":   initial.Int(),
	})

	sessionService := &session.Service{
		Session:      domain.NewSession(initial),
		HistoryStore: historyStore,
		Logger:       log,
	}

	return &Container{
		Config:         cfg,
		SessionService: sessionService,
		DoctorService:  &doctor.Service{ConfigProvider: cfgLoader, HistoryStore: historyStore},
		HistoryStore:   historyStore,
		Logger:         log,
		SessionID:      sessionID,
		closer:         closer,
	}, nil
}

// Close releases the history store and flushes the logger.
func (c *Container) Close() error {
	_ = c.Logger.Sync()
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
