package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/ports"
)

// Outcome is the result of one encode or decode. LogErr is set when the
// transform succeeded but the history append did not.
type Outcome struct {
	Entry  domain.LogEntry
	LogErr error
}

// Service runs cipher operations for one interactive session.
type Service struct {
	Session      *domain.Session
	HistoryStore ports.HistoryRepository
	Logger       ports.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Encode transforms text forward with the current shift.
func (s *Service) Encode(ctx context.Context, text string) (Outcome, error) {
	return s.Run(ctx, text, domain.Encode)
}

// Decode transforms text backward with the current shift.
func (s *Service) Decode(ctx context.Context, text string) (Outcome, error) {
	return s.Run(ctx, text, domain.Decode)
}

// Run transforms text in dir and appends the operation to history.
// Blank text fails with domain.ErrEmptyInput and nothing is logged.
func (s *Service) Run(ctx context.Context, text string, dir domain.Direction) (Outcome, error) {
	if s.Session == nil || s.Logger == nil {
		return Outcome{}, errors.New("session.Service dependencies not satisfied")
	}
	if strings.TrimSpace(text) == "" {
		return Outcome{}, domain.ErrEmptyInput
	}

	req := s.Session.Request(text, dir)
	entry := domain.NewLogEntry(req, req.Apply(), s.now())
	s.Logger.Debug("transform", map[string]interface{}{
		"operation": string(dir),
		"shift":     req.Shift.Int(),
		"length":    len(text),
	})

	out := Outcome{Entry: entry}
	if s.HistoryStore == nil {
		return out, nil
	}
	if err := s.HistoryStore.Append(ctx, entry); err != nil {
		s.Logger.Error("history append failed", err, map[string]interface{}{"path": s.HistoryStore.Path()})
		out.LogErr = fmt.Errorf("save to %s: %w", s.HistoryStore.Path(), err)
	}
	return out, nil
}

// Shift returns the current shift.
func (s *Service) Shift() domain.ShiftValue {
	return s.Session.Shift()
}

// SetShift parses operator input and applies it. On error the current shift
// is unchanged and returned alongside the error.
func (s *Service) SetShift(input string) (domain.ShiftValue, error) {
	prev := s.Session.Shift()
	next, err := s.Session.SetShiftFromInput(input)
	if err != nil {
		s.Logger.Warn("shift rejected", map[string]interface{}{"input": strings.TrimSpace(input), "kept": prev.Int()})
		return next, err
	}
	s.Logger.Info("shift changed", map[string]interface{}{"from": prev.Int(), "to": next.Int()})
	return next, nil
}

// Recent returns the last n logged operations, oldest first.
func (s *Service) Recent(ctx context.Context, n int) ([]domain.LogEntry, error) {
	if s.HistoryStore == nil {
		return nil, nil
	}
	entries, err := s.HistoryStore.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.HistoryStore.Path(), err)
	}
	return entries, nil
}

// HistoryPath reports where operations are logged, or "" when logging is off.
func (s *Service) HistoryPath() string {
	if s.HistoryStore == nil {
		return ""
	}
	return s.HistoryStore.Path()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
