package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/splo1t/rotcipher/internal/application/session"
	"github.com/splo1t/rotcipher/internal/domain"
)

// Menu choices.
const (
	ChoiceEncode  = "1"
	ChoiceDecode  = "2"
	ChoiceShift   = "3"
	ChoiceHistory = "4"
	ChoiceExit    = "5"
)

// startupDelay is how long the startup spinner runs.
const startupDelay = 750 * time.Millisecond

// Shell is the interactive menu loop. It runs on the caller's goroutine and
// owns no state besides what the session service holds.
type Shell struct {
	Service   *session.Service
	Input     *LineReader
	Output    io.Writer
	Render    *Renderer
	ViewLimit int
	Animate   bool
}

// Run loops until the operator exits, input ends, or ctx is cancelled.
// Interruption and end of input are normal exits and return nil.
func (s *Shell) Run(ctx context.Context) error {
	defer s.Input.Close()
	s.startup(ctx)

	for {
		s.Render.Banner()
		s.Render.Menu(s.Service.Shift())
		s.Render.Prompt("\nChoose an option (1-5): ")
		choice, err := s.Input.ReadLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case ChoiceEncode:
			err = s.transform(ctx, domain.Encode)
		case ChoiceDecode:
			err = s.transform(ctx, domain.Decode)
		case ChoiceShift:
			err = s.changeShift(ctx)
		case ChoiceHistory:
			s.viewHistory(ctx)
		case ChoiceExit:
			s.Render.Farewell(false)
			return nil
		default:
			s.Render.Error("Invalid choice. Please select 1-5.")
			continue
		}
		if err != nil {
			return s.finish(err)
		}

		s.Render.Prompt("\nPress Enter to continue...")
		if _, err := s.Input.ReadLine(ctx); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) startup(ctx context.Context) {
	if !s.Animate {
		return
	}
	spinner := NewSpinner(s.Output, "Initializing cipher engine")
	spinner.Start()
	select {
	case <-ctx.Done():
	case <-time.After(startupDelay):
	}
	spinner.Stop()
	s.Render.Success("Ready to encrypt and decrypt!")
}

// finish maps a read error onto the loop's exit.
func (s *Shell) finish(err error) error {
	switch {
	case errors.Is(err, ErrInterrupted):
		s.Render.Farewell(true)
		return nil
	case errors.Is(err, io.EOF):
		s.Render.Farewell(false)
		return nil
	default:
		return fmt.Errorf("read input: %w", err)
	}
}

func (s *Shell) transform(ctx context.Context, dir domain.Direction) error {
	verb, title := "encode", "ENCODE MODE"
	if dir == domain.Decode {
		verb, title = "decode", "DECODE MODE"
	}
	s.Render.Section(fmt.Sprintf("%s (%s)", title, s.Service.Shift()))
	s.Render.Prompt(fmt.Sprintf("Enter text to %s: ", verb))
	text, err := s.Input.ReadLine(ctx)
	if err != nil {
		return err
	}

	out, err := s.Service.Run(ctx, text, dir)
	if errors.Is(err, domain.ErrEmptyInput) {
		s.Render.Error(fmt.Sprintf("Please enter some text to %s.", verb))
		return nil
	}
	if err != nil {
		s.Render.Error(err.Error())
		return nil
	}

	s.Render.Outcome(out.Entry)
	if out.LogErr != nil {
		s.Render.Warning(fmt.Sprintf("Warning: could not save to history: %v", out.LogErr))
		return nil
	}
	if path := s.Service.HistoryPath(); path != "" {
		s.Render.Success("Saved to " + path)
	}
	return nil
}

func (s *Shell) changeShift(ctx context.Context) error {
	s.Render.Section("CHANGE ROT VALUE")
	s.Render.Info(fmt.Sprintf("Current ROT value: %d", s.Service.Shift().Int()))
	s.Render.Info(fmt.Sprintf("Valid range: %d-%d", domain.MinShift, domain.MaxShift))
	s.Render.Prompt("Enter new ROT value: ")
	input, err := s.Input.ReadLine(ctx)
	if err != nil {
		return err
	}

	next, err := s.Service.SetShift(input)
	switch {
	case errors.Is(err, domain.ErrShiftNotNumber):
		s.Render.Error("Please enter a valid number.")
	case errors.Is(err, domain.ErrShiftOutOfRange):
		s.Render.Error(fmt.Sprintf("ROT value must be between %d and %d.", domain.MinShift, domain.MaxShift))
	case err != nil:
		s.Render.Error(err.Error())
	default:
		s.Render.Success(fmt.Sprintf("ROT value changed to %d", next.Int()))
	}
	return nil
}

func (s *Shell) viewHistory(ctx context.Context) {
	s.Render.Section("RECENT HISTORY")
	limit := s.ViewLimit
	if limit <= 0 {
		limit = domain.DefaultHistoryViewLimit
	}
	entries, err := s.Service.Recent(ctx, limit)
	if err != nil {
		s.Render.Error(fmt.Sprintf("reading history: %v", err))
		return
	}
	if len(entries) == 0 {
		s.Render.Warning("No history yet. Encode or decode something first!")
		return
	}
	s.Render.Info("Showing last entries:")
	s.Render.Prompt("\n")
	s.Render.Entries(entries)
}
