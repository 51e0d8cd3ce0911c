package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/splo1t/rotcipher/internal/domain"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand(container ContainerFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent encode/decode operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New(ErrInvalidLimit)
			}
			c := container()
			if c == nil || c.SessionService == nil {
				return errors.New(ErrHistoryUnavailable)
			}
			entries, err := c.SessionService.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to retrieve history records: %w", err)
			}
			listHistoryEntries(cmd.OutOrStdout(), entries, time.Now())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryListLimit, "Max entries to show (0 for all)")
	return cmd
}

// listHistoryEntries prints entries oldest first with a relative age
func listHistoryEntries(out io.Writer, entries []domain.LogEntry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "[%s] %s (ROT%d) %s\n",
			e.Timestamp.Format(domain.LogTimestampFormat),
			e.Operation,
			e.Shift,
			humanize.RelTime(e.Timestamp, now, "ago", "from now"))
		fmt.Fprintf(out, "  Original: %s\n", e.Original)
		fmt.Fprintf(out, "  Result:   %s\n", e.Result)
	}
}
