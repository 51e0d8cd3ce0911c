package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splo1t/rotcipher/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, history storage and the cipher engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil || c.DoctorService == nil {
				return errors.New(ErrDoctorUnavailable)
			}
			report, err := c.DoctorService.Run(cmd.Context())

			// Display report even if there were errors
			displayDoctorReport(cmd.OutOrStdout(), report)

			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
