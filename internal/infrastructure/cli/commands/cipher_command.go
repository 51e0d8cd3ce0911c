package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splo1t/rotcipher/internal/domain"
)

// NewEncodeCommand creates the encode command
func NewEncodeCommand(container ContainerFunc) *cobra.Command {
	return newCipherCommand(container, domain.Encode)
}

// NewDecodeCommand creates the decode command
func NewDecodeCommand(container ContainerFunc) *cobra.Command {
	return newCipherCommand(container, domain.Decode)
}

func newCipherCommand(container ContainerFunc, dir domain.Direction) *cobra.Command {
	var noLog bool
	verb := strings.ToLower(string(dir))

	cmd := &cobra.Command{
		Use:   verb + " [text...]",
		Short: fmt.Sprintf("%s text with the configured shift (reads stdin when no text is given)", strings.ToUpper(verb[:1])+verb[1:]),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runCipher(cmd, container, dir, text, noLog)
		},
	}

	cmd.Flags().BoolVar(&noLog, "no-log", false, "Do not append this operation to history")
	return cmd
}

// runCipher transforms text and prints only the result on stdout.
func runCipher(cmd *cobra.Command, container ContainerFunc, dir domain.Direction, text string, noLog bool) error {
	c := container()
	if c == nil || c.SessionService == nil {
		return errors.New(ErrSessionUnavailable)
	}

	svc := *c.SessionService
	if noLog {
		svc.HistoryStore = nil
	}

	out, err := svc.Run(cmd.Context(), text, dir)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return fmt.Errorf("nothing to %s: %w", strings.ToLower(string(dir)), err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Entry.Result)
	if out.LogErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not save to history: %v\n", out.LogErr)
	}
	return nil
}

// inputText joins args, or reads all of in when there are none.
func inputText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
