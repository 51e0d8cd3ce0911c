package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/splo1t/rotcipher/internal/app"
	"github.com/splo1t/rotcipher/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built once
// flags are parsed so --config, --history-file and --shift can shape it.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	var (
		container *app.Container
		appOpts   = app.Options{Verbose: opts.Verbose}
	)
	current := func() *app.Container { return container }

	root := &cobra.Command{
		Use:   "rotcipher",
		Short: "rotcipher - interactive ROT/Caesar cipher tool",
		Long:  "rotcipher encodes and decodes text with a configurable ROT shift and keeps a log of every operation.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}
			c, err := app.BuildContainer(cmd.Context(), appOpts)
			if err != nil {
				return err
			}
			container = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return nil
			}
			return container.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, container)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&appOpts.ConfigPath, "config", "", "Config file (default ~/.rotcipher/config.yaml)")
	flags.StringVar(&appOpts.HistoryPath, "history-file", "", "History log location (overrides history.path)")
	flags.IntVar(&appOpts.Shift, "shift", 0, "Starting shift 1-25 (overrides cipher.default_shift)")
	flags.BoolVar(&appOpts.NoColor, "no-color", false, "Disable coloured output")
	flags.BoolVarP(&appOpts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging on stderr")

	root.AddCommand(
		commands.NewEncodeCommand(current),
		commands.NewDecodeCommand(current),
		commands.NewHistoryCommand(current),
		commands.NewDoctorCommand(current),
		commands.NewVersionCommand(),
	)
	root.SetContext(ctx)
	return root
}

// runInteractive starts the menu shell. SIGINT and SIGTERM cancel the
// pending read and end the loop with a farewell.
func runInteractive(cmd *cobra.Command, container *app.Container) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	cfg := container.Config
	shell := &Shell{
		Service:   container.SessionService,
		Input:     NewLineReader(cmd.InOrStdin()),
		Output:    out,
		Render:    NewRenderer(out, NewTheme(out, cfg.UI.Color)),
		ViewLimit: cfg.HistoryViewLimitOrDefault(),
		Animate:   cfg.UI.Animation && out == os.Stdout,
	}
	return shell.Run(ctx)
}
