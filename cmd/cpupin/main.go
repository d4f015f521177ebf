package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"github.com/arumata/cpupin/internal/adapters/loghandler"
	"github.com/arumata/cpupin/internal/app"
	"github.com/arumata/cpupin/internal/usecase"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cmd, exitCode := newRootCmd(app.NewDefaultDependencies, usecase.Pin)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	return *exitCode
}

func newRootCmd(
	depsFactory func(*slog.Logger) *usecase.Dependencies,
	pin func(context.Context, *usecase.Request, *usecase.Dependencies, *slog.Logger) (usecase.Result, error),
) (*cobra.Command, *int) {
	var verbose bool
	exitCode := 0
	cmd := &cobra.Command{
		Use:   "cpupin <pid> <core_id>",
		Short: "Set CPU core affinity for a running process",
		Long: "A cross-platform tool to set CPU affinity for a process.\n" +
			"Pins the process identified by <pid> to the single core <core_id>.\n\n" +
			"Note: this tool usually requires administrator/root privileges.",
		Example: "  sudo cpupin 12345 0  (Linux)\n" +
			"  cpupin 6789 1        (Windows)\n\n" +
			"Note: this tool usually requires administrator/root privileges.",
		SilenceUsage:  false,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			exitCode = runRootCommand(cmd, args, verbose, depsFactory, pin)
		},
	}
	cmd.SetErr(os.Stderr)

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newVersionCmd())

	return cmd, &exitCode
}

func runRootCommand(
	cmd *cobra.Command,
	args []string,
	verbose bool,
	depsFactory func(*slog.Logger) *usecase.Dependencies,
	pin func(context.Context, *usecase.Request, *usecase.Dependencies, *slog.Logger) (usecase.Result, error),
) int {
	logger := setupLogger(verbose)

	req, err := parseRequest(args)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return exitFailure
	}

	deps := depsFactory(logger)
	fmt.Fprintf(cmd.OutOrStdout(), "Running on %s.\n", deps.Affinity.Platform())

	if _, err := pin(cmd.Context(), req, deps, logger); err != nil {
		reportError(cmd.ErrOrStderr(), err)
		return exitFailure
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully set affinity for PID %d to core %d\n",
		req.PID, req.Core)
	return exitSuccess
}

// parseRequest converts the two positional arguments into a pin request.
// Width validation against the native pid type happens later, in the
// platform adapter.
func parseRequest(args []string) (*usecase.Request, error) {
	pid, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, parseError(args[0], err)
	}
	core, err := strconv.ParseInt(args[1], 10, 0)
	if err != nil {
		return nil, parseError(args[1], err)
	}
	return &usecase.Request{PID: pid, Core: int(core)}, nil
}

func parseError(arg string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("argument %q is out of range: %w", arg, usecase.ErrUsage)
	}
	return fmt.Errorf("invalid argument %q: pid and core_id must be integers: %w",
		arg, usecase.ErrUsage)
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := loghandler.NewHandler(os.Stderr, &loghandler.Options{
		Level:    level,
		UseColor: shouldUseColor(os.Stderr),
	})
	return slog.New(handler)
}

func shouldUseColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
