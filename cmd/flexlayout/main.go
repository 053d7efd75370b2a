// Package main provides flexlayout, a command line host for the layout
// engine.
//
// Usage:
//
//	flexlayout compute [--width W] [--height H] [--format F] path...
//	flexlayout draw [--width W] [--height H] [--border B] path...
//	flexlayout check [-v] path...
//	flexlayout dumpconfig [--default] [DESTINATION]
//
// Documents are YAML or JSON node trees (see package wire). Paths may be
// files, directories, "dir/..." for a recursive walk, or "-" for stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/config"
)

const version = "0.1.0"

// initializeAppContext loads configuration and logging once the command
// line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)

	var err error
	configFile := cmd.String("config")
	if env.cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.log, env.closeLog, err = env.cfg.Logging.Prepare(cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	env.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if configFile == "" {
		env.log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)

	env.log.Debug("Program ended", zap.Duration("elapsed", time.Since(env.start)), zap.Strings("parsed args", cmd.Args().Slice()))
	if env.closeLog != nil {
		if er := env.closeLog(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close log: %w", er))
		}
	}
	return
}

// Set when an error was already written to the log.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.cfg != nil {
		env.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "flexlayout",
		Usage:           "computes flexbox layouts for node tree documents",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Reader:          in,
		Writer:          out,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug records to the console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "compute",
				Usage:        "Lays out documents and prints the computed boxes",
				OnUsageError: usageErrorHandler,
				Action:       runCompute,
				ArgsUsage:    "PATH...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "width", Aliases: []string{"W"}, Usage: "available `SPACE` for the root width: N, \"at-most N\" or \"unbounded\""},
					&cli.StringFlag{Name: "height", Aliases: []string{"H"}, Usage: "available `SPACE` for the root height"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output `FORMAT` (yaml or json), overrides configuration"},
				},
			},
			{
				Name:         "draw",
				Usage:        "Lays out documents and draws the boxes as outlines",
				OnUsageError: usageErrorHandler,
				Action:       runDraw,
				ArgsUsage:    "PATH...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "width", Aliases: []string{"W"}, Usage: "available `SPACE` for the root width"},
					&cli.StringFlag{Name: "height", Aliases: []string{"H"}, Usage: "available `SPACE` for the root height"},
					&cli.StringFlag{Name: "border", Aliases: []string{"b"}, Usage: "outline `STYLE` (none, ascii, single, double, rounded, thick), overrides configuration"},
				},
			},
			{
				Name:         "check",
				Usage:        "Validates documents without laying them out",
				OnUsageError: usageErrorHandler,
				Action:       runCheck,
				ArgsUsage:    "PATH...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print every valid document"},
				},
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit runs at the end of main; no deferred functions may follow it.
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp(os.Stdin, os.Stdout).Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data = config.Default
	} else {
		state = "actual"
		if data, err = config.Dump(env.cfg); err != nil {
			return fmt.Errorf("unable to get configuration: %w", err)
		}
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.log.Debug("Outputting configuration", zap.String("state", state), zap.String("file", fname))
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
