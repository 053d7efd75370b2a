package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/wire"
)

// runCheck validates documents without laying them out. Every failing
// document is reported.
func runCheck(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	files, err := collectDocuments(cmd.Args().Slice())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no documents to check")
	}

	var errs error
	for _, path := range files {
		if err := checkDocument(path, cmd); err != nil {
			env.log.Warn("Document rejected", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		if cmd.Bool("verbose") {
			fmt.Fprintf(cmd.Root().Writer, "%s: ok\n", path)
		}
	}
	if errs != nil {
		return fmt.Errorf("%d of %d documents rejected: %w", len(multierr.Errors(errs)), len(files), errs)
	}
	env.log.Info("Documents valid", zap.Int("count", len(files)))
	return nil
}

func checkDocument(path string, cmd *cli.Command) error {
	doc, err := readDocument(path, cmd.Root().Reader)
	if err != nil {
		return err
	}
	e, err := flex.New()
	if err != nil {
		return err
	}
	if _, err := wire.Build(e, doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
