package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/canvas"
)

// runDraw lays out documents like compute and prints each layout as box
// outlines, one cell per point.
func runDraw(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	border := env.cfg.Border()
	if cmd.IsSet("border") {
		var err error
		if border, err = canvas.ParseBorder(cmd.String("border")); err != nil {
			return err
		}
	}

	results, err := computeAll(ctx, cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", res.Name)
		}
		c := canvas.Draw(res.Layout, border)
		if _, err := fmt.Fprint(out, c.String()); err != nil {
			return fmt.Errorf("writing %s: %w", res.Name, err)
		}
	}
	env.log.Info("Layouts drawn", zap.Int("documents", len(results)), zap.Stringer("border", border))
	return nil
}
