package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/wire"
)

// loaded is one document ready to be laid out.
type loaded struct {
	path string
	doc  *wire.Document
}

// readDocument decodes the document at path; "-" reads from in.
func readDocument(path string, in io.Reader) (*wire.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	format := wire.FormatOf(path)
	if path == "-" && bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		format = wire.FormatJSON
	}
	doc, err := wire.Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// terminalWidth returns the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// overrides holds the --width and --height flags when given.
type overrides struct {
	width, height *wire.Space
	terminal      int // columns of the output terminal, or 0
}

func parseOverrides(cmd *cli.Command, out io.Writer) (overrides, error) {
	var o overrides
	for _, axis := range []struct {
		flag string
		dst  **wire.Space
	}{{"width", &o.width}, {"height", &o.height}} {
		if !cmd.IsSet(axis.flag) {
			continue
		}
		s, err := wire.ParseSpace(cmd.String(axis.flag))
		if err != nil {
			return o, fmt.Errorf("--%s: %w", axis.flag, err)
		}
		*axis.dst = &s
	}
	if cols, ok := terminalWidth(out); ok {
		o.terminal = cols
	}
	return o, nil
}

// apply picks the space for one document: flags win, then the document,
// then the terminal width.
func (o overrides) apply(avail wire.Available) wire.Available {
	if o.width != nil {
		avail.Width = *o.width
	} else if avail.Width.IsZero() && o.terminal > 0 {
		avail.Width = wire.Space{AvailableSpace: flex.Definite(float32(o.terminal))}
	}
	if o.height != nil {
		avail.Height = *o.height
	}
	return avail
}

// runCompute lays out every document, each on its own engine, and writes
// the layouts in argument order.
func runCompute(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	format := env.cfg.Format()
	if cmd.IsSet("format") {
		var err error
		if format, err = wire.ParseFormat(cmd.String("format")); err != nil {
			return err
		}
	}

	results, err := computeAll(ctx, cmd)
	if err != nil {
		return err
	}

	env.log.Info("Layouts computed", zap.Int("documents", len(results)), zap.Stringer("format", format))
	if len(results) == 1 {
		return wire.Encode(cmd.Root().Writer, format, results[0])
	}
	return wire.Encode(cmd.Root().Writer, format, results)
}

// computeAll lays out the documents named by the command arguments
// concurrently and returns the results in argument order.
func computeAll(ctx context.Context, cmd *cli.Command) ([]wire.Result, error) {
	env := envFromContext(ctx)
	root := cmd.Root()

	files, err := collectDocuments(cmd.Args().Slice())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents to lay out")
	}

	// Standard input is read up front; it cannot be shared by goroutines.
	docs := make([]loaded, len(files))
	for i, path := range files {
		docs[i].path = path
		if path == "-" {
			if docs[i].doc, err = readDocument(path, root.Reader); err != nil {
				return nil, err
			}
		}
	}

	opts, err := env.cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	over, err := parseOverrides(cmd, root.Writer)
	if err != nil {
		return nil, err
	}

	results := make([]wire.Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d := &docs[i]
			if d.doc == nil {
				doc, err := readDocument(d.path, nil)
				if err != nil {
					return err
				}
				d.doc = doc
			}
			d.doc.Available = over.apply(d.doc.Available)
			res, err := layoutDocument(env.log.With(zap.String("file", d.path)), opts, d.doc)
			if err != nil {
				return fmt.Errorf("%s: %w", d.path, err)
			}
			if res.Name == "" {
				res.Name = d.path
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func layoutDocument(log *zap.Logger, opts []flex.Option, doc *wire.Document) (wire.Result, error) {
	e, err := flex.New(append(slices.Clip(opts), flex.WithLogger(log))...)
	if err != nil {
		return wire.Result{}, err
	}
	tree, err := wire.Build(e, doc)
	if err != nil {
		return wire.Result{}, err
	}
	l, err := tree.Compute(e)
	if err != nil {
		return wire.Result{}, err
	}

	st := e.CacheStats()
	log.Debug("Document laid out",
		zap.Int("nodes", e.Len()),
		zap.Uint64("measures", st.Measures),
		zap.Uint64("misses", st.Misses))
	return wire.Result{Name: doc.Name, Layout: tree.Box(l)}, nil
}
