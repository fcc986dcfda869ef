// Command geoquery evaluates YAML scenarios of geometry queries and logs every
// result as a structured entry.
//
//	geoquery [-workers n] [-epsilon e] [-log-level info] scenario.yaml...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/geoquery"
	"github.com/akmonengine/geoquery/internal/log"
	"github.com/akmonengine/geoquery/internal/scenario"
	"golang.org/x/sync/errgroup"
)

func main() {
	workers := flag.Int("workers", 0, "worker goroutines per scenario (0 uses the scenario's value)")
	epsilon := flag.Float64("epsilon", 0, "tolerance override (0 uses the scenario's value)")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logLevel, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := log.New(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if flag.NArg() == 0 {
		logger.Error("no scenario given")
		os.Exit(2)
	}

	opts := options{workers: *workers, epsilon: *epsilon}
	if err := run(context.Background(), logger, opts, flag.Args()); err != nil {
		logger.Error("run failed", log.Err(err))
		os.Exit(1)
	}
}

type options struct {
	workers int
	epsilon float64
}

func run(ctx context.Context, logger *log.Logger, opts options, paths []string) error {
	if opts.epsilon < 0 {
		return fmt.Errorf("%w: %v", scenario.ErrInvalidEpsilon, opts.epsilon)
	}

	docs, err := loadAll(ctx, paths)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		evaluate(logger, opts, doc)
	}
	return nil
}

// loadAll reads every scenario concurrently and keeps the argument order.
func loadAll(ctx context.Context, paths []string) ([]*scenario.Document, error) {
	docs := make([]*scenario.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func evaluate(logger *log.Logger, opts options, doc *scenario.Document) []scenario.Result {
	epsilon := doc.Tolerance()
	if opts.epsilon > 0 {
		epsilon = opts.epsilon
	}
	workers := doc.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}

	scenarioLogger := logger.Named(doc.Name)
	scenarioLogger.Debug("evaluating scenario",
		log.Int("queries", len(doc.Queries)),
		log.Int("workers", workers),
		log.Float("epsilon", epsilon),
	)

	results := geoquery.Map(workers, doc.Queries, func(q scenario.Query) scenario.Result {
		return scenario.Evaluate(q, epsilon)
	})

	for _, res := range results {
		scenarioLogger.Info("query",
			log.String("id", res.ID),
			log.String("kind", string(res.Kind)),
			log.Bool("hit", res.Hit),
			log.Vec("point", res.Point),
			log.Vec("other", res.Other),
			log.Float("scalar", res.Scalar),
		)
	}

	return results
}
