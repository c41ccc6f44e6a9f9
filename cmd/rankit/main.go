// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rankit"
	"github.com/poiesic/rankit/catalog"
	"github.com/poiesic/rankit/store/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rankit",
		Usage: "Fuzzy relevance ranking over catalogs of financial line items",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Populate a catalog database with line items",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "src",
						Usage: "JSON lines file of line items (uses builtin dataset if omitted)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank catalog line items against a query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags:     queryFlags(),
			},
			{
				Name:      "filter",
				Usage:     "List catalog line items matching a query, names only",
				ArgsUsage: "QUERY",
				Action:    filterCommand,
				Flags:     queryFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// queryFlags returns the flag set shared by the search and filter commands.
func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "threshold",
			Usage: "Minimum relevance score to retain a result",
			Value: rankit.DefaultThreshold,
		},
		&cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "Preserve letter case during matching",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of results to print (0 for all)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of scoring workers (1 for serial)",
			Value: 1,
		},
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, backend, err := openRepository(c.String("db"))
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	items := builtinLineItems()
	if src := c.String("src"); src != "" {
		items, err = lineItemsFromFile(src)
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
	}

	added, err := repo.AddLineItems(ctx, items...)
	if err != nil {
		return fmt.Errorf("failed to seed line items: %w", err)
	}

	slog.Info("seeded catalog", "count", len(added), "db", c.String("db"))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	results, err := runQuery(c, query)
	if err != nil {
		return err
	}

	limit := c.Int("limit")
	for i, res := range results {
		if limit > 0 && i == limit {
			break
		}
		fmt.Printf("%.3f  %-32s  [%s]\n", res.Score, res.Item.Name, strings.Join(res.MatchedFields, ", "))
	}

	return nil
}

func filterCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	results, err := runQuery(c, query)
	if err != nil {
		return err
	}

	limit := c.Int("limit")
	for i, res := range results {
		if limit > 0 && i == limit {
			break
		}
		fmt.Println(res.Item.Name)
	}

	return nil
}

// runQuery loads the catalog and ranks it against the query using the
// flags the search and filter commands share.
func runQuery(c *cli.Context, query string) ([]rankit.SearchResult[*catalog.LineItem], error) {
	ctx := context.Background()

	repo, backend, err := openRepository(c.String("db"))
	if err != nil {
		return nil, err
	}
	defer backend.Close()
	defer repo.Close()

	items, err := repo.GetAllLineItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	opts := []rankit.Option{
		rankit.WithThreshold(c.Float64("threshold")),
		rankit.WithParallelism(c.Int("workers")),
	}
	if c.Bool("case-sensitive") {
		opts = append(opts, rankit.WithCaseSensitive())
	}

	ranker, err := rankit.NewRanker(catalog.Fields, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranker: %w", err)
	}
	defer ranker.Release()

	return ranker.Search(items, query), nil
}

// openRepository opens the catalog database at the given path.
func openRepository(dbPath string) (*badger.LineItemRepository, *badger.Backend, error) {
	if dbPath == "" {
		return nil, nil, fmt.Errorf("database path is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo, err := badger.NewLineItemRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}

	return repo, backend, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
