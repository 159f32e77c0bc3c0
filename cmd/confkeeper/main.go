package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-conf-keeper/internal/app"
	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	level, _ := logger.ParseLevel(cfg.App.LogLevel)
	log := logger.NewLogger("confkeeper", logger.WithLevel(level))
	log.Debug().Any("config", cfg).Msg("received configs")
	log.Debug().
		Str("version", orNA(buildVersion)).
		Str("date", orNA(buildDate)).
		Str("commit", orNA(buildCommit)).
		Msg("build info")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("confkeeper failed")
	}
}

// run builds the tree and prints the requested paths. It returns instead of
// exiting so the deferred cache close always runs.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	cache, err := app.NewCache(ctx, cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("error creating cache: %w", err)
	}
	if cache != nil {
		defer cache.Close()
	}

	a, err := app.New(cfg, cache, log)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}

	t, err := a.Build(ctx)
	if err != nil {
		return fmt.Errorf("error building configuration: %w", err)
	}

	if err = printPaths(os.Stdout, t, cfg.Paths); err != nil {
		return fmt.Errorf("error printing configuration: %w", err)
	}
	return nil
}

// printPaths writes one JSON document per path, null for absent paths. With
// no paths the whole tree is written.
func printPaths(w io.Writer, t *tree.Tree, paths []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if len(paths) == 0 {
		return enc.Encode(t.All())
	}

	for _, path := range paths {
		value, _ := t.Get(path)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode %q: %w", path, err)
		}
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
