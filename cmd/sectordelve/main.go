// Package main is the entry point for sectordelve.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/sectordelve/internal/dump"
	"github.com/samdwyer/sectordelve/internal/game"
	"github.com/samdwyer/sectordelve/internal/mapgen"
	"github.com/samdwyer/sectordelve/internal/preset"
	"github.com/samdwyer/sectordelve/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Map our Honeycomb variables onto the standard OTEL exporter ones.
	setupOTelEnv()

	registry := preset.MustLoadRegistry()

	var (
		presetName = flag.String("preset", "standard", "generation preset: "+strings.Join(registry.Names(), ", "))
		seed       = flag.Int64("seed", 0, "session seed (0 = random)")
		dumpMap    = flag.Bool("dump", false, "print one generated map to stdout and exit")
		columns    = flag.Int("cols", 0, "override sector columns (dump mode only)")
		rows       = flag.Int("rows", 0, "override sector rows (dump mode only)")
		debug      = flag.Bool("debug", false, "run generator invariant checks")
	)
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Continuing without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	profile, err := registry.Get(*presetName)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpMap {
		if err := dumpOnce(ctx, profile, *seed, *columns, *rows, *debug); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := game.New(profile, *seed)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv builds the OTEL exporter variables from our own env vars.
// The .env file may carry an unexpanded variable reference in the headers,
// so the header string is constructed here instead.
func setupOTelEnv() {
	apiKey := os.Getenv("SECTORDELVE_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("SECTORDELVE_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "sectordelve"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// dumpOnce generates a single level and prints it.
func dumpOnce(ctx context.Context, profile preset.Preset, seed int64, columns, rows int, debug bool) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := profile.Config(seed, rand.New(rand.NewSource(seed)))
	if columns > 0 {
		cfg.Columns = columns
	}
	if rows > 0 {
		cfg.Rows = rows
	}
	cfg.Debug = debug

	level, err := mapgen.Generate(ctx, cfg)
	if err != nil {
		return err
	}
	return dump.Write(os.Stdout, level)
}
