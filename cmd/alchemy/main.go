package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/mosberg/alchemy/internal/catalog"
	"github.com/mosberg/alchemy/internal/config"
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/effects"
	"github.com/mosberg/alchemy/internal/identifier"
	"github.com/mosberg/alchemy/internal/loader"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	root := flag.String("root", cfg.ContentRoot, "Content root containing beverages/, containers/ and equipment/")
	effectsFile := flag.String("effects", cfg.EffectsFile, "Optional JSON array of extra status effect ids")
	simulate := flag.String("simulate", "", "Beverage id to consume after loading")
	times := flag.Int("times", 1, "Number of simulated consumptions")
	seed := flag.Int64("seed", 0, "Seed for simulation (0 uses ALCHEMY_SEED or a random seed)")
	strict := flag.Bool("strict", false, "Exit non-zero when any document is rejected")
	flag.Parse()

	cfg.ContentRoot = *root
	cfg.EffectsFile = *effectsFile
	if *seed != 0 {
		cfg.Seed = seed
	}

	initLogger(cfg)
	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", warning)
	}

	registry, err := buildRegistry(cfg.EffectsFile)
	if err != nil {
		log.Fatalf("Failed to load effect registry: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := loader.Load(ctx, cfg.ContentRoot, loader.WithEffectRegistry(registry))
	printSummary(os.Stdout, result)

	if *simulate != "" {
		id, err := identifier.Parse(*simulate)
		if err != nil {
			log.Fatalf("Invalid beverage id: %v", err)
		}
		if err := runSimulation(os.Stdout, result.Catalog, id, *times, cfg.Seed); err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
	}

	if *strict && !result.OK() {
		os.Exit(1)
	}
}

func buildRegistry(path string) (*effects.Registry, error) {
	registry := effects.Vanilla()
	if path == "" {
		return registry, nil
	}
	extra, err := effects.LoadRegistryFile(path)
	if err != nil {
		return nil, err
	}
	return registry.With(extra), nil
}

func printSummary(w io.Writer, result *loader.Result) {
	counts := result.Catalog.Counts()
	fmt.Fprintf(w, "Load %s (%s)\n", result.LoadID, result.Duration)
	fmt.Fprintf(w, "Digest: %s\n\n", result.Digest)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tFILES\tLOADED\tREJECTED\tDEFINITIONS")
	for _, kind := range domain.Kinds {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
			kind,
			result.Attempted[kind],
			result.Loaded[kind],
			len(result.ErrorsOf(kind)),
			counts.Of(kind))
	}
	tw.Flush()

	if beverages := result.Catalog.Beverages(); len(beverages) > 0 {
		fmt.Fprintln(w, "\nBeverages:")
		for _, def := range beverages {
			status := ""
			if !def.Config.Enabled {
				status = " (disabled)"
			}
			fmt.Fprintf(w, "  %-32s %-24s %s x%d%s\n",
				def.ID, domain.DisplayName(def.ID), def.EffectiveRarity(), def.EffectiveStackSize(), status)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(w, "\nErrors:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  [%s] %v\n", e.ErrorKind(), e)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}
}

func runSimulation(w io.Writer, c *catalog.Catalog, id identifier.ID, times int, seed *int64) error {
	rng := effects.NewSource()
	if seed != nil {
		rng = effects.NewSeededSource(*seed)
	}

	consumer := effects.NewConsumer(c, slog.Default())
	fired := make(map[identifier.ID]int)
	sink := effects.SinkFunc(func(r effects.Resolved) {
		fired[r.Effect]++
	})

	var last effects.Consumption
	for i := 0; i < times; i++ {
		out, ok := consumer.Consume(id, rng, sink)
		if !ok {
			return fmt.Errorf("%w: %s is unknown or disabled", domain.ErrDefinitionNotFound, id)
		}
		last = out
	}

	def, _ := c.Beverage(id)
	fmt.Fprintf(w, "\nSimulated %d x %s (%s, use action %s)\n", times, domain.DisplayName(id), id, last.UseAction)
	for _, entry := range def.Effects {
		fmt.Fprintf(w, "  %-28s chance %.2f  fired %d/%d\n", entry.Effect, entry.Chance, fired[entry.Effect], times)
	}
	if !last.ReturnItem.IsZero() {
		fmt.Fprintf(w, "  returns %s\n", last.ReturnItem)
	}
	return nil
}
