// Command sweptbench loads a world.World from a YAML config, populates it
// with a grid of synthetic items, and hammers it with concurrent read-only
// queries to measure broad-phase query throughput.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/duskfall/swept2d/bench"
	"github.com/duskfall/swept2d/config"
	"github.com/duskfall/swept2d/report"
	"github.com/duskfall/swept2d/world"
)

func main() {
	configPath := flag.String("config", "", "path to a world config YAML file (optional)")
	items := flag.Int("items", 2000, "number of synthetic items to populate")
	queries := flag.Int("queries", 10000, "number of read-only queries to run")
	concurrency := flag.Int("concurrency", 8, "max concurrent queries")
	flag.Parse()

	cfg := config.DefaultWorldConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("sweptbench: %v", err)
		}
	}

	w, err := config.NewWorld[int](cfg)
	if err != nil {
		log.Fatalf("sweptbench: %v", err)
	}
	populate(w, *items)

	qs := make([]bench.Query, *queries)
	for i := range qs {
		x := float64(i % 1000)
		qs[i] = bench.Query{Kind: "point", X: x, Y: x}
	}

	results, err := bench.Run(context.Background(), w, qs, *concurrency)
	if err != nil {
		log.Fatalf("sweptbench: %v", err)
	}

	printer := report.NewPrinter("en")
	if err := printer.WriteBenchResults(os.Stdout, results); err != nil {
		log.Fatalf("sweptbench: %v", err)
	}
}

func populate(w *world.World[int], n int) {
	for i := 0; i < n; i++ {
		l := float64((i % 200) * 10)
		t := float64((i / 200) * 10)
		if err := w.Add(i, l, t, 8, 8); err != nil {
			log.Printf("sweptbench: skip item %d: %v", i, err)
		}
	}
}
