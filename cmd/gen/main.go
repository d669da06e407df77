// Command gen writes a synthetic hypertension survey CSV in the raw
// source format, for demos and local development.
package main

import (
	"flag"
	"log"
	"os"

	"htnscope/internal/testkit"
)

func main() {
	out := flag.String("out", "hypertension_dataset.csv", "output CSV path")
	rows := flag.Int("rows", 1000, "number of rows to generate")
	seed := flag.Int64("seed", 42, "rng seed")
	missing := flag.Float64("missing-med", 0.15, "fraction of rows with a blank Medication cell")
	flag.Parse()

	cfg := testkit.GeneratorConfig{
		RowCount:       *rows,
		MissingMedRate: *missing,
		Seed:           *seed,
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := testkit.NewGenerator(cfg).WriteCSV(f); err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("wrote %d rows to %s (seed %d)", *rows, *out, *seed)
}
