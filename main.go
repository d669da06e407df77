package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"htnscope/adapters/postgres"
	"htnscope/adapters/tabular"
	"htnscope/app"
	"htnscope/internal"
	"htnscope/internal/config"
	"htnscope/internal/errors"
	"htnscope/ui"
)

func main() {
	// Load .env file if present (ignore error for production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := internal.DefaultLogger
	ctx := context.Background()

	svc, err := buildService(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Dataset load failed [%s]: %v", errors.GetCode(err), err)
	}
	logger.Info("dataset ready: %d records, %d rows dropped, baseline prevalence %.1f%%",
		svc.Table().Len(), svc.LoadReport().Dropped, svc.Table().Baseline.Prevalence)

	application := ui.NewApp(svc, ui.Config{
		Port:      cfg.Server.Port,
		CohortCap: cfg.Data.CohortCap,
	})
	if err := application.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildService picks the dataset source: a Postgres table when
// DATABASE_URL is set, otherwise the flat file through the memoizing
// loader.
func buildService(ctx context.Context, cfg *config.Config, logger *internal.Logger) (*app.DashboardService, error) {
	if cfg.Data.DatabaseURL != "" {
		db, err := sqlx.Connect("postgres", cfg.Data.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to database")
		}
		logger.Info("loading dataset from postgres table %s", cfg.Data.Table)
		return app.FromSource(ctx, postgres.NewPatientSource(db, cfg.Data.Table))
	}

	logger.Info("loading dataset from %s", cfg.Data.File)
	table, report, err := tabular.NewCachedLoader().Load(ctx, cfg.Data.File)
	if err != nil {
		return nil, err
	}
	return app.New(table, report), nil
}
