package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"summithub-profiles/internal/config"
	"summithub-profiles/internal/db"
	"summithub-profiles/internal/export"
	"summithub-profiles/internal/route"
	"summithub-profiles/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if err := Main(os.Args[1:], config.Load, db.ConnectPostgres); err != nil {
		log.Fatalf("%v", err)
	}
}

// Main generates the profile artifacts of the named routes, or of every
// route when no names are given. Failing routes are reported after the rest
// have been written.
func Main(args []string, loadConfig func() config.Config, connectPostgres func(config.Config) (*pgxpool.Pool, error)) error {
	cfg := loadConfig()

	fs := flag.NewFlagSet("profilegen", flag.ContinueOnError)
	output := fs.String("output", cfg.ProfilesDir, "output dir")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := server.LoadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading routes: %w", err)
	}

	pg, err := connectPostgres(cfg)
	switch {
	case errors.Is(err, db.ErrNoDatabase):
	case err != nil:
		log.Printf("postgres connection failed, using catalog only: %v", err)
	}
	var store *route.Store
	if pg != nil {
		defer pg.Close()
		store = route.NewStore(pg)
	}
	provider := route.NewFallback(store, catalog)

	ctx := context.Background()
	var report export.Report
	if names := fs.Args(); len(names) > 0 {
		report = export.GenerateNamed(ctx, provider, *output, names)
	} else {
		report, err = export.GenerateAll(ctx, provider, *output)
		if err != nil {
			return err
		}
	}

	log.Printf("generated %d profiles in %s", len(report.Generated), *output)
	if err := report.Err(); err != nil {
		return fmt.Errorf("%d routes failed: %w", len(report.Failed), err)
	}
	return nil
}
