package main

import (
	"fmt"
	"os"

	"github.com/ksaito/studypace/internal/cli"
	"github.com/ksaito/studypace/internal/config"
	"github.com/ksaito/studypace/internal/db"
	"github.com/ksaito/studypace/internal/notion"
	"github.com/ksaito/studypace/internal/repository"
	"github.com/ksaito/studypace/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	cachePath := cfg.CachePath
	if cachePath == "" {
		var err error
		cachePath, err = config.DefaultCachePath()
		if err != nil {
			return err
		}
	}

	database, err := db.OpenDB(cachePath)
	if err != nil {
		return fmt.Errorf("opening snapshot cache: %w", err)
	}
	defer database.Close()

	observationRepo := repository.NewSQLiteObservationRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	fetchLogRepo := repository.NewSQLiteFetchLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer notion.QueryObserver = notion.NoopObserver{}
	if cfg.LogRequests {
		observer = notion.NewLogObserver(os.Stderr)
	}
	client := notion.NewClient(cfg.Notion, observer)

	app := &cli.App{
		Sync:     service.NewSyncService(client, cfg.LogDatabaseID, cfg.GoalDatabaseID, cfg.Props, uow),
		Progress: service.NewProgressService(observationRepo, goalRepo, fetchLogRepo),
		Notion:   client,
		Config:   cfg,
	}

	// The interactive view needs a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
