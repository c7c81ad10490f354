package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vijay-pawar-99/CampusHire/internal/cli"
	"github.com/vijay-pawar-99/CampusHire/internal/config"
	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/filex"
	"github.com/vijay-pawar-99/CampusHire/internal/kvstore"
	"github.com/vijay-pawar-99/CampusHire/internal/logging"
	"github.com/vijay-pawar-99/CampusHire/internal/seed"
	"github.com/vijay-pawar-99/CampusHire/internal/session"
	"github.com/vijay-pawar-99/CampusHire/internal/storage"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, logLevel(cfg.LogLevel))

	dataDir, err := filex.EnsureSubDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := storage.Open(ctx, filepath.Join(dataDir, cfg.DataFile))
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	kv := kvstore.NewSQLiteStore(db)

	if cfg.SeedDemoData {
		if err := seed.Initialize(ctx, kv); err != nil {
			log.Fatalf("error seeding demo data: %v", err)
		}
	}

	dir := directory.New(kv)

	sess, err := session.NewManager(ctx, dir, logger)
	if err != nil {
		log.Fatalf("error restoring session: %v", err)
	}

	flow := workflow.New(dir, logger)

	app := cli.NewApp(cfg, dir, sess, flow, logger)
	app.Run(ctx)
}
