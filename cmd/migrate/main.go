package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/db"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	"github.com/angelmondragon/hotelsuite/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})
	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "up|down|status|to|create|list")
	dir := flag.String("dir", migrate.DefaultDir, "migrations directory")
	title := flag.String("name", "", "title of the new migration (create)")
	version := flag.String("version", "", "target version YYYYMMDDHHMMSS (to)")
	flag.Parse()

	// create and list work on files only.
	switch *cmd {
	case "create":
		if *title == "" {
			fail("missing -name for create")
		}
		file, err := migrate.NewSQLFile(*dir, *title, time.Now())
		if err != nil {
			fail("create: %v", err)
		}
		fmt.Println(file.Path)
		return
	case "list":
		files, err := migrate.Scan(*dir)
		for _, f := range files {
			fmt.Printf("%d  %s\n", f.Version, f.Name)
		}
		if err != nil {
			fail("invalid migrations:\n%v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"cmd":    *cmd,
		"dir":    *dir,
		"driver": cfg.DB.Driver,
	})

	if _, err := migrate.Scan(*dir); err != nil {
		logg.Error(ctx, "migrations directory is invalid", err)
		os.Exit(1)
	}

	dialect, err := migrate.Dialect(cfg.DB.Driver)
	if err != nil {
		logg.Error(ctx, "unsupported driver", err)
		os.Exit(1)
	}

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to extract sql.DB", err)
		os.Exit(1)
	}
	runner := migrate.Runner{DB: sqlDB, Dir: *dir, Dialect: dialect}

	switch *cmd {
	case "up", "down", "status":
		err = runner.Run(ctx, *cmd)
	case "to":
		if *version == "" {
			fail("missing -version for to")
		}
		err = runner.To(ctx, *version)
	default:
		fail("unknown -cmd %q", *cmd)
	}
	if err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration finished")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
