// Command migrate applies or reports database schema migrations.
//
// Usage:
//
//	migrate [-config=config.yaml] [-yes] up
//	migrate [-config=config.yaml] status
//
// "up" lists the pending migrations and asks for confirmation unless -yes
// is given. Exit codes: 0 = success or nothing to do, 1 = error, 2 = declined.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	"github.com/heartmarshall/authority-backend/internal/app"
	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/migrations"
)

const (
	exitOK       = 0
	exitError    = 1
	exitDeclined = 2
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	yes := flag.Bool("yes", false, "apply without asking for confirmation")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-config=path] [-yes] up|status")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || (flag.Arg(0) != "up" && flag.Arg(0) != "status") {
		flag.Usage()
		return exitError
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitError
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return exitError
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)
	defer db.Close()

	states, err := migrations.Status(ctx, db)
	if err != nil {
		logger.Error("read migration status", slog.String("error", err.Error()))
		return exitError
	}

	pending := 0
	for _, s := range states {
		mark := "applied"
		if !s.Applied {
			mark = "pending"
			pending++
		}
		fmt.Printf("%5d  %-8s %s\n", s.Version, mark, s.Source)
	}

	if flag.Arg(0) == "status" {
		return exitOK
	}

	if pending == 0 {
		fmt.Println("Nothing to apply.")
		return exitOK
	}

	if !*yes {
		ok, err := app.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Apply %d pending migration(s)?", pending))
		if err != nil {
			logger.Error("read confirmation", slog.String("error", err.Error()))
			return exitError
		}
		if !ok {
			fmt.Println("Aborted.")
			return exitDeclined
		}
	}

	applied, err := migrations.Up(ctx, db, logger)
	if err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		return exitError
	}
	fmt.Printf("Applied %d migration(s).\n", applied)
	return exitOK
}
