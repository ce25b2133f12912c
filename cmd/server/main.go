// Command server runs the authority index REST API.
//
// Usage:
//
//	server [-config=config.yaml]
//
// The server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/authority-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		app.PrintVersion(os.Stdout, "server")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.Run(ctx, *configPath)
	stop()
	if err != nil {
		log.Fatalf("server: %v", err)
	}
}
