package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/archeolens/archeolens-server/internal/client/api"
	"github.com/archeolens/archeolens-server/internal/client/cli"
	"github.com/archeolens/archeolens-server/internal/client/session"
)

func main() {
	serverAddr := flag.String("server", "http://localhost:8080/api/v1", "API base URL")
	sessionFile := flag.String("session", "", "session file path (defaults to ~/.archeolens-session.json)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	sessions, err := session.NewStore(*sessionFile)
	if err != nil {
		log.Fatalf("failed to initialize session store: %v", err)
	}

	app := cli.NewApp(api.New(*serverAddr), sessions, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("client error: %v", err)
	}
}
