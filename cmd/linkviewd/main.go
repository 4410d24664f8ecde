// Command linkviewd serves the profile-view HTTP API.
//
// Configuration comes from the environment (optionally via a .env file):
// RAPID_API_KEY (required), RAPID_API_HOST, LINKVIEW_ADDR, LINKVIEW_TIMEOUT.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/99Yash/linkview/server"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Not an error when absent; env vars may be set directly.
	_ = godotenv.Load()

	srv, err := server.New(server.ConfigFromEnv(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
