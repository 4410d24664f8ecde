// Command linkview resolves a LinkedIn profile URL or username, fetches the
// profile from the upstream data provider and renders it.
//
// Usage:
//
//	linkview https://www.linkedin.com/in/jane-doe
//	linkview jane-doe
//	linkview -json jane-doe   # print the normalized view as JSON
//
// Requires RAPID_API_KEY (from the environment or a .env file).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/99Yash/linkview/linkedin"
)

func main() {
	jsonOut := flag.Bool("json", false, "print the normalized profile as JSON")
	rawOut := flag.Bool("raw", false, "print the raw upstream document as JSON")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: linkview [options] <profile-url-or-username>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Not an error when absent; env vars may be set directly.
	_ = godotenv.Load()

	username := linkedin.ExtractUsername(flag.Arg(0))
	if username == "" {
		fmt.Fprintf(os.Stderr, "Error: %q is not a valid personal profile reference\n", flag.Arg(0))
		os.Exit(1)
	}

	client, err := linkedin.New(linkedin.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := client.Fetch(context.Background(), username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *rawOut:
		printJSON(doc)
	case *jsonOut:
		printJSON(linkedin.Normalize(doc))
	default:
		fmt.Println(renderView(linkedin.Normalize(doc)))
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}
