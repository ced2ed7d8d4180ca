// Command getmoviecastmembers is the Lambda function URL handler that serves the cast of a movie,
// optionally narrowed by a role or actor name prefix and enriched with movie facts.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/moviecast/internal/app"
	"github.com/jacentio/moviecast/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	lambda.Start(a.Handler.GetCast)
}
