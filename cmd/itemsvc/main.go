// Command itemsvc runs the item creation service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/itemdemo/internal/app"
	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, "itemsvc", []string{config.ServiceItems}); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("itemsvc stopped")
	}
}
