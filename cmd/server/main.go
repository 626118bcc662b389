// Command server runs the route groups listed in server.services
// (ITEMDEMO_SERVER__SERVICES) in one process. Both groups are enabled by
// default; they share /items/ on different methods.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/itemdemo/internal/app"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, "itemdemo", nil); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
