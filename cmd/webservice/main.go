package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/config"
	"github.com/villagef/splot-ani-server/internal/app"
	"github.com/villagef/splot-ani-server/internal/infrastructure/database/mongodb"
)

func main() {
	config, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app.InitLogger(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	store, err := mongodb.ConnectToMongoDB(connectCtx, config.MongoDBConfig)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	server := app.App{
		Store:  store,
		Config: config,
	}

	if err := server.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up server")
	}

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to stop server cleanly")
	}

	if err := store.Disconnect(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from the database")
	}
}
