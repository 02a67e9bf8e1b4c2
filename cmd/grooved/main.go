// Command grooved runs the groove record store daemon: it opens the store,
// wires the catalog, order, and enrichment services, and serves the HTTP
// API until interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"groove/internal/catalog"
	"groove/internal/config"
	"groove/internal/logging"
	"groove/internal/musicbrainz"
	"groove/internal/orders"
	"groove/internal/server"
	"groove/internal/store"
)

func main() {
	configPath := flag.String("config", "", "configuration file path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		logger.Error("open store", logging.Error(err))
		return
	}
	defer st.Close()

	enricher, err := musicbrainz.New(cfg.MusicBrainz)
	if err != nil {
		logger.Error("init musicbrainz client", logging.Error(err))
		return
	}

	records := catalog.NewStore(st.DB())
	catalogSvc := catalog.NewService(records, enricher, logger)
	orderSvc := orders.NewService(orders.NewStore(st.DB(), records), records, logger)

	srv, err := server.New(cfg, st, catalogSvc, orderSvc, logger)
	if err != nil {
		logger.Error("create server", logging.Error(err))
		return
	}
	if err := srv.Start(ctx); err != nil {
		logger.Error("start server", logging.Error(err))
		return
	}

	<-ctx.Done()
	srv.Stop()
	logger.Info("grooved shutting down")
}
