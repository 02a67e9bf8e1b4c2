package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"groove/internal/catalog"
	"groove/internal/logging"
	"groove/internal/musicbrainz"
	"groove/internal/orders"
	"groove/internal/server"
	"groove/internal/store"
)

// newServeCommand runs the daemon in the foreground, equivalent to grooved.
func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the groove daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			enricher, err := musicbrainz.New(cfg.MusicBrainz)
			if err != nil {
				return err
			}

			records := catalog.NewStore(st.DB())
			catalogSvc := catalog.NewService(records, enricher, logger)
			orderSvc := orders.NewService(orders.NewStore(st.DB(), records), records, logger)

			srv, err := server.New(cfg, st, catalogSvc, orderSvc, logger)
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := srv.Start(runCtx); err != nil {
				return err
			}
			<-runCtx.Done()
			srv.Stop()
			return nil
		},
	}
}
