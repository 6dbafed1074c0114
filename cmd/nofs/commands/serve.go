package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"nofs/internal/config"
	"nofs/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Long: `Serve the game engine over HTTP. Games live in memory; every
action is a POST against /api/games/{id}/actions. See /api/routes for
the full surface.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if addr != "" {
				cfg.Addr = addr
			}

			app, err := server.NewApp(cfg, log.Logger)
			if err != nil {
				return err
			}

			srv := &http.Server{Addr: cfg.Addr, Handler: app.Handler()}
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info().Str("addr", cfg.Addr).Msg("nofs API listening")
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from NOFS_ADDR or :8471)")
	return cmd
}
