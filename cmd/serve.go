package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/server"
)

// serveCmd runs the HTTP submission handler.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prayer submission API",
	Long: `Run the HTTP handler behind the direct dispatch strategy.

The handler re-validates every submission and forwards accepted ones to the
webhook configured via ` + config.EnvWebhookURL + `. It answers 200 only when
the webhook confirmed the prayer; upstream failures surface as 500 so merit
is never credited for a wish the sink never recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logging.ServerConfig())

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.WebhookURL == "" {
			// Still serve (healthz reports unhealthy), but say so upfront.
			logging.Logger().Warn("webhook sink not configured; submissions will fail",
				"env", config.EnvWebhookURL)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, Version).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
