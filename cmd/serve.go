package cmd

import (
	"errors"
	"net/http"

	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server.",
	Long: `Serve the ranking engine and the collaborator proxies over HTTP.

Endpoints:
  POST /api/rank            Rank a supplier batch
  POST /api/forecast-price  Proxy to the price forecasting collaborator
  POST /api/calculate-cost  Proxy to the cost calculator collaborator
  GET  /api/policy/{country}  Trade-policy defaults (optional ?route=)

The collaborator endpoints shell out to the configured Python scripts, so
--scripts-dir must point at a directory containing them.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		srv := server.New(cfg)
		internal.Sugar.Infow("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			internal.LogFatal("Server stopped", err)
		}
	},
}
