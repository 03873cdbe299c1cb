// Package server exposes the ranking engine and the collaborator proxies
// over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/oreforge/steelrank/external"
	"github.com/oreforge/steelrank/internal"
)

// New builds the HTTP server for the given configuration. The collaborator
// clients share one script runner configured from the same config.
func New(cfg *internal.Config) *http.Server {
	runner := &external.ScriptRunner{
		Python:     cfg.Python,
		ScriptsDir: cfg.ScriptsDir,
	}
	handler := NewRankingHandler(cfg,
		external.NewForecastClient(runner),
		external.NewCostClient(runner))

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // collaborator scripts can be slow
	}
}
