package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BielosX/wombat/pokedex/src/metrics"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server exposes cards and detail views over HTTP.
type Server struct {
	client  *pokeapi.Client
	metrics *metrics.Metrics
	sugar   *zap.SugaredLogger
}

func New(client *pokeapi.Client, m *metrics.Metrics, sugar *zap.SugaredLogger) *Server {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Server{client: client, metrics: m, sugar: sugar}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.sugar.Infof("Browse API listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.sugar.Info("Shutting down browse API")
	return httpServer.Shutdown(shutdownCtx)
}
