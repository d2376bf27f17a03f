package http

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/qqlabs/market-intel/internal/config"
	"github.com/qqlabs/market-intel/internal/service"
	"github.com/qqlabs/market-intel/internal/transport/http/dto"
)

// Marketplace price list shown on the agent card.
var servicePrices = map[string]string{
	service.ServiceQuickScan: "$0.05",
	service.ServiceSlippage:  "$0.25",
	service.ServiceDeepDive:  "$1.0",
}

// Server represents the HTTP transport layer.
type Server struct {
	svc service.Service
	mux *http.ServeMux
	log zerolog.Logger

	graceTimeout      time.Duration
	readHeaderTimeout time.Duration
	requestTimeout    time.Duration

	agentName    string
	agentVersion string
	profileURL   string
}

// NewServer creates a new HTTP server with registered routes.
func NewServer(svc service.Service, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
		log: log,

		graceTimeout:      cfg.GraceTimeout,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		requestTimeout:    cfg.RequestTimeout,

		agentName:    cfg.AgentName,
		agentVersion: cfg.AgentVersion,
		profileURL:   cfg.ProfileURL,
	}

	s.mux.HandleFunc("/api/v1/acp/service", s.handleService)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleRoot)

	return s, nil
}

// ListenAndServe starts the HTTP server and enables graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.logMiddleware(s.mux),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		s.log.Info().Str("addr", addr).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "srv.ListenAndServe")
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-stop:
		case <-ctx.Done():
			return nil
		}
		s.log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "srv.Shutdown")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info().Msg("server stopped gracefully")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, dto.Health{
		Status:    "healthy",
		Agent:     s.agentName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" on ServeMux catches everything without a better match.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.AgentCard{
		Agent:    s.agentName,
		Version:  s.agentVersion,
		Services: servicePrices,
		Profile:  s.profileURL,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("write response")
	}
}

// logMiddleware logs each HTTP request and the time taken to process it.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
