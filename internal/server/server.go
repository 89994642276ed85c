// internal/server/server.go

// Package server exposes the classification agent over HTTP: a banner
// endpoint, a health check, POST /classify, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"support-agent/internal/agent"
	"support-agent/internal/common/config"
	"support-agent/internal/common/errors"
	"support-agent/internal/common/logger"
	"support-agent/internal/models"
	"support-agent/internal/notify"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBody caps the /classify request body at 1 MiB.
const maxRequestBody = 1 << 20

// notifyTimeout bounds the best-effort escalation alert; the client response
// never waits on it.
const notifyTimeout = 10 * time.Second

type Server struct {
	cfg      *config.Config
	agent    *agent.Agent
	notifier *notify.Notifier
	errs     *errors.HTTPHandler
	logger   logger.Logger
	http     *http.Server
}

// New assembles the HTTP server. notifier may be nil when notifications are
// disabled.
func New(cfg *config.Config, a *agent.Agent, notifier *notify.Notifier, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		agent:    a,
		notifier: notifier,
		errs:     errors.NewHTTPHandler(log),
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", withDuration("root", s.handleRoot))
	mux.HandleFunc("/health", withDuration("health", s.handleHealth))
	mux.HandleFunc("/classify", withDuration("classify", s.handleClassify))
	mux.Handle("/metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      withRequestID(withLogging(s.logger, withCORS(cfg.Server.CORS, mux))),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.http.Addr,
	})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// The default mux routes every unknown path here.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer Service Agent API",
		"version": s.cfg.App.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.cfg.App.Version,
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.errs.WriteError(w, errors.NewInvalidRequestError("failed to read request body"))
		return
	}

	if err := validateClassifyRequest(body); err != nil {
		s.errs.WriteError(w, errors.NewInvalidRequestError(err.Error()))
		return
	}

	var query models.CustomerQuery
	if err := json.Unmarshal(body, &query); err != nil {
		s.errs.WriteError(w, errors.NewInvalidRequestError(err.Error()))
		return
	}

	query.Query = strings.TrimSpace(query.Query)
	if query.Query == "" {
		s.errs.WriteError(w, errors.NewEmptyQueryError())
		return
	}

	resp, err := s.agent.Process(r.Context(), query)
	if err != nil {
		s.errs.WriteError(w, err)
		return
	}

	if resp.NeedsEscalation {
		s.notifyEscalation(query, resp)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// notifyEscalation fires the alert in the background so the customer response
// is never delayed by AWS round-trips.
func (s *Server) notifyEscalation(query models.CustomerQuery, resp *models.AgentResponse) {
	if s.notifier == nil {
		return
	}

	alert := notify.Alert{
		Query:          query.Query,
		Classification: resp.Classification,
		Sentiment:      resp.Sentiment,
		Confidence:     resp.Confidence,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if _, err := s.notifier.SendEscalationAlert(ctx, alert); err != nil {
			s.logger.Warn("escalation alert not delivered", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
