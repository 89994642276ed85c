package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"support-agent/internal/agent"
	"support-agent/internal/agent/knowledge"
	"support-agent/internal/common/config"
	"support-agent/internal/common/errors"
	"support-agent/internal/common/logger"
	"support-agent/internal/featurelog"
	featurerequest "support-agent/internal/handlers/feature-request"
	saleslead "support-agent/internal/handlers/sales-lead"
	technicalsupport "support-agent/internal/handlers/technical-support"
	"support-agent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := logger.NewTestLogger(t)

	store, err := featurelog.NewFileStore(filepath.Join(t.TempDir(), "feature_requests.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	a := agent.New(
		technicalsupport.NewHandler(knowledge.Default(), log),
		featurerequest.NewHandler(store, log),
		saleslead.NewHandler(saleslead.LoadConfig(), log),
		nil,
		nil,
		log,
	)

	cfg := &config.Config{}
	cfg.App.Version = "1.0.0"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	return New(cfg, a, nil, log)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Root(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer Service Agent API")
	assert.Contains(t, rec.Body.String(), "1.0.0")
}

func TestServer_UnknownPath(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestServer_Classify(t *testing.T) {
	s := newTestServer(t)

	t.Run("technical query", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/classify",
			`{"query": "I can't login to my account"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `"classification":"Technical Support"`)
		assert.Contains(t, body, `"needs_escalation"`)
		assert.Contains(t, body, `"sentiment"`)
		assert.Contains(t, body, `"confidence"`)
	})

	t.Run("sales query with optional fields", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/classify",
			`{"query": "pricing for my company", "company_name": "TechCorp", "team_size": 500}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `"classification":"Sales Lead"`)
		assert.Contains(t, body, "TechCorp")
		assert.Contains(t, body, "Enterprise")
	})

	t.Run("query is trimmed before processing", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/classify",
			`{"query": "   add dark mode please   "}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"classification":"Product Feature Request"`)
	})
}

func TestServer_Classify_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty query", `{"query": ""}`, string(errors.ErrCodeEmptyQuery)},
		{"whitespace query", `{"query": "   "}`, string(errors.ErrCodeEmptyQuery)},
		{"missing query", `{"company_name": "TechCorp"}`, string(errors.ErrCodeInvalidRequest)},
		{"wrong query type", `{"query": 42}`, string(errors.ErrCodeInvalidRequest)},
		{"wrong team_size type", `{"query": "pricing", "team_size": "lots"}`, string(errors.ErrCodeInvalidRequest)},
		{"malformed json", `{"query": `, string(errors.ErrCodeInvalidRequest)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/classify", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestServer_Classify_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/classify", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/classify", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow all", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.CORS.AllowAll = true
		wildcard := New(cfg, nil, nil, logger.NewTestLogger(t))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://anywhere.example.com")
		rec := httptest.NewRecorder()
		wildcard.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(t)

	t.Run("generated when absent", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/health", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("echoed when provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestServer_ClassifyResponseShape(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/classify",
		`{"query": "everything is terrible, awful and horrible with my payment"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"sentiment":"`+string(models.SentimentNegative)+`"`)
	assert.Contains(t, body, `"needs_escalation":true`)
	assert.Contains(t, body, "priority support team")
}
