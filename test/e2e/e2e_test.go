// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-agent/internal/agent"
	"support-agent/internal/agent/knowledge"
	"support-agent/internal/common/config"
	"support-agent/internal/common/logger"
	"support-agent/internal/featurelog"
	featurerequest "support-agent/internal/handlers/feature-request"
	saleslead "support-agent/internal/handlers/sales-lead"
	technicalsupport "support-agent/internal/handlers/technical-support"
	"support-agent/internal/models"
	"support-agent/internal/server"
)

// newTestStack wires the full pipeline behind a real HTTP listener: file
// feature log, all three handlers, no cache, no notifier.
func newTestStack(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	log := logger.NewTestLogger(t)

	logPath := filepath.Join(t.TempDir(), "feature_requests.log")
	store, err := featurelog.NewFileStore(logPath)
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
	cfg.Server.CORS.AllowAll = true

	ts := httptest.NewServer(server.New(cfg, a, nil, log).Handler())
	t.Cleanup(ts.Close)
	return ts, logPath
}

func classify(t *testing.T, ts *httptest.Server, body map[string]interface{}) (int, models.AgentResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/classify", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out models.AgentResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestE2E_TechnicalSupportFlow(t *testing.T) {
	ts, _ := newTestStack(t)

	status, out := classify(t, ts, map[string]interface{}{
		"query": "I found a bug: the api returns an error on login",
	})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, models.CategoryTechnicalSupport, out.Classification)
	assert.InDelta(t, 1.0, out.Confidence, 0.001)
	assert.Contains(t, out.Response, "I found the following solution(s):")
	// Solutions arrive in knowledge base order: login before api.
	loginIdx := strings.Index(out.Response, "resetting your password")
	apiIdx := strings.Index(out.Response, "api.company.com/docs")
	require.GreaterOrEqual(t, loginIdx, 0)
	require.GreaterOrEqual(t, apiIdx, 0)
	assert.Less(t, loginIdx, apiIdx)
	assert.False(t, out.NeedsEscalation)
}

func TestE2E_FeatureRequestFlow(t *testing.T) {
	ts, logPath := newTestStack(t)

	status, out := classify(t, ts, map[string]interface{}{
		"query": "could you add an export improvement to the ui",
	})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, models.CategoryFeatureRequest, out.Classification)
	assert.Contains(t, out.Response, "Thank you for your feature request!")
	assert.False(t, out.NeedsEscalation)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasSuffix(line, ": could you add an export improvement to the ui"))
}

func TestE2E_SalesLeadFlow(t *testing.T) {
	ts, _ := newTestStack(t)

	t.Run("qualified enterprise lead", func(t *testing.T) {
		status, out := classify(t, ts, map[string]interface{}{
			"query":        "we'd like a demo and pricing",
			"company_name": "Globex",
			"team_size":    120,
		})
		require.Equal(t, http.StatusOK, status)

		assert.Equal(t, models.CategorySalesLead, out.Classification)
		assert.Contains(t, out.Response, "Globex")
		assert.Contains(t, out.Response, "Enterprise")
		assert.True(t, out.NeedsEscalation)
	})

	t.Run("incomplete lead asks for missing info", func(t *testing.T) {
		status, out := classify(t, ts, map[string]interface{}{
			"query": "how much does an upgrade cost",
		})
		require.Equal(t, http.StatusOK, status)

		assert.Equal(t, models.CategorySalesLead, out.Classification)
		assert.Contains(t, out.Response, "company name")
		assert.Contains(t, out.Response, "team size")
		assert.True(t, out.NeedsEscalation)
	})
}

func TestE2E_SentimentEscalation(t *testing.T) {
	ts, _ := newTestStack(t)

	status, out := classify(t, ts, map[string]interface{}{
		"query": "this is the worst, most horrible billing experience",
	})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, models.SentimentNegative, out.Sentiment)
	assert.True(t, out.NeedsEscalation)
	assert.Contains(t, out.Response, "priority support team")
}

func TestE2E_RejectsEmptyQuery(t *testing.T) {
	ts, _ := newTestStack(t)

	status, _ := classify(t, ts, map[string]interface{}{"query": "  "})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestE2E_HealthAndMetrics(t *testing.T) {
	ts, _ := newTestStack(t)

	// Generate some traffic so counters exist.
	status, _ := classify(t, ts, map[string]interface{}{"query": "password reset help"})
	require.Equal(t, http.StatusOK, status)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "agent_queries_classified_total")
}
