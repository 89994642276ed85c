// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_queries_classified_total",
			Help: "Total number of queries classified by category",
		},
		[]string{"category"},
	)

	QueriesEscalated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_queries_escalated_total",
			Help: "Total number of queries flagged for escalation by reason",
		},
		[]string{"reason"},
	)

	KnowledgeBaseLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_knowledge_base_lookups_total",
			Help: "Total number of knowledge base lookups by result",
		},
		[]string{"result"},
	)

	FeatureRequestsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agent_feature_requests_logged_total",
			Help: "Total number of feature requests appended to the log store",
		},
	)

	ClassificationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_classification_cache_total",
			Help: "Classification cache lookups by result",
		},
		[]string{"result"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_request_duration_seconds",
			Help: "Duration of request processing in seconds",
		},
		[]string{"endpoint"},
	)
)
