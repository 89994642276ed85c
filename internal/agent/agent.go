// internal/agent/agent.go

// Package agent sequences sentiment analysis, classification, handler
// dispatch, and the global escalation override.
package agent

import (
	"context"
	"fmt"
	"time"

	"support-agent/internal/agent/classifier"
	"support-agent/internal/agent/sentiment"
	"support-agent/internal/common/logger"
	"support-agent/internal/common/metrics"
	"support-agent/internal/common/observability"
	featurerequest "support-agent/internal/handlers/feature-request"
	saleslead "support-agent/internal/handlers/sales-lead"
	technicalsupport "support-agent/internal/handlers/technical-support"
	"support-agent/internal/models"
)

// escalationNotice is appended when strongly negative sentiment forces the
// escalation flag regardless of the handler's own decision.
const escalationNotice = "\n\nNote: Due to the nature of your concern, this has been escalated to our priority support team."

// sentimentOverrideConfidence is the minimum sentiment confidence for the
// negative-sentiment escalation override.
const sentimentOverrideConfidence = 0.5

const (
	escalationReasonHandler   = "handler"
	escalationReasonSentiment = "sentiment"
)

type Agent struct {
	sentiment  *sentiment.Analyzer
	classifier *classifier.Classifier
	technical  *technicalsupport.Handler
	feature    *featurerequest.Handler
	sales      *saleslead.Handler
	cache      *ClassificationCache
	obs        *observability.Observability
	logger     logger.Logger
}

// New wires the pipeline. cache and obs may be nil.
func New(
	technical *technicalsupport.Handler,
	feature *featurerequest.Handler,
	sales *saleslead.Handler,
	cache *ClassificationCache,
	obs *observability.Observability,
	log logger.Logger,
) *Agent {
	return &Agent{
		sentiment:  sentiment.NewAnalyzer(),
		classifier: classifier.New(),
		technical:  technical,
		feature:    feature,
		sales:      sales,
		cache:      cache,
		obs:        obs,
		logger:     log.WithFields(map[string]interface{}{"component": "agent"}),
	}
}

// Process classifies the query and synthesizes the response. Sentiment and
// classification are pure functions of the query text; the only side effect
// is the feature-request log append inside the feature handler.
func (a *Agent) Process(ctx context.Context, query models.CustomerQuery) (*models.AgentResponse, error) {
	start := time.Now()

	sent := a.sentiment.Analyze(query.Query)
	cls := a.classify(ctx, query.Query)

	response, escalation, err := a.dispatch(ctx, query, cls.Category, sent.Label)
	if err != nil {
		return nil, err
	}

	if escalation {
		metrics.QueriesEscalated.WithLabelValues(escalationReasonHandler).Inc()
	}

	// Force escalation for very negative sentiment
	if sent.Label == models.SentimentNegative && sent.Confidence > sentimentOverrideConfidence {
		escalation = true
		response += escalationNotice
		metrics.QueriesEscalated.WithLabelValues(escalationReasonSentiment).Inc()
	}

	metrics.QueriesClassified.WithLabelValues(string(cls.Category)).Inc()
	if a.obs != nil {
		a.obs.RecordQueryProcessed(ctx, string(cls.Category), escalation)
		a.obs.RecordQueryDuration(ctx, time.Since(start), string(cls.Category))
	}

	a.logger.Info("query processed", map[string]interface{}{
		"classification": string(cls.Category),
		"confidence":     cls.Confidence,
		"sentiment":      string(sent.Label),
		"escalated":      escalation,
		"durationMs":     time.Since(start).Milliseconds(),
	})

	return &models.AgentResponse{
		Classification:  cls.Category,
		Response:        response,
		NeedsEscalation: escalation,
		Sentiment:       sent.Label,
		Confidence:      cls.Confidence,
	}, nil
}

func (a *Agent) classify(ctx context.Context, text string) classifier.Result {
	if a.cache == nil {
		return a.classifier.Classify(text)
	}

	if result, ok := a.cache.Get(ctx, text); ok {
		metrics.ClassificationCacheHits.WithLabelValues("hit").Inc()
		return result
	}
	metrics.ClassificationCacheHits.WithLabelValues("miss").Inc()

	result := a.classifier.Classify(text)
	a.cache.Set(ctx, text, result)
	return result
}

func (a *Agent) dispatch(ctx context.Context, query models.CustomerQuery, category models.Category, sent models.Sentiment) (string, bool, error) {
	switch category {
	case models.CategoryTechnicalSupport:
		out, err := a.technical.Execute(ctx, &technicalsupport.Input{
			Query:     query.Query,
			Sentiment: sent,
		})
		if err != nil {
			return "", false, err
		}
		return out.Response, out.NeedsEscalation, nil

	case models.CategoryFeatureRequest:
		out, err := a.feature.Execute(ctx, &featurerequest.Input{Query: query.Query})
		if err != nil {
			return "", false, err
		}
		return out.Response, out.NeedsEscalation, nil

	case models.CategorySalesLead:
		out, err := a.sales.Execute(ctx, &saleslead.Input{
			Query:       query.Query,
			CompanyName: query.CompanyName,
			TeamSize:    query.TeamSize,
		})
		if err != nil {
			return "", false, err
		}
		return out.Response, out.NeedsEscalation, nil

	default:
		return "", false, fmt.Errorf("unknown classification %q", category)
	}
}
