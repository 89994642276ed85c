// internal/handlers/technical-support/handler.go
package technicalsupport

import (
	"context"
	"strings"

	"support-agent/internal/agent/knowledge"
	"support-agent/internal/common/logger"
	"support-agent/internal/common/metrics"
	"support-agent/internal/models"
)

const HandlerName = "technical-support"

const (
	solutionsHeader  = "I found the following solution(s):\n\n"
	solutionsClosing = "\n\nIf this doesn't resolve your issue, please let us know!"

	noSolutionResponse = "I couldn't find a specific solution in our knowledge base. Our technical support team will contact you within 24 hours to assist you personally."
)

type Handler struct {
	kb     *knowledge.Base
	logger logger.Logger
}

func NewHandler(kb *knowledge.Base, log logger.Logger) *Handler {
	return &Handler{
		kb:     kb,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Execute searches the knowledge base for matching solutions. Queries the
// knowledge base cannot answer always escalate; answered queries escalate
// only on negative sentiment.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	solutions := h.kb.Lookup(input.Query)

	if len(solutions) == 0 {
		metrics.KnowledgeBaseLookups.WithLabelValues("miss").Inc()
		h.logger.Info("no knowledge base match, escalating", map[string]interface{}{
			"queryLength": len(input.Query),
		})
		return &Output{
			Response:        noSolutionResponse,
			NeedsEscalation: true,
		}, nil
	}

	metrics.KnowledgeBaseLookups.WithLabelValues("hit").Inc()

	response := solutionsHeader + strings.Join(solutions, "\n\n") + solutionsClosing
	escalation := input.Sentiment == models.SentimentNegative

	h.logger.Info("knowledge base solutions found", map[string]interface{}{
		"solutions": len(solutions),
		"escalated": escalation,
	})

	return &Output{
		Response:        response,
		NeedsEscalation: escalation,
		SolutionsFound:  len(solutions),
	}, nil
}
