// internal/handlers/feature-request/handler.go
package featurerequest

import (
	"context"
	"time"

	stderrors "support-agent/internal/common/errors"
	"support-agent/internal/common/logger"
	"support-agent/internal/common/metrics"
	"support-agent/internal/featurelog"
)

const HandlerName = "feature-request"

const acknowledgment = `Thank you for your feature request! 🚀

Your suggestion has been logged and will be reviewed by our product team. We truly value customer feedback as it helps us improve our product.

You can expect:
- Acknowledgment within 2 business days
- Updates on feature status through our product roadmap
- Priority consideration for highly requested features

Keep the great ideas coming!`

type Handler struct {
	store  featurelog.Store
	logger logger.Logger
}

func NewHandler(store featurelog.Store, log logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Execute appends the request to the feature log, then acknowledges. The
// append is the point of the operation: if it fails, the request fails and
// no acknowledgment is produced, so feature requests are never silently
// dropped.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	entry := featurelog.Entry{
		Timestamp: time.Now().UTC(),
		Query:     input.Query,
	}

	if err := h.store.Append(ctx, entry); err != nil {
		h.logger.Error("feature log append failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, stderrors.NewFeatureLogAppendFailedError(err)
	}

	metrics.FeatureRequestsLogged.Inc()
	h.logger.Info("feature request logged", map[string]interface{}{
		"queryLength": len(input.Query),
	})

	return &Output{
		Response:        acknowledgment,
		NeedsEscalation: false,
	}, nil
}
