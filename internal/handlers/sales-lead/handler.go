// internal/handlers/sales-lead/handler.go
package saleslead

import (
	"context"
	"fmt"
	"strings"

	"support-agent/internal/common/logger"
)

const HandlerName = "sales-lead"

const (
	PlanEnterprise   = "Enterprise"
	PlanProfessional = "Professional"
	PlanStarter      = "Starter"
)

const missingInfoTemplate = `Thank you for your interest in our product! 🎯

To provide you with the best pricing and solution recommendations, could you please share your:
%s

This helps us:
- Customize the perfect plan for your needs
- Provide accurate pricing information
- Connect you with the right specialist
- Expedite the onboarding process

You can reply with this information or schedule a call with our sales team.`

const qualifiedTemplate = `Excellent! Thank you for your interest! 🎉

Company: %s
Team Size: %d

Based on your team size, I can recommend our %s plan.

Our sales specialist will contact you within 4 hours to:
- Provide a personalized demo
- Discuss pricing options
- Answer any technical questions
- Set up a trial if appropriate

Looking forward to helping %s succeed! 🚀`

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Execute qualifies a sales lead. Incomplete leads get a request for the
// missing fields and escalate to a human; complete leads get a plan
// recommendation and escalate only above the large-team threshold.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	var missing []string
	if input.CompanyName == nil {
		missing = append(missing, "company name")
	}
	if input.TeamSize == nil {
		missing = append(missing, "team size")
	}

	if len(missing) > 0 {
		h.logger.Info("sales lead missing qualification info", map[string]interface{}{
			"missing": missing,
		})
		return &Output{
			Response:        fmt.Sprintf(missingInfoTemplate, strings.Join(missing, ", ")),
			NeedsEscalation: true,
		}, nil
	}

	teamSize := *input.TeamSize
	plan := h.recommendPlan(teamSize)
	escalation := teamSize > h.config.EscalationTeamSize

	h.logger.Info("sales lead qualified", map[string]interface{}{
		"teamSize":  teamSize,
		"plan":      plan,
		"escalated": escalation,
	})

	return &Output{
		Response:        fmt.Sprintf(qualifiedTemplate, *input.CompanyName, teamSize, plan, *input.CompanyName),
		NeedsEscalation: escalation,
		RecommendedPlan: plan,
	}, nil
}

func (h *Handler) recommendPlan(teamSize int) string {
	switch {
	case teamSize > h.config.EnterpriseTeamSize:
		return PlanEnterprise
	case teamSize > h.config.ProfessionalTeamSize:
		return PlanProfessional
	default:
		return PlanStarter
	}
}
