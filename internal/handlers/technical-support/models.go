// internal/handlers/technical-support/models.go
package technicalsupport

import "support-agent/internal/models"

// Input carries the raw query text and the sentiment already computed by
// the orchestrator.
type Input struct {
	Query     string           `json:"query"`
	Sentiment models.Sentiment `json:"sentiment"`
}

// Output is the synthesized response and escalation decision.
type Output struct {
	Response        string `json:"response"`
	NeedsEscalation bool   `json:"needsEscalation"`
	SolutionsFound  int    `json:"solutionsFound"`
}
