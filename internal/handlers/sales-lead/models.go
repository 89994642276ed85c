// internal/handlers/sales-lead/models.go
package saleslead

// Input is the full customer query: the sales handler is the only one that
// looks at the account metadata. CompanyName and TeamSize are pointers
// because the missing-info branch keys on presence, not on zero values.
type Input struct {
	Query       string  `json:"query"`
	CompanyName *string `json:"companyName,omitempty"`
	TeamSize    *int    `json:"teamSize,omitempty"`
}

// Output is the synthesized response and escalation decision.
type Output struct {
	Response        string `json:"response"`
	NeedsEscalation bool   `json:"needsEscalation"`
	RecommendedPlan string `json:"recommendedPlan,omitempty"`
}
