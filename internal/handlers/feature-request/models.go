// internal/handlers/feature-request/models.go
package featurerequest

// Input carries the raw query text to record.
type Input struct {
	Query string `json:"query"`
}

// Output is the acknowledgment and escalation decision. Feature requests
// never escalate.
type Output struct {
	Response        string `json:"response"`
	NeedsEscalation bool   `json:"needsEscalation"`
}
