// internal/handlers/sales-lead/config.go
package saleslead

// Config holds the plan tier thresholds. All comparisons are strict (>),
// so a negative team size always lands on the Starter tier without
// escalation.
type Config struct {
	EnterpriseTeamSize   int
	ProfessionalTeamSize int
	EscalationTeamSize   int
}

func LoadConfig() *Config {
	return &Config{
		EnterpriseTeamSize:   50,
		ProfessionalTeamSize: 10,
		EscalationTeamSize:   100,
	}
}
