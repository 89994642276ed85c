// internal/models/query.go
package models

// Category is one of the three fixed classification labels.
type Category string

const (
	CategoryTechnicalSupport Category = "Technical Support"
	CategoryFeatureRequest   Category = "Product Feature Request"
	CategorySalesLead        Category = "Sales Lead"
)

// Sentiment is a coarse sentiment label derived from polarity.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// CustomerQuery is the inbound request. CompanyName and TeamSize are
// pointers so that "absent" is distinguishable from the zero value; the
// sales lead handler branches on presence, not truthiness.
type CustomerQuery struct {
	Query       string  `json:"query"`
	CompanyName *string `json:"company_name,omitempty"`
	TeamSize    *int    `json:"team_size,omitempty"`
}

// AgentResponse is the outbound result. Confidence is the classifier's
// normalized keyword-match score, not a calibrated probability.
type AgentResponse struct {
	Classification  Category  `json:"classification"`
	Response        string    `json:"response"`
	NeedsEscalation bool      `json:"needs_escalation"`
	Sentiment       Sentiment `json:"sentiment"`
	Confidence      float64   `json:"confidence"`
}
