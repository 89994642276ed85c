// internal/agent/classifier/classifier.go

// Package classifier assigns a customer query to one of three fixed
// categories by keyword scoring.
package classifier

import (
	"strings"

	"support-agent/internal/models"
)

// confidenceDivisor normalizes a raw keyword count into a confidence score.
const confidenceDivisor = 3.0

// salesFloorConfidence is returned for Sales Lead when no sales keyword
// matched at all. Sales is the fall-through category, so its confidence
// floors at 0.3 instead of 0.
const salesFloorConfidence = 0.3

var technicalKeywords = []string{
	"help", "issue", "problem", "error", "bug", "crash", "broken",
	"not working", "login", "password", "installation", "performance",
	"slow", "api", "integration", "support",
}

var featureKeywords = []string{
	"feature", "request", "suggestion", "improvement", "add",
	"enhancement", "new", "would like", "could you", "implement",
	"dark mode", "ui", "ux",
}

var salesKeywords = []string{
	"price", "pricing", "cost", "buy", "purchase", "upgrade",
	"enterprise", "team", "company", "business", "trial",
	"demo", "sales", "contact",
}

// Result is the category assignment and its confidence in [0, 1].
type Result struct {
	Category   models.Category `json:"category"`
	Confidence float64         `json:"confidence"`
}

// Classifier scores text against the three keyword sets. It is stateless
// and safe for concurrent use.
type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// Classify is a total function over any string: it always returns exactly
// one of the three categories, never "unknown". Keywords match as
// case-insensitive substrings, deliberately not tokenized ("team" matches
// inside "steamroller"). Ties resolve technical first, then feature.
func (c *Classifier) Classify(text string) Result {
	textLower := strings.ToLower(text)

	techScore := countMatches(textLower, technicalKeywords)
	featureScore := countMatches(textLower, featureKeywords)
	salesScore := countMatches(textLower, salesKeywords)

	if techScore >= featureScore && techScore >= salesScore {
		return Result{
			Category:   models.CategoryTechnicalSupport,
			Confidence: normalize(techScore),
		}
	}
	if featureScore >= salesScore {
		return Result{
			Category:   models.CategoryFeatureRequest,
			Confidence: normalize(featureScore),
		}
	}

	confidence := salesFloorConfidence
	if salesScore > 0 {
		confidence = normalize(salesScore)
	}
	return Result{
		Category:   models.CategorySalesLead,
		Confidence: confidence,
	}
}

func countMatches(textLower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			count++
		}
	}
	return count
}

func normalize(score int) float64 {
	confidence := float64(score) / confidenceDivisor
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
