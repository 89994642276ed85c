// internal/agent/sentiment/analyzer.go

// Package sentiment maps raw text to a coarse sentiment label and
// confidence via lexicon-based polarity scoring.
package sentiment

import (
	"strings"
	"unicode"

	"support-agent/internal/models"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1

	// negation flips the following word's polarity and dampens it
	negationFactor = -0.5
)

// Result carries the sentiment label and its confidence. Confidence is the
// absolute value of the polarity score, in [0, 1].
type Result struct {
	Label      models.Sentiment
	Confidence float64
}

// Analyzer scores text against a fixed polarity lexicon. The zero-cost
// construction keeps it trivially shareable across goroutines.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the polarity of text as the average polarity of lexicon
// words it contains and maps it to a label. It never fails: text with no
// scored words, or empty text, yields ("neutral", 0.0).
func (a *Analyzer) Analyze(text string) Result {
	polarity := a.Polarity(text)

	label := models.SentimentNeutral
	if polarity > positiveThreshold {
		label = models.SentimentPositive
	} else if polarity < negativeThreshold {
		label = models.SentimentNegative
	}

	confidence := polarity
	if confidence < 0 {
		confidence = -confidence
	}

	return Result{Label: label, Confidence: confidence}
}

// Polarity returns the average polarity of scored words in text, in [-1, 1].
func (a *Analyzer) Polarity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	var scored int
	negated := false

	for _, token := range tokens {
		if negators[token] {
			negated = true
			continue
		}

		score, ok := lexicon[token]
		if !ok {
			negated = false
			continue
		}

		if negated {
			score *= negationFactor
			negated = false
		}

		sum += score
		scored++
	}

	if scored == 0 {
		return 0
	}
	return sum / float64(scored)
}

// tokenize lowercases text and splits it into words, keeping apostrophes so
// contractions like "can't" survive as single tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}
