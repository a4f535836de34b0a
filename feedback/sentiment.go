// Package feedback defines the sentiment-scoring boundary for visitor
// feedback. Scoring itself is an external collaborator; this package carries
// the interface, the classification thresholds, and a neutral stand-in used
// when no scorer is wired.
package feedback

import (
	"strings"

	"museumguide-backend/models"
)

// Sentiment category constants
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Analyzer scores a piece of free text. Implementations are expected to be
// safe for concurrent use.
type Analyzer interface {
	Analyze(text string) models.SentimentScore
}

// Classify maps a polarity in [-1, 1] to a sentiment category.
func Classify(polarity float64) string {
	switch {
	case polarity > 0.1:
		return SentimentPositive
	case polarity < -0.1:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Neutral returns the score used for empty text and by the neutral analyzer.
func Neutral() models.SentimentScore {
	return models.SentimentScore{Polarity: 0, Subjectivity: 0, Sentiment: SentimentNeutral}
}

// NeutralAnalyzer scores everything as neutral. It keeps the feedback
// pipeline functional until a real scoring service is plugged in.
type NeutralAnalyzer struct{}

func (NeutralAnalyzer) Analyze(string) models.SentimentScore {
	return Neutral()
}

// Overall combines the text answers of one submission into a single score
// using the given analyzer. Submissions without any text are neutral.
func Overall(analyzer Analyzer, texts []string) models.SentimentScore {
	var nonEmpty []string
	for _, text := range texts {
		if strings.TrimSpace(text) != "" {
			nonEmpty = append(nonEmpty, text)
		}
	}
	if len(nonEmpty) == 0 {
		return Neutral()
	}
	return analyzer.Analyze(strings.Join(nonEmpty, " "))
}
