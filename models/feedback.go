package models

import "time"

// SentimentScore is the result of scoring one piece of free text.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Sentiment    string  `json:"sentiment"`
}

// FeedbackResponse is a single answered feedback question. Rating and Text
// are both optional; text answers get a sentiment score attached.
type FeedbackResponse struct {
	Rating    int             `json:"rating,omitempty"`
	Text      string          `json:"text,omitempty"`
	Sentiment *SentimentScore `json:"sentiment,omitempty"`
}

type SubmitFeedbackRequest struct {
	VisitorName string                      `json:"visitor_name"`
	VisitDate   string                      `json:"visit_date"`
	Responses   map[string]FeedbackResponse `json:"responses" binding:"required"`
}

// Feedback is one stored submission with its overall sentiment.
type Feedback struct {
	ID               string                      `json:"id"`
	VisitorName      string                      `json:"visitor_name"`
	VisitDate        string                      `json:"visit_date"`
	Responses        map[string]FeedbackResponse `json:"responses"`
	OverallSentiment SentimentScore              `json:"overall_sentiment"`
	CreatedAt        time.Time                   `json:"created_at"`
}

type FeedbackSummary struct {
	TotalFeedback         int            `json:"total_feedback"`
	AverageSentiment      string         `json:"average_sentiment"`
	AveragePolarity       float64        `json:"average_polarity"`
	AverageSubjectivity   float64        `json:"average_subjectivity"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
}
