package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"museumguide-backend/clock"
	"museumguide-backend/feedback"
	"museumguide-backend/models"
)

type FeedbackHandler struct {
	db       *pgxpool.Pool
	analyzer feedback.Analyzer
	clock    clock.Clock
	log      *logrus.Logger
}

func NewFeedbackHandler(db *pgxpool.Pool, analyzer feedback.Analyzer, clk clock.Clock, log *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{db: db, analyzer: analyzer, clock: clk, log: log}
}

// SubmitFeedback scores the text answers of a submission and stores it.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feedback storage is not configured"})
		return
	}

	var req models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback data"})
		return
	}

	var texts []string
	for question, answer := range req.Responses {
		if answer.Text != "" {
			score := h.analyzer.Analyze(answer.Text)
			answer.Sentiment = &score
			req.Responses[question] = answer
			texts = append(texts, answer.Text)
		}
	}

	entry := models.Feedback{
		ID:               uuid.NewString(),
		VisitorName:      req.VisitorName,
		VisitDate:        req.VisitDate,
		Responses:        req.Responses,
		OverallSentiment: feedback.Overall(h.analyzer, texts),
		CreatedAt:        h.clock.Now(),
	}

	responsesJSON, err := json.Marshal(entry.Responses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode feedback"})
		return
	}

	query := `
		INSERT INTO feedback (id, visitor_name, visit_date, responses, overall_polarity, overall_subjectivity, overall_sentiment, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8)
	`

	_, err = h.db.Exec(c, query,
		entry.ID,
		entry.VisitorName,
		entry.VisitDate,
		responsesJSON,
		entry.OverallSentiment.Polarity,
		entry.OverallSentiment.Subjectivity,
		entry.OverallSentiment.Sentiment,
		entry.CreatedAt,
	)
	if err != nil {
		h.log.WithError(err).Error("failed to store feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store feedback"})
		return
	}

	h.log.WithField("feedback_id", entry.ID).Info("feedback stored")

	c.JSON(http.StatusOK, gin.H{"success": true, "feedback": entry})
}

// GetSummary aggregates all stored feedback.
func (h *FeedbackHandler) GetSummary(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feedback storage is not configured"})
		return
	}

	query := `
		SELECT overall_sentiment, COUNT(*), AVG(overall_polarity), AVG(overall_subjectivity)
		FROM feedback
		GROUP BY overall_sentiment
	`

	rows, err := h.db.Query(c, query)
	if err != nil {
		h.log.WithError(err).Error("failed to query feedback summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	summary := models.FeedbackSummary{
		AverageSentiment: feedback.SentimentNeutral,
		SentimentDistribution: map[string]int{
			feedback.SentimentPositive: 0,
			feedback.SentimentNeutral:  0,
			feedback.SentimentNegative: 0,
		},
	}

	var polaritySum, subjectivitySum float64
	for rows.Next() {
		var sentiment string
		var count int
		var avgPolarity, avgSubjectivity float64
		if err := rows.Scan(&sentiment, &count, &avgPolarity, &avgSubjectivity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan feedback summary"})
			return
		}
		summary.SentimentDistribution[sentiment] = count
		summary.TotalFeedback += count
		polaritySum += avgPolarity * float64(count)
		subjectivitySum += avgSubjectivity * float64(count)
	}

	if summary.TotalFeedback > 0 {
		summary.AveragePolarity = polaritySum / float64(summary.TotalFeedback)
		summary.AverageSubjectivity = subjectivitySum / float64(summary.TotalFeedback)

		best := 0
		for sentiment, count := range summary.SentimentDistribution {
			if count > best {
				best = count
				summary.AverageSentiment = sentiment
			}
		}
	}

	c.JSON(http.StatusOK, summary)
}
