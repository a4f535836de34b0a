package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"museumguide-backend/clock"
	"museumguide-backend/models"
	"museumguide-backend/ticketing"
)

// TicketHandler drives ticket issuance and entry-gate validation. The
// database pool is optional: when present, minted tickets are recorded in an
// audit log, but validation never reads it — tickets stay bearer
// credentials checked from their own contents.
type TicketHandler struct {
	encoder   *ticketing.Encoder
	validator *ticketing.Validator
	clock     clock.Clock
	db        *pgxpool.Pool
	log       *logrus.Logger
}

func NewTicketHandler(encoder *ticketing.Encoder, validator *ticketing.Validator, clk clock.Clock, db *pgxpool.Pool, log *logrus.Logger) *TicketHandler {
	return &TicketHandler{
		encoder:   encoder,
		validator: validator,
		clock:     clk,
		db:        db,
		log:       log,
	}
}

// CreateTickets mints one or more tickets for a booking request.
func (h *TicketHandler) CreateTickets(c *gin.Context) {
	var req models.CreateTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.NumTickets
	if count == 0 {
		count = 1
	}

	tickets, err := h.encoder.IssueBatch(req.TicketCategory, req.VisitorName, req.VisitDate, count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.WithFields(logrus.Fields{
		"visitor":  req.VisitorName,
		"category": req.TicketCategory,
		"count":    len(tickets),
	}).Info("issued tickets")

	h.recordIssued(c, tickets)

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// ValidateTicket decides admissibility for one scanned QR payload.
func (h *TicketHandler) ValidateTicket(c *gin.Context) {
	var req models.ValidateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict := h.validator.Validate([]byte(req.QRData), h.clock.Now())
	if !verdict.Valid() {
		h.log.WithField("verdict", string(verdict.Code)).Info("ticket declined")
	}

	c.JSON(http.StatusOK, models.ValidateTicketResponse{
		Valid:   verdict.Valid(),
		Message: verdict.Message(),
		Record:  verdict.Record,
	})
}

// recordIssued appends minted tickets to the audit log. Failures are logged
// and ignored: the tickets are already valid on their own.
func (h *TicketHandler) recordIssued(c *gin.Context, tickets []models.IssuedTicket) {
	if h.db == nil {
		return
	}

	query := `
		INSERT INTO issued_tickets (ticket_id, visitor_name, ticket_category, visit_date, price, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, ticket := range tickets {
		_, err := h.db.Exec(c, query,
			ticket.TicketID,
			ticket.VisitorName,
			ticket.TicketCategory,
			ticket.VisitDate,
			ticket.Price,
			ticket.GeneratedAt,
		)
		if err != nil {
			h.log.WithError(err).WithField("ticket_id", ticket.TicketID).Warn("failed to record issued ticket")
		}
	}
}
