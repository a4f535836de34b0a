package models

import (
	"time"
)

// Ticket category constants
const (
	CategoryAdult   = "Adult"
	CategoryChild   = "Child"
	CategorySenior  = "Senior"
	CategoryStudent = "Student"
	CategoryFamily  = "Family"
	CategoryGroup   = "Group"
)

// TicketRecord is the self-contained record embedded in every ticket QR code.
// Once minted it is never mutated; validation reads it back from the payload
// alone, without any database lookup.
type TicketRecord struct {
	TicketID       string    `json:"ticket_id"`
	VisitorName    string    `json:"visitor_name"`
	TicketCategory string    `json:"ticket_category"`
	VisitDate      string    `json:"visit_date"` // YYYY-MM-DD
	PurchaseDate   time.Time `json:"purchase_date"`
	Price          float64   `json:"price"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// IssuedTicket is one minted ticket returned to the booking caller.
type IssuedTicket struct {
	TicketRecord
	// QRCode is the rendered QR image as a base64-encoded PNG.
	QRCode string `json:"qr_code"`
}

type CreateTicketsRequest struct {
	VisitorName    string `json:"visitor_name" binding:"required"`
	TicketCategory string `json:"ticket_category" binding:"required"`
	VisitDate      string `json:"visit_date" binding:"required"`
	NumTickets     int    `json:"num_tickets"`
}

type ValidateTicketRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

type ValidateTicketResponse struct {
	Valid   bool          `json:"valid"`
	Message string        `json:"message"`
	Record  *TicketRecord `json:"record,omitempty"`
}
