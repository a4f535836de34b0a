package ticketing

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"museumguide-backend/clock"
	"museumguide-backend/models"
)

// VisitDateLayout is the calendar-date format carried inside tickets.
const VisitDateLayout = "2006-01-02"

var (
	ErrVisitorNameRequired = errors.New("visitor name is required")
	ErrInvalidVisitDate    = errors.New("visit date must be in YYYY-MM-DD format")
	ErrInvalidCount        = errors.New("number of tickets must be at least 1")
)

// Encoder mints self-contained museum tickets: it assembles the record,
// assigns identity and timestamps, and renders the JSON payload into a QR
// code. It is stateless apart from the injected clock and safe for
// concurrent use.
type Encoder struct {
	prices   *PriceTable
	clock    clock.Clock
	recovery qrcode.RecoveryLevel
	size     int
}

type EncoderOption func(*Encoder)

// WithRecoveryLevel overrides the QR error-correction level. Higher levels
// tolerate more damage to the printed code at the cost of density.
func WithRecoveryLevel(level qrcode.RecoveryLevel) EncoderOption {
	return func(e *Encoder) {
		e.recovery = level
	}
}

// WithImageSize overrides the rendered image size in pixels.
func WithImageSize(px int) EncoderOption {
	return func(e *Encoder) {
		if px > 0 {
			e.size = px
		}
	}
}

func NewEncoder(prices *PriceTable, clk clock.Clock, opts ...EncoderOption) *Encoder {
	enc := &Encoder{
		prices:   prices,
		clock:    clk,
		recovery: qrcode.Low,
		size:     256,
	}
	for _, opt := range opts {
		opt(enc)
	}
	return enc
}

// IssueOne mints a single ticket. Every call produces a fresh ticket ID and
// generation timestamp, so the operation is never idempotent.
func (e *Encoder) IssueOne(category, visitorName, visitDate string) (models.IssuedTicket, error) {
	if err := validateIssueInput(visitorName, visitDate); err != nil {
		return models.IssuedTicket{}, err
	}
	return e.mint(category, visitorName, visitDate)
}

// IssueBatch mints count tickets sharing category, visitor name, visit date
// and price, each with its own ticket ID and generation timestamp. Input is
// checked up front so a bad request never mints a partial batch.
func (e *Encoder) IssueBatch(category, visitorName, visitDate string, count int) ([]models.IssuedTicket, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if err := validateIssueInput(visitorName, visitDate); err != nil {
		return nil, err
	}

	tickets := make([]models.IssuedTicket, 0, count)
	for i := 0; i < count; i++ {
		ticket, err := e.mint(category, visitorName, visitDate)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (e *Encoder) mint(category, visitorName, visitDate string) (models.IssuedTicket, error) {
	now := e.clock.Now()

	record := models.TicketRecord{
		TicketID:       uuid.NewString(),
		VisitorName:    visitorName,
		TicketCategory: category,
		VisitDate:      visitDate,
		PurchaseDate:   now,
		Price:          e.prices.PriceFor(category),
		GeneratedAt:    now,
	}

	payload, err := EncodePayload(record)
	if err != nil {
		return models.IssuedTicket{}, fmt.Errorf("encode ticket payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), e.recovery, e.size)
	if err != nil {
		return models.IssuedTicket{}, fmt.Errorf("render ticket QR code: %w", err)
	}

	return models.IssuedTicket{
		TicketRecord: record,
		QRCode:       base64.StdEncoding.EncodeToString(png),
	}, nil
}

// EncodePayload serializes a ticket record into the stable JSON form embedded
// in the QR code. Decoding this payload reproduces the record exactly.
func EncodePayload(record models.TicketRecord) ([]byte, error) {
	return json.Marshal(record)
}

func validateIssueInput(visitorName, visitDate string) error {
	if visitorName == "" {
		return ErrVisitorNameRequired
	}
	if _, err := time.Parse(VisitDateLayout, visitDate); err != nil {
		return ErrInvalidVisitDate
	}
	return nil
}
