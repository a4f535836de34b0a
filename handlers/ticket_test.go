package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museumguide-backend/clock"
	"museumguide-backend/models"
	"museumguide-backend/ticketing"
)

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTicketRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	clk := clock.NewFixed(testNow)
	encoder := ticketing.NewEncoder(ticketing.DefaultPriceTable(), clk)
	handler := NewTicketHandler(encoder, ticketing.NewValidator(), clk, nil, newTestLogger())

	router := gin.New()
	router.POST("/api/museum/tickets", handler.CreateTickets)
	router.POST("/api/museum/tickets/validate", handler.ValidateTicket)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTickets(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets", models.CreateTicketsRequest{
		VisitorName:    "Alice Smith",
		TicketCategory: "Adult",
		VisitDate:      "2025-06-11",
		NumTickets:     2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tickets []models.IssuedTicket `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tickets, 2)

	assert.NotEqual(t, resp.Tickets[0].TicketID, resp.Tickets[1].TicketID)
	for _, ticket := range resp.Tickets {
		assert.Equal(t, 25.00, ticket.Price)
		assert.Equal(t, "Alice Smith", ticket.VisitorName)
		assert.NotEmpty(t, ticket.QRCode)
	}

	// Each minted ticket validates on its own at the moment of issuance.
	for _, ticket := range resp.Tickets {
		payload, err := ticketing.EncodePayload(ticket.TicketRecord)
		require.NoError(t, err)

		validateRec := doJSON(t, router, http.MethodPost, "/api/museum/tickets/validate", models.ValidateTicketRequest{
			QRData: string(payload),
		})
		require.Equal(t, http.StatusOK, validateRec.Code)

		var verdict models.ValidateTicketResponse
		require.NoError(t, json.Unmarshal(validateRec.Body.Bytes(), &verdict))
		assert.True(t, verdict.Valid)
		assert.Equal(t, "Ticket is valid", verdict.Message)
		require.NotNil(t, verdict.Record)
		assert.Equal(t, ticket.TicketID, verdict.Record.TicketID)
	}
}

func TestCreateTickets_DefaultsToOneTicket(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets", models.CreateTicketsRequest{
		VisitorName:    "Bob",
		TicketCategory: "Student",
		VisitDate:      "2025-07-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tickets []models.IssuedTicket `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, 15.00, resp.Tickets[0].Price)
}

func TestCreateTickets_MissingFields(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets", map[string]any{
		"ticket_category": "Adult",
		"visit_date":      "2025-06-11",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTickets_NegativeCount(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets", models.CreateTicketsRequest{
		VisitorName:    "Bob",
		TicketCategory: "Adult",
		VisitDate:      "2025-06-11",
		NumTickets:     -3,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateTicket_Malformed(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets/validate", models.ValidateTicketRequest{
		QRData: "not a ticket",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.ValidateTicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Invalid QR code format", verdict.Message)
	assert.Nil(t, verdict.Record)
}

func TestValidateTicket_Expired(t *testing.T) {
	router := newTicketRouter()

	record := models.TicketRecord{
		TicketID:       "t1",
		VisitorName:    "Alice",
		TicketCategory: "Adult",
		VisitDate:      "2099-01-01",
		PurchaseDate:   testNow.Add(-400 * 24 * time.Hour),
		Price:          25.00,
		GeneratedAt:    testNow.Add(-400 * 24 * time.Hour),
	}
	payload, err := ticketing.EncodePayload(record)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets/validate", models.ValidateTicketRequest{
		QRData: string(payload),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.ValidateTicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Ticket has expired", verdict.Message)
}

func TestValidateTicket_MissingQRData(t *testing.T) {
	router := newTicketRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/museum/tickets/validate", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
