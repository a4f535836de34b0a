package ticketing

import (
	"encoding/json"
	"fmt"
	"time"

	"museumguide-backend/models"
)

// ValidityWindow is the maximum ticket age, measured from minting time.
// Older tickets are rejected as expired regardless of their visit date.
const ValidityWindow = 365 * 24 * time.Hour

type VerdictCode string

const (
	VerdictValid            VerdictCode = "VALID"
	VerdictMalformedPayload VerdictCode = "MALFORMED_PAYLOAD"
	VerdictIncompleteRecord VerdictCode = "INCOMPLETE_RECORD"
	VerdictExpiredToken     VerdictCode = "EXPIRED_TOKEN"
	VerdictStaleVisitDate   VerdictCode = "STALE_VISIT_DATE"
)

// requiredFields is checked in this order; the first absent field is the one
// reported and later fields are not examined.
var requiredFields = []string{
	"ticket_id",
	"visitor_name",
	"ticket_category",
	"visit_date",
	"generated_at",
}

// Verdict is the outcome of validating one scanned payload. Record is set
// only for VerdictValid; MissingField only for VerdictIncompleteRecord.
type Verdict struct {
	Code         VerdictCode
	MissingField string
	Record       *models.TicketRecord
}

func (v Verdict) Valid() bool {
	return v.Code == VerdictValid
}

// Message renders the user-facing admission message for this verdict.
func (v Verdict) Message() string {
	switch v.Code {
	case VerdictValid:
		return "Ticket is valid"
	case VerdictMalformedPayload:
		return "Invalid QR code format"
	case VerdictIncompleteRecord:
		return fmt.Sprintf("Invalid ticket: Missing %s", v.MissingField)
	case VerdictExpiredToken:
		return "Ticket has expired"
	case VerdictStaleVisitDate:
		return "Visit date has passed"
	}
	return "Unknown verdict"
}

// Validator decides admissibility from a scanned payload and the current
// time alone. It holds no state, so every call is independent and the same
// payload always yields the same verdict for the same clock reading.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate applies the admissibility checks in fixed order: payload shape,
// required fields, token age, visit date. The first failing check wins.
func (v *Validator) Validate(payload []byte, now time.Time) Verdict {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Verdict{Code: VerdictMalformedPayload}
	}

	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return Verdict{Code: VerdictIncompleteRecord, MissingField: name}
		}
	}

	var record models.TicketRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return Verdict{Code: VerdictMalformedPayload}
	}

	now = now.UTC()
	if now.Sub(record.GeneratedAt) > ValidityWindow {
		return Verdict{Code: VerdictExpiredToken}
	}

	visit, err := parseVisitDate(record.VisitDate)
	if err != nil {
		return Verdict{Code: VerdictMalformedPayload}
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if visit.Before(todayStart) {
		return Verdict{Code: VerdictStaleVisitDate}
	}

	return Verdict{Code: VerdictValid, Record: &record}
}

// parseVisitDate accepts the plain calendar form used by the encoder and,
// for older tickets, a full timestamp.
func parseVisitDate(value string) (time.Time, error) {
	if t, err := time.Parse(VisitDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
