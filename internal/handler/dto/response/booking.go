package response

import (
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/usecase/commands"
	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomName      string    `json:"room_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	Date          time.Time `json:"date"`
	Slots         []string  `json:"slots"`
	Status        string    `json:"status"`
	PriceCents    int64     `json:"price_cents"`
	PricingMethod string    `json:"pricing_method"`
	DepositCents  int64     `json:"deposit_cents"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	Date       time.Time `json:"date"`
	Slots      []string  `json:"slots"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuoteResponse struct {
	TotalCents   int64  `json:"total_cents"`
	Method       string `json:"method"`
	UnitsCharged int    `json:"units_charged"`
	UnitCents    int64  `json:"unit_cents"`
	DepositCents int64  `json:"deposit_cents"`
}

type FailedOccurrenceResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type BulkCreateResponse struct {
	Requested int                        `json:"requested"`
	Created   []*BookingResponse         `json:"created"`
	Failed    []FailedOccurrenceResponse `json:"failed"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, item)
	return resp
}

func FromQuote(quote *booking.PriceQuote) *QuoteResponse {
	return &QuoteResponse{
		TotalCents:   quote.TotalCents,
		Method:       quote.Method.String(),
		UnitsCharged: quote.UnitsCharged,
		UnitCents:    quote.UnitCents,
		DepositCents: quote.DepositCents,
	}
}

func FromBulkResult(result *commands.BulkCreateResult) *BulkCreateResponse {
	created := make([]*BookingResponse, len(result.Created))
	for i, view := range result.Created {
		created[i] = FromBookingView(view)
	}

	failed := make([]FailedOccurrenceResponse, len(result.Failed))
	for i, f := range result.Failed {
		failed[i] = FailedOccurrenceResponse{
			Date:   f.Date.Format("2006-01-02"),
			Reason: f.Reason,
		}
	}

	return &BulkCreateResponse{
		Requested: result.Requested,
		Created:   created,
		Failed:    failed,
	}
}
