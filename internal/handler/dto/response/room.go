package response

import (
	"time"

	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Capacity         int       `json:"capacity"`
	OpeningHour      int       `json:"opening_hour"`
	ClosingHour      int       `json:"closing_hour"`
	Paid             bool      `json:"paid"`
	HourlyCents      *int64    `json:"hourly_cents,omitempty"`
	HalfDayCents     *int64    `json:"half_day_cents,omitempty"`
	FullDayCents     *int64    `json:"full_day_cents,omitempty"`
	DepositCents     *int64    `json:"deposit_cents,omitempty"`
	FreeForResidents bool      `json:"free_for_residents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
