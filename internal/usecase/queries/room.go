package queries

import (
	"context"
	"time"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomView struct {
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

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}
