package booking

import (
	"errors"

	"chartrettes-rooms/internal/domain/room"
)

var (
	ErrNoTimeSlots          = errors.New("at least one time slot is required")
	ErrPricingNotConfigured = errors.New("pricing not configured for requested duration")
)

// PriceQuote is the output of the pricing engine: the total, the tier it was
// computed with, and the deposit. Deposits are refundable security holds, not
// usage fees, so they are reported for every tier including free bookings.
type PriceQuote struct {
	TotalCents   int64
	Method       PricingMethod
	UnitsCharged int
	UnitCents    int64
	DepositCents int64
}

// ComputePrice quotes one day's booking of a room. Tiers are evaluated from
// the largest granularity down, first match wins, so a day-long booking is
// charged the flat day rate rather than a sum of hourly slots. The engine
// never compares prices; it follows duration thresholds strictly.
//
//  1. free: unpaid room, municipal requester, or a Chartrettes resident when
//     the room is free for residents
//  2. full-day: total hours reach the room's full-day threshold
//  3. half-day: total hours reach the room's half-day threshold
//  4. hourly: everything else
func ComputePrice(tariff room.Tariff, requester Requester, slots []TimeSlot) (PriceQuote, error) {
	if len(slots) == 0 {
		return PriceQuote{}, ErrNoTimeSlots
	}

	deposit := tariff.Deposit()

	if isFree(tariff, requester) {
		return PriceQuote{
			TotalCents:   0,
			Method:       MethodFree,
			UnitsCharged: 0,
			UnitCents:    0,
			DepositCents: deposit,
		}, nil
	}

	totalHours := TotalHours(slots)

	if totalHours >= tariff.FullDayHours && tariff.FullDayCents != nil {
		return PriceQuote{
			TotalCents:   *tariff.FullDayCents,
			Method:       MethodFullDay,
			UnitsCharged: 1,
			UnitCents:    *tariff.FullDayCents,
			DepositCents: deposit,
		}, nil
	}

	if totalHours >= tariff.HalfDayHours && tariff.HalfDayCents != nil {
		return PriceQuote{
			TotalCents:   *tariff.HalfDayCents,
			Method:       MethodHalfDay,
			UnitsCharged: 1,
			UnitCents:    *tariff.HalfDayCents,
			DepositCents: deposit,
		}, nil
	}

	if tariff.HourlyCents == nil {
		return PriceQuote{}, ErrPricingNotConfigured
	}

	return PriceQuote{
		TotalCents:   int64(totalHours) * *tariff.HourlyCents,
		Method:       MethodHourly,
		UnitsCharged: totalHours,
		UnitCents:    *tariff.HourlyCents,
		DepositCents: deposit,
	}, nil
}

func isFree(tariff room.Tariff, requester Requester) bool {
	if !tariff.Paid {
		return true
	}
	switch requester.Category() {
	case CategoryAdmin:
		return true
	case CategoryParticulier:
		return requester.IsChartrettesResident() && tariff.FreeForResidents
	default:
		return false
	}
}
