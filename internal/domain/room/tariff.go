package room

// Tariff carries a room's pricing configuration. Monetary amounts are in
// cents; nil means the tier is not offered by this room. The half-day and
// full-day thresholds are per-room data derived from the room's opening
// hours, not universal constants.
type Tariff struct {
	Paid             bool
	HourlyCents      *int64
	HalfDayCents     *int64
	FullDayCents     *int64
	DepositCents     *int64
	FreeForResidents bool
	HalfDayHours     int
	FullDayHours     int
}

// withDefaults derives missing duration thresholds from the room's opening
// hours: a full day is the whole opening span, a half day is half of it.
func (t Tariff) withDefaults(openingHour, closingHour int) Tariff {
	span := closingHour - openingHour
	if t.FullDayHours <= 0 {
		t.FullDayHours = span
	}
	if t.HalfDayHours <= 0 {
		t.HalfDayHours = (span + 1) / 2
	}
	return t
}

// Deposit reports the refundable security hold, 0 when unset. Deposits apply
// to every tier including free bookings.
func (t Tariff) Deposit() int64 {
	if t.DepositCents == nil {
		return 0
	}
	return *t.DepositCents
}
