package booking

// Status tracks the approval lifecycle of a booking. Bookings created by an
// administrator are approved immediately, everything else waits for review.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// Category is the billed party's category. It is a closed set so tier
// selection in the pricing engine is exhaustive.
type Category string

const (
	CategoryAssociation Category = "association"
	CategoryParticulier Category = "particulier"
	CategoryAdmin       Category = "admin"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAssociation, CategoryParticulier, CategoryAdmin:
		return true
	default:
		return false
	}
}

// PricingMethod is the tier a quote was computed with.
type PricingMethod string

const (
	MethodFree    PricingMethod = "free"
	MethodHourly  PricingMethod = "hourly"
	MethodHalfDay PricingMethod = "half_day"
	MethodFullDay PricingMethod = "full_day"
)

func (m PricingMethod) String() string {
	return string(m)
}
