package booking

// CommissionSplit is the platform/merchant division of a booking's cost,
// computed once at creation time and never recomputed.
type CommissionSplit struct {
	Commission     float64
	MerchantPayout float64
}

type SplitCalculator interface {
	Split(bookingCost float64) CommissionSplit
}

// FixedRateCalculator takes a flat percentage cut of every booking.
type FixedRateCalculator struct {
	Rate float64
}

func NewFixedRateCalculator(rate float64) *FixedRateCalculator {
	return &FixedRateCalculator{Rate: rate}
}

func (c *FixedRateCalculator) Split(bookingCost float64) CommissionSplit {
	commission := bookingCost * c.Rate
	return CommissionSplit{
		Commission:     commission,
		MerchantPayout: bookingCost - commission,
	}
}
