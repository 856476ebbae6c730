package queries

import (
	"context"

	"toaigo/internal/domain/booking"
)

// Aggregate computes the financial totals for a booking set. Only Confirmed
// bookings count: pending requests and rejections contribute nothing.
// Per-merchant and platform-wide financials both run through here; the only
// difference is how the input was filtered.
func Aggregate(bookings []booking.Booking) FinancialSummary {
	var sum FinancialSummary
	for _, b := range bookings {
		if b.Status() != booking.StatusConfirmed {
			continue
		}
		sum.TotalRevenue += b.BookingCost()
		sum.TotalCommission += b.Commission()
		sum.TotalPayout += b.MerchantPayout()
	}
	return sum
}

type FinancialQueries interface {
	// Platform aggregates every confirmed booking (admin dashboard).
	Platform(ctx context.Context) (FinancialSummary, error)
	// ForMerchant aggregates one merchant's confirmed bookings.
	ForMerchant(ctx context.Context, merchantID string) (FinancialSummary, error)
}

type financialQueriesImpl struct {
	store BookingReadStore
}

func NewFinancialQueries(store BookingReadStore) FinancialQueries {
	return &financialQueriesImpl{store: store}
}

func (q *financialQueriesImpl) Platform(ctx context.Context) (FinancialSummary, error) {
	rows, err := q.store.All(ctx)
	if err != nil {
		return FinancialSummary{}, err
	}
	return Aggregate(rows), nil
}

func (q *financialQueriesImpl) ForMerchant(ctx context.Context, merchantID string) (FinancialSummary, error) {
	rows, err := q.store.ByMerchant(ctx, merchantID)
	if err != nil {
		return FinancialSummary{}, err
	}
	return Aggregate(rows), nil
}
