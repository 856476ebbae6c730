package queries

import (
	"context"
	"sort"

	"toaigo/internal/domain/booking"
)

// BookingReadStore is the ledger's read side, implemented by the in-memory
// booking ledger.
type BookingReadStore interface {
	All(ctx context.Context) ([]booking.Booking, error)
	ByMerchant(ctx context.Context, merchantID string) ([]booking.Booking, error)
}

type BookingQueries interface {
	// List returns every booking, newest first. Bookings carry no customer
	// identity, so a customer's "my bookings" view is this global list.
	List(ctx context.Context) ([]BookingView, error)
	ListByMerchant(ctx context.Context, merchantID string) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]BookingView, error) {
	rows, err := q.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return toViewsNewestFirst(rows), nil
}

func (q *bookingQueriesImpl) ListByMerchant(ctx context.Context, merchantID string) ([]BookingView, error) {
	rows, err := q.store.ByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return toViewsNewestFirst(rows), nil
}

// Display order is a read-time concern: the ledger keeps append order, the
// query layer sorts newest first by createdAt.
func toViewsNewestFirst(rows []booking.Booking) []BookingView {
	views := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		views = append(views, NewBookingView(b))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}
