package memstore

import (
	"context"
	"sync"

	"toaigo/internal/domain/booking"
	"toaigo/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingLedger is the ordered, append-only collection of booking records.
// Entries are appended in creation order; newest-first presentation is a
// read-time concern that lives in the query layer. A single mutex serializes
// appends and status transitions.
type BookingLedger struct {
	mu       sync.RWMutex
	bookings []*booking.Booking
	byID     map[uuid.UUID]*booking.Booking
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{
		byID: make(map[uuid.UUID]*booking.Booking),
	}
}

// Append adds a new entry to the ledger. The entry becomes visible to all
// subsequent reads; ledger entries are never deleted.
func (l *BookingLedger) Append(_ context.Context, b *booking.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[b.ID()]; exists {
		return errs.New("duplicate booking id: " + b.ID().String())
	}
	l.bookings = append(l.bookings, b)
	l.byID[b.ID()] = b
	return nil
}

// UpdateStatus transitions a booking in place and returns a copy of the
// updated record. Transitions out of a non-Pending state fail: terminal
// statuses are terminal.
func (l *BookingLedger) UpdateStatus(_ context.Context, id uuid.UUID, next booking.Status) (booking.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[id]
	if !ok {
		return booking.Booking{}, errs.Mark(errs.New("unknown booking id: "+id.String()), errs.ErrBookingNotFound)
	}
	if err := b.TransitionTo(next); err != nil {
		return booking.Booking{}, errs.Mark(err, errs.ErrInvalidStateTransition)
	}
	return *b, nil
}

func (l *BookingLedger) Get(_ context.Context, id uuid.UUID) (booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.byID[id]
	if !ok {
		return booking.Booking{}, errs.Mark(errs.New("unknown booking id: "+id.String()), errs.ErrBookingNotFound)
	}
	return *b, nil
}

// All returns value copies of every ledger entry in append order.
func (l *BookingLedger) All(_ context.Context) ([]booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]booking.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, *b)
	}
	return out, nil
}

// ByMerchant returns value copies of the entries for one merchant, in append
// order.
func (l *BookingLedger) ByMerchant(_ context.Context, merchantID string) ([]booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []booking.Booking
	for _, b := range l.bookings {
		if b.MerchantID() == merchantID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// Len reports the number of ledger entries.
func (l *BookingLedger) Len(_ context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings), nil
}
