//go:build unit

package builder

import (
	"time"

	"toaigo/internal/domain/booking"
	"toaigo/internal/domain/merchant"
	"toaigo/internal/infra/memstore"
	"toaigo/internal/pkg/clock"
)

// BookingBuilder assembles ledger entries through the real factory so every
// fixture satisfies the creation invariants.
type BookingBuilder struct {
	merchant  merchant.Merchant
	date      string
	timeOfDay string
	guests    int
	notes     string
	services  []merchant.Service
	rate      float64
	now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	m := memstore.SeedMerchants()[0]
	return &BookingBuilder{
		merchant:  m,
		date:      "2026-09-10",
		timeOfDay: "19:00",
		guests:    2,
		notes:     "window seat please",
		services:  m.Services[:1],
		rate:      0.05,
		now:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithMerchant(m merchant.Merchant) *BookingBuilder {
	b.merchant = m
	return b
}

func (b *BookingBuilder) WithServices(services ...merchant.Service) *BookingBuilder {
	b.services = services
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.guests = guests
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.notes = notes
	return b
}

func (b *BookingBuilder) WithRate(rate float64) *BookingBuilder {
	b.rate = rate
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.now = t
	return b
}

func (b *BookingBuilder) Build() (*booking.Booking, error) {
	factory := booking.NewFactory(clock.NewMockClock(b.now), booking.NewFixedRateCalculator(b.rate))
	return factory.CreateBooking(b.merchant, b.date, b.timeOfDay, b.guests, b.notes, b.services)
}

// BuildWithStatus builds and, when status is terminal, transitions the entry.
func (b *BookingBuilder) BuildWithStatus(status booking.Status) (*booking.Booking, error) {
	entry, err := b.Build()
	if err != nil {
		return nil, err
	}
	if status.IsTerminal() {
		if err := entry.TransitionTo(status); err != nil {
			return nil, err
		}
	}
	return entry, nil
}
