package booking

import (
	"errors"
	"time"

	"toaigo/internal/domain/merchant"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection  = errors.New("at least one service must be selected")
	ErrZeroCost        = errors.New("booking cost must be positive")
	ErrInvalidGuests   = errors.New("guest count must be at least 1")
	ErrNegativePrice   = errors.New("service price cannot be negative")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrTerminalBooking = errors.New("booking already reached a terminal status")
)

// Booking is a ledger entry. The embedded merchant record is a value-type
// snapshot taken at creation time, distinct from merchantID (the live-lookup
// key); later catalog edits never change it.
type Booking struct {
	id             uuid.UUID
	merchantID     string
	merchant       merchant.Merchant
	date           string
	timeOfDay      string
	guests         int
	notes          string
	serviceName    string
	bookingCost    float64
	commission     float64
	merchantPayout float64
	status         Status
	createdAt      time.Time
}

// TransitionTo moves the booking along the status state machine. Terminal
// statuses are terminal: once Confirmed or Rejected the booking never moves
// again.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() || next == StatusPending {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrTerminalBooking
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) MerchantID() string          { return b.merchantID }
func (b *Booking) Merchant() merchant.Merchant { return b.merchant }
func (b *Booking) Date() string                { return b.date }
func (b *Booking) TimeOfDay() string           { return b.timeOfDay }
func (b *Booking) Guests() int                 { return b.guests }
func (b *Booking) Notes() string               { return b.notes }
func (b *Booking) ServiceName() string         { return b.serviceName }
func (b *Booking) BookingCost() float64        { return b.bookingCost }
func (b *Booking) Commission() float64         { return b.commission }
func (b *Booking) MerchantPayout() float64     { return b.merchantPayout }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
