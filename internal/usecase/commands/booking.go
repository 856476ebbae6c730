package commands

import (
	"context"

	"toaigo/internal/domain/booking"
	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/queries"

	"github.com/google/uuid"
)

// MerchantReadStore resolves the live merchant record a booking is made
// against.
type MerchantReadStore interface {
	GetMerchant(ctx context.Context, id string) (merchant.Merchant, error)
}

// BookingWriteStore is the ledger's write side. Get is included so status
// changes can check merchant scope against the current entry.
type BookingWriteStore interface {
	Append(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, next booking.Status) (booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (booking.Booking, error)
}

type CreateBookingInput struct {
	MerchantID string
	Date       string
	Time       string
	Guests     int
	Notes      string
	ServiceIDs []string
}

type BookingCommands interface {
	// Create validates the request against the merchant's current catalog and
	// appends a Pending entry to the ledger. Only customers create bookings.
	Create(ctx context.Context, input CreateBookingInput, actor user.User) (*queries.BookingView, error)
	// UpdateStatus moves a Pending booking to Confirmed or Rejected. Admins
	// may act on any booking, merchant users only on their own merchant's.
	UpdateStatus(ctx context.Context, id uuid.UUID, next booking.Status, actor user.User) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	directory MerchantReadStore
	ledger    BookingWriteStore
	factory   *booking.Factory
}

func NewBookingCommands(
	directory MerchantReadStore,
	ledger BookingWriteStore,
	factory *booking.Factory,
) BookingCommands {
	return &bookingCommandsImpl{
		directory: directory,
		ledger:    ledger,
		factory:   factory,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput, actor user.User) (*queries.BookingView, error) {
	if actor.Role != user.RoleCustomer {
		return nil, errs.Mark(errs.New("only customers may create bookings"), errs.ErrForbidden)
	}

	m, err := c.directory.GetMerchant(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}

	selected, err := resolveSelection(m, input.ServiceIDs)
	if err != nil {
		return nil, err
	}

	entry, err := c.factory.CreateBooking(m, input.Date, input.Time, input.Guests, input.Notes, selected)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := c.ledger.Append(ctx, entry); err != nil {
		return nil, errs.Wrap(err, "append booking")
	}

	view := queries.NewBookingView(*entry)
	return &view, nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, next booking.Status, actor user.User) (*queries.BookingView, error) {
	if !next.IsValid() || next == booking.StatusPending {
		return nil, errs.Mark(errs.New("status must be Confirmed or Rejected"), errs.ErrValidation)
	}

	switch actor.Role {
	case user.RoleAdmin:
		// unscoped
	case user.RoleMerchant:
		current, err := c.ledger.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !actor.OwnsMerchant(current.MerchantID()) {
			return nil, errs.Mark(errs.New("booking belongs to another merchant"), errs.ErrForbidden)
		}
	default:
		return nil, errs.Mark(errs.New("customers may not change booking status"), errs.ErrForbidden)
	}

	updated, err := c.ledger.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	view := queries.NewBookingView(updated)
	return &view, nil
}

// resolveSelection maps the requested service ids onto the merchant's current
// catalog, preserving selection order. An unknown id is a validation failure,
// not a not-found: the merchant exists, the request doesn't match it.
func resolveSelection(m merchant.Merchant, serviceIDs []string) ([]merchant.Service, error) {
	if len(serviceIDs) == 0 {
		return nil, errs.Mark(booking.ErrEmptySelection, errs.ErrValidation)
	}
	selected := make([]merchant.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s, ok := m.ServiceByID(id)
		if !ok {
			return nil, errs.Mark(errs.New("service "+id+" is not offered by merchant "+m.ID), errs.ErrValidation)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
