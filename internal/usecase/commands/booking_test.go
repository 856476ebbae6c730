//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"toaigo/internal/domain/booking"
	"toaigo/internal/domain/user"
	"toaigo/internal/infra/memstore"
	"toaigo/internal/pkg/clock"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	directory *memstore.DirectoryStore
	ledger    *memstore.BookingLedger
	commands  commands.BookingCommands
	clock     *clock.MockClock
}

func newBookingFixture() *bookingFixture {
	mockClock := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	factory := booking.NewFactory(mockClock, booking.NewFixedRateCalculator(0.05))
	directory := memstore.NewSeededDirectoryStore()
	ledger := memstore.NewBookingLedger()
	return &bookingFixture{
		directory: directory,
		ledger:    ledger,
		commands:  commands.NewBookingCommands(directory, ledger, factory),
		clock:     mockClock,
	}
}

func (fx *bookingFixture) ledgerLen(t *testing.T) int {
	t.Helper()
	n, err := fx.ledger.Len(context.Background())
	require.NoError(t, err)
	return n
}

func customer() user.User {
	return user.User{ID: "user1", Name: "Alex", Role: user.RoleCustomer}
}

func dinerManager() user.User {
	diner := "1"
	return user.User{ID: "merchant1", Name: "Golden Spoon Manager", Role: user.RoleMerchant, MerchantID: &diner}
}

func spaOwner() user.User {
	spa := "2"
	return user.User{ID: "merchant2", Name: "Serenity Spa Owner", Role: user.RoleMerchant, MerchantID: &spa}
}

func platformAdmin() user.User {
	return user.User{ID: "admin1", Name: "TOAIGO Admin", Role: user.RoleAdmin}
}

func dinerTableInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		MerchantID: "1",
		Date:       "2026-09-10",
		Time:       "19:00",
		Guests:     2,
		Notes:      "window seat please",
		ServiceIDs: []string{"s1-1"}, // Table for 2, price 10
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("create splits the cost and lands pending", func(t *testing.T) {
		fx := newBookingFixture()

		view, err := fx.commands.Create(ctx, dinerTableInput(), customer())
		require.NoError(t, err)

		assert.Equal(t, "1", view.MerchantID)
		assert.Equal(t, booking.StatusPending.String(), view.Status)
		assert.Equal(t, "Table for 2 Reservation", view.ServiceName)
		assert.InDelta(t, 10.0, view.BookingCost, 1e-9)
		assert.InDelta(t, 0.5, view.Commission, 1e-9)
		assert.InDelta(t, 9.5, view.MerchantPayout, 1e-9)
		assert.Equal(t, fx.clock.Now(), view.CreatedAt)
		assert.Equal(t, 1, fx.ledgerLen(t))
	})

	t.Run("multiple services sum and join in selection order", func(t *testing.T) {
		fx := newBookingFixture()
		input := dinerTableInput()
		input.ServiceIDs = []string{"s1-3", "s1-1"} // 20 + 10

		view, err := fx.commands.Create(ctx, input, customer())
		require.NoError(t, err)

		assert.Equal(t, "Booth Seating (up to 6), Table for 2 Reservation", view.ServiceName)
		assert.InDelta(t, 30.0, view.BookingCost, 1e-9)
		assert.InDelta(t, 1.5, view.Commission, 1e-9)
	})

	t.Run("only customers create bookings", func(t *testing.T) {
		fx := newBookingFixture()

		for _, actor := range []user.User{dinerManager(), platformAdmin()} {
			_, err := fx.commands.Create(ctx, dinerTableInput(), actor)
			assert.ErrorIs(t, err, errs.ErrForbidden)
		}
		assert.Equal(t, 0, fx.ledgerLen(t))
	})

	t.Run("unknown merchant is a not found", func(t *testing.T) {
		fx := newBookingFixture()
		input := dinerTableInput()
		input.MerchantID = "99"

		_, err := fx.commands.Create(ctx, input, customer())

		assert.ErrorIs(t, err, errs.ErrMerchantNotFound)
	})

	t.Run("unknown service id is a validation failure", func(t *testing.T) {
		fx := newBookingFixture()
		input := dinerTableInput()
		input.ServiceIDs = []string{"s2-1"} // belongs to the spa, not the diner

		_, err := fx.commands.Create(ctx, input, customer())

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 0, fx.ledgerLen(t))
	})

	t.Run("empty selection leaves the ledger untouched", func(t *testing.T) {
		fx := newBookingFixture()
		input := dinerTableInput()
		input.ServiceIDs = nil

		_, err := fx.commands.Create(ctx, input, customer())

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 0, fx.ledgerLen(t))
	})

	t.Run("zero guests is rejected", func(t *testing.T) {
		fx := newBookingFixture()
		input := dinerTableInput()
		input.Guests = 0

		_, err := fx.commands.Create(ctx, input, customer())

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("catalog replacement leaves prior bookings priced as booked", func(t *testing.T) {
		fx := newBookingFixture()

		created, err := fx.commands.Create(ctx, dinerTableInput(), customer())
		require.NoError(t, err)

		merchantCommands := commands.NewMerchantCommands(fx.directory)
		_, err = merchantCommands.ReplaceServices(ctx, "1", []commands.ServiceInput{
			{ID: "s1-1", Name: "Chef's Table", Price: 95},
		}, dinerManager())
		require.NoError(t, err)

		stored, err := fx.ledger.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Table for 2 Reservation", stored.ServiceName())
		assert.InDelta(t, 10.0, stored.BookingCost(), 1e-9)
	})
}

func TestBookingCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	createPending := func(t *testing.T, fx *bookingFixture) queries.BookingView {
		t.Helper()
		view, err := fx.commands.Create(ctx, dinerTableInput(), customer())
		require.NoError(t, err)
		return *view
	}

	t.Run("confirming feeds the merchant financials", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx)

		updated, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusConfirmed, dinerManager())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), updated.Status)

		sum, err := queries.NewFinancialQueries(fx.ledger).ForMerchant(ctx, "1")
		require.NoError(t, err)
		assert.InDelta(t, 10.0, sum.TotalRevenue, 1e-9)
		assert.InDelta(t, 0.5, sum.TotalCommission, 1e-9)
		assert.InDelta(t, 9.5, sum.TotalPayout, 1e-9)
	})

	t.Run("admin may reject any merchant's booking", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx)

		updated, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusRejected, platformAdmin())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected.String(), updated.Status)
	})

	t.Run("terminal bookings stay terminal", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx)
		_, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusConfirmed, dinerManager())
		require.NoError(t, err)

		_, err = fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusRejected, dinerManager())

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		stored, getErr := fx.ledger.Get(ctx, pending.ID)
		require.NoError(t, getErr)
		assert.Equal(t, booking.StatusConfirmed, stored.Status())
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx)

		_, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusPending, dinerManager())

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("merchant scope is enforced", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx) // belongs to the diner

		_, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusConfirmed, spaOwner())

		assert.ErrorIs(t, err, errs.ErrForbidden)
		stored, getErr := fx.ledger.Get(ctx, pending.ID)
		require.NoError(t, getErr)
		assert.Equal(t, booking.StatusPending, stored.Status())
	})

	t.Run("customers may not change status", func(t *testing.T) {
		fx := newBookingFixture()
		pending := createPending(t, fx)

		_, err := fx.commands.UpdateStatus(ctx, pending.ID, booking.StatusConfirmed, customer())

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown booking is a not found", func(t *testing.T) {
		fx := newBookingFixture()

		_, err := fx.commands.UpdateStatus(ctx, uuid.New(), booking.StatusConfirmed, platformAdmin())

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
