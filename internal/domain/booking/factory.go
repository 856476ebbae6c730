package booking

import (
	"strings"

	"toaigo/internal/domain/merchant"
	"toaigo/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type Factory struct {
	Clock      clock.Clock
	Calculator SplitCalculator
}

func NewFactory(clk clock.Clock, calculator SplitCalculator) *Factory {
	return &Factory{
		Clock:      clk,
		Calculator: calculator,
	}
}

// CreateBooking validates the request and produces a Pending ledger entry.
// The booking cost is the sum of the selected services' prices and the
// commission split is fixed here, once; serviceName joins the selected names
// in selection order.
func (f *Factory) CreateBooking(
	m merchant.Merchant,
	date, timeOfDay string,
	guests int,
	notes string,
	selected []merchant.Service,
) (*Booking, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}
	if guests < 1 {
		return nil, ErrInvalidGuests
	}

	var cost float64
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		if s.Price < 0 {
			return nil, ErrNegativePrice
		}
		cost += s.Price
		names = append(names, s.Name)
	}
	if cost <= 0 {
		return nil, ErrZeroCost
	}

	snapshot, err := snapshotMerchant(m)
	if err != nil {
		return nil, err
	}

	split := f.Calculator.Split(cost)

	return &Booking{
		id:             uuid.New(),
		merchantID:     m.ID,
		merchant:       snapshot,
		date:           date,
		timeOfDay:      timeOfDay,
		guests:         guests,
		notes:          notes,
		serviceName:    strings.Join(names, ", "),
		bookingCost:    cost,
		commission:     split.Commission,
		merchantPayout: split.MerchantPayout,
		status:         StatusPending,
		createdAt:      f.Clock.Now(),
	}, nil
}

// snapshotMerchant deep-copies the merchant record so later catalog edits
// cannot alias into historical bookings.
func snapshotMerchant(m merchant.Merchant) (merchant.Merchant, error) {
	var snap merchant.Merchant
	if err := copier.CopyWithOption(&snap, &m, copier.Option{DeepCopy: true}); err != nil {
		return merchant.Merchant{}, err
	}
	return snap, nil
}
