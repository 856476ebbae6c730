package commands

import (
	"context"
	"strings"

	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/queries"

	"github.com/google/uuid"
)

// DirectoryWriteStore is the directory's write side.
type DirectoryWriteStore interface {
	ReplaceServices(ctx context.Context, merchantID string, services []merchant.Service) (merchant.Merchant, error)
}

type ServiceInput struct {
	ID    string
	Name  string
	Price float64
}

type MerchantCommands interface {
	// ReplaceServices swaps a merchant's whole catalog atomically. Only the
	// merchant-role user that owns the merchant may edit it; historical
	// bookings keep their snapshots.
	ReplaceServices(ctx context.Context, merchantID string, services []ServiceInput, actor user.User) (*queries.MerchantView, error)
}

type merchantCommandsImpl struct {
	directory DirectoryWriteStore
}

func NewMerchantCommands(directory DirectoryWriteStore) MerchantCommands {
	return &merchantCommandsImpl{directory: directory}
}

func (c *merchantCommandsImpl) ReplaceServices(ctx context.Context, merchantID string, services []ServiceInput, actor user.User) (*queries.MerchantView, error) {
	if !actor.OwnsMerchant(merchantID) {
		return nil, errs.Mark(errs.New("catalog edits are limited to the owning merchant"), errs.ErrForbidden)
	}

	replacement := make([]merchant.Service, 0, len(services))
	for _, in := range services {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			// New catalog entries arrive without ids.
			id = uuid.NewString()
		}
		s, err := merchant.NewService(id, in.Name, in.Price)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		replacement = append(replacement, s)
	}

	updated, err := c.directory.ReplaceServices(ctx, merchantID, replacement)
	if err != nil {
		return nil, err
	}

	view := queries.NewMerchantView(updated)
	return &view, nil
}
