package queries

import (
	"context"

	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"
)

// DirectoryReadStore is the directory's read side, implemented by the
// in-memory directory store.
type DirectoryReadStore interface {
	ListMerchants(ctx context.Context) ([]merchant.Merchant, error)
	GetMerchant(ctx context.Context, id string) (merchant.Merchant, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

type MerchantQueries interface {
	List(ctx context.Context) ([]MerchantView, error)
	GetByID(ctx context.Context, id string) (*MerchantView, error)
}

type merchantQueriesImpl struct {
	store DirectoryReadStore
}

func NewMerchantQueries(store DirectoryReadStore) MerchantQueries {
	return &merchantQueriesImpl{store: store}
}

func (q *merchantQueriesImpl) List(ctx context.Context) ([]MerchantView, error) {
	rows, err := q.store.ListMerchants(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]MerchantView, 0, len(rows))
	for _, m := range rows {
		views = append(views, NewMerchantView(m))
	}
	return views, nil
}

func (q *merchantQueriesImpl) GetByID(ctx context.Context, id string) (*MerchantView, error) {
	m, err := q.store.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewMerchantView(m)
	return &view, nil
}
