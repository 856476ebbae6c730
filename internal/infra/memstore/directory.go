package memstore

import (
	"context"
	"sync"

	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"
	"toaigo/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// DirectoryStore holds the merchant catalog and the seeded user records.
// It is the single mutual-exclusion boundary for merchant data: reads return
// deep copies, never interior references, so callers can't alias live state.
type DirectoryStore struct {
	mu        sync.RWMutex
	merchants []merchant.Merchant
	index     map[string]int
	users     []user.User
}

func NewDirectoryStore(merchants []merchant.Merchant, users []user.User) *DirectoryStore {
	s := &DirectoryStore{
		merchants: make([]merchant.Merchant, len(merchants)),
		index:     make(map[string]int, len(merchants)),
		users:     make([]user.User, len(users)),
	}
	copy(s.merchants, merchants)
	copy(s.users, users)
	for i, m := range s.merchants {
		s.index[m.ID] = i
	}
	return s
}

// ListMerchants returns every merchant in seed/insertion order.
func (s *DirectoryStore) ListMerchants(_ context.Context) ([]merchant.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]merchant.Merchant, 0, len(s.merchants))
	for _, m := range s.merchants {
		c, err := copyMerchant(m)
		if err != nil {
			return nil, errs.Wrap(err, "copy merchant")
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *DirectoryStore) GetMerchant(_ context.Context, id string) (merchant.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return merchant.Merchant{}, errs.Mark(errs.New("unknown merchant id: "+id), errs.ErrMerchantNotFound)
	}
	c, err := copyMerchant(s.merchants[i])
	if err != nil {
		return merchant.Merchant{}, errs.Wrap(err, "copy merchant")
	}
	return c, nil
}

// ReplaceServices swaps a merchant's full service list atomically. There is
// no per-item diffing; the incoming list becomes the catalog. Bookings made
// before the swap keep their own snapshots and are unaffected.
func (s *DirectoryStore) ReplaceServices(_ context.Context, merchantID string, services []merchant.Service) (merchant.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[merchantID]
	if !ok {
		return merchant.Merchant{}, errs.Mark(errs.New("unknown merchant id: "+merchantID), errs.ErrMerchantNotFound)
	}
	if err := merchant.ValidateServices(services); err != nil {
		return merchant.Merchant{}, errs.Mark(err, errs.ErrValidation)
	}

	replacement := make([]merchant.Service, len(services))
	copy(replacement, services)
	s.merchants[i].Services = replacement

	c, err := copyMerchant(s.merchants[i])
	if err != nil {
		return merchant.Merchant{}, errs.Wrap(err, "copy merchant")
	}
	return c, nil
}

// ListUsers returns the seeded users in seed order.
func (s *DirectoryStore) ListUsers(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (s *DirectoryStore) FindUser(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return user.User{}, errs.Mark(errs.New("unknown user id: "+id), errs.ErrUserNotFound)
}

// copyUser detaches the MerchantID pointee so callers never alias store
// state.
func copyUser(u user.User) user.User {
	if u.MerchantID != nil {
		id := *u.MerchantID
		u.MerchantID = &id
	}
	return u
}

func copyMerchant(m merchant.Merchant) (merchant.Merchant, error) {
	var c merchant.Merchant
	if err := copier.CopyWithOption(&c, &m, copier.Option{DeepCopy: true}); err != nil {
		return merchant.Merchant{}, err
	}
	return c, nil
}
