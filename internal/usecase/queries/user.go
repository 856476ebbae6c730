package queries

import (
	"context"
)

type UserQueries interface {
	// List returns the seeded users; this feeds the pick-a-user login screen.
	List(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	store DirectoryReadStore
}

func NewUserQueries(store DirectoryReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	rows, err := q.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(rows))
	for _, u := range rows {
		views = append(views, NewUserView(u))
	}
	return views, nil
}
