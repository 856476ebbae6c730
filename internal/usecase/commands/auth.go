package commands

import (
	"context"

	"toaigo/internal/domain/user"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/queries"
)

// UserReadStore resolves seeded identities.
type UserReadStore interface {
	FindUser(ctx context.Context, id string) (user.User, error)
}

// TokenIssuer signs a session token for an authenticated user.
type TokenIssuer interface {
	GenerateToken(u user.User) (string, error)
}

type LoginResult struct {
	AccessToken string
	User        queries.UserView
}

type AuthCommands interface {
	// Login is pick-a-user demo authentication: any seeded user id yields a
	// session token carrying the user's role and merchant linkage. There are
	// no credentials to verify.
	Login(ctx context.Context, userID string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users  UserReadStore
	tokens TokenIssuer
}

func NewAuthCommands(users UserReadStore, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		users:  users,
		tokens: tokens,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, userID string) (*LoginResult, error) {
	u, err := c.users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.GenerateToken(u)
	if err != nil {
		return nil, errs.Wrap(err, "generate session token")
	}

	return &LoginResult{
		AccessToken: token,
		User:        queries.NewUserView(u),
	}, nil
}
