package jwt

import (
	"errors"
	"time"

	"toaigo/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	MerchantID *string `json:"merchant_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) GenerateToken(u user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     u.ID,
		Name:       u.Name,
		Role:       u.Role.String(),
		MerchantID: u.MerchantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// User rebuilds the authenticated principal from the token claims.
func (c *Claims) User() (user.User, error) {
	role, err := user.NewRole(c.Role)
	if err != nil {
		return user.User{}, ErrInvalidToken
	}
	return user.User{
		ID:         c.UserID,
		Name:       c.Name,
		Role:       role,
		MerchantID: c.MerchantID,
	}, nil
}
