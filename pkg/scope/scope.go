package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Payload is the identity carried by a session token.
type Payload struct {
	UserID string
	Role   string
}

// Manager issues and verifies session tokens.
type Manager interface {
	Issue(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

// Claims is the JWT claim set for access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type jwtManager struct {
	secret         []byte
	accessDuration time.Duration
}

var _ Manager = (*jwtManager)(nil)

// NewManager creates an HMAC-signed JWT Manager.
func NewManager(secret string, accessDuration time.Duration) Manager {
	return &jwtManager{
		secret:         []byte(secret),
		accessDuration: accessDuration,
	}
}

func (m *jwtManager) Issue(payload Payload) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessDuration)),
			ID:        uuid.New().String(),
		},
		Role: payload.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *jwtManager) Verify(tokenString string) (Payload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: claims.Subject, Role: claims.Role}, nil
}
