package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionExpiry is the fixed lifetime of a session token. Expiry is the only
// server-side invalidation mechanism; sessions are otherwise stateless.
const SessionExpiry = time.Hour

// Claims represents the session token payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionService mints and verifies signed session tokens.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a session service signing with the given secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{
		secret: []byte(secret),
	}
}

// Issue generates a signed session token for the user.
func (s *SessionService) Issue(userID, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a session token and returns its claims. It fails on
// expired, tampered, or wrongly signed tokens.
func (s *SessionService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
