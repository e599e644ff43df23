package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie issued on login.
const CookieName = "cb_session"

// Claims is the cookie token's claim set; the session ID travels in JTI.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService signs and validates the session cookie. The cookie carries no
// user data, only the ID under which the session record lives in redis.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given secret and session TTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured session lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate signs a cookie token bound to the given session ID.
func (s *TokenService) Generate(sessionID string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// SessionID validates a cookie token and extracts the session ID.
func (s *TokenService) SessionID(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.ID == "" {
		return "", errors.New("session ID not found")
	}
	return claims.ID, nil
}
