package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned for session tokens that fail verification
var ErrInvalidToken = errors.New("invalid session token")

const tokenIssuer = "storefront"

// SessionClaims represents the JWT claims stored in the session cookie
type SessionClaims struct {
	jwt.StandardClaims
}

// TokenSigner issues and verifies HS256 session tokens
type TokenSigner struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewTokenSigner creates a signer for key. Tokens expire after maxAge.
func NewTokenSigner(key []byte, maxAge time.Duration) *TokenSigner {
	return &TokenSigner{key: key, maxAge: maxAge, now: time.Now}
}

// RandomKey returns a fresh 32-byte signing key
func RandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return key, nil
}

// MaxAge is how long issued tokens stay valid
func (ts *TokenSigner) MaxAge() time.Duration {
	return ts.maxAge
}

// Issue generates a signed token carrying sessionID
func (ts *TokenSigner) Issue(sessionID string) (string, error) {
	issuedAt := ts.now()
	claims := &SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			Issuer:    tokenIssuer,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ts.maxAge).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ts.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// session id it carries.
func (ts *TokenSigner) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}
	parser := &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Id == "" || claims.Issuer != tokenIssuer {
		return "", ErrInvalidToken
	}
	return claims.Id, nil
}
