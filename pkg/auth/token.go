// Package auth issues and verifies the signed bearer tokens gating the admin
// panel. Verification is stateless: a token stays valid until its embedded
// expiry, there is no server-side session or revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime embedded in issued admin tokens.
const TokenTTL = 24 * time.Hour

const minSecretLen = 32

// ErrNotAdmin is returned for a well-formed token lacking the admin claim.
var ErrNotAdmin = errors.New("auth: token has no admin capability")

// Claims are the JWT claims carried by an admin token. Admin must be true for
// the token to pass verification.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// SecretBytes derives the signing secret from a config string, padding to a
// minimum of 32 bytes.
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// NewAdminToken issues an HS256 token asserting admin capability for the
// given account email, expiring TokenTTL from now.
func NewAdminToken(email string, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAdminToken checks signature, expiry and the admin claim, returning
// the claims on success. Any failure mode (malformed, bad signature, expired,
// claim missing) comes back as a non-nil error; callers must not forward the
// reason to the client.
func VerifyAdminToken(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("auth: unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !claims.Admin {
		return nil, ErrNotAdmin
	}
	return claims, nil
}
