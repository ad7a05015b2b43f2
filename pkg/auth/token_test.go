package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testSecret() []byte {
	return SecretBytes("dev-secret-change-in-production-32bytes")
}

func TestNewAdminToken_RoundTrip(t *testing.T) {
	token, err := NewAdminToken("admin@atelier-lumen.fr", testSecret())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := VerifyAdminToken(token, testSecret())
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if !claims.Admin {
		t.Error("expected admin claim to be true")
	}
	if claims.Subject != "admin@atelier-lumen.fr" {
		t.Errorf("subject = %q, want admin email", claims.Subject)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > TokenTTL {
		t.Error("expected expiry within TokenTTL")
	}
}

func TestVerifyAdminToken_WrongSecret(t *testing.T) {
	token, _ := NewAdminToken("admin@atelier-lumen.fr", testSecret())
	if _, err := VerifyAdminToken(token, SecretBytes("another-secret-entirely-0123456789ab")); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestVerifyAdminToken_Expired(t *testing.T) {
	// Hand-build a syntactically valid but expired token.
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@atelier-lumen.fr",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret())
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := VerifyAdminToken(token, testSecret()); err == nil {
		t.Error("expected error for expired token")
	}
}

// A well-formed, correctly signed, unexpired token without the admin claim
// must still be rejected.
func TestVerifyAdminToken_MissingAdminClaim(t *testing.T) {
	claims := Claims{
		Admin: false,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "someone@example.com",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret())
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := VerifyAdminToken(token, testSecret()); err != ErrNotAdmin {
		t.Errorf("err = %v, want ErrNotAdmin", err)
	}
}

func TestVerifyAdminToken_Garbage(t *testing.T) {
	if _, err := VerifyAdminToken("not.a.token", testSecret()); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestSecretBytes_PadsShortSecrets(t *testing.T) {
	if got := len(SecretBytes("short")); got != 32 {
		t.Errorf("len = %d, want 32", got)
	}
	long := "this-secret-is-already-well-over-thirty-two-bytes-long"
	if got := len(SecretBytes(long)); got != len(long) {
		t.Errorf("len = %d, want %d", got, len(long))
	}
}
