package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, true, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got := VerifyToken(tok, secret)
	if !got.Valid {
		t.Fatal("expected valid verification")
	}
	if got.UserID != 42 || !got.IsAdmin {
		t.Fatalf("claims mismatch: %+v", got)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(1, false, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got := VerifyToken(tok, secret)
	if got.Valid || got.UserID != 0 || got.IsAdmin {
		t.Fatalf("expired token must collapse to zero verification, got %+v", got)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(7, true, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got := VerifyToken(tok, []byte("wrong-secret"))
	if got.Valid || got.UserID != 0 || got.IsAdmin {
		t.Fatalf("wrong-secret token must collapse to zero verification, got %+v", got)
	}
}

func TestVerifyToken_MalformedString(t *testing.T) {
	t.Parallel()

	got := VerifyToken("not.a.jwt", []byte("k"))
	if got.Valid || got.UserID != 0 || got.IsAdmin {
		t.Fatalf("malformed token must collapse to zero verification, got %+v", got)
	}
}

func TestVerifyToken_EmptyString(t *testing.T) {
	t.Parallel()

	got := VerifyToken("", []byte("k"))
	if got.Valid {
		t.Fatal("empty token must be invalid")
	}
}

func TestVerifyToken_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	// alg=none with empty signature must never validate, whatever the claims say.
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:  99,
		IsAdmin: true,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsecured token: %v", err)
	}

	got := VerifyToken(tok, []byte("k"))
	if got.Valid || got.UserID != 0 || got.IsAdmin {
		t.Fatalf("unsigned token must collapse to zero verification, got %+v", got)
	}
}
