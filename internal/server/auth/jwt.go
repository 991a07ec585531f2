// Package auth issues and verifies the signed bearer tokens shared between
// the REST login flow and the gRPC verification endpoint. Both sides must be
// configured with the same HMAC secret; the secret is always passed in
// explicitly and never defaulted.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries user identity inside a token. The JSON names keep the
// payload wire-compatible with tokens minted by earlier deployments.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}

// Verification is the outcome of checking a token. All failure modes
// (bad signature, malformed token, expired token, wrong algorithm) collapse
// to the zero value so callers cannot act on partially-trusted claims.
type Verification struct {
	Valid   bool
	UserID  int64
	IsAdmin bool
}

// GenerateToken signs {user_id, is_admin} claims with HS256. Expiry is
// stamped here but enforced only by VerifyToken.
func GenerateToken(userID int64, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry and extracts the identity claims.
// It is fail-closed: any problem yields Verification{Valid: false, UserID: 0,
// IsAdmin: false} and no error, so an invalid token is a normal negative
// outcome rather than a fault.
func VerifyToken(tokenString string, secretKey []byte) Verification {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return Verification{}
	}

	return Verification{Valid: true, UserID: claims.UserID, IsAdmin: claims.IsAdmin}
}
