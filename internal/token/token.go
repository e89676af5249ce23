// Package token mints and verifies the signed bearer tokens issued at
// login and registration. The payload carries the user ID nested under a
// "user" claim, alongside standard iat/exp claims.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed token lifetime. There is no refresh flow: an expired
// token simply stops verifying and the client falls back to guest.
const TTL = 7 * 24 * time.Hour

var ErrInvalid = errors.New("invalid token")

// Sign returns an HS256 token for userID, expiring TTL from now.
func Sign(key []byte, userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"iat":  now.Unix(),
		"exp":  now.Add(TTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded user ID.
// Any failure (malformed, expired, wrong key, wrong method, missing claim)
// collapses to ErrInvalid.
func Parse(key []byte, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalid
	}

	userClaim, ok := claims["user"].(map[string]any)
	if !ok {
		return "", ErrInvalid
	}
	userID, ok := userClaim["id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalid
	}
	return userID, nil
}
