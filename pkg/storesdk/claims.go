package storesdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims carries the claims embedded in a backend access token.
// Decoded without signature verification: the values are informational
// (logging, `whoami` output) and must never be used as an authorisation
// decision or a local expiry check.
type AccessClaims struct {
	UserID    int64
	TokenType string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DecodeAccessClaims parses an access token without verifying its signature.
func DecodeAccessClaims(access string) (*AccessClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	out := &AccessClaims{}
	if v, ok := claims["user_id"].(float64); ok {
		out.UserID = int64(v)
	}
	if v, ok := claims["token_type"].(string); ok {
		out.TokenType = v
	}
	if v, ok := claims["jti"].(string); ok {
		out.JTI = v
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
