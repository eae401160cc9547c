package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWT = struct {
	ACCESS_COOKIE_NAME  string
	REFRESH_COOKIE_NAME string
}{
	ACCESS_COOKIE_NAME:  "access_token",
	REFRESH_COOKIE_NAME: "refresh_token",
}

const (
	ScopeAuthentication = "authentication"
	ScopeRefresh        = "refresh"
)

type JWTClaims struct {
	UserID            string `json:"userId"`
	Email             string `json:"email"`
	Kind              string `json:"kind"`
	DeviceFingerprint string `json:"deviceFingerprint"`
	Scope             string `json:"scope"`
	TokenType         string `json:"tokenType"`
	jwt.RegisteredClaims
}

// NewJWTClaims builds claims for user. scope is ScopeAuthentication for
// access tokens and ScopeRefresh for refresh tokens.
func NewJWTClaims(user User, fingerprint string, scope string, expiry time.Time) JWTClaims {
	tokenType := JWT.ACCESS_COOKIE_NAME
	if scope == ScopeRefresh {
		tokenType = JWT.REFRESH_COOKIE_NAME
	}
	return JWTClaims{
		UserID:            user.UserID,
		Email:             user.Email,
		Kind:              user.Kind,
		DeviceFingerprint: fingerprint,
		Scope:             scope,
		TokenType:         tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

// Sign returns the HS256 token string for the claims.
func (claims JWTClaims) Sign(secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error signing token %v", err)
	}
	return signed, nil
}

func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
