package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"backend/models"
)

type JWTClaim struct {
	Role models.Role `json:"role"`
	jwt.StandardClaims
}

// GenerateToken issues an HS256 token carrying the userName as subject and
// the role as a custom claim, expiring after ttl.
func GenerateToken(userName string, role models.Role, secret []byte, ttl time.Duration) (string, error) {
	claims := &JWTClaim{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   userName,
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken checks the signature and expiry and returns the claims.
func ValidateToken(signedToken string, secret []byte) (*JWTClaim, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
