package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds a session; the frontend re-authenticates after expiry.
const tokenTTL = 72 * time.Hour

// JwtCustomClaims carries the authenticated player's id alongside the
// registered claims.
type JwtCustomClaims struct {
	Id uint `json:"id"`
	jwt.RegisteredClaims
}

// GenerateJWT is a var so tests can stub token creation.
var GenerateJWT = func(id uint) (string, error) {
	now := time.Now()
	claims := JwtCustomClaims{
		Id: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
