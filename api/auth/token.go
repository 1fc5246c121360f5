package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/puoklam/lab-app-backend/env"
)

func genAccessToken(aud, sub string) (string, error) {
	// HS256 for symmetric signature, sign and verify in server
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(2 * time.Hour).Unix(),
		IssuedAt:  time.Now().Unix(),
		Issuer:    "https://lab.test.com",
		Audience:  aud,
		Subject:   sub,
	})
	return token.SignedString(env.HS256_SECRET)
}
