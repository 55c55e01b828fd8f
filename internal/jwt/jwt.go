package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "holdem-server"

// Audience is the intended JWT audience
const Audience = "holdem-table"

// TTL is how long a session token is valid
const TTL = time.Hour * 12

var secret []byte

// SetSecret sets the HMAC key
// this method should only be called once.
func SetSecret(key string) {
	secret = []byte(key)
}

// Sign will sign a JWT for the player name
func Sign(name string) (string, error) {
	if len(secret) == 0 {
		panic("SetSecret() not called")
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.StandardClaims{
		Audience:  Audience,
		ExpiresAt: now.Add(TTL).Unix(),
		Id:        uuid.New().String(),
		IssuedAt:  now.Unix(),
		Issuer:    Issuer,
		Subject:   name,
	})

	return token.SignedString(secret)
}

// ValidName will validate a signed JWT and return the player name
func ValidName(signedString string) (string, error) {
	if len(secret) == 0 {
		panic("SetSecret() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.StandardClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", err
	}

	if token.Valid {
		if claims, ok := token.Claims.(*jwtgo.StandardClaims); ok {
			if !claims.VerifyAudience(Audience, true) {
				return "", errors.New("invalid audience")
			}

			if !claims.VerifyIssuer(Issuer, true) {
				return "", errors.New("invalid issuer")
			}

			if claims.Subject == "" {
				return "", errors.New("missing subject")
			}

			return claims.Subject, nil
		}

		return "", fmt.Errorf("expected jwt.StandardClaims, got %T", token.Claims)
	}

	logrus.Warn("token claims were not valid. did not expect to reach this code")
	return "", errors.New("claims were not valid")
}
