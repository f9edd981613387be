package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  timezone.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock timezone.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (i *TokenIssuer) Issue(userID string, role Role) (string, error) {
	now := i.clock.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Parse(tokenString string) (Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return i.secret, nil
		},
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	role := Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return Principal{}, ErrInvalidToken
	}

	return Principal{ID: claims.Subject, Role: role}, nil
}
