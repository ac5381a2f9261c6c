package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity context encoded in a bearer token: employee id,
// admin flag and optional assigned greenhouse.
type Claims struct {
	EmployeeID   uint
	IsAdmin      bool
	GreenhouseID *uint
}

// IssueToken signs an HS256 JWT for the employee, valid for ttlMin
// minutes. Returned alongside its expiration time.
func IssueToken(secret string, claims Claims, ttlMin int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)

	mapClaims := jwt.MapClaims{
		"sub":   claims.EmployeeID,
		"admin": claims.IsAdmin,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	if claims.GreenhouseID != nil {
		mapClaims["greenhouse_id"] = *claims.GreenhouseID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseToken validates the raw token and extracts the identity claims.
func ParseToken(secret string, raw string) (*Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{EmployeeID: uint(sub)}
	if admin, ok := mapClaims["admin"].(bool); ok {
		claims.IsAdmin = admin
	}
	if gh, ok := mapClaims["greenhouse_id"].(float64); ok {
		ghID := uint(gh)
		claims.GreenhouseID = &ghID
	}

	return claims, nil
}
