package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired reports an action token past its expiry. Other validation
// failures surface as generic errors.
var ErrExpired = errors.New("jwt: action token expired")

// Estimate response actions embedded in mailed approve/decline links.
const (
	ActionApprove = "approve"
	ActionDecline = "decline"
)

const actionPurpose = "estimate_response"

// ActionClaims is the payload of a signed estimate response link. The token
// binds one estimate to one action; the server refuses any mutation unless
// signature, purpose, and expiry all check out.
type ActionClaims struct {
	jwt.RegisteredClaims
	Purpose    string `json:"purpose"`
	EstimateID string `json:"estimate_id"`
	Action     string `json:"action"` // "approve" | "decline"
}

// GenerateAction signs an estimate response token valid for expDays days.
func GenerateAction(secret, estimateID, action, issuer string, expDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	if action != ActionApprove && action != ActionDecline {
		return "", fmt.Errorf("jwt: unknown action %q", action)
	}
	now := time.Now()
	claims := ActionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   estimateID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, expDays)),
		},
		Purpose:    actionPurpose,
		EstimateID: estimateID,
		Action:     action,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAction validates an estimate response token and returns the estimate
// ID and action it authorizes.
func ParseAction(secret, tokenString string) (estimateID, action string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &ActionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrExpired
		}
		return "", "", err
	}
	claims, ok := token.Claims.(*ActionClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid claims")
	}
	if claims.Purpose != actionPurpose {
		return "", "", fmt.Errorf("wrong token purpose %q", claims.Purpose)
	}
	return claims.EstimateID, claims.Action, nil
}
