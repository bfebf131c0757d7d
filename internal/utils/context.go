package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	CallerIDKey ContextKey = "caller_id"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrNoCallerIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidCallerIDType = errors.New("user_id must be a string")
)

// GetCallerIDFromContext extracts the authenticated platform caller id
// from the JWT claims placed in the context by the auth middleware.
func GetCallerIDFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	callerID, exists := claims["user_id"]
	if !exists {
		return "", ErrNoCallerIDInClaims
	}

	callerIDStr, ok := callerID.(string)
	if !ok {
		return "", ErrInvalidCallerIDType
	}

	return callerIDStr, nil
}
