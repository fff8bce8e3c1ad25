package middleware

import (
	"errors"

	"edumate/models"
)

var (
	// ErrUnauthenticated means no verified identity was presented
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized means the identity is valid but lacks role or ownership
	ErrUnauthorized = errors.New("insufficient permissions")
)

// OwnershipCheck decides whether the principal owns the target resource.
// Returning an error aborts the decision (treated as an internal failure by
// callers), not as a denial.
type OwnershipCheck func(claims *SessionClaims) (bool, error)

// Authorize is the single policy-evaluation function every handler composes.
// Precedence: admin passes everything; otherwise the role must match and,
// when an ownership check is supplied, it must hold.
func Authorize(claims *SessionClaims, required models.Role, owns OwnershipCheck) error {
	if claims == nil {
		return ErrUnauthenticated
	}
	if claims.Role == models.RoleAdmin {
		return nil
	}
	if claims.Role != required {
		return ErrUnauthorized
	}
	if owns != nil {
		ok, err := owns(claims)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnauthorized
		}
	}
	return nil
}
