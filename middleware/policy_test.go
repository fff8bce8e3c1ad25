package middleware_test

import (
	"errors"
	"testing"

	"edumate/middleware"
	"edumate/models"

	"github.com/stretchr/testify/assert"
)

func claimsFor(name string, role models.Role) *middleware.SessionClaims {
	return &middleware.SessionClaims{
		UserID: 1,
		Name:   name,
		Role:   role,
		Status: models.UserActive,
	}
}

func ownedBy(instructor string) middleware.OwnershipCheck {
	return func(claims *middleware.SessionClaims) (bool, error) {
		return claims.Name == instructor, nil
	}
}

func TestAuthorizeNoClaims(t *testing.T) {
	err := middleware.Authorize(nil, models.RoleStudent, nil)
	assert.ErrorIs(t, err, middleware.ErrUnauthenticated)
}

func TestAuthorizeAdminPassesEverything(t *testing.T) {
	admin := claimsFor("Root", models.RoleAdmin)

	assert.NoError(t, middleware.Authorize(admin, models.RoleAdmin, nil))
	assert.NoError(t, middleware.Authorize(admin, models.RoleStudent, nil))
	// Admin wins before any ownership check runs
	assert.NoError(t, middleware.Authorize(admin, models.RoleInstructor, ownedBy("Somebody Else")))
}

func TestAuthorizeRoleMismatch(t *testing.T) {
	student := claimsFor("Alice", models.RoleStudent)

	err := middleware.Authorize(student, models.RoleInstructor, nil)
	assert.ErrorIs(t, err, middleware.ErrUnauthorized)

	err = middleware.Authorize(student, models.RoleAdmin, nil)
	assert.ErrorIs(t, err, middleware.ErrUnauthorized)
}

func TestAuthorizeOwnership(t *testing.T) {
	jane := claimsFor("Jane Doe", models.RoleInstructor)

	assert.NoError(t, middleware.Authorize(jane, models.RoleInstructor, ownedBy("Jane Doe")))

	err := middleware.Authorize(jane, models.RoleInstructor, ownedBy("John Smith"))
	assert.ErrorIs(t, err, middleware.ErrUnauthorized)
}

func TestAuthorizeOwnershipCheckError(t *testing.T) {
	jane := claimsFor("Jane Doe", models.RoleInstructor)
	boom := errors.New("lookup failed")

	err := middleware.Authorize(jane, models.RoleInstructor, func(*middleware.SessionClaims) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}
