package services

import (
	"testing"

	"edutrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newIdentityFixture(t *testing.T) (*IdentityService, *fakeMailer) {
	t.Helper()

	db := newTestDB(t)
	mailer := &fakeMailer{}
	return NewIdentityService(db, bcrypt.MinCost, mailer, NewAuditService(db)), mailer
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc, mailer := newIdentityFixture(t)

	user, err := svc.Register("New.Student@Example.com ", "password123", "New Student", "")
	require.NoError(t, err)

	// Email is normalized, role defaulted, password never echoed in clear
	assert.Equal(t, "new.student@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role.Name)
	assert.NotEqual(t, "password123", user.Password)
	assert.Equal(t, 1, mailer.welcomes)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	_, err := svc.Register("x@example.com", "password123", "X", "superuser")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	_, err := svc.Register("dup@example.com", "password123", "First", models.RoleStudent)
	require.NoError(t, err)

	_, err = svc.Register("dup@example.com", "password456", "Second", models.RoleInstructor)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	registered, err := svc.Register("login@example.com", "password123", "Login Test", models.RoleStudent)
	require.NoError(t, err)

	user, err := svc.Authenticate("login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role.Name)

	// Wrong password and unknown email are indistinguishable
	_, err = svc.Authenticate("login@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Authenticate("ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	admin, err := svc.Register("admin@example.com", "password123", "Admin", models.RoleAdmin)
	require.NoError(t, err)
	victim, err := svc.Register("victim@example.com", "password123", "Victim", models.RoleStudent)
	require.NoError(t, err)

	// Self-deletion is blocked
	err = svc.Delete(admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Delete(victim.ID, admin.ID))

	_, err = svc.Get(victim.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The deletion is audited
	var entry models.AuditLog
	require.NoError(t, svc.db.Where("action = ?", "user.delete").First(&entry).Error)
	assert.Equal(t, victim.ID, entry.EntityID)

	err = svc.Delete(victim.ID, admin.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
