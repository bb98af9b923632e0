package services

import (
	"testing"

	"edutrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSurvivesPushFailure(t *testing.T) {
	db := newTestDB(t)
	pusher := newFakePusher()
	pusher.failNext = true

	student := seedUser(t, db, "student@example.com", models.RoleStudent)

	svc := NewNotificationService(db, pusher)
	notification, err := svc.Record(student.ID, "Welcome aboard")
	require.NoError(t, err)

	// The record exists even though nobody was connected
	list, err := svc.ListForUser(student.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, notification.ID, list[0].ID)
	assert.False(t, list[0].Read)
}

func TestMarkReadForeignOwnerHidden(t *testing.T) {
	db := newTestDB(t)
	pusher := newFakePusher()

	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	other := seedUser(t, db, "other@example.com", models.RoleStudent)

	svc := NewNotificationService(db, pusher)
	notification, err := svc.Record(student.ID, "Yours only")
	require.NoError(t, err)

	// Another user's notification is reported as missing, not forbidden
	_, err = svc.MarkRead(notification.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	marked, err := svc.MarkRead(notification.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	// Marking twice is harmless
	marked, err = svc.MarkRead(notification.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)
}

func TestMarkReadUnknownID(t *testing.T) {
	db := newTestDB(t)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)

	svc := NewNotificationService(db, newFakePusher())
	_, err := svc.MarkRead(404, student.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
