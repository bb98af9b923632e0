package services

import (
	"testing"

	"edutrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressFixture(t *testing.T) (*ProgressService, *EnrollmentService, *models.User, *models.Course, []*models.Lesson) {
	t.Helper()

	db := newTestDB(t)
	instructor := seedUser(t, db, "teach@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedCourse(t, db, instructor.ID, 0)
	lessons := []*models.Lesson{
		seedLesson(t, db, course.ID, 1),
		seedLesson(t, db, course.ID, 2),
	}

	enrollments := NewEnrollmentService(db, &fakeMailer{})
	notifications := NewNotificationService(db, newFakePusher())
	progress := NewProgressService(db, enrollments, notifications)

	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	return progress, enrollments, student, course, lessons
}

func TestProgressEventsAppend(t *testing.T) {
	progress, _, student, course, lessons := newProgressFixture(t)

	_, err := progress.RecordCompletion(student.ID, course.ID, &lessons[0].ID, true)
	require.NoError(t, err)
	_, err = progress.RecordCompletion(student.ID, course.ID, &lessons[0].ID, true)
	require.NoError(t, err)

	// Re-completing appends; history is never rewritten
	events, err := progress.ListForCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Distinct lessons drive the percentage, not event count
	percent, err := progress.CompletionPercent(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, percent)
}

func TestProgressCompletesEnrollmentAtFullCoverage(t *testing.T) {
	progress, enrollments, student, course, lessons := newProgressFixture(t)

	_, err := progress.RecordCompletion(student.ID, course.ID, &lessons[0].ID, true)
	require.NoError(t, err)

	list, err := enrollments.ListForUser(student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, list[0].Status)

	_, err = progress.RecordCompletion(student.ID, course.ID, &lessons[1].ID, true)
	require.NoError(t, err)

	list, err = enrollments.ListForUser(student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, list[0].Status)
}

func TestProgressRejectsForeignLesson(t *testing.T) {
	progress, _, student, course, _ := newProgressFixture(t)

	otherCourse := seedCourse(t, progress.db, course.InstructorID, 0)
	foreignLesson := seedLesson(t, progress.db, otherCourse.ID, 1)

	_, err := progress.RecordCompletion(student.ID, course.ID, &foreignLesson.ID, true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProgressUnknownCourse(t *testing.T) {
	progress, _, student, _, _ := newProgressFixture(t)

	_, err := progress.RecordCompletion(student.ID, 9999, nil, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncompleteEventDoesNotAdvance(t *testing.T) {
	progress, enrollments, student, course, lessons := newProgressFixture(t)

	_, err := progress.RecordCompletion(student.ID, course.ID, &lessons[0].ID, false)
	require.NoError(t, err)
	_, err = progress.RecordCompletion(student.ID, course.ID, &lessons[1].ID, false)
	require.NoError(t, err)

	percent, err := progress.CompletionPercent(student.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, percent)

	list, err := enrollments.ListForUser(student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, list[0].Status)
}
