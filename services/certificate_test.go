package services

import (
	"testing"

	"edutrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRequiresCompletedEnrollment(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}

	instructor := seedUser(t, db, "teach@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedCourse(t, db, instructor.ID, 0)

	enrollments := NewEnrollmentService(db, mailer)
	svc := NewCertificateService(db, renderer, mailer, "EduTrack")

	// No enrollment at all
	_, _, err := svc.Issue(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotEligible)

	// Active but not completed
	_, err = enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, _, err = svc.Issue(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotEligible)

	_, err = enrollments.CompleteByPair(student.ID, course.ID)
	require.NoError(t, err)

	pdfBytes, certificate, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.NotEmpty(t, certificate.SerialNumber)
	assert.Equal(t, course.Title, renderer.fields.CourseTitle)
	assert.Equal(t, 1, mailer.certificates)
}

func TestIssueSerialIsStable(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}

	instructor := seedUser(t, db, "teach@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedCourse(t, db, instructor.ID, 0)

	enrollments := NewEnrollmentService(db, mailer)
	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, err = enrollments.CompleteByPair(student.ID, course.ID)
	require.NoError(t, err)

	svc := NewCertificateService(db, renderer, mailer, "EduTrack")

	_, first, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)
	_, second, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, first.SerialNumber, second.SerialNumber)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The email only goes out on first issuance
	assert.Equal(t, 1, mailer.certificates)
}

func TestListForUserCertificates(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}

	instructor := seedUser(t, db, "teach@example.com", models.RoleInstructor)
	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	course := seedCourse(t, db, instructor.ID, 0)

	enrollments := NewEnrollmentService(db, mailer)
	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, err = enrollments.CompleteByPair(student.ID, course.ID)
	require.NoError(t, err)

	svc := NewCertificateService(db, renderer, mailer, "EduTrack")
	_, _, err = svc.Issue(student.ID, course.ID)
	require.NoError(t, err)

	certificates, err := svc.ListForUser(student.ID)
	require.NoError(t, err)
	assert.Len(t, certificates, 1)

	certificates, err = svc.ListForUser(instructor.ID)
	require.NoError(t, err)
	assert.Empty(t, certificates)
}
