package services

import (
	"testing"

	"edutrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*CatalogService, *models.User, *models.User) {
	t.Helper()

	db := newTestDB(t)
	instructor := seedUser(t, db, "teach@example.com", models.RoleInstructor)
	other := seedUser(t, db, "other@example.com", models.RoleInstructor)
	return NewCatalogService(db, NewAuditService(db)), instructor, other
}

func TestListCoursesHidesDrafts(t *testing.T) {
	svc, instructor, _ := newCatalogFixture(t)

	_, err := svc.CreateCourse(instructor.ID, "Published One", "", 0, true)
	require.NoError(t, err)
	_, err = svc.CreateCourse(instructor.ID, "Draft One", "", 0, false)
	require.NoError(t, err)

	visible, err := svc.ListCourses(true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.ListCourses(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateCourseOwnership(t *testing.T) {
	svc, instructor, other := newCatalogFixture(t)

	course, err := svc.CreateCourse(instructor.ID, "Owned", "", 1000, true)
	require.NoError(t, err)

	newTitle := "Renamed"
	_, err = svc.UpdateCourse(course.ID, other.ID, models.RoleInstructor, CourseUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateCourse(course.ID, other.ID, models.RoleAdmin, CourseUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.EqualValues(t, 1000, updated.PriceCents)

	badPrice := int64(-5)
	_, err = svc.UpdateCourse(course.ID, instructor.ID, models.RoleInstructor, CourseUpdate{PriceCents: &badPrice})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCourseCascades(t *testing.T) {
	svc, instructor, _ := newCatalogFixture(t)
	db := svc.db

	course, err := svc.CreateCourse(instructor.ID, "Doomed", "", 0, true)
	require.NoError(t, err)

	lesson, err := svc.CreateLesson(course.ID, instructor.ID, models.RoleInstructor, "L1", "", "", 0)
	require.NoError(t, err)

	quizzes := NewQuizService(db)
	quiz, err := quizzes.CreateQuiz(course.ID, instructor.ID, models.RoleInstructor, "Final", 70)
	require.NoError(t, err)
	_, err = quizzes.AddQuestion(quiz.ID, instructor.ID, models.RoleInstructor, "Q", []string{"A", "B"}, 0)
	require.NoError(t, err)

	student := seedUser(t, db, "student@example.com", models.RoleStudent)
	enrollments := NewEnrollmentService(db, &fakeMailer{})
	_, err = enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(course.ID, instructor.ID, models.RoleInstructor))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"courses", &models.Course{}},
		{"lessons", &models.Lesson{}},
		{"quizzes", &models.Quiz{}},
		{"questions", &models.Question{}},
		{"options", &models.QuizOption{}},
		{"enrollments", &models.Enrollment{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Zerof(t, count, "expected no %s left", probe.name)
	}

	_, err = svc.GetLesson(lesson.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateLessonAppendsPosition(t *testing.T) {
	svc, instructor, _ := newCatalogFixture(t)

	course, err := svc.CreateCourse(instructor.ID, "Ordered", "", 0, true)
	require.NoError(t, err)

	first, err := svc.CreateLesson(course.ID, instructor.ID, models.RoleInstructor, "Intro", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)

	second, err := svc.CreateLesson(course.ID, instructor.ID, models.RoleInstructor, "Next", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)

	pinned, err := svc.CreateLesson(course.ID, instructor.ID, models.RoleInstructor, "Pinned", "", "", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, pinned.Position)

	lessons, err := svc.ListLessons(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, "Intro", lessons[0].Title)
	assert.Equal(t, "Pinned", lessons[2].Title)
}
