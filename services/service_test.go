package services

import (
	"fmt"
	"strings"
	"testing"

	"edutrack/database"
	"edutrack/gateway"
	"edutrack/models"
	"edutrack/pdfgen"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database, migrated and role-seeded
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// fakeMailer records trigger invocations
type fakeMailer struct {
	welcomes     int
	enrollments  int
	receipts     int
	certificates int
}

func (m *fakeMailer) SendWelcomeEmail(email, name string) { m.welcomes++ }

func (m *fakeMailer) SendEnrollmentEmail(email, name, courseTitle string) { m.enrollments++ }

func (m *fakeMailer) SendPaymentReceiptEmail(email, name, courseTitle, currency string, amountCents int64) {
	m.receipts++
}

func (m *fakeMailer) SendCertificateEmail(email, name, courseTitle, serialNumber string) {
	m.certificates++
}

// fakePusher records pushed events per user; failNext simulates an offline
// user
type fakePusher struct {
	sent     map[uint][]string
	failNext bool
}

func newFakePusher() *fakePusher {
	return &fakePusher{sent: make(map[uint][]string)}
}

func (p *fakePusher) Send(userID uint, event string, payload interface{}) error {
	if p.failNext {
		return fmt.Errorf("no active connection for user %d", userID)
	}
	p.sent[userID] = append(p.sent[userID], event)
	return nil
}

// fakeGateway hands out deterministic intents
type fakeGateway struct {
	configured bool
	failNext   bool
	calls      int
	metadata   map[string]string
}

func (g *fakeGateway) Configured() bool { return g.configured }

func (g *fakeGateway) CreateIntent(amountCents int64, currency string, metadata map[string]string) (*gateway.Intent, error) {
	g.calls++
	g.metadata = metadata
	if g.failNext {
		return nil, fmt.Errorf("gateway unavailable")
	}
	id := fmt.Sprintf("pi_test_%d", g.calls)
	return &gateway.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Raw:          []byte(fmt.Sprintf(`{"id":%q,"amount":%d}`, id, amountCents)),
	}, nil
}

// fakeRenderer returns stub bytes and remembers the fields it saw
type fakeRenderer struct {
	fields pdfgen.Fields
	calls  int
}

func (r *fakeRenderer) Render(fields pdfgen.Fields) ([]byte, error) {
	r.calls++
	r.fields = fields
	return []byte("%PDF-stub " + fields.SerialNumber), nil
}

func seedUser(t *testing.T, db *gorm.DB, email, roleName string) *models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Test " + roleName,
		RoleID:   role.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, priceCents int64) *models.Course {
	t.Helper()

	course := models.Course{
		Title:        "Distributed Systems 101",
		Description:  "From zero to consensus",
		InstructorID: instructorID,
		PriceCents:   priceCents,
		Published:    true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func seedLesson(t *testing.T, db *gorm.DB, courseID uint, position int) *models.Lesson {
	t.Helper()

	lesson := models.Lesson{
		CourseID: courseID,
		Title:    fmt.Sprintf("Lesson %d", position),
		Position: position,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}
