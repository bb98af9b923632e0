package authRoutes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"edutrack/config"
	authController "edutrack/controllers/auth"
	"edutrack/database"
	"edutrack/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
}

type noopMailer struct{}

func (noopMailer) SendWelcomeEmail(email, name string) {}

func (noopMailer) SendEnrollmentEmail(email, name, courseTitle string) {}

func (noopMailer) SendCertificateEmail(email, name, course, serial string) {}

func (noopMailer) SendPaymentReceiptEmail(email, name, course, currency string, amountCents int64) {}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	identity := services.NewIdentityService(db, bcrypt.MinCost, noopMailer{}, services.NewAuditService(db))

	app := fiber.New()
	SetupAuthRoutes(app, authController.NewAuthController(identity))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestRegisterLoginMeFlow(t *testing.T) {
	app := setupApp(t)

	payload := map[string]interface{}{
		"email":     "flow@example.com",
		"password":  "password123",
		"full_name": "Flow Tester",
	}

	status, envelope := postJSON(t, app, "/api/auth/register", payload)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, envelope["status"])

	// Duplicate registration conflicts
	status, _ = postJSON(t, app, "/api/auth/register", payload)
	assert.Equal(t, fiber.StatusConflict, status)

	status, envelope = postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "flow@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	data := envelope["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "student", data["role"])

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Wrong password is unauthorized
	status, _ = postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "flow@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", map[string]interface{}{
		"email":     "not-an-email",
		"password":  "short",
		"full_name": "",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Unknown roles are rejected, not auto-created
	status, _ = postJSON(t, app, "/api/auth/register", map[string]interface{}{
		"email":     "root@example.com",
		"password":  "password123",
		"full_name": "Root",
		"role":      "superuser",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestRefreshFlow(t *testing.T) {
	app := setupApp(t)

	_, _ = postJSON(t, app, "/api/auth/register", map[string]interface{}{
		"email":     "refresh@example.com",
		"password":  "password123",
		"full_name": "Refresh Tester",
	})
	_, envelope := postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "refresh@example.com",
		"password": "password123",
	})
	data := envelope["data"].(map[string]interface{})
	refreshToken, _ := data["refresh_token"].(string)
	require.NotEmpty(t, refreshToken)

	status, envelope := postJSON(t, app, "/api/auth/refresh", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	require.Equal(t, fiber.StatusOK, status)
	refreshed := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, refreshed["token"])

	// An access token is not a refresh token
	accessToken, _ := data["token"].(string)
	status, _ = postJSON(t, app, "/api/auth/refresh", map[string]interface{}{
		"refresh_token": accessToken,
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
