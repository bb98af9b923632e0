package services

import (
	"errors"
	"fmt"
	"strings"

	"edutrack/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityService owns account lifecycle: registration, credential checks
// and admin user management.
type IdentityService struct {
	db        *gorm.DB
	saltRound int
	mailer    Mailer
	audit     *AuditService
}

func NewIdentityService(db *gorm.DB, saltRound int, mailer Mailer, audit *AuditService) *IdentityService {
	return &IdentityService{db: db, saltRound: saltRound, mailer: mailer, audit: audit}
}

// Register creates an account under the given role. The role must be one of
// the seeded names; an unknown role is rejected, never auto-created.
func (s *IdentityService) Register(email, password, fullName, roleName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if roleName == "" {
		roleName = models.RoleStudent
	}

	var role models.Role
	if err := s.db.Where("name = ?", roleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, roleName)
		}
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		FullName: fullName,
		RoleID:   role.ID,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}

	s.mailer.SendWelcomeEmail(user.Email, user.FullName)
	return &user, nil
}

// Authenticate verifies credentials and returns the matching account. The
// error is the same whether the email is unknown or the password is wrong.
func (s *IdentityService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

// Get fetches one account with its role
func (s *IdentityService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns all accounts, newest first
func (s *IdentityService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Role").Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes an account. Courses, enrollments and payments referencing
// the account are kept for bookkeeping.
func (s *IdentityService) Delete(userID, actorID uint) error {
	if userID == actorID {
		return fmt.Errorf("%w: cannot delete your own account", ErrValidation)
	}

	result := s.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(&actorID, "user.delete", "user", userID)
	return nil
}
