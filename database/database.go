package database

import (
	"fmt"
	"log"

	"edutrack/config"
	"edutrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect establishes a connection to PostgreSQL. The handle is returned to
// the caller instead of being stored in a package global so every component
// receives it explicitly.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// Migrate performs database migrations and seeds the role table
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Resource{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizOption{},
		&models.Enrollment{},
		&models.Progress{},
		&models.Submission{},
		&models.Payment{},
		&models.Notification{},
		&models.Certificate{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return fmt.Errorf("role seeding failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// seedRoles makes sure the fixed role set exists
func seedRoles(db *gorm.DB) error {
	for _, name := range models.RoleNames() {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
