package main

import (
	"errors"
	"flag"
	"log"

	"edutrack/config"
	"edutrack/database"
	"edutrack/models"
	"edutrack/services"
	"edutrack/utils"
)

// Bootstraps the first admin account. Run once after deployment:
//
//	go run ./scripts/seedadmin -email admin@example.com -password change-me
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 8 characters)")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		log.Fatal("Usage: seedadmin -email <email> -password <password, min 8 chars> [-name <name>]")
	}

	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	audit := services.NewAuditService(db)
	identity := services.NewIdentityService(db, config.AppConfig.SaltRound, utils.NewMailer(config.AppConfig), audit)

	user, err := identity.Register(*email, *password, *name, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			log.Printf("Admin account %s already exists, nothing to do.", *email)
			return
		}
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Admin account created: %s (id %d)", user.Email, user.ID)
}
