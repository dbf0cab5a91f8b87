package main

import (
	"context"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/service"
)

// Bootstraps the first dashboard account. Meant to be run once against
// a freshly migrated database.
func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	role := flag.String("role", model.RoleSuperAdmin, "account role")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	userService := service.NewUserService(repository.NewUserRepository(db))

	user, err := userService.Create(context.Background(), service.CreateUserInput{
		Email:    *email,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		log.Fatalf("failed to create account: %v", err)
	}

	log.Printf("created %s account %s (%s)", user.Role, user.Email, user.ID)
}
