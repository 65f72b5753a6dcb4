package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/roamops/roamops/domain"
	"github.com/roamops/roamops/infrastructure/adapter/postgres"
	"github.com/roamops/roamops/infrastructure/config"
	"github.com/roamops/roamops/infrastructure/service/password"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	email := "admin@roamops.local"
	adminPassword := "admin123"
	name := "Administrator"

	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		adminPassword = os.Args[2]
	}
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	passwordService := password.NewBcryptPasswordService(10)
	hashedPassword, err := passwordService.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := domain.NewEmployee(uuid.New().String(), name, email, hashedPassword, domain.RoleAdmin)

	store := postgres.NewPrivilegedStore(db)
	if err := store.Employees().Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin created successfully\n")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Name: %s\n", name)
	fmt.Printf("ID: %s\n", admin.ID)
}
