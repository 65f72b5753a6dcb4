package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Seeds one employee plus a recent completed shift and a pending correction
// request, enough to exercise the approve and conflict flows locally.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	email := getenvDefault("SEED_USER_EMAIL", "demo@roamops.local")
	password := getenvDefault("SEED_USER_PASSWORD", "Demo1234!")
	name := getenvDefault("SEED_USER_NAME", "Demo Employee")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	var employeeID string
	err = db.QueryRow(`
		INSERT INTO employees (id, name, email, password, role, status, correction_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'employee', 'active', 0, $5, $5)
		ON CONFLICT (email) DO UPDATE SET
		  password = EXCLUDED.password,
		  updated_at = EXCLUDED.updated_at
		RETURNING id
	`, uuid.New().String(), name, email, string(hash), now).Scan(&employeeID)
	if err != nil {
		log.Fatalf("failed to seed employee: %v", err)
	}

	// yesterday's completed shift
	shiftStart := now.AddDate(0, 0, -1).Truncate(time.Hour)
	shiftEnd := shiftStart.Add(8 * time.Hour)
	duration := shiftEnd.Sub(shiftStart).Hours()
	_, err = db.Exec(`
		INSERT INTO time_entries (id, user_id, start_time, end_time, duration, status, location, role, notes, audit_trail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'completed', 'Front Desk', 'employee', 'Seeded shift', '[]', $6, $6)
	`, uuid.New().String(), employeeID, shiftStart, shiftEnd, duration, now)
	if err != nil {
		log.Fatalf("failed to seed time entry: %v", err)
	}

	// pending correction request overlapping the seeded shift
	_, err = db.Exec(`
		INSERT INTO time_sheet_requests (id, user_id, start_time, end_time, reason, status, created_at)
		VALUES ($1, $2, $3, $4, 'Forgot to clock out', 'pending', $5)
	`, uuid.New().String(), employeeID, shiftStart.Add(time.Hour), shiftEnd.Add(time.Hour), now)
	if err != nil {
		log.Fatalf("failed to seed correction request: %v", err)
	}

	fmt.Printf("Seeded employee: email=%s password=%s id=%s\n", email, password, employeeID)
}

func getenvDefault(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
