// seed inserts a demo user and a handful of contacts into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"contactbook/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedName     = "Demo User"
	seedEmail    = "demo@test.local"
	seedPassword = "demo-password"
)

type contactSpec struct {
	name    string
	email   string
	phone   string
	message string
}

var contacts = []contactSpec{
	{"Alice Novak", "alice@example.com", "+1-202-555-0101", "Met at the Go meetup"},
	{"Bob Tran", "bob@example.com", "+1-202-555-0102", ""},
	{"Carla Diaz", "carla@example.com", "+1-202-555-0103", "Plumber, recommended by Bob"},
	{"Dmitri Orlov", "", "+1-202-555-0104", "No email on file"},
	{"Eve Park", "eve@example.com", "+1-202-555-0105", ""},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert demo user (idempotent re-runs)
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedName, seedEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var inserted, skipped int
	for _, spec := range contacts {
		// Keyed by (user, name) so re-runs stay idempotent even for
		// contacts without an email.
		tag, err := pool.Exec(ctx, `
			INSERT INTO contacts (user_id, name, email, phone, message)
			SELECT $1, $2, NULLIF($3, ''), $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM contacts WHERE user_id = $1 AND name = $2
			)`,
			userID, spec.name, spec.email, spec.phone, spec.message,
		)
		if err != nil {
			log.Fatalf("insert contact %s: %v", spec.name, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:              %s\n", seedEmail)
	fmt.Printf("  User ID:           %s\n", userID)
	fmt.Printf("  Password:          %s\n", seedPassword)
	fmt.Printf("  Contacts created:  %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in and grab a token:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — list the seeded contacts:")
	fmt.Println()
	fmt.Println("    export TOKEN=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/contacts -H \"x-auth-token: $TOKEN\"")
	fmt.Println()
	fmt.Println("  Step 3 — check identity resolution:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/auth/me -H \"x-auth-token: $TOKEN\"")
}
