package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cashflowhq/cash-flow-api/config"
	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/pkg/helpers"
)

// Seeds the bootstrap admin account so a fresh deployment has a way in.
// Idempotent: re-running refreshes the name but keeps the existing row.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, uuid.NewString(), cfg.SeedAdminName, cfg.SeedAdminEmail, hash, string(entity.RoleAdmin)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, cfg.SeedAdminEmail)
}
