// Command seed creates the demo account if it does not exist yet. Safe to
// run repeatedly.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/fbai-pro/backend/internal/config"
	"github.com/fbai-pro/backend/internal/store"
)

const (
	demoEmail    = "demo@fbai.pro"
	demoPassword = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	pgStore := store.NewPostgresStore(pool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	if _, err := pgStore.GetUserByEmail(ctx, demoEmail); err == nil {
		log.Println("Demo user already exists.")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Fatalf("lookup demo user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	if _, err := pgStore.CreateUser(ctx, demoEmail, string(hash)); err != nil {
		log.Fatalf("create demo user: %v", err)
	}
	log.Printf("Seeded demo user: %s / %s", demoEmail, demoPassword)
}
