package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/dauletm/pickup-share/config"
	"github.com/dauletm/pickup-share/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Pool.Close()

	migrateSchema(client.Pool)
}

func migrateSchema(db *pgxpool.Pool) {
	// short timeout for migration operations
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS passengers (
			id         uuid PRIMARY KEY,
			owner      text NOT NULL,
			name       text NOT NULL,
			address    text NOT NULL,
			lat        float8 NOT NULL,
			lng        float8 NOT NULL,
			type       text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_passengers_owner ON passengers (owner, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS transfers (
			code          text PRIMARY KEY,
			passenger_ids uuid[] NOT NULL,
			destination   text NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now()
		)`,
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("migrateSchema: begin tx: %v", err)
	}
	// ensure rollback if commit doesn't happen
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			log.Fatalf("migrateSchema: exec: %v", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("migrateSchema: commit: %v", err)
	}

	log.Println("schema is up to date")
}
