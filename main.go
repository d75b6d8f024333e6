package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"groshop/m/internal/auth"
	"groshop/m/internal/billing"
	"groshop/m/internal/config"
	"groshop/m/internal/database"
	"groshop/m/internal/migrations"
	"groshop/m/internal/seed"
	"groshop/m/internal/session"
	"groshop/m/internal/store"
	"groshop/m/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	if cfg.SeedFile != "" {
		seed.LoadGroceries(db, cfg.SeedFile)
	}

	accounts := store.NewAccountRepository(db)
	inventory := store.NewInventoryRepository(db)

	sessions := session.NewManager(cfg.SessionSecret)
	go sessions.Sweep(context.Background(), time.Hour)

	handler := web.New(
		accounts,
		inventory,
		auth.NewService(accounts),
		billing.NewAccumulator(inventory),
		sessions,
	)

	log.Printf("Groshop server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
