package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ecoshare/ecoshare-backend/internal/config"
	"github.com/ecoshare/ecoshare-backend/internal/server"
	"github.com/ecoshare/ecoshare-backend/internal/session"
	"github.com/ecoshare/ecoshare-backend/internal/store"
	"github.com/ecoshare/ecoshare-backend/internal/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	var listings store.ListingStore
	switch cfg.StoreDriver {
	case "sqlite":
		st, err := sqlite.Open()
		if err != nil {
			log.Fatalf("sqlite open error: %v", err)
		}
		defer st.Close()
		listings = st
	default:
		listings = store.NewMemory()
	}

	if err := store.Seed(context.Background(), listings); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	holder := session.NewHolder(session.DemoRegistry())
	srv := server.New(cfg, listings, holder)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s (store=%s)", addr, cfg.StoreDriver)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
