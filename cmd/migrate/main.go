package main

import (
	"flag"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"multipoles-backend/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	dir := flag.String("dir", "migrations", "directory with migration files")
	down := flag.Bool("down", false, "roll back the latest migration instead of applying")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}
	db, err := goose.OpenDBWithDriver("postgres", cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if *down {
		if err := goose.Down(db, *dir); err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		log.Println("migrations: down OK")
		return
	}

	if err := goose.Up(db, *dir); err != nil {
		log.Fatalf("migrate up: %v", err)
	}
	log.Println("migrations: up OK")
}
