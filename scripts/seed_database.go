package main

import (
	"flag"
	"log"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
)

func main() {
	// Parse command line flags
	driver := flag.String("driver", "sqlite", "Database driver (sqlite or postgres)")
	dsn := flag.String("dsn", "app.db", "SQLite path or PostgreSQL connection URL")
	flag.Parse()

	cfg := database.DatabaseConfig{Driver: *driver}
	if *driver == "sqlite" {
		cfg.Path = *dsn
	} else {
		cfg.URL = *dsn
	}

	db, err := database.InitDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	log.Println("Database ready:", cfg.String())
}
