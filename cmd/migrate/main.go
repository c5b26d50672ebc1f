// Command migrate runs the schema migrations and exits. Production deploys
// run this explicitly; outside production the server migrates on startup.
package main

import (
	"log"

	"academicworld/internal/config"
	"academicworld/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
