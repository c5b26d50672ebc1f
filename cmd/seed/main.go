// Command seed populates a development database with fake data.
package main

import (
	"flag"
	"log"

	"academicworld/internal/config"
	"academicworld/internal/database"
	"academicworld/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "number of users to create")
	numCourses := flag.Int("courses", 20, "number of courses to create")
	numColleges := flag.Int("colleges", 15, "number of colleges to create")
	numExams := flag.Int("exams", 10, "number of exams to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.EnsureAdmin(cfg, db); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumCourses:  *numCourses,
		NumColleges: *numColleges,
		NumExams:    *numExams,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
