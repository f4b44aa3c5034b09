// Command seed populates the database with demo users, questions, answers
// and engagement rows for development.
package main

import (
	"flag"
	"log"

	"wenda/internal/config"
	"wenda/internal/database"
	"wenda/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of demo users to create")
	numQuestions := flag.Int("questions", 50, "number of demo questions to create")
	clean := flag.Bool("clean", false, "truncate existing data before seeding")
	randSeed := flag.Int64("seed", 0, "random seed for reproducible data (0 = nondeterministic)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		NumQuestions: *numQuestions,
		ShouldClean:  *clean,
		Seed:         *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
