package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/david/scholarship-hunter/internal/db"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = db.DefaultURL
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	counts, err := db.NewStore(pool).Counts(ctx)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	fmt.Printf("Reports: %d\n", counts.Reports)
	fmt.Printf("Unlocked reports: %d\n", counts.UnlockedReports)
	fmt.Printf("Leads: %d\n", counts.Leads)
}
