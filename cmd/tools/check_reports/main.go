package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/david/scholarship-hunter/internal/config"
	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/report"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
)

// check_reports lists recent reports, or renders one assembled report with -id.
func main() {
	id := flag.String("id", "", "report id to render")
	limit := flag.Int("limit", 10, "number of recent reports to list")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	store := db.NewStore(pool)

	if *id == "" {
		listReports(ctx, store, *limit)
		return
	}

	reportID, err := uuid.Parse(*id)
	if err != nil {
		log.Fatalf("invalid id: %v", err)
	}
	rates, err := report.LoadRates(cfg.RatesFile)
	if err != nil {
		log.Fatal(err)
	}
	rec, err := store.GetReport(ctx, reportID)
	if err != nil {
		log.Fatal(err)
	}
	rep := report.NewAssembler(report.NewConverter(rates)).AssembleRecord(*rec, time.Now())

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Report " + rep.ID + " (" + rep.TotalValueLabel + ")")
	t.AppendHeader(table.Row{"#", "Scholarship", "Country", "Amount", "INR Lakhs", "Deadline", "Countdown", "Match"})
	for i, s := range rep.Scholarships {
		t.AppendRow(table.Row{i + 1, s.Name, s.Flag + " " + s.Country, s.AmountDisplay, s.AmountInrLakhs, s.DeadlineNormalized, s.Countdown, s.MatchScore})
	}
	t.Render()
}

func listReports(ctx context.Context, store *db.Store, limit int) {
	summaries, err := store.ListReports(ctx, limit)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Report", "Scholarships", "Unlocked", "Created At"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.Scholarships, s.Unlocked, s.CreatedAt.Format("2006-01-02 15:04")})
	}
	t.Render()
}
