package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
)

// StaticHunter returns a canned result dated in the current year. Used when
// llm.provider is "static" so the flow can be exercised without a model.
type StaticHunter struct{}

func (StaticHunter) HuntScholarships(ctx context.Context, profile models.Profile, now time.Time) (*HuntResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	year := now.UTC().Year()
	score := 92.0

	return &HuntResult{
		TotalValueFound: models.TotalValue{Text: "₹45 Lakhs"},
		Scholarships: []models.ScholarshipRecord{
			{
				Name:        "Chevening Scholarship",
				Country:     "UK",
				Amount:      models.TextAmount("£18,000"),
				Deadline:    fmt.Sprintf("%d-12-31", year),
				MatchScore:  &score,
				WhyItFits:   "Leadership potential and a clear plan to return home.",
				StrategyTip: "Lead with a concrete community project. Tie it to your " + majorOr(profile, "chosen field") + " goals.",
			},
			{
				Name:        "DAAD Study Scholarship",
				Country:     "Germany",
				Amount:      models.TextAmount("€11,208"),
				Deadline:    fmt.Sprintf("%d-12-31", year),
				StrategyTip: "Contact a supervisor early. A letter of support strengthens the file.",
			},
		},
	}, nil
}

func majorOr(p models.Profile, fallback string) string {
	if p.Major != "" {
		return p.Major
	}
	return fallback
}
