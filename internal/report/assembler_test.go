package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 11, 30, 18, 0, 0, 0, time.UTC)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	return NewAssembler(newTestConverter(t))
}

func TestAssembleReport_Empty(t *testing.T) {
	a := newTestAssembler(t)

	rep := a.AssembleReport("r-1", nil, "", nil, fixedNow)

	assert.Equal(t, "r-1", rep.ID)
	assert.NotNil(t, rep.Scholarships)
	assert.Empty(t, rep.Scholarships)
	assert.Equal(t, UnderOneLakhLabel, rep.TotalValueLabel)

	// An empty list must serialize as [] rather than null.
	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scholarships":[]`)
}

func TestAssembleReport_SingleUKEntry(t *testing.T) {
	a := newTestAssembler(t)

	raws := []models.ScholarshipRecord{{
		Name:     "Chevening",
		Country:  "UK",
		Amount:   models.TextAmount("£15,000"),
		Deadline: "December 15, 2026",
	}}

	rep := a.AssembleReport("r-2", raws, "", nil, fixedNow)
	require.Len(t, rep.Scholarships, 1)

	got := rep.Scholarships[0]
	assert.Equal(t, "Chevening", got.Name)
	assert.Equal(t, "🇬🇧", got.Flag)
	assert.Equal(t, "£15,000", got.AmountDisplay)
	assert.InDelta(t, 15.75, got.AmountInrLakhs, 0.0001)
	assert.Equal(t, "December 15, 2026", got.DeadlineRaw)
	assert.Equal(t, "2026-12-15", got.DeadlineNormalized)
	assert.Equal(t, "14d 06h", got.Countdown)
	assert.Equal(t, 98, got.MatchScore)
	assert.Equal(t, genericFitReason, got.WhyItFits)
	assert.Equal(t, "₹15.8 Lakhs", rep.TotalValueLabel)
}

func TestAssembleReport_OrderAndScores(t *testing.T) {
	a := newTestAssembler(t)
	supplied := 91.0

	raws := make([]models.ScholarshipRecord, 10)
	for i := range raws {
		raws[i] = models.ScholarshipRecord{
			Name:     string(rune('A' + i)),
			Country:  "USA",
			Amount:   models.TextAmount("$1,000"),
			Deadline: "2027-01-01",
		}
	}
	raws[4].MatchScore = &supplied

	rep := a.AssembleReport("r-3", raws, "", nil, fixedNow)
	require.Len(t, rep.Scholarships, 10)

	for i, s := range rep.Scholarships {
		assert.Equal(t, raws[i].Name, s.Name, "order preserved at %d", i)
	}
	assert.Equal(t, 98, rep.Scholarships[0].MatchScore)
	assert.Equal(t, 91, rep.Scholarships[4].MatchScore)
	assert.Equal(t, 85, rep.Scholarships[9].MatchScore)

	// 10 x $1,000 x 83 = 8.3 lakhs
	assert.Equal(t, "₹8.3 Lakhs", rep.TotalValueLabel)
}

func TestAssembleReport_PrecomputedTotal(t *testing.T) {
	a := newTestAssembler(t)

	raws := []models.ScholarshipRecord{{Name: "X", Country: "USA", Amount: models.TextAmount("$50,000")}}
	rep := a.AssembleReport("r-4", raws, "₹99 Lakhs", nil, fixedNow)

	assert.Equal(t, "₹99 Lakhs", rep.TotalValueLabel)
	assert.Equal(t, FullyFundedLabel, rep.Scholarships[0].AmountDisplay)
	assert.InDelta(t, 41.5, rep.Scholarships[0].AmountInrLakhs, 0.0001)
}

func TestAssembleReport_BadFieldsDoNotDropEntries(t *testing.T) {
	a := newTestAssembler(t)

	raws := []models.ScholarshipRecord{
		{Name: "No amount", Country: "Canada"},
		{Name: "Garbage amount", Country: "Mars", Amount: models.TextAmount("lots of money"), Deadline: "whenever"},
		{Name: "Expired", Country: "Germany", Amount: models.TextAmount("€5,000"), Deadline: "2020-01-01"},
		{},
	}

	rep := a.AssembleReport("r-5", raws, "", nil, fixedNow)
	require.Len(t, rep.Scholarships, 4)

	assert.Equal(t, AmountVariesLabel, rep.Scholarships[0].AmountDisplay)
	assert.Zero(t, rep.Scholarships[0].AmountInrLakhs)
	assert.Equal(t, DeadlineUnknown, rep.Scholarships[0].DeadlineNormalized)

	assert.Equal(t, "lots of money", rep.Scholarships[1].AmountDisplay)
	assert.Equal(t, DefaultFlag, rep.Scholarships[1].Flag)
	assert.Equal(t, DeadlineUnknown, rep.Scholarships[1].Countdown)
	assert.Equal(t, "whenever", rep.Scholarships[1].DeadlineRaw)

	assert.Equal(t, "2020-01-01", rep.Scholarships[2].DeadlineNormalized)
	assert.Equal(t, DeadlinePassed, rep.Scholarships[2].Countdown)

	assert.Equal(t, UnderOneLakhLabel, FormatTotalLakhs(0.4))
	// 5000 x 90 = 4.5 lakhs; the others contribute nothing.
	assert.Equal(t, "₹4.5 Lakhs", rep.TotalValueLabel)
}

func TestAssembleReport_FitReasonFromProfile(t *testing.T) {
	a := newTestAssembler(t)
	profile := &models.Profile{Major: "Computer Science", GPA: 9.1, SpecialPowers: []string{"ResearchPaper"}}

	raws := []models.ScholarshipRecord{
		{Name: "Given", WhyItFits: "Because you asked."},
		{Name: "Derived"},
	}
	rep := a.AssembleReport("r-6", raws, "", profile, fixedNow)

	assert.Equal(t, "Because you asked.", rep.Scholarships[0].WhyItFits)
	assert.Equal(t,
		"Your research paper experience makes you stand out, your strong academic record (GPA 9.1) aligns perfectly, your Computer Science background matches their requirements.",
		rep.Scholarships[1].WhyItFits)
}

func TestAssembleRecord(t *testing.T) {
	a := newTestAssembler(t)
	id := uuid.New()

	rec := models.ReportRecord{
		ID:              id,
		TotalValueFound: models.TotalValue{Text: "  ₹42 Lakhs "},
		Scholarships: []models.ScholarshipRecord{
			{Name: "Fulbright", Country: "USA", Amount: models.TextAmount("$10,000"), Deadline: "2027-02-01"},
		},
	}

	rep := a.AssembleRecord(rec, fixedNow)
	assert.Equal(t, id.String(), rep.ID)
	assert.Equal(t, "₹42 Lakhs", rep.TotalValueLabel)
	assert.Equal(t, "$10,000", rep.Scholarships[0].AmountDisplay)

	rec.TotalValueFound = models.TotalValue{}
	rep = a.AssembleRecord(rec, fixedNow)
	assert.Equal(t, "₹8.3 Lakhs", rep.TotalValueLabel)

	upstream := 4500000.0
	rec.TotalValueFound = models.TotalValue{Number: &upstream}
	rep = a.AssembleRecord(rec, fixedNow)
	assert.Equal(t, "₹8.3 Lakhs", rep.TotalValueLabel, "numeric upstream total is ignored")
}

func TestFormatTotalLakhs(t *testing.T) {
	assert.Equal(t, UnderOneLakhLabel, FormatTotalLakhs(0))
	assert.Equal(t, UnderOneLakhLabel, FormatTotalLakhs(0.99))
	assert.Equal(t, "₹1.0 Lakhs", FormatTotalLakhs(1))
	assert.Equal(t, "₹26.4 Lakhs", FormatTotalLakhs(26.35001))
}
