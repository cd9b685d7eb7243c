// Package report turns stored, loosely shaped scholarship records into a display-ready report.
package report

import (
	"fmt"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
)

// NormalizedScholarship is one display-ready entry.
type NormalizedScholarship struct {
	Name               string  `json:"name"`
	Country            string  `json:"country"`
	Flag               string  `json:"flag"`
	AmountDisplay      string  `json:"amountDisplay"`
	AmountInrLakhs     float64 `json:"amountInrLakhs"`
	DeadlineRaw        string  `json:"deadlineRaw,omitempty"`
	DeadlineNormalized string  `json:"deadlineNormalized"`
	Countdown          string  `json:"countdown"`
	MatchScore         int     `json:"matchScore"`
	WhyItFits          string  `json:"whyItFits,omitempty"`
	StrategyTip        string  `json:"strategyTip,omitempty"`
	Description        string  `json:"description,omitempty"`
	Locked             bool    `json:"locked,omitempty"`
}

// Report is the display model for one stored hunt.
type Report struct {
	ID              string                  `json:"id"`
	Scholarships    []NormalizedScholarship `json:"scholarships"`
	TotalValueLabel string                  `json:"totalValueLabel"`
}

// UnderOneLakhLabel is the total shown when the summed value is below one lakh.
const UnderOneLakhLabel = "Under 1 Lakh"

// Assembler composes the deadline normalizer, currency converter and match/countdown
// deriver over a list of raw records. It holds no mutable state.
type Assembler struct {
	conv *Converter
}

func NewAssembler(conv *Converter) *Assembler {
	return &Assembler{conv: conv}
}

// Converter returns the converter used for amounts.
func (a *Assembler) Converter() *Converter {
	return a.conv
}

// AssembleReport normalizes raws in order. precomputedTotal, when non-empty, is used as
// the total label as-is. profile may be nil; it only feeds missing fit reasons.
func (a *Assembler) AssembleReport(id string, raws []models.ScholarshipRecord, precomputedTotal string, profile *models.Profile, now time.Time) Report {
	out := Report{
		ID:           id,
		Scholarships: make([]NormalizedScholarship, 0, len(raws)),
	}

	var totalLakhs float64
	for i, raw := range raws {
		entry := a.normalizeEntry(raw, i, len(raws), profile, now)
		totalLakhs += entry.AmountInrLakhs
		out.Scholarships = append(out.Scholarships, entry)
	}

	if precomputedTotal != "" {
		out.TotalValueLabel = precomputedTotal
	} else {
		out.TotalValueLabel = FormatTotalLakhs(totalLakhs)
	}
	return out
}

// AssembleRecord runs AssembleReport over a stored report.
func (a *Assembler) AssembleRecord(rec models.ReportRecord, now time.Time) Report {
	return a.AssembleReport(rec.ID.String(), rec.Scholarships, rec.TotalValueFound.Label(), rec.Input, now)
}

// FormatTotalLakhs renders a lakh sum such as "₹15.8 Lakhs".
func FormatTotalLakhs(total float64) string {
	if !(total >= 1) {
		return UnderOneLakhLabel
	}
	return fmt.Sprintf("₹%.1f Lakhs", total)
}

// normalizeEntry never panics; a failure on any field leaves the zeroed fallback entry.
func (a *Assembler) normalizeEntry(raw models.ScholarshipRecord, index, total int, profile *models.Profile, now time.Time) (entry NormalizedScholarship) {
	entry = NormalizedScholarship{
		Name:               raw.Name,
		Country:            raw.Country,
		Flag:               DefaultFlag,
		AmountDisplay:      AmountVariesLabel,
		DeadlineRaw:        raw.Deadline,
		DeadlineNormalized: DeadlineUnknown,
		Countdown:          DeadlineUnknown,
		MatchScore:         DeriveMatchScore(index, total),
	}
	fallback := entry
	defer func() {
		if recover() != nil {
			entry = fallback
		}
	}()

	amount := ParseAmount(raw.Amount)
	entry.Flag = FlagFor(raw.Country)
	entry.AmountDisplay = a.conv.FormatAmount(amount, raw.Country)
	entry.AmountInrLakhs = a.conv.ToINRLakhs(amount, raw.Country)
	entry.DeadlineNormalized = NormalizeDeadline(raw.Deadline)
	entry.Countdown = DeriveCountdown(entry.DeadlineNormalized, now)
	entry.MatchScore = ResolveMatchScore(raw.MatchScore, index, total)
	entry.WhyItFits = raw.WhyItFits
	if entry.WhyItFits == "" {
		entry.WhyItFits = FitReason(profile)
	}
	entry.StrategyTip = raw.StrategyTip
	entry.Description = raw.Description
	return entry
}
