package report

import (
	"fmt"
	"strings"

	"github.com/david/scholarship-hunter/internal/models"
)

const genericFitReason = "Your profile aligns well with the scholarship criteria and eligibility requirements."

// FitReason builds a "why it fits" sentence from the intake profile.
func FitReason(p *models.Profile) string {
	if p == nil {
		return genericFitReason
	}

	var parts []string
	if hasPower(p.SpecialPowers, "ResearchPaper") {
		parts = append(parts, "Your research paper experience makes you stand out")
	}
	if hasPower(p.SpecialPowers, "Sports") {
		parts = append(parts, "Your state-level sports achievements add a unique dimension")
	}
	if hasPower(p.SpecialPowers, "NGO_Work") {
		parts = append(parts, "Your NGO work demonstrates the social impact they're looking for")
	}
	if p.GPA >= 8.5 {
		parts = append(parts, fmt.Sprintf("your strong academic record (GPA %.1f) aligns perfectly", p.GPA))
	}
	if major := normalizeSpace(p.Major); major != "" {
		parts = append(parts, "your "+major+" background matches their requirements")
	}

	if len(parts) == 0 {
		return genericFitReason
	}
	return strings.Join(parts, ", ") + "."
}

func hasPower(powers []string, want string) bool {
	for _, p := range powers {
		if strings.EqualFold(strings.TrimSpace(p), want) {
			return true
		}
	}
	return false
}

type flagRule struct {
	flag    string
	matches []string
}

var flagRules = []flagRule{
	{"🇨🇭", []string{"switzerland"}},
	{"🇦🇺", []string{"australia"}},
	{"🇨🇦", []string{"canada"}},
	{"🇬🇧", []string{"uk", "united kingdom", "england", "scotland", "britain"}},
	{"🇺🇸", []string{"usa", "us", "united states", "america"}},
	{"🇩🇪", []string{"germany"}},
	{"🇮🇳", []string{"india"}},
	{"🇪🇺", []string{"eu", "europe"}},
}

// DefaultFlag is used when the country matches no known flag.
const DefaultFlag = "🎓"

// FlagFor returns an emoji flag for a free-text country.
func FlagFor(country string) string {
	lower := strings.ToLower(country)
	tokens := wordTokens(country)
	for _, rule := range flagRules {
		for _, m := range rule.matches {
			if matchesPattern(lower, tokens, m) {
				return rule.flag
			}
		}
	}
	return DefaultFlag
}
