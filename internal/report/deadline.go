package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sentinel deadline values. They are fixed points of NormalizeDeadline.
const (
	DeadlineUnknown       = "Deadline unknown"
	DeadlinePassed        = "Deadline passed"
	DeadlineCheckOfficial = "Check official website for deadline"
)

// DateLayout is the canonical normalized deadline format.
const DateLayout = "2006-01-02"

// NormalizeDeadline maps free text to a YYYY-MM-DD date or one of the sentinels.
// Text that is neither a sentinel phrase nor a parseable date becomes DeadlineUnknown.
func NormalizeDeadline(raw string) string {
	text := normalizeSpace(raw)
	if text == "" {
		return DeadlineUnknown
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "passed"):
		return DeadlinePassed
	case strings.Contains(lower, "unknown"):
		return DeadlineUnknown
	case strings.Contains(lower, "application deadline for admission"),
		strings.Contains(lower, "check official website"):
		return DeadlineCheckOfficial
	}

	if d, err := parseDeadlineDate(text); err == nil {
		return d.Format(DateLayout)
	}
	return DeadlineUnknown
}

// IsSentinel reports whether s is one of the sentinel deadline values.
func IsSentinel(s string) bool {
	switch s {
	case DeadlineUnknown, DeadlinePassed, DeadlineCheckOfficial:
		return true
	}
	return false
}

var isoDateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var textDateLayouts = []string{
	"2 January 2006",
	"02 January 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Monday, January 2, 2006",
	"Mon, 02 Jan 2006",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"02.01.2006",
}

var (
	embeddedISORegex   = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})\b`)
	embeddedMonthRegex = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(20\d{2})\b`)
	embeddedDayRegex   = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?,?\s+(20\d{2})\b`)
)

// parseDeadlineDate tries ISO forms, then common English layouts, then dates embedded
// in longer text. The calendar date is returned as midnight UTC; time and zone are dropped.
func parseDeadlineDate(text string) (time.Time, error) {
	text = cleanDateString(text)

	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return dateOnly(t), nil
		}
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return dateOnly(t), nil
		}
	}
	if t := parseEmbeddedDate(text); !t.IsZero() {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", text)
}

func parseEmbeddedDate(text string) time.Time {
	if m := embeddedISORegex.FindString(text); m != "" {
		if t, err := time.Parse(DateLayout, m); err == nil {
			return t
		}
	}
	if m := embeddedMonthRegex.FindStringSubmatch(text); len(m) == 4 {
		if t, ok := parseMonthDayYear(m[1], m[2], m[3]); ok {
			return t
		}
	}
	if m := embeddedDayRegex.FindStringSubmatch(text); len(m) == 4 {
		if t, ok := parseMonthDayYear(m[2], m[1], m[3]); ok {
			return t
		}
	}
	return time.Time{}
}

func parseMonthDayYear(month, day, year string) (time.Time, bool) {
	month = strings.ToLower(month)
	if month == "sept" {
		month = "sep"
	}
	if len(month) > 3 {
		month = month[:3]
	}
	t, err := time.Parse("Jan 2 2006", strings.ToUpper(month[:1])+month[1:]+" "+day+" "+year)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly keeps the calendar date as written, at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// cleanDateString removes common label prefixes such as "Deadline:".
func cleanDateString(s string) string {
	prefixes := []string{
		"deadline:", "application deadline:", "closing date:", "closes:", "due date:", "apply by", "due by",
	}
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			s = s[len(p):]
			lower = lower[len(p):]
		}
	}
	return strings.TrimSpace(s)
}
