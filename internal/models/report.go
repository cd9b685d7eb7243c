package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the study-abroad intake collected by the multi-step form.
type Profile struct {
	Name            string   `json:"name,omitempty"`
	Major           string   `json:"major"`
	GPA             float64  `json:"gpa"`
	TargetCountries []string `json:"targetCountries"`
	SpecialPowers   []string `json:"specialPowers,omitempty"`
	GradYear        string   `json:"gradYear,omitempty"`
}

// UnmarshalJSON accepts the form's loose shapes: gpa as number or string and
// specialPowers as a list or a comma-separated string.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	out := Profile{
		Name:     looseString(fields["name"]),
		Major:    looseString(fields["major"]),
		GradYear: looseString(fields["gradYear"]),
	}
	if gpa, ok := looseNumber(fields["gpa"]); ok {
		out.GPA = gpa
	}
	out.TargetCountries = looseList(fields["targetCountries"])
	out.SpecialPowers = looseList(fields["specialPowers"])
	*p = out
	return nil
}

func looseList(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimAll(list)
	}
	if s := looseString(raw); s != "" {
		return trimAll(strings.Split(s, ","))
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ReportRecord is a stored hunt result, as read back from the reports table.
type ReportRecord struct {
	ID              uuid.UUID           `json:"id"`
	Input           *Profile            `json:"input,omitempty"`
	TotalValueFound TotalValue          `json:"total_value_found"`
	Scholarships    []ScholarshipRecord `json:"scholarships"`
	LeadID          *uuid.UUID          `json:"lead_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// Lead is a captured contact that unlocked a report.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	WhatsApp  string    `json:"whatsapp"`
	CreatedAt time.Time `json:"created_at"`
}
