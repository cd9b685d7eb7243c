package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ScholarshipRecord is a scholarship as emitted by the generator and stored verbatim.
// Every field is optional; decoding never fails on a field of the wrong shape.
type ScholarshipRecord struct {
	Name        string    `json:"name,omitempty"`
	Country     string    `json:"country,omitempty"`
	Amount      RawAmount `json:"amount"`
	Deadline    string    `json:"deadline,omitempty"`
	MatchScore  *float64  `json:"match_score,omitempty"`
	WhyItFits   string    `json:"why_it_fits,omitempty"`
	StrategyTip string    `json:"strategy_tip,omitempty"`
	Description string    `json:"description,omitempty"`
}

// UnmarshalJSON decodes each known key on its own so one malformed field
// only loses that field.
func (r *ScholarshipRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Not an object: keep an empty record rather than failing the whole list.
		*r = ScholarshipRecord{}
		return nil
	}

	out := ScholarshipRecord{
		Name:        looseString(fields["name"]),
		Country:     looseString(fields["country"]),
		Deadline:    looseString(fields["deadline"]),
		WhyItFits:   looseString(fields["why_it_fits"]),
		StrategyTip: looseString(fields["strategy_tip"]),
		Description: looseString(fields["description"]),
	}
	if out.WhyItFits == "" {
		out.WhyItFits = looseString(fields["one_liner_reason"])
	}
	if out.Description == "" {
		out.Description = looseString(fields["benefits"])
	}
	if raw, ok := fields["amount"]; ok {
		_ = out.Amount.UnmarshalJSON(raw)
	}
	if f, ok := looseNumber(fields["match_score"]); ok {
		out.MatchScore = &f
	}

	*r = out
	return nil
}

// RawAmount holds the amount field exactly as received: a JSON number, a string, or nothing.
type RawAmount struct {
	Number *float64
	Text   string
}

// IsZero reports whether no amount was supplied.
func (a RawAmount) IsZero() bool {
	return a.Number == nil && a.Text == ""
}

func (a RawAmount) MarshalJSON() ([]byte, error) {
	if a.Number != nil {
		return json.Marshal(*a.Number)
	}
	if a.Text != "" {
		return json.Marshal(a.Text)
	}
	return []byte("null"), nil
}

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	*a = RawAmount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		a.Number = &f
		return nil
	}
	a.Text = looseString(data)
	return nil
}

// NumberAmount is a convenience constructor used by tests and the static hunter.
func NumberAmount(f float64) RawAmount {
	return RawAmount{Number: &f}
}

// TextAmount wraps a string amount.
func TextAmount(s string) RawAmount {
	return RawAmount{Text: s}
}

// TotalValue is the upstream aggregate, stored as a string label ("₹45 Lakhs") by some
// generator revisions and as a bare number by others.
type TotalValue struct {
	Number *float64
	Text   string
}

// Label returns the upstream label when one was supplied as text.
func (t TotalValue) Label() string {
	return strings.TrimSpace(t.Text)
}

func (t TotalValue) MarshalJSON() ([]byte, error) {
	return RawAmount(t).MarshalJSON()
}

func (t *TotalValue) UnmarshalJSON(data []byte) error {
	var a RawAmount
	if err := a.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = TotalValue(a)
	return nil
}

// looseString renders strings as-is and any other scalar as its JSON text.
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}

func looseNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	s := strings.TrimSuffix(looseString(raw), "%")
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v, true
	}
	return 0, false
}
