package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// ErrNoJSON is returned when the model reply contains no JSON object.
var ErrNoJSON = errors.New("no JSON object in model response")

// HuntResult is the generator payload: an upstream total plus the scholarship list.
type HuntResult struct {
	TotalValueFound models.TotalValue          `json:"total_value_found"`
	Scholarships    []models.ScholarshipRecord `json:"scholarships"`
}

// ScholarshipHunter finds scholarships for an intake profile.
type ScholarshipHunter interface {
	HuntScholarships(ctx context.Context, profile models.Profile, now time.Time) (*HuntResult, error)
}

// Hunter asks an LLM for currently open scholarships.
type Hunter struct {
	llm    Completer
	logger *zap.Logger
	policy *bluemonday.Policy
}

func NewHunter(llm Completer, logger *zap.Logger) *Hunter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hunter{
		llm:    llm,
		logger: logger,
		policy: bluemonday.StrictPolicy(),
	}
}

const huntPromptTemplate = `You are an expert Study Abroad Counselor for Indian students.
Current Date: %s
User Profile: %s
Target Countries: %s

TASK:
Search for currently ACTIVE scholarships for ANY of the [Target Countries] for the upcoming intake year.

CRITICAL RULES:
1. NO EXPIRED DEADLINES. If a deadline is before [Current Date], discard it immediately.
2. FILTER FOR INDIAN CITIZENS. Discard any scholarship that requires citizenship of the target country.
3. MULTI-REGION LOGIC: If multiple countries are selected, find the best options for EACH country.
4. CONTEXTUALIZE: For "strategy_tip", write specific advice connecting the user's background to the scholarship.
5. CURRENCY: Keep "amount" in the original currency (USD/GBP/EUR) but estimate "total_value_found" in INR.

OUTPUT FORMAT (JSON ONLY):
{
  "total_value_found": "string (e.g. ₹45 Lakhs)",
  "scholarships": [
    {
      "name": "string",
      "country": "string (e.g. USA, UK)",
      "amount": "string (e.g. $20,000 or £10,000)",
      "deadline": "YYYY-MM-DD",
      "match_score": number (0-100),
      "why_it_fits": "string (1 sentence)",
      "strategy_tip": "string (2 sentences)"
    }
  ]
}

Respond ONLY with the JSON object.`

func buildHuntPrompt(profile models.Profile, now time.Time) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}
	countriesJSON, err := json.Marshal(profile.TargetCountries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal countries: %w", err)
	}
	return fmt.Sprintf(huntPromptTemplate, now.UTC().Format("2006-01-02"), profileJSON, countriesJSON), nil
}

// HuntScholarships tries JSON mode first and falls back to plain text mode with
// tolerant extraction when the first reply is unusable.
func (h *Hunter) HuntScholarships(ctx context.Context, profile models.Profile, now time.Time) (*HuntResult, error) {
	prompt, err := buildHuntPrompt(profile, now)
	if err != nil {
		return nil, err
	}

	resp, err := h.llm.GenerateCompletion(ctx, prompt, true)
	if err == nil {
		result, parseErr := parseHuntResponse(resp)
		if parseErr == nil {
			return h.sanitize(result), nil
		}
		h.logger.Warn("JSON mode reply unusable, retrying in text mode", zap.Error(parseErr))
	} else {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("hunt cancelled: %w", err)
		}
		h.logger.Warn("JSON mode generation failed, retrying in text mode", zap.Error(err))
	}

	resp, err = h.llm.GenerateCompletion(ctx, prompt, false)
	if err != nil {
		return nil, fmt.Errorf("scholarship generation failed: %w", err)
	}
	h.logger.Debug("text mode reply", zap.String("response", resp))

	result, err := parseHuntResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hunt reply after retry: %w", err)
	}
	return h.sanitize(result), nil
}

func parseHuntResponse(resp string) (*HuntResult, error) {
	cleaned := stripCodeFences(resp)

	jsonStr, ok := extractFirstJSONObject(cleaned)
	if !ok {
		return nil, ErrNoJSON
	}

	var result HuntResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("invalid hunt JSON: %w", err)
	}
	if result.Scholarships == nil {
		result.Scholarships = []models.ScholarshipRecord{}
	}
	return &result, nil
}

func stripCodeFences(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// policyEntities reverses the escaping the strict policy applies to plain text.
var policyEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&lt;", "<", "&gt;", ">", "&#34;", `"`)

// sanitize strips any markup the model put into free-text fields. Entities are decoded
// first so escaped tags are stripped as well.
func (h *Hunter) sanitize(r *HuntResult) *HuntResult {
	clean := func(s string) string {
		return strings.TrimSpace(policyEntities.Replace(h.policy.Sanitize(html.UnescapeString(s))))
	}
	for i := range r.Scholarships {
		s := &r.Scholarships[i]
		s.Name = clean(s.Name)
		s.Country = clean(s.Country)
		s.Deadline = clean(s.Deadline)
		s.WhyItFits = clean(s.WhyItFits)
		s.StrategyTip = clean(s.StrategyTip)
		s.Description = clean(s.Description)
		if s.Amount.Text != "" {
			s.Amount.Text = clean(s.Amount.Text)
		}
	}
	r.TotalValueFound.Text = clean(r.TotalValueFound.Text)
	return r
}

// extractFirstJSONObject finds the first outermost balanced {...}
func extractFirstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}

		if !inString {
			switch char {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}
