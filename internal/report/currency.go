package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/david/scholarship-hunter/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AmountKind tags the shape an amount arrived in.
type AmountKind int

const (
	AmountMissing     AmountKind = iota
	AmountNumeric                // bare JSON number, currency unspecified
	AmountTagged                 // text with a number; Currency empty when no marker was present
	AmountUnparseable            // text without any usable number
)

// AmountField is the parsed form of a raw amount.
type AmountField struct {
	Kind     AmountKind
	Currency string
	Value    float64
	Raw      string
}

// FullyFundedLabel replaces the number for grants at or above the full-funding threshold.
const FullyFundedLabel = "Fully Funded + Stipend"

// AmountVariesLabel is shown when no amount was supplied at all.
const AmountVariesLabel = "Amount varies"

type currencyMarker struct {
	re   *regexp.Regexp
	code string
}

// Ordered: prefixed dollar forms must be tried before the bare "$".
var currencyMarkers = []currencyMarker{
	{regexp.MustCompile(`(?i)US\$`), "USD"},
	{regexp.MustCompile(`(?i)CA?\$`), "CAD"},
	{regexp.MustCompile(`(?i)AU?\$`), "AUD"},
	{regexp.MustCompile(`\$`), "USD"},
	{regexp.MustCompile(`£`), "GBP"},
	{regexp.MustCompile(`€`), "EUR"},
	{regexp.MustCompile(`₹`), "INR"},
	{regexp.MustCompile(`\bRs\.?`), "INR"},
	{regexp.MustCompile(`(?i)\b(USD|GBP|EUR|CHF|CAD|AUD|INR)(?:\b|\d)`), ""},
}

var amountNumberRegex = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParseAmount turns a raw amount into an AmountField. It never fails; text without a
// number becomes AmountUnparseable.
func ParseAmount(raw models.RawAmount) AmountField {
	if raw.Number != nil {
		return AmountField{Kind: AmountNumeric, Value: *raw.Number, Raw: strconv.FormatFloat(*raw.Number, 'f', -1, 64)}
	}
	text := normalizeSpace(raw.Text)
	if text == "" {
		return AmountField{Kind: AmountMissing}
	}
	return parseAmountText(text)
}

func parseAmountText(text string) AmountField {
	field := AmountField{Kind: AmountUnparseable, Raw: text}

	match := amountNumberRegex.FindString(text)
	if match == "" {
		return field
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return field
	}

	field.Kind = AmountTagged
	field.Value = value
	field.Currency = detectCurrency(text)
	return field
}

func detectCurrency(text string) string {
	for _, m := range currencyMarkers {
		found := m.re.FindStringSubmatch(text)
		if found == nil {
			continue
		}
		if m.code != "" {
			return m.code
		}
		// Codes may run straight into the digits ("CHF20,000").
		return strings.ToUpper(found[1])
	}
	return ""
}

// Converter applies a fixed FX table to parsed amounts.
type Converter struct {
	rates Rates
}

func NewConverter(rates Rates) *Converter {
	if rates.Lakh <= 0 {
		rates.Lakh = 100000
	}
	if rates.FullFundingThreshold <= 0 {
		rates.FullFundingThreshold = 20000
	}
	return &Converter{rates: rates}
}

// Rates exposes the table in use.
func (c *Converter) Rates() Rates {
	return c.rates
}

// CurrencyForCountry infers a currency from a free-text country or region.
// Returns "" when nothing matches.
func (c *Converter) CurrencyForCountry(country string) string {
	lower := strings.ToLower(country)
	tokens := wordTokens(country)
	for _, rule := range c.rates.Countries {
		for _, p := range rule.Match {
			if matchesPattern(lower, tokens, p) {
				return rule.Currency
			}
		}
	}
	return ""
}

// currencyOf resolves the currency an amount is denominated in.
func (c *Converter) currencyOf(a AmountField, country string) string {
	if a.Currency != "" {
		return a.Currency
	}
	return c.CurrencyForCountry(country)
}

// ToINRLakhs expresses a parsed amount in INR lakhs. Bare numbers are taken as INR
// already; tagged text is converted at the fixed rate. Anything unusable is 0.
func (c *Converter) ToINRLakhs(a AmountField, country string) float64 {
	var inr float64
	switch a.Kind {
	case AmountNumeric:
		inr = a.Value
	case AmountTagged:
		inr = a.Value * c.rates.Rate(c.currencyOf(a, country))
	default:
		return 0
	}

	lakhs := inr / c.rates.Lakh
	if math.IsNaN(lakhs) || math.IsInf(lakhs, 0) || lakhs <= 0 {
		return 0
	}
	return lakhs
}

// AmountToINRLakhs parses raw and converts it in one step.
func (c *Converter) AmountToINRLakhs(raw models.RawAmount, country string) float64 {
	return c.ToINRLakhs(ParseAmount(raw), country)
}

// FormatAmount renders the amount in its original currency for display.
func (c *Converter) FormatAmount(a AmountField, country string) string {
	switch a.Kind {
	case AmountMissing:
		return AmountVariesLabel
	case AmountUnparseable:
		return a.Raw
	}
	if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) || a.Value <= 0 {
		return AmountVariesLabel
	}
	if a.Value >= c.rates.FullFundingThreshold {
		return FullyFundedLabel
	}
	return c.rates.Symbol(c.currencyOf(a, country)) + groupThousands(a.Value)
}

var groupingPrinter = message.NewPrinter(language.English)

func groupThousands(v float64) string {
	if v == math.Trunc(v) {
		return groupingPrinter.Sprintf("%d", int64(v))
	}
	return groupingPrinter.Sprintf("%.2f", v)
}
