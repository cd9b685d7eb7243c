package report

import (
	"testing"

	"github.com/david/scholarship-hunter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	rates, err := DefaultRates()
	require.NoError(t, err)
	return NewConverter(rates)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      models.RawAmount
		kind     AmountKind
		currency string
		value    float64
	}{
		{"missing", models.RawAmount{}, AmountMissing, "", 0},
		{"json number", models.NumberAmount(25000), AmountNumeric, "", 25000},
		{"dollar", models.TextAmount("$20,000"), AmountTagged, "USD", 20000},
		{"pound", models.TextAmount("£10,000"), AmountTagged, "GBP", 10000},
		{"euro with decimals", models.TextAmount("€1,234.50"), AmountTagged, "EUR", 1234.5},
		{"rupee", models.TextAmount("₹5,00,000"), AmountTagged, "INR", 500000},
		{"chf code", models.TextAmount("CHF 12000"), AmountTagged, "CHF", 12000},
		{"lowercase code", models.TextAmount("cad 9,500 per year"), AmountTagged, "CAD", 9500},
		{"code glued to digits", models.TextAmount("CHF20,000"), AmountTagged, "CHF", 20000},
		{"lowercase code glued to digits", models.TextAmount("cad9500"), AmountTagged, "CAD", 9500},
		{"usd glued to digits", models.TextAmount("USD5000"), AmountTagged, "USD", 5000},
		{"canadian dollar sign", models.TextAmount("C$15,000"), AmountTagged, "CAD", 15000},
		{"australian dollar sign", models.TextAmount("A$8,000"), AmountTagged, "AUD", 8000},
		{"us dollar prefix", models.TextAmount("US$7,500"), AmountTagged, "USD", 7500},
		{"rs prefix", models.TextAmount("Rs. 75,000"), AmountTagged, "INR", 75000},
		{"bare number text", models.TextAmount("15000"), AmountTagged, "", 15000},
		{"up to phrase", models.TextAmount("Up to £12,000 a year"), AmountTagged, "GBP", 12000},
		{"garbage", models.TextAmount("garbage"), AmountUnparseable, "", 0},
		{"full tuition text", models.TextAmount("Full tuition waiver"), AmountUnparseable, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.currency, got.Currency)
			assert.InDelta(t, tt.value, got.Value, 0.0001)
		})
	}
}

func TestAmountToINRLakhs(t *testing.T) {
	conv := newTestConverter(t)

	tests := []struct {
		name    string
		raw     models.RawAmount
		country string
		want    float64
	}{
		{"usd symbol", models.TextAmount("$20,000"), "USA", 16.6},
		{"gbp symbol", models.TextAmount("£10,000"), "UK", 10.5},
		{"gbp e2e", models.TextAmount("£15,000"), "UK", 15.75},
		{"symbol beats country", models.TextAmount("€10,000"), "USA", 9.0},
		{"bare text uses country", models.TextAmount("10000"), "Canada", 6.1},
		{"australia is not the us", models.TextAmount("10000"), "Australia", 5.4},
		{"switzerland", models.TextAmount("10000"), "Switzerland", 9.5},
		{"europe region", models.TextAmount("10000"), "Europe (Multiple)", 9.0},
		{"germany", models.TextAmount("10000"), "Germany", 9.0},
		{"glued code beats region", models.TextAmount("CHF20,000"), "Europe (Multiple)", 19.0},
		{"unknown country is inr", models.TextAmount("500000"), "Japan", 5.0},
		{"json number is not converted", models.NumberAmount(250000), "USA", 2.5},
		{"garbage", models.TextAmount("garbage"), "USA", 0},
		{"missing", models.RawAmount{}, "USA", 0},
		{"zero", models.TextAmount("$0"), "USA", 0},
		{"negative number", models.NumberAmount(-5000), "USA", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, conv.AmountToINRLakhs(tt.raw, tt.country), 0.01)
		})
	}
}

func TestConverter_SubstitutedRates(t *testing.T) {
	conv := NewConverter(Rates{
		Lakh:  100000,
		Rates: map[string]float64{"USD": 100},
		Countries: []CountryRule{
			{Currency: "USD", Match: []string{"usa"}},
		},
	})

	assert.InDelta(t, 10.0, conv.AmountToINRLakhs(models.TextAmount("$10,000"), "USA"), 0.0001)
	// GBP has no rate in this table, so it is taken at par.
	assert.InDelta(t, 0.1, conv.AmountToINRLakhs(models.TextAmount("£10,000"), "UK"), 0.0001)
}

func TestCurrencyForCountry(t *testing.T) {
	conv := newTestConverter(t)

	tests := map[string]string{
		"USA":               "USD",
		"United States":     "USD",
		"US":                "USD",
		"UK":                "GBP",
		"United Kingdom":    "GBP",
		"Canada":            "CAD",
		"Australia":         "AUD",
		"Switzerland":       "CHF",
		"Europe (Multiple)": "EUR",
		"EU":                "EUR",
		"Germany":           "EUR",
		"India":             "INR",
		"Russia":            "",
		"":                  "",
	}
	for country, want := range tests {
		assert.Equal(t, want, conv.CurrencyForCountry(country), "country %q", country)
	}
}

func TestFormatAmount(t *testing.T) {
	conv := newTestConverter(t)

	tests := []struct {
		name    string
		raw     models.RawAmount
		country string
		want    string
	}{
		{"gbp below threshold", models.TextAmount("£15,000"), "UK", "£15,000"},
		{"at threshold", models.TextAmount("$20,000"), "USA", FullyFundedLabel},
		{"above threshold", models.TextAmount("$25,000"), "USA", FullyFundedLabel},
		{"numeric uses country symbol", models.NumberAmount(12000), "Canada", "C$12,000"},
		{"numeric unknown country", models.NumberAmount(9000), "Japan", "₹9,000"},
		{"decimals kept", models.TextAmount("€1,234.50"), "Germany", "€1,234.50"},
		{"chf", models.TextAmount("CHF 5000"), "Switzerland", "CHF 5,000"},
		{"unparseable shows raw", models.TextAmount("Full tuition waiver"), "UK", "Full tuition waiver"},
		{"missing", models.RawAmount{}, "UK", AmountVariesLabel},
		{"zero", models.NumberAmount(0), "UK", AmountVariesLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.FormatAmount(ParseAmount(tt.raw), tt.country))
		})
	}
}
