package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRates(t *testing.T) {
	r, err := DefaultRates()
	require.NoError(t, err)

	assert.Equal(t, 100000.0, r.Lakh)
	assert.Equal(t, 20000.0, r.FullFundingThreshold)
	assert.Equal(t, 83.0, r.Rate("usd"))
	assert.Equal(t, 105.0, r.Rate("GBP"))
	assert.Equal(t, 1.0, r.Rate("JPY"), "unknown currencies are taken at par")
	assert.Equal(t, "£", r.Symbol("gbp"))
	assert.Equal(t, "₹", r.Symbol(""))
	assert.Equal(t, "JPY ", r.Symbol("jpy"))
	require.NotEmpty(t, r.Countries)
	assert.Equal(t, "CHF", r.Countries[0].Currency)
}

func TestLoadRates_File(t *testing.T) {
	t.Setenv("TEST_USD_INR", "90")

	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := `
rates:
  usd: ${TEST_USD_INR}
  inr: 1
symbols:
  usd: "US$"
countries:
  - currency: usd
    match: [" USA ", America]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := LoadRates(path)
	require.NoError(t, err)

	assert.Equal(t, 90.0, r.Rate("USD"))
	assert.Equal(t, "US$", r.Symbol("USD"))
	assert.Equal(t, 100000.0, r.Lakh, "missing lakh falls back to the default")
	assert.Equal(t, []CountryRule{{Currency: "USD", Match: []string{"usa", "america"}}}, r.Countries)
}

func TestLoadRates_Errors(t *testing.T) {
	_, err := LoadRates(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates:\n  USD: -4\n"), 0o600))
	_, err = LoadRates(path)
	assert.ErrorContains(t, err, "must be positive")

	path = filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates: [::"), 0o600))
	_, err = LoadRates(path)
	assert.ErrorContains(t, err, "failed to parse rates")
}

func TestLoadRates_EmptyPathUsesDefault(t *testing.T) {
	r, err := LoadRates("")
	require.NoError(t, err)
	assert.Equal(t, 95.0, r.Rate("CHF"))
}
