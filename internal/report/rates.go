package report

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/rates.yaml
var ratesYAML embed.FS

// Rates is the FX configuration handed to the Converter.
type Rates struct {
	Lakh                 float64           `yaml:"lakh"`
	FullFundingThreshold float64           `yaml:"full_funding_threshold"`
	Rates                map[string]float64 `yaml:"rates"`   // currency code -> INR per unit
	Symbols              map[string]string  `yaml:"symbols"` // currency code -> display prefix
	Countries            []CountryRule      `yaml:"countries"`
}

// CountryRule maps free-text country names to a currency.
type CountryRule struct {
	Currency string   `yaml:"currency"`
	Match    []string `yaml:"match"`
}

// DefaultRates returns the embedded FX table.
func DefaultRates() (Rates, error) {
	data, err := ratesYAML.ReadFile("config/rates.yaml")
	if err != nil {
		return Rates{}, err
	}
	return parseRates(data)
}

// LoadRates reads a rate table from path, or the embedded default when path is empty.
func LoadRates(path string) (Rates, error) {
	if path == "" {
		return DefaultRates()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}
	return parseRates(data)
}

func parseRates(data []byte) (Rates, error) {
	// Expand environment variables within the YAML content (e.g. ${USD_INR})
	expanded := os.ExpandEnv(string(data))

	var r Rates
	if err := yaml.Unmarshal([]byte(expanded), &r); err != nil {
		return Rates{}, fmt.Errorf("failed to parse rates: %w", err)
	}
	if err := r.normalize(); err != nil {
		return Rates{}, err
	}
	return r, nil
}

func (r *Rates) normalize() error {
	if r.Lakh <= 0 {
		r.Lakh = 100000
	}
	if r.FullFundingThreshold <= 0 {
		r.FullFundingThreshold = 20000
	}

	rates := make(map[string]float64, len(r.Rates))
	for code, rate := range r.Rates {
		if rate <= 0 {
			return fmt.Errorf("rate for %s must be positive, got %v", code, rate)
		}
		rates[strings.ToUpper(code)] = rate
	}
	r.Rates = rates

	symbols := make(map[string]string, len(r.Symbols))
	for code, sym := range r.Symbols {
		symbols[strings.ToUpper(code)] = sym
	}
	r.Symbols = symbols

	for i := range r.Countries {
		r.Countries[i].Currency = strings.ToUpper(r.Countries[i].Currency)
		for j, m := range r.Countries[i].Match {
			r.Countries[i].Match[j] = strings.ToLower(strings.TrimSpace(m))
		}
	}
	return nil
}

// Rate returns INR per unit of code; unknown currencies are treated as INR.
func (r Rates) Rate(code string) float64 {
	if rate, ok := r.Rates[strings.ToUpper(code)]; ok {
		return rate
	}
	return 1
}

// Symbol returns the display prefix for code, falling back to the code itself.
func (r Rates) Symbol(code string) string {
	if sym, ok := r.Symbols[strings.ToUpper(code)]; ok {
		return sym
	}
	if code == "" {
		return r.Symbol("INR")
	}
	return strings.ToUpper(code) + " "
}
