package extraction

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cisgen/internal/domain"
)

// PatternSpec defines one extraction pattern. In the configuration file
// it may appear either as a bare regex string or as an object with
// options; both forms unmarshal into this type.
type PatternSpec struct {
	Pattern         string           `json:"pattern"`
	CaseInsensitive *bool            `json:"case_insensitive,omitempty"`
	Multiline       *bool            `json:"multiline,omitempty"`
	ValueType       domain.ValueType `json:"value_type,omitempty"`
}

// UnmarshalJSON accepts either "regex" or {"pattern": "regex", ...}.
func (p *PatternSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Pattern = s
		return nil
	}
	type patternSpec PatternSpec
	var obj patternSpec
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PatternSpec(obj)
	return nil
}

// FieldFormat declares how a field is rendered for display.
type FieldFormat struct {
	Type          domain.ValueType `json:"type"`
	Symbol        string           `json:"symbol,omitempty"`
	Format        string           `json:"format,omitempty"`
	DecimalPlaces *int             `json:"decimal_places,omitempty"`
}

// Places returns the configured decimal places or the given fallback.
func (f *FieldFormat) Places(fallback int) int {
	if f.DecimalPlaces != nil {
		return *f.DecimalPlaces
	}
	return fallback
}

// Config is the pattern configuration file (extraction_config.json).
type Config struct {
	ExtractionPatterns map[string]PatternSpec `json:"extraction_patterns"`
	EntityRules        map[string][]string    `json:"entity_rules"`
	SpacyModel         string                 `json:"spacy_model"`
	FieldFormats       map[string]FieldFormat `json:"field_formats"`
	DefaultValues      map[string]string      `json:"default_values"`
}

// DefaultConfig returns the built-in pattern configuration, used when no
// configuration file exists yet.
func DefaultConfig() *Config {
	intPtr := func(n int) *int { return &n }
	return &Config{
		ExtractionPatterns: map[string]PatternSpec{
			"property_address": {
				Pattern:   `property\s+address:?\s*([^,\n\r\.]{3,100}(?:,\s*[^,\n\r\.]{3,50}){1,3})`,
				ValueType: domain.ValueTypeString,
			},
			"purchase_price": {
				Pattern:   `purchase\s+price:?\s*\$?([0-9,]+(?:\.[0-9]{2})?)`,
				ValueType: domain.ValueTypeCurrency,
			},
			"closing_date": {
				Pattern:   `closing\s+date:?\s*([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|(?:\d{1,2}[/-]){2}\d{2,4})`,
				ValueType: domain.ValueTypeDate,
			},
		},
		EntityRules: map[string][]string{
			"people":        {"PERSON"},
			"organizations": {"ORG"},
			"locations":     {"GPE", "LOC"},
			"dates":         {"DATE"},
		},
		SpacyModel: "en_core_web_sm",
		FieldFormats: map[string]FieldFormat{
			"purchase_price": {Type: domain.ValueTypeCurrency, Symbol: "$"},
			"loan_amount":    {Type: domain.ValueTypeCurrency, Symbol: "$"},
			"closing_date":   {Type: domain.ValueTypeDate, Format: "%B %d, %Y"},
			"interest_rate":  {Type: domain.ValueTypePercentage, DecimalPlaces: intPtr(3)},
		},
		DefaultValues: map[string]string{
			"property_address": "N/A",
			"purchase_price":   "$0.00",
			"closing_date":     "",
			"buyer_name":       "N/A",
			"seller_name":      "N/A",
		},
	}
}

// LoadConfig reads the pattern configuration from path. A missing file
// yields the default configuration; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("extraction: no configuration at %s, using defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading extraction config: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing extraction config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
