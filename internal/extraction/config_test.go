package extraction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cisgen/internal/domain"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Contains(t, cfg.ExtractionPatterns, "purchase_price")
	assert.Equal(t, []string{"PERSON"}, cfg.EntityRules["people"])
	assert.Equal(t, "$0.00", cfg.DefaultValues["purchase_price"])
}

func TestLoadConfig_MalformedIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_PatternForms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_config.json")
	content := `{
        "extraction_patterns": {
            "bare": "simple:\\s*(\\w+)",
            "full": {
                "pattern": "price:\\s*\\$?([0-9,]+)",
                "case_insensitive": false,
                "value_type": "currency"
            }
        }
    }`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	bare := cfg.ExtractionPatterns["bare"]
	assert.Equal(t, `simple:\s*(\w+)`, bare.Pattern)
	assert.Nil(t, bare.CaseInsensitive)

	full := cfg.ExtractionPatterns["full"]
	assert.Equal(t, `price:\s*\$?([0-9,]+)`, full.Pattern)
	require.NotNil(t, full.CaseInsensitive)
	assert.False(t, *full.CaseInsensitive)
	assert.Equal(t, domain.ValueTypeCurrency, full.ValueType)
}

func TestConfig_SaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "extraction_config.json")
	require.NoError(t, DefaultConfig().Save(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().DefaultValues, cfg.DefaultValues)
	assert.Contains(t, cfg.ExtractionPatterns, "closing_date")
}

func TestFieldFormat_Places(t *testing.T) {
	three := 3
	f := FieldFormat{DecimalPlaces: &three}
	assert.Equal(t, 3, f.Places(2))

	f = FieldFormat{}
	assert.Equal(t, 2, f.Places(2))
}
