package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cisgen/internal/domain"
	"cisgen/internal/extraction"
)

func sampleResult() *domain.ExtractionResult {
	return &domain.ExtractionResult{
		DocumentType: "purchase_agreement",
		Fields: map[string]string{
			"purchase_price": "$250,000.00",
		},
		Property: domain.PropertyInfo{
			Address: "123 Main Street, Springfield, IL 62704",
		},
		Parties: domain.Parties{
			Buyer:  "John Smith",
			Seller: "Acme Holdings LLC",
		},
		MonetaryValues: domain.MonetaryValues{
			PurchasePrice: "$250,000.00",
			InterestRate:  "4.5%",
		},
		Dates: domain.DocumentDates{
			ClosingDate: "December 1st, 2023",
		},
	}
}

func TestMap_FallbackChain(t *testing.T) {
	m := NewMapper(extraction.DefaultConfig())
	tpl := &Descriptor{
		Fields: []string{
			"buyer_name",        // resolved via mapping path
			"purchase_price",    // resolved via flattened field name
			"escrow_agent",      // resolved via template default
			"property_address",  // resolved via config default (absent in result)
			"commission_amount", // type-derived default
			"listing_date",      // type-derived default (empty)
		},
		Mapping: map[string]string{
			"buyer_name": "parties.buyer",
		},
		DefaultValues: map[string]string{
			"escrow_agent": "TBD",
		},
	}

	result := sampleResult()
	result.Property.Address = ""
	values := m.Map(result, tpl)

	assert.Equal(t, "John Smith", values["buyer_name"])
	assert.Equal(t, "$250,000.00", values["purchase_price"])
	assert.Equal(t, "TBD", values["escrow_agent"])
	assert.Equal(t, "N/A", values["property_address"])
	assert.Equal(t, "$0.00", values["commission_amount"])
	assert.Equal(t, "", values["listing_date"])
}

func TestMap_Totality(t *testing.T) {
	m := NewMapper(extraction.DefaultConfig())
	tpl := &Descriptor{
		Fields: []string{"alpha", "beta_amount", "gamma_rate", "delta_date", "epsilon"},
	}

	values := m.Map(&domain.ExtractionResult{}, tpl)
	for _, field := range tpl.Fields {
		_, ok := values[field]
		assert.True(t, ok, "field %s must be present", field)
	}
	assert.Equal(t, "$0.00", values["beta_amount"])
	assert.Equal(t, "0%", values["gamma_rate"])
}

func TestMap_Formatting(t *testing.T) {
	m := NewMapper(extraction.DefaultConfig())
	three := 3
	tpl := &Descriptor{
		Fields: []string{"closing_date", "interest_rate", "purchase_price"},
		Mapping: map[string]string{
			"closing_date":   "dates.closing_date",
			"interest_rate":  "monetary_values.interest_rate",
			"purchase_price": "monetary_values.purchase_price",
		},
		FieldSchema: map[string]extraction.FieldFormat{
			"closing_date":   {Type: domain.ValueTypeDate, Format: "%B %d, %Y"},
			"interest_rate":  {Type: domain.ValueTypePercentage, DecimalPlaces: &three},
			"purchase_price": {Type: domain.ValueTypeCurrency, Symbol: "$"},
		},
	}

	values := m.Map(sampleResult(), tpl)
	assert.Equal(t, "December 01, 2023", values["closing_date"])
	assert.Equal(t, "4.500%", values["interest_rate"])
	assert.Equal(t, "$250,000.00", values["purchase_price"])
}

func TestMap_GenerationMetadata(t *testing.T) {
	m := NewMapper(extraction.DefaultConfig())
	values := m.Map(&domain.ExtractionResult{}, &Descriptor{Fields: []string{"anything"}})

	require.Contains(t, values, "generation_date")
	require.Contains(t, values, "generation_time")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, values["generation_date"])
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, values["generation_time"])
}

func TestResolvePath(t *testing.T) {
	nested := toNestedMap(sampleResult())

	assert.Equal(t, "John Smith", stringify(resolvePath(nested, "parties.buyer")))
	assert.Equal(t, "", stringify(resolvePath(nested, "parties.nonexistent")))
	assert.Equal(t, "", stringify(resolvePath(nested, "no.such.path")))
}

func TestFlatten(t *testing.T) {
	flat := flatten(map[string]any{
		"property": map[string]any{
			"address": "123 Main Street",
			"nested":  map[string]any{"deep": "value"},
		},
		"top": "level",
	}, "", "_")

	assert.Equal(t, "123 Main Street", flat["property_address"])
	assert.Equal(t, "value", flat["property_nested_deep"])
	assert.Equal(t, "level", flat["top"])
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "a, b", stringify([]any{"a", "", "b"}))
	assert.Equal(t, "1500", stringify(float64(1500)))
	assert.Equal(t, "4.5", stringify(4.5))
}
