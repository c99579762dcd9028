package template

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cisgen/internal/domain"
	"cisgen/internal/extraction"
	"cisgen/internal/format"
)

// Mapper resolves template fields against extraction results, applying
// the explicit fallback chain: mapping path, pattern-table field,
// flattened field name, template defaults, configuration defaults,
// type-derived default. The output is total: every declared field gets
// a value.
type Mapper struct {
	formats  map[string]extraction.FieldFormat
	defaults map[string]string
}

// NewMapper builds a Mapper from the pattern configuration's
// field_formats and default_values tables.
func NewMapper(cfg *extraction.Config) *Mapper {
	return &Mapper{formats: cfg.FieldFormats, defaults: cfg.DefaultValues}
}

// Map produces the flat field -> display value mapping for one
// document. Metadata fields generation_date and generation_time are
// always present for renderers that stamp them.
func (m *Mapper) Map(result *domain.ExtractionResult, tpl *Descriptor) map[string]string {
	nested := toNestedMap(result)
	flat := flatten(nested, "", "_")

	out := make(map[string]string, len(tpl.Fields)+2)
	for _, field := range tpl.Fields {
		value := ""
		if path, ok := tpl.Mapping[field]; ok && path != "" {
			value = stringify(resolvePath(nested, path))
		}
		if value == "" {
			value = result.Fields[field]
		}
		if value == "" {
			value = stringify(flat[field])
		}
		if value == "" {
			value = m.defaultFor(field, tpl)
		}
		out[field] = m.formatField(field, value, tpl)
	}

	now := time.Now()
	out["generation_date"] = now.Format("2006-01-02")
	out["generation_time"] = now.Format("15:04:05")
	return out
}

func (m *Mapper) defaultFor(field string, tpl *Descriptor) string {
	if v, ok := tpl.DefaultValues[field]; ok {
		return v
	}
	if v, ok := m.defaults[field]; ok {
		return v
	}
	// Type-derived fallbacks keep output fields total.
	lower := strings.ToLower(field)
	switch {
	case strings.Contains(lower, "date"):
		return ""
	case strings.Contains(lower, "amount"), strings.Contains(lower, "price"), strings.Contains(lower, "payment"):
		return "$0.00"
	case strings.Contains(lower, "rate"), strings.Contains(lower, "percentage"):
		return "0%"
	default:
		return ""
	}
}

func (m *Mapper) formatField(field, value string, tpl *Descriptor) string {
	spec, ok := tpl.FieldSchema[field]
	if !ok {
		spec, ok = m.formats[field]
	}
	if !ok || value == "" {
		return value
	}
	switch spec.Type {
	case domain.ValueTypeCurrency:
		return format.Currency(value, spec.Symbol)
	case domain.ValueTypeDate:
		return format.Date(value, spec.Format)
	case domain.ValueTypePercentage:
		return format.Percentage(value, spec.Places(2))
	case domain.ValueTypeNumber:
		return format.Number(value, spec.Places(2))
	case domain.ValueTypePhone:
		return format.Phone(value)
	case domain.ValueTypeBoolean:
		return format.Boolean(value)
	default:
		return value
	}
}

// toNestedMap converts the typed extraction result into the generic
// nested form the mapping paths address.
func toNestedMap(result *domain.ExtractionResult) map[string]any {
	data, err := json.Marshal(result)
	if err != nil {
		return map[string]any{}
	}
	var nested map[string]any
	if err := json.Unmarshal(data, &nested); err != nil {
		return map[string]any{}
	}
	return nested
}

// resolvePath walks a dotted path ("monetary_values.purchase_price")
// through nested maps. Missing segments yield nil.
func resolvePath(data map[string]any, path string) any {
	var current any = data
	for _, seg := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[seg]
		if !ok {
			return nil
		}
	}
	return current
}

// flatten collapses a nested map into single-level keys joined by sep,
// mirroring how DOCX templates name their placeholders.
func flatten(data map[string]any, prefix, sep string) map[string]any {
	out := make(map[string]any)
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		switch child := v.(type) {
		case map[string]any:
			for ck, cv := range flatten(child, key, sep) {
				out[ck] = cv
			}
		default:
			out[key] = v
		}
	}
	return out
}

// stringify renders a resolved value for display. Lists join with
// commas; nil and empty values become "".
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
