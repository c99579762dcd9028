package extraction

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"cisgen/internal/domain"
	"cisgen/internal/format"
)

// ValuePattern is one compiled entry of the pattern table.
type ValuePattern struct {
	Field     string
	ValueType domain.ValueType
	re        *regexp.Regexp
}

// FindFirst returns the first match of the pattern in text, trimmed.
// Capture group 1 is preferred; the full match is used when the pattern
// declares no groups. First match wins.
func (p *ValuePattern) FindFirst(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 && m[1] != "" {
		return strings.TrimSpace(m[1]), true
	}
	return strings.TrimSpace(m[0]), true
}

// Normalize applies the pattern's declared value type to a raw match.
func (p *ValuePattern) Normalize(raw string) string {
	switch p.ValueType {
	case domain.ValueTypeCurrency:
		return format.Currency(raw, "$")
	case domain.ValueTypeDate:
		return format.Date(raw, "%B %d, %Y")
	case domain.ValueTypePercentage:
		return format.Percentage(raw, 3)
	case domain.ValueTypeNumber:
		return format.Number(raw, 2)
	default:
		return raw
	}
}

// CompilePatterns builds the pattern table from configuration specs.
// Patterns compile with case-insensitive and multiline flags unless
// disabled per entry. Invalid patterns are logged and skipped, never
// fatal. The table is ordered by field name so extraction output is
// stable across runs.
func CompilePatterns(specs map[string]PatternSpec) []ValuePattern {
	fields := make([]string, 0, len(specs))
	for field := range specs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	table := make([]ValuePattern, 0, len(specs))
	for _, field := range fields {
		spec := specs[field]
		if spec.Pattern == "" {
			continue
		}
		var flags string
		if spec.CaseInsensitive == nil || *spec.CaseInsensitive {
			flags += "i"
		}
		if spec.Multiline == nil || *spec.Multiline {
			flags += "m"
		}
		expr := spec.Pattern
		if flags != "" {
			expr = "(?" + flags + ")" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			log.Printf("extraction: invalid pattern for %q: %v", field, err)
			continue
		}
		table = append(table, ValuePattern{
			Field:     field,
			ValueType: spec.ValueType,
			re:        re,
		})
	}
	return table
}
