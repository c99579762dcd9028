// Package extraction turns raw document text into structured data: a
// configurable regex pattern table, targeted rule tables for parties,
// dates, monetary amounts and property details, keyword document
// classification, and named-entity recognition.
package extraction

import (
	"sort"
	"strconv"
	"strings"

	"cisgen/internal/domain"
	"cisgen/internal/format"
)

// Analyzer applies the full extraction pipeline to document text.
// Analyze is pure with respect to the analyzer's state: the same text
// always produces the same result.
type Analyzer struct {
	patterns   []ValuePattern
	recognizer Recognizer
}

// NewAnalyzer builds an analyzer from the pattern configuration and an
// entity recognizer.
func NewAnalyzer(cfg *Config, rec Recognizer) *Analyzer {
	return &Analyzer{
		patterns:   CompilePatterns(cfg.ExtractionPatterns),
		recognizer: rec,
	}
}

// Analyze extracts structured data from document text. Fields with no
// match stay absent here; defaults are applied later during template
// mapping so that mapping stays an explicit fallback chain.
func (a *Analyzer) Analyze(text string) *domain.ExtractionResult {
	result := &domain.ExtractionResult{
		DocumentType: domain.DocumentTypeUnknown,
		Fields:       make(map[string]string),
		Sections:     map[string]string{},
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	result.DocumentType = ClassifyDocument(text)

	for i := range a.patterns {
		p := &a.patterns[i]
		if raw, ok := p.FindFirst(text); ok {
			result.Fields[p.Field] = p.Normalize(raw)
		}
	}

	result.Parties = extractParties(text)
	result.Dates = extractDates(text)
	result.MonetaryValues = extractMonetary(text)
	result.Property = extractProperty(text)
	result.Sections = extractSections(text)

	// Top-level mirrors for common mapping paths.
	result.LegalDescription = result.Property.LegalDescription
	result.ParcelNumber = result.Property.ParcelNumber

	if a.recognizer != nil {
		if ents, err := a.recognizer.Recognize(text); err == nil {
			result.RawEntities = ents
			// Entity dates supplement the targeted date patterns.
			result.Dates.OtherDates = mergeOtherDates(result.Dates, ents.Dates)
		}
	}

	return result
}

func firstMatch(text string, rule fieldRule) string {
	for _, re := range rule.patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func extractParties(text string) domain.Parties {
	values := make(map[string]string, len(partyRules))
	for _, rule := range partyRules {
		values[rule.field] = firstMatch(text, rule)
	}
	p := domain.Parties{
		Buyer:    values["buyer"],
		Seller:   values["seller"],
		Lender:   values["lender"],
		Borrower: values["borrower"],
		Lessor:   values["lessor"],
		Lessee:   values["lessee"],
	}
	// Lessor/landlord and lessee/tenant are synonyms; mirror whichever
	// form the document used.
	p.Landlord = p.Lessor
	p.Tenant = p.Lessee
	return p
}

func extractDates(text string) domain.DocumentDates {
	values := make(map[string]string, len(dateRules))
	for _, rule := range dateRules {
		values[rule.field] = firstMatch(text, rule)
	}
	return domain.DocumentDates{
		AgreementDate: values["agreement_date"],
		EffectiveDate: values["effective_date"],
		ClosingDate:   values["closing_date"],
		ExecutionDate: values["execution_date"],
	}
}

func extractMonetary(text string) domain.MonetaryValues {
	values := make(map[string]string, len(moneyRules))
	for _, rule := range moneyRules {
		raw := firstMatch(text, rule)
		if raw == "" {
			continue
		}
		if rule.field == "interest_rate" {
			values[rule.field] = strings.TrimSuffix(raw, "%") + "%"
		} else {
			values[rule.field] = format.Currency(raw, "$")
		}
	}
	m := domain.MonetaryValues{
		PurchasePrice:  values["purchase_price"],
		LoanAmount:     values["loan_amount"],
		DepositAmount:  values["deposit_amount"],
		MonthlyPayment: values["monthly_payment"],
		InterestRate:   values["interest_rate"],
	}
	m.OtherAmounts = otherAmounts(text, values)
	return m
}

// otherAmounts collects every dollar amount not already captured by a
// named field, largest first, capped at five.
func otherAmounts(text string, captured map[string]string) []string {
	type amount struct {
		value     float64
		formatted string
	}
	taken := make(map[string]bool, len(captured))
	for _, v := range captured {
		taken[v] = true
	}

	var amounts []amount
	seen := make(map[string]bool)
	for _, m := range allMoneyPattern.FindAllStringSubmatch(text, -1) {
		formatted := format.Currency(m[1], "$")
		if taken[formatted] || seen[formatted] {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		seen[formatted] = true
		amounts = append(amounts, amount{value: v, formatted: formatted})
	}
	sort.SliceStable(amounts, func(i, j int) bool { return amounts[i].value > amounts[j].value })
	if len(amounts) > 5 {
		amounts = amounts[:5]
	}
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.formatted
	}
	return out
}

func extractProperty(text string) domain.PropertyInfo {
	values := make(map[string]string, len(propertyRules))
	for _, rule := range propertyRules {
		values[rule.field] = firstMatch(text, rule)
	}
	return domain.PropertyInfo{
		Address:          values["address"],
		LegalDescription: values["legal_description"],
		PropertyType:     values["property_type"],
		ParcelNumber:     values["parcel_number"],
		SquareFootage:    values["square_footage"],
	}
}

// mergeOtherDates keeps entity-recognized dates that none of the
// targeted date fields already hold.
func mergeOtherDates(dates domain.DocumentDates, candidates []string) []string {
	known := map[string]bool{
		dates.AgreementDate: true,
		dates.EffectiveDate: true,
		dates.ClosingDate:   true,
		dates.ExecutionDate: true,
	}
	var out []string
	for _, d := range candidates {
		if !known[d] {
			known[d] = true
			out = append(out, d)
		}
	}
	return out
}
