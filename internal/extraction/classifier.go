package extraction

import (
	"strings"

	"cisgen/internal/domain"
)

// classRule associates a document type label with the keyword phrases
// that signal it. Rules are ordered: when two labels score equally, the
// earlier rule wins, which makes classification deterministic.
type classRule struct {
	label    string
	keywords []string
}

var classRules = []classRule{
	{"purchase_agreement", []string{"purchase agreement", "sales contract", "contract of sale", "real estate contract"}},
	{"lease_agreement", []string{"lease agreement", "rental agreement", "tenancy agreement"}},
	{"mortgage", []string{"mortgage", "deed of trust", "security deed"}},
	{"deed", []string{"warranty deed", "quitclaim deed", "special warranty deed", "grant deed"}},
	{"promissory_note", []string{"promissory note", "loan note"}},
	{"disclosure", []string{"disclosure statement", "property disclosure"}},
	{"title_insurance", []string{"title insurance", "title policy"}},
	{"closing_statement", []string{"closing statement", "settlement statement", "hud-1"}},
}

// ClassifyDocument assigns a document type label by counting keyword
// occurrences per label. The highest count wins; no signal at all yields
// "unknown". Classification never fails.
func ClassifyDocument(text string) string {
	lower := strings.ToLower(text)

	best := domain.DocumentTypeUnknown
	bestScore := 0
	for _, rule := range classRules {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = rule.label
			bestScore = score
		}
	}
	return best
}
