package extraction

import (
	"regexp"
	"strings"
)

// pageMarker is emitted by the text extractor between pages.
var pageMarker = regexp.MustCompile(`---\s*Page\s+\d+\s*---`)

type sectionRule struct {
	name    string
	pattern *regexp.Regexp
}

func newSectionRule(name, heading string) sectionRule {
	return sectionRule{
		name:    name,
		pattern: regexp.MustCompile(`(?i)(?:\n|\r|\A)\s*(?:[IVX0-9]+\.)?\s*(?:` + heading + `)[\s:]*`),
	}
}

// sectionRules covers the headings that recur in US legal documents.
var sectionRules = []sectionRule{
	newSectionRule("recitals", "RECITALS|WITNESSETH"),
	newSectionRule("definitions", "DEFINITIONS|DEFINED TERMS"),
	newSectionRule("property_description", "PROPERTY DESCRIPTION|LEGAL DESCRIPTION"),
	newSectionRule("payment_terms", "PURCHASE PRICE|CONSIDERATION|PAYMENT"),
	newSectionRule("representations", "REPRESENTATIONS|WARRANTIES"),
	newSectionRule("covenants", "COVENANTS"),
	newSectionRule("conditions", "CONDITIONS PRECEDENT|CONDITIONS"),
	newSectionRule("term", "TERM|DURATION"),
	newSectionRule("termination", "TERMINATION"),
	newSectionRule("default", "DEFAULT|BREACH"),
	newSectionRule("remedies", "REMEDIES"),
	newSectionRule("governing_law", "GOVERNING LAW|APPLICABLE LAW"),
	newSectionRule("notices", "NOTICES"),
	newSectionRule("miscellaneous", "MISCELLANEOUS|GENERAL PROVISIONS"),
}

// extractSections splits the document into pages and pulls out the body
// of each recognized section heading. A section appearing on several
// pages is concatenated.
func extractSections(text string) map[string]string {
	sections := make(map[string]string)

	for _, page := range pageMarker.Split(text, -1) {
		if strings.TrimSpace(page) == "" {
			continue
		}
		for _, rule := range sectionRules {
			parts := rule.pattern.Split(page, 2)
			if len(parts) < 2 {
				continue
			}
			content := strings.TrimSpace(parts[1])

			// Cut the section off at the next recognized heading.
			for _, other := range sectionRules {
				if loc := other.pattern.FindStringIndex(content); loc != nil {
					content = strings.TrimSpace(content[:loc[0]])
				}
			}
			if content == "" {
				continue
			}
			if existing, ok := sections[rule.name]; ok {
				sections[rule.name] = existing + "\n\n" + content
			} else {
				sections[rule.name] = content
			}
		}
	}
	return sections
}
