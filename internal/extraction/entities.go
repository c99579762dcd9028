package extraction

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	prose "github.com/jdkato/prose/v2"

	"cisgen/internal/domain"
)

// Recognizer classifies text spans into named-entity categories.
type Recognizer interface {
	Recognize(text string) (domain.Entities, error)
}

// entityChunkSize bounds how much text is handed to the model at once.
const entityChunkSize = 5000

// Supplemental patterns for entity labels the statistical model does
// not emit. Organizations are recognized by their corporate suffix,
// dates by the usual written and numeric layouts.
var (
	orgPattern = regexp.MustCompile(`\b([A-Z][A-Za-z&'\-]*(?:\s+[A-Z][A-Za-z&'\-]*){0,4}\s+(?:Inc|LLC|L\.L\.C|Corp|Corporation|Company|Co|Ltd|Bank|Trust|Associates|Partners|Group|Title|Escrow)\.?)`)
	datePattern = regexp.MustCompile(`\b([A-Z][a-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
)

// modelRecognizer combines a statistical NER model with the rule-based
// supplements above. The entity_rules table decides which labels land
// in which bucket.
type modelRecognizer struct {
	model string
	// label -> bucket, inverted from the entity_rules config table.
	buckets map[string]string
}

// NewRecognizer builds the production recognizer. The model name is
// informational: it is carried from the configuration file and logged,
// the underlying English model ships with the library.
func NewRecognizer(model string, rules map[string][]string) Recognizer {
	if len(rules) == 0 {
		rules = DefaultConfig().EntityRules
	}
	buckets := make(map[string]string)
	for bucket, labels := range rules {
		for _, label := range labels {
			buckets[label] = bucket
		}
	}
	log.Printf("extraction: entity recognizer ready (model %s)", model)
	return &modelRecognizer{model: model, buckets: buckets}
}

func (r *modelRecognizer) Recognize(text string) (domain.Entities, error) {
	var result domain.Entities
	seen := make(map[string]bool)

	add := func(label, value string) {
		value = strings.TrimSpace(value)
		bucket, ok := r.buckets[label]
		if !ok || value == "" {
			return
		}
		key := bucket + "\x00" + value
		if seen[key] {
			return
		}
		seen[key] = true
		switch bucket {
		case "people":
			result.People = append(result.People, value)
		case "organizations":
			result.Organizations = append(result.Organizations, value)
		case "locations":
			result.Locations = append(result.Locations, value)
		case "dates":
			if !vagueDatePattern.MatchString(value) {
				result.Dates = append(result.Dates, value)
			}
		}
	}

	for _, chunk := range chunkText(text, entityChunkSize) {
		doc, err := prose.NewDocument(chunk)
		if err != nil {
			log.Printf("extraction: entity recognition failed on chunk: %v", err)
			continue
		}
		for _, ent := range doc.Entities() {
			add(ent.Label, ent.Text)
		}
		for _, m := range orgPattern.FindAllStringSubmatch(chunk, -1) {
			add("ORG", m[1])
		}
		for _, m := range datePattern.FindAllStringSubmatch(chunk, -1) {
			add("DATE", m[1])
		}
	}
	return result, nil
}

// chunkText splits text into pieces of at most size bytes, cutting on
// whitespace where possible and never inside a UTF-8 sequence.
func chunkText(text string, size int) []string {
	if text == "" {
		return nil
	}
	var chunks []string
	for len(text) > size {
		cut := size
		if idx := strings.LastIndexAny(text[:cut], " \t\n"); idx > size/2 {
			cut = idx
		}
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = size
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
