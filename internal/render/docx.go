package render

import (
	"fmt"

	"github.com/nguyenthenguyen/docx"
)

// DOCX fills a DOCX template's {{field}} placeholders with the mapped
// values and writes the result to outputPath.
func DOCX(templatePath, outputPath string, values map[string]string) error {
	r, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("opening docx template: %w", err)
	}
	defer func() { _ = r.Close() }()

	doc := r.Editable()
	for field, value := range values {
		// Both spaced and unspaced placeholder spellings occur in
		// hand-authored templates.
		if err := doc.Replace("{{"+field+"}}", value, -1); err != nil {
			return fmt.Errorf("replacing field %q: %w", field, err)
		}
		if err := doc.Replace("{{ "+field+" }}", value, -1); err != nil {
			return fmt.Errorf("replacing field %q: %w", field, err)
		}
	}
	if err := doc.WriteToFile(outputPath); err != nil {
		return fmt.Errorf("writing docx output: %w", err)
	}
	return nil
}
