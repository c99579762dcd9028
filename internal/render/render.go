// Package render writes mapped template values into output files:
// DOCX placeholder substitution, JSON documents, and XLSX sheets.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"cisgen/internal/domain"
	"cisgen/internal/template"
)

// Output renders one document's mapped values to outputPath, choosing
// the writer from the output file extension.
func Output(tpl *template.Descriptor, result *domain.ExtractionResult, values map[string]string, outputPath string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(outputPath), "."))
	switch domain.OutputFormat(ext) {
	case domain.OutputFormatDOCX:
		if tpl.Type != domain.TemplateTypeDOCX {
			return fmt.Errorf("%w: docx output requires a docx template", domain.ErrUnsupportedRendering)
		}
		return DOCX(tpl.Path, outputPath, values)
	case domain.OutputFormatJSON:
		return JSON(outputPath, values, result)
	case domain.OutputFormatXLSX:
		return XLSX(outputPath, tpl.Fields, values)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedRendering, ext)
	}
}

// OutputName returns the output filename for a processed document,
// e.g. contract.pdf -> processed_contract.docx.
func OutputName(docFilename string, f domain.OutputFormat) string {
	base := strings.TrimSuffix(docFilename, filepath.Ext(docFilename))
	return "processed_" + base + "." + string(f)
}

// FormatFor picks the output format for a template: DOCX templates
// render back into DOCX, JSON descriptors render to the format they
// declare, defaulting to JSON.
func FormatFor(tpl *template.Descriptor) domain.OutputFormat {
	if tpl.Type == domain.TemplateTypeDOCX {
		return domain.OutputFormatDOCX
	}
	if tpl.OutputFormat != "" {
		return tpl.OutputFormat
	}
	return domain.OutputFormatJSON
}
