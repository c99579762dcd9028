package render

import (
	"encoding/json"
	"fmt"
	"os"

	"cisgen/internal/domain"
)

// jsonOutput is the JSON document written per processed file.
type jsonOutput struct {
	Fields        map[string]string        `json:"fields"`
	ExtractedData *domain.ExtractionResult `json:"extracted_data"`
}

// JSON writes the mapped values together with the full extraction
// result as an indented JSON document.
func JSON(outputPath string, values map[string]string, result *domain.ExtractionResult) error {
	data, err := json.MarshalIndent(jsonOutput{Fields: values, ExtractedData: result}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding json output: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing json output: %w", err)
	}
	return nil
}
