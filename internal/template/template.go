// Package template loads user-supplied output templates (JSON
// descriptors or DOCX files with placeholders) and maps extraction
// results into their field namespace.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"cisgen/internal/domain"
	"cisgen/internal/extraction"
)

// Section is one display section of the generated form.
type Section struct {
	Title  string   `json:"title"`
	Fields []string `json:"fields"`
}

// Structure describes how the generated form is laid out.
type Structure struct {
	Sections []Section `json:"sections"`
}

// Descriptor is a loaded template: the declared fields, their schema,
// and the mapping from template fields into the extraction result.
type Descriptor struct {
	TemplateName  string                            `json:"template_name"`
	DocumentType  string                            `json:"document_type"`
	Version       string                            `json:"version"`
	Fields        []string                          `json:"fields"`
	FieldSchema   map[string]extraction.FieldFormat `json:"field_schema"`
	Structure     Structure                         `json:"structure"`
	Mapping       map[string]string                 `json:"mapping"`
	DefaultValues map[string]string                 `json:"default_values"`
	OutputFormat  domain.OutputFormat               `json:"output_format"`

	Type domain.TemplateType `json:"-"`
	Path string              `json:"-"`
}

// placeholderPattern finds {{ field }} variables in a DOCX body.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Load reads a template file, dispatching on its extension. A file
// with an extension outside the allowed set returns
// ErrUnsupportedFileType; a malformed template returns
// ErrInvalidTemplate.
func Load(path string) (*Descriptor, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	typ, ok := domain.AllowedTemplateExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: template extension %q", domain.ErrUnsupportedFileType, ext)
	}
	switch typ {
	case domain.TemplateTypeJSON:
		return loadJSON(path)
	default:
		return loadDOCX(path)
	}
}

func loadJSON(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}
	d := &Descriptor{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}
	if len(d.Fields) == 0 {
		// Fields may be implied by the schema or mapping tables.
		d.Fields = impliedFields(d)
	}
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("%w: template declares no fields", domain.ErrInvalidTemplate)
	}
	switch d.OutputFormat {
	case "", domain.OutputFormatJSON, domain.OutputFormatXLSX:
	default:
		// DOCX output needs a DOCX template to substitute into.
		return nil, fmt.Errorf("%w: unsupported output_format %q", domain.ErrInvalidTemplate, d.OutputFormat)
	}
	d.Type = domain.TemplateTypeJSON
	d.Path = path
	return d, nil
}

func loadDOCX(path string) (*Descriptor, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}
	defer func() { _ = r.Close() }()

	content := r.Editable().GetContent()
	fields := discoverFields(content)
	if len(fields) == 0 {
		// Templates without visible placeholders get the conventional
		// real-estate field set.
		fields = defaultDOCXFields()
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Descriptor{
		TemplateName: name,
		Fields:       fields,
		Type:         domain.TemplateTypeDOCX,
		Path:         path,
	}, nil
}

// discoverFields scans a DOCX body for {{placeholder}} variables,
// deduplicated in order of first appearance.
func discoverFields(content string) []string {
	var fields []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			fields = append(fields, m[1])
		}
	}
	return fields
}

func impliedFields(d *Descriptor) []string {
	seen := make(map[string]bool)
	var fields []string
	for f := range d.FieldSchema {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	for f := range d.Mapping {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	sort.Strings(fields)
	return fields
}

func defaultDOCXFields() []string {
	return []string{
		"property_address",
		"property_description",
		"transaction_date",
		"transaction_amount",
		"buyer_name",
		"seller_name",
		"lender_name",
		"loan_amount",
		"interest_rate",
		"term_years",
		"monthly_payment",
		"closing_date",
	}
}
