package domain

// DocumentFileType represents the allowed document upload types.
type DocumentFileType string

const (
	DocumentFileTypePDF DocumentFileType = "pdf"
)

// TemplateType distinguishes the two supported template formats.
type TemplateType string

const (
	TemplateTypeDOCX TemplateType = "docx"
	TemplateTypeJSON TemplateType = "json"
)

// AllowedDocumentExtensions maps document file extensions (without dot)
// to their file type.
var AllowedDocumentExtensions = map[string]DocumentFileType{
	"pdf": DocumentFileTypePDF,
}

// AllowedTemplateExtensions maps template file extensions (without dot)
// to their template type.
var AllowedTemplateExtensions = map[string]TemplateType{
	"docx": TemplateTypeDOCX,
	"json": TemplateTypeJSON,
}

// OutputFormat is the rendered output file format.
type OutputFormat string

const (
	OutputFormatDOCX OutputFormat = "docx"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatXLSX OutputFormat = "xlsx"
)

// ValueType declares how a raw pattern match is normalized and how a
// mapped template field is formatted.
type ValueType string

const (
	ValueTypeString     ValueType = "string"
	ValueTypeCurrency   ValueType = "currency"
	ValueTypeDate       ValueType = "date"
	ValueTypePercentage ValueType = "percentage"
	ValueTypeNumber     ValueType = "number"
	ValueTypePhone      ValueType = "phone"
	ValueTypeBoolean    ValueType = "boolean"
)

// DocumentTypeUnknown is the classifier label when no signal matches.
const DocumentTypeUnknown = "unknown"
