package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyInfo holds extracted real-estate property fields.
type PropertyInfo struct {
	Address          string `json:"address"`
	LegalDescription string `json:"legal_description"`
	PropertyType     string `json:"property_type"`
	ParcelNumber     string `json:"parcel_number"`
	SquareFootage    string `json:"square_footage"`
}

// MonetaryValues holds extracted monetary amounts, already normalized
// to display form ("$250,000.00", "4.5%").
type MonetaryValues struct {
	PurchasePrice  string   `json:"purchase_price"`
	LoanAmount     string   `json:"loan_amount"`
	DepositAmount  string   `json:"deposit_amount"`
	MonthlyPayment string   `json:"monthly_payment"`
	InterestRate   string   `json:"interest_rate"`
	OtherAmounts   []string `json:"other_amounts"`
}

// Parties holds the parties named in the agreement. Lessor/landlord and
// lessee/tenant mirror each other when only one form appears in the text.
type Parties struct {
	Buyer    string `json:"buyer"`
	Seller   string `json:"seller"`
	Lender   string `json:"lender"`
	Borrower string `json:"borrower"`
	Lessor   string `json:"lessor"`
	Lessee   string `json:"lessee"`
	Landlord string `json:"landlord"`
	Tenant   string `json:"tenant"`
}

// DocumentDates holds the dates extracted from the document.
type DocumentDates struct {
	AgreementDate string   `json:"agreement_date"`
	EffectiveDate string   `json:"effective_date"`
	ClosingDate   string   `json:"closing_date"`
	ExecutionDate string   `json:"execution_date"`
	OtherDates    []string `json:"other_dates"`
}

// Entities buckets recognized named entities by category.
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
}

// ExtractionResult is the nested result of analyzing one document.
// Fields holds the raw pattern-table matches keyed by field name;
// LegalDescription and ParcelNumber are mirrored at the top level so
// template mapping paths can address them directly.
type ExtractionResult struct {
	DocumentType     string            `json:"document_type"`
	Fields           map[string]string `json:"fields"`
	Property         PropertyInfo      `json:"property"`
	MonetaryValues   MonetaryValues    `json:"monetary_values"`
	Parties          Parties           `json:"parties"`
	Dates            DocumentDates     `json:"dates"`
	Sections         map[string]string `json:"sections"`
	LegalDescription string            `json:"legal_description"`
	ParcelNumber     string            `json:"parcel_number"`
	RawEntities      Entities          `json:"raw_entities"`
}

// DocumentResult is the per-document outcome within a job. Failed
// documents carry an Error and no output file; the rest of the batch
// is unaffected.
type DocumentResult struct {
	Filename      string            `json:"filename"`
	OutputFile    string            `json:"output_file,omitempty"`
	ExtractedData *ExtractionResult `json:"extracted_data,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// JobSummary is the extraction_summary.json payload written per job.
type JobSummary struct {
	JobID     uuid.UUID        `json:"job_id"`
	Timestamp time.Time        `json:"timestamp"`
	Template  string           `json:"template"`
	Documents []string         `json:"documents"`
	Results   []DocumentResult `json:"results"`
}
