package csvexport

import (
	"encoding/csv"
	"io"
	"strings"

	"cisgen/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (18 columns).
var columns = []string{
	"Document Name",
	"Document Type",
	"Output File",
	"Property Address",
	"Legal Description",
	"Parcel Number",
	"Buyer",
	"Seller",
	"Lender",
	"Borrower",
	"Purchase Price",
	"Loan Amount",
	"Deposit Amount",
	"Interest Rate",
	"Agreement Date",
	"Closing Date",
	"Effective Date",
	"Error",
}

// Writer wraps csv.Writer for exporting job results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResults converts a job's document results to CSV rows and writes them.
func (w *Writer) WriteResults(results []domain.DocumentResult) error {
	for i := range results {
		row := resultToRow(&results[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// resultToRow converts a single document result to an 18-element string
// slice. Failed documents fill the name and error columns and leave the
// extracted columns empty.
func resultToRow(r *domain.DocumentResult) []string {
	row := make([]string, len(columns))

	row[0] = r.Filename
	row[17] = r.Error

	if r.ExtractedData == nil {
		return row
	}
	data := r.ExtractedData

	row[1] = data.DocumentType
	row[2] = r.OutputFile
	row[3] = data.Property.Address
	row[4] = firstLine(data.Property.LegalDescription)
	row[5] = data.Property.ParcelNumber
	row[6] = data.Parties.Buyer
	row[7] = data.Parties.Seller
	row[8] = data.Parties.Lender
	row[9] = data.Parties.Borrower
	row[10] = data.MonetaryValues.PurchasePrice
	row[11] = data.MonetaryValues.LoanAmount
	row[12] = data.MonetaryValues.DepositAmount
	row[13] = data.MonetaryValues.InterestRate
	row[14] = data.Dates.AgreementDate
	row[15] = data.Dates.ClosingDate
	row[16] = data.Dates.EffectiveDate

	return row
}

// firstLine collapses a multi-line legal description to its first line
// so spreadsheet rows stay readable.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
