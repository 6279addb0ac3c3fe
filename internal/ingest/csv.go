// Package ingest reads raw listing records from CSV exports and coerces
// free-text numerics into the partial financial shape the normalizer
// accepts. Parse failures become absent fields, never errors: malformed
// numbers are data for the validation rules to judge.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ownerfi/listing-validate/internal/listing"
)

// Column aliases seen across the CRM exports that feed this system. Headers
// are matched case-insensitively with surrounding whitespace ignored, since
// the source spreadsheets are inconsistent about both.
var columnAliases = map[string][]string{
	"address":            {"address", "street address"},
	"city":               {"city"},
	"state":              {"state"},
	"listPrice":          {"price", "list price", "listprice", "asking price"},
	"downPaymentAmount":  {"down payment amount", "downpaymentamount"},
	"downPaymentPercent": {"down payment", "down payment percent", "downpaymentpercent"},
	"interestRate":       {"interest rate", "interestrate", "rate"},
	"termYears":          {"term years", "termyears", "term", "amortization"},
	"monthlyPayment":     {"monthly payment", "monthlypayment", "payment"},
}

// CSVReader reads partial financial records from listing CSV files.
type CSVReader struct {
	logger *zap.Logger
}

// NewCSVReader creates a reader instance.
func NewCSVReader(logger *zap.Logger) *CSVReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVReader{logger: logger}
}

// ReadFile opens and parses a listing CSV file.
func (r *CSVReader) ReadFile(path string) ([]listing.PartialFinancialData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing file %s: %w", path, err)
	}
	defer file.Close()

	records, err := r.Read(file)
	if err != nil {
		return nil, fmt.Errorf("error reading records from %s: %w", path, err)
	}
	return records, nil
}

// Read parses listing records from CSV content. The first row must be a
// header; unknown columns are ignored.
func (r *CSVReader) Read(src io.Reader) ([]listing.PartialFinancialData, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := mapColumns(header)

	var records []listing.PartialFinancialData
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", row, err)
		}
		row++

		record := listing.PartialFinancialData{
			Address: textColumn(fields, columns, "address"),
			City:    textColumn(fields, columns, "city"),
			State:   textColumn(fields, columns, "state"),
		}
		record.ListPrice = numericColumn(fields, columns, "listPrice")
		record.DownPaymentAmount = numericColumn(fields, columns, "downPaymentAmount")
		record.DownPaymentPercent = numericColumn(fields, columns, "downPaymentPercent")
		record.InterestRate = numericColumn(fields, columns, "interestRate")
		record.TermYears = numericColumn(fields, columns, "termYears")
		record.MonthlyPayment = numericColumn(fields, columns, "monthlyPayment")

		if record.ListPrice == nil {
			r.logger.Debug("row has no usable list price",
				zap.String("op", "ingest.Read"),
				zap.Int("row", row),
				zap.String("address", record.Address),
			)
		}

		records = append(records, record)
	}
	return records, nil
}

// mapColumns resolves each known field to its column index in the header.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		for field, aliases := range columnAliases {
			if _, seen := columns[field]; seen {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					columns[field] = i
					break
				}
			}
		}
	}
	return columns
}

func textColumn(fields []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

// numericColumn parses a currency-ish cell into an optional value. Dollar
// signs, percent signs, and thousands separators are stripped first.
// Unparseable and zero cells are absent per the domain sentinel; negative
// values are kept so the range rules can report them.
func numericColumn(fields []string, columns map[string]int, field string) *float64 {
	raw := textColumn(fields, columns, field)
	if raw == "" {
		return nil
	}

	cleaned := strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(raw)
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || parsed == 0 {
		return nil
	}
	return &parsed
}
