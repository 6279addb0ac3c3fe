// Package listing defines the financial value types for a seller-financed
// property listing and the structured outcome of validating one.
package listing

// Field identifies which financial field a validation issue refers to.
type Field string

// Financial fields referenced by validation issues.
const (
	FieldListPrice          Field = "listPrice"
	FieldDownPaymentAmount  Field = "downPaymentAmount"
	FieldDownPaymentPercent Field = "downPaymentPercent"
	FieldInterestRate       Field = "interestRate"
	FieldTermYears          Field = "termYears"
	FieldMonthlyPayment     Field = "monthlyPayment"
)

// Severity classifies a validation issue. Error means the record cannot be
// trusted, warning means a human decision is needed, info is advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities for reduction; higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Worse returns the more severe of two severities.
func Worse(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// PartialFinancialData is the raw financial shape an ingestion source
// supplies. Numeric fields are pointers so "not supplied" is structurally
// distinct from zero; ingestion coerces unparseable or zero values to nil.
type PartialFinancialData struct {
	ListPrice          *float64 `json:"listPrice,omitempty"`
	MonthlyPayment     *float64 `json:"monthlyPayment,omitempty"`
	DownPaymentAmount  *float64 `json:"downPaymentAmount,omitempty"`
	DownPaymentPercent *float64 `json:"downPaymentPercent,omitempty"`
	InterestRate       *float64 `json:"interestRate,omitempty"`
	TermYears          *float64 `json:"termYears,omitempty"`
	Address            string   `json:"address,omitempty"`
	City               string   `json:"city,omitempty"`
	State              string   `json:"state,omitempty"`
}

// FinancialData is a fully-populated financial record ready for validation.
// Zero values here mean the field could not be derived; the rules treat that
// as data to be evaluated. Computed lists the fields the normalizer filled
// and CalculationApplied is an observability note; neither influences the
// validation outcome.
type FinancialData struct {
	ListPrice          float64 `json:"listPrice"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	DownPaymentAmount  float64 `json:"downPaymentAmount"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	InterestRate       float64 `json:"interestRate"`
	TermYears          float64 `json:"termYears"`
	Address            string  `json:"address,omitempty"`
	City               string  `json:"city,omitempty"`
	State              string  `json:"state,omitempty"`
	Computed           []Field `json:"computed,omitempty"`
	CalculationApplied string  `json:"calculationApplied,omitempty"`
}

// LoanAmount is the financed portion of the price.
func (d FinancialData) LoanAmount() float64 {
	return d.ListPrice - d.DownPaymentAmount
}

// WasComputed reports whether the normalizer filled the given field rather
// than the source supplying it.
func (d FinancialData) WasComputed(field Field) bool {
	for _, f := range d.Computed {
		if f == field {
			return true
		}
	}
	return false
}

// Partial converts a populated record back into the partial shape, mapping
// zero values to absent per the domain sentinel.
func (d FinancialData) Partial() PartialFinancialData {
	return PartialFinancialData{
		ListPrice:          optional(d.ListPrice),
		MonthlyPayment:     optional(d.MonthlyPayment),
		DownPaymentAmount:  optional(d.DownPaymentAmount),
		DownPaymentPercent: optional(d.DownPaymentPercent),
		InterestRate:       optional(d.InterestRate),
		TermYears:          optional(d.TermYears),
		Address:            d.Address,
		City:               d.City,
		State:              d.State,
	}
}

func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// Issue describes one problem a validation rule found with a record.
type Issue struct {
	Field         Field    `json:"field"`
	Issue         string   `json:"issue"`
	Severity      Severity `json:"severity"`
	ExpectedRange string   `json:"expectedRange,omitempty"`
	ActualValue   string   `json:"actualValue"`
	Suggestion    string   `json:"suggestion,omitempty"`
	// HardFail marks issues that force auto-rejection regardless of the
	// overall severity mix (negative amortization, swapped payment fields,
	// usury-level rates).
	HardFail bool `json:"hardFail,omitempty"`
}

// Result aggregates every issue found for a record into a publish decision.
type Result struct {
	IsValid          bool     `json:"isValid"`
	Severity         Severity `json:"severity"`
	Issues           []Issue  `json:"issues"`
	ShouldAutoReject bool     `json:"shouldAutoReject"`
	NeedsReview      bool     `json:"needsReview"`
}
