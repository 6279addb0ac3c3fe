// Package normalize fills financial fields an ingestion source failed to
// supply, using the amortization identity, and records which fields were
// computed. Normalization is pure: identical input always yields identical
// output, and no step overwrites a supplied value.
package normalize

import (
	"fmt"
	"strings"

	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/pkg/amortize"
	"github.com/ownerfi/listing-validate/pkg/mathutil"
)

// Normalize produces a fully-populated financial record from a partial one.
// Each derivation only runs when its target is absent and its inputs are
// present; records that remain underivable are left at zero for the
// validation rules to flag. Normalize never fails.
func Normalize(partial listing.PartialFinancialData) listing.FinancialData {
	data := listing.FinancialData{
		ListPrice:          value(partial.ListPrice),
		MonthlyPayment:     value(partial.MonthlyPayment),
		DownPaymentAmount:  value(partial.DownPaymentAmount),
		DownPaymentPercent: value(partial.DownPaymentPercent),
		InterestRate:       value(partial.InterestRate),
		TermYears:          value(partial.TermYears),
		Address:            partial.Address,
		City:               partial.City,
		State:              partial.State,
	}

	var notes []string

	if data.DownPaymentAmount == 0 && data.DownPaymentPercent > 0 && data.ListPrice > 0 {
		data.DownPaymentAmount = amortize.DownPaymentFromPercent(data.ListPrice, data.DownPaymentPercent)
		data.Computed = append(data.Computed, listing.FieldDownPaymentAmount)
		notes = append(notes, fmt.Sprintf("down payment amount from %.1f%% of price", data.DownPaymentPercent))
	}

	if data.DownPaymentPercent == 0 && data.DownPaymentAmount > 0 && data.ListPrice > 0 {
		data.DownPaymentPercent = amortize.PercentFromDownPayment(data.ListPrice, data.DownPaymentAmount)
		data.Computed = append(data.Computed, listing.FieldDownPaymentPercent)
		notes = append(notes, fmt.Sprintf("down payment percent from %.0f amount", data.DownPaymentAmount))
	}

	if data.MonthlyPayment == 0 && data.ListPrice > 0 && data.DownPaymentAmount > 0 &&
		data.InterestRate > 0 && data.TermYears > 0 {
		loanAmount := data.ListPrice - data.DownPaymentAmount
		if loanAmount > 0 {
			data.MonthlyPayment = mathutil.Round(amortize.MonthlyPayment(loanAmount, data.InterestRate, data.TermYears))
			data.Computed = append(data.Computed, listing.FieldMonthlyPayment)
			notes = append(notes, fmt.Sprintf("monthly payment from %.2f%% over %g years", data.InterestRate, data.TermYears))
		}
	}

	if data.TermYears == 0 && data.MonthlyPayment > 0 && data.InterestRate > 0 &&
		data.ListPrice > 0 && data.ListPrice > data.DownPaymentAmount {
		loanAmount := data.ListPrice - data.DownPaymentAmount
		data.TermYears = amortize.TermYears(data.MonthlyPayment, loanAmount, data.InterestRate)
		data.Computed = append(data.Computed, listing.FieldTermYears)
		notes = append(notes, fmt.Sprintf("term reverse-calculated from %.2f payment", data.MonthlyPayment))
	}

	data.CalculationApplied = strings.Join(notes, "; ")
	return data
}

// value maps absent input to the zero sentinel and non-finite input to zero.
// Negative values pass through so the range rules can report them.
func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return mathutil.Sanitize(*v)
}
