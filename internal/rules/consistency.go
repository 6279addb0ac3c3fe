package rules

import (
	"fmt"
	"math"

	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/pkg/amortize"
	"github.com/ownerfi/listing-validate/pkg/format"
)

// AmortizationConsistency recomputes the P&I payment from the normalized
// fields and compares it with the stated payment. Deviation inside the
// configured bands is attributed to escrow (taxes/insurance/HOA); beyond the
// tolerance the numbers contradict each other. A stated payment below one
// month's interest can never amortize the loan and forces rejection.
func AmortizationConsistency(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	payment := data.MonthlyPayment
	loanAmount := data.LoanAmount()

	// The ratios below are undefined without a positive loan, term, and
	// stated payment; the range rules already report those records.
	if loanAmount <= 0 || data.TermYears <= 0 || payment <= 0 {
		return issues
	}

	calculated := amortize.MonthlyPayment(loanAmount, data.InterestRate, data.TermYears)
	percentDiff := math.Abs(calculated-payment) / payment * 100

	switch {
	case percentDiff > th.EscrowTolerancePercent:
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Payment does not match amortization calculation",
			Severity:    listing.SeverityError,
			ActualValue: fmt.Sprintf("%s (calculated: %s)", format.Currency(payment), format.WholeCurrency(calculated)),
			Suggestion:  fmt.Sprintf("Payment differs by %.0f%% - verify all numbers are correct", percentDiff),
		})
	case percentDiff > th.EscrowWarningPercent:
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Payment significantly higher than P&I alone",
			Severity:    listing.SeverityWarning,
			ActualValue: fmt.Sprintf("%s (P&I: %s)", format.Currency(payment), format.WholeCurrency(calculated)),
			Suggestion:  "Payment may include taxes, insurance, or HOA fees",
		})
	case percentDiff > th.EscrowInfoPercent:
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Payment differs from calculated amount",
			Severity:    listing.SeverityInfo,
			ActualValue: fmt.Sprintf("%s (calculated: %s)", format.Currency(payment), format.WholeCurrency(calculated)),
			Suggestion:  "Minor difference OK - may include escrow",
		})
	}

	monthlyInterest := amortize.MonthlyInterest(loanAmount, data.InterestRate)
	if payment < monthlyInterest {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Payment does not cover monthly interest - mathematically impossible",
			Severity:    listing.SeverityError,
			ActualValue: fmt.Sprintf("%s (interest alone: %s)", format.Currency(payment), format.WholeCurrency(monthlyInterest)),
			Suggestion:  "This would result in negative amortization - check all numbers",
			HardFail:    true,
		})
	}

	return issues
}

// PaymentToIncome compares the payment to a rough affordability ceiling for
// the price band. Advisory only; it never blocks a listing.
func PaymentToIncome(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue

	// Rule of thumb: home price runs 3-5x annual income, so monthly income
	// is roughly (price / 4) / 12.
	estimatedMonthlyIncome := data.ListPrice / th.IncomePriceDivisor / 12
	maxPayment := estimatedMonthlyIncome * th.AffordablePaymentShare

	if data.MonthlyPayment > maxPayment {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Payment may be unaffordable for typical buyer",
			Severity:    listing.SeverityInfo,
			ActualValue: format.Currency(data.MonthlyPayment),
			Suggestion: fmt.Sprintf("For a %s home, max payment typically %s",
				format.WholeCurrency(data.ListPrice), format.WholeCurrency(maxPayment)),
		})
	}

	return issues
}
