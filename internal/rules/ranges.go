package rules

import (
	"fmt"
	"math"

	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/pkg/format"
	"github.com/ownerfi/listing-validate/pkg/mathutil"
)

// PriceRange checks the list price against the plausible range for
// owner-financed properties. Prices below the minimum almost always mean a
// transcription dropped digits, so they reject rather than warn.
func PriceRange(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	price := data.ListPrice

	if price <= 0 {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldListPrice,
			Issue:       "Price must be greater than $0",
			Severity:    listing.SeverityError,
			ActualValue: format.WholeCurrency(price),
		})
	}

	if price < th.MinPrice {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldListPrice,
			Issue:         "Price unusually low - likely data entry error",
			Severity:      listing.SeverityError,
			ExpectedRange: fmt.Sprintf("%s - %s", format.WholeCurrency(th.MinPrice), format.WholeCurrency(th.MaxPrice)),
			ActualValue:   format.WholeCurrency(price),
			Suggestion:    "Verify price is correct (not missing zeros)",
		})
	}

	if price > th.MaxPrice {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldListPrice,
			Issue:         "Price unusually high for owner financing",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("%s - %s", format.WholeCurrency(th.MinPrice), format.WholeCurrency(th.MaxPrice)),
			ActualValue:   format.WholeCurrency(price),
			Suggestion:    "Verify this is an actual owner-financed property",
		})
	}

	return issues
}

// DownPayment checks the down payment amount against the price, the percent
// against its valid and typical ranges, and cross-checks amount vs percent.
func DownPayment(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	price := data.ListPrice
	amount := data.DownPaymentAmount
	percent := data.DownPaymentPercent

	if amount < 0 {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldDownPaymentAmount,
			Issue:       "Down payment cannot be negative",
			Severity:    listing.SeverityError,
			ActualValue: format.WholeCurrency(amount),
		})
	}

	if amount >= price {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldDownPaymentAmount,
			Issue:       "Down payment exceeds list price",
			Severity:    listing.SeverityError,
			ActualValue: format.WholeCurrency(amount),
			Suggestion:  "Down payment should be less than list price",
		})
	}

	if percent < 0 || percent > 100 {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldDownPaymentPercent,
			Issue:         "Down payment percentage out of valid range",
			Severity:      listing.SeverityError,
			ExpectedRange: "0% - 100%",
			ActualValue:   format.Percent(percent),
		})
	}

	if percent < th.DownPaymentPercentLow {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldDownPaymentPercent,
			Issue:         "Down payment very low for owner financing",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("%.0f%% - 50%%", th.DownPaymentPercentLow),
			ActualValue:   format.Percent(percent),
			Suggestion:    "Typical owner financing requires 10-20% down",
		})
	}

	if percent > th.DownPaymentPercentHigh {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldDownPaymentPercent,
			Issue:         "Down payment unusually high",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("%.0f%% - %.0f%%", th.DownPaymentPercentLow, th.DownPaymentPercentHigh),
			ActualValue:   format.Percent(percent),
			Suggestion:    "With this much down, buyer may prefer traditional mortgage",
		})
	}

	// Amount vs percent cross-check; only meaningful with a usable price.
	if price > 0 {
		calculatedPercent := (amount / price) * 100
		if math.Abs(calculatedPercent-percent) > th.DownPaymentMatchTolerance {
			issues = append(issues, listing.Issue{
				Field:       listing.FieldDownPaymentPercent,
				Issue:       "Down payment amount and percentage do not match",
				Severity:    listing.SeverityError,
				ActualValue: fmt.Sprintf("%s (should be %s)", format.Percent(percent), format.Percent(calculatedPercent)),
				Suggestion:  fmt.Sprintf("Recalculate: %s / %s", format.WholeCurrency(amount), format.WholeCurrency(price)),
			})
		}
	}

	return issues
}

// InterestRate checks the annual rate against legal and typical bounds.
// Rates past the usury bound are extreme outliers and force rejection.
func InterestRate(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	rate := data.InterestRate

	if rate < 0 || rate > th.MaxInterestRate {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldInterestRate,
			Issue:         "Interest rate out of valid range",
			Severity:      listing.SeverityError,
			ExpectedRange: fmt.Sprintf("0%% - %.0f%%", th.MaxInterestRate),
			ActualValue:   format.Percent(rate),
		})
	}

	if rate < th.InterestRateLow {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldInterestRate,
			Issue:         "Interest rate unusually low for owner financing",
			Severity:      listing.SeverityWarning,
			ExpectedRange: "5% - 12%",
			ActualValue:   format.Percent(rate),
			Suggestion:    "Typical owner financing rates: 7-10%",
		})
	}

	if rate > th.InterestRateHigh {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldInterestRate,
			Issue:         "Interest rate very high",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("5%% - %.0f%%", th.InterestRateHigh),
			ActualValue:   format.Percent(rate),
			Suggestion:    "Verify rate is correct - may be uncompetitive",
		})
	}

	if rate > th.UsuryInterestRate {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldInterestRate,
			Issue:       "Interest rate extreme outlier",
			Severity:    listing.SeverityError,
			ActualValue: format.Percent(rate),
			Suggestion:  "This rate may violate usury laws in some states",
			HardFail:    true,
		})
	}

	return issues
}

// Term checks the amortization period. A fractional term means the value was
// reverse-calculated from the payment rather than stated by the seller.
func Term(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	term := data.TermYears
	price := data.ListPrice

	if term <= 0 || term > th.MaxTermYears {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldTermYears,
			Issue:         "Term years out of valid range",
			Severity:      listing.SeverityError,
			ExpectedRange: fmt.Sprintf("5 - %.0f years", th.TermYearsLong),
			ActualValue:   fmt.Sprintf("%g years", term),
		})
	}

	if term < th.TermYearsShort {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldTermYears,
			Issue:         "Term unusually short",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("%.0f - %.0f years", th.TermYearsShort, th.TermYearsLong),
			ActualValue:   fmt.Sprintf("%g years", term),
			Suggestion:    "Short terms result in high monthly payments",
		})
	}

	if term > th.TermYearsLong {
		issues = append(issues, listing.Issue{
			Field:         listing.FieldTermYears,
			Issue:         "Term unusually long",
			Severity:      listing.SeverityWarning,
			ExpectedRange: fmt.Sprintf("%.0f - %.0f years", th.TermYearsShort, th.TermYearsLong),
			ActualValue:   fmt.Sprintf("%g years", term),
			Suggestion:    "Standard mortgages max at 30-40 years",
		})
	}

	if !mathutil.IsWholeNumber(term) {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldTermYears,
			Issue:       "Term has decimal places (reverse-calculated from payment)",
			Severity:    listing.SeverityWarning,
			ActualValue: fmt.Sprintf("%g years", term),
			Suggestion:  fmt.Sprintf("Consider rounding to %.0f years for clarity", math.Round(term)),
		})
	}

	if price < th.SmallPropertyPrice && term > th.SmallPropertyTermYears {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldTermYears,
			Issue:       "Term may be too long for property price",
			Severity:    listing.SeverityInfo,
			ActualValue: fmt.Sprintf("%g years for %s", term, format.WholeCurrency(price)),
			Suggestion:  "Properties under $150k typically have 15-20 year terms",
		})
	}

	return issues
}

// MonthlyPayment checks the payment magnitude against the financed amount.
func MonthlyPayment(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	payment := data.MonthlyPayment
	loanAmount := data.LoanAmount()

	if payment <= 0 {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Monthly payment must be greater than $0",
			Severity:    listing.SeverityError,
			ActualValue: format.Currency(payment),
		})
	}

	if loanAmount <= 0 {
		return issues
	}

	maxReasonable := loanAmount * th.PaymentToLoanHigh
	if payment > maxReasonable {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Monthly payment unusually high for loan amount",
			Severity:    listing.SeverityWarning,
			ActualValue: format.Currency(payment),
			Suggestion: fmt.Sprintf("For %s loan, expect %s-%s/mo",
				format.WholeCurrency(loanAmount), format.WholeCurrency(loanAmount*0.01), format.WholeCurrency(maxReasonable)),
		})
	}

	minReasonable := loanAmount * th.PaymentToLoanLow
	if payment < minReasonable {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Monthly payment unusually low for loan amount",
			Severity:    listing.SeverityWarning,
			ActualValue: format.Currency(payment),
			Suggestion: fmt.Sprintf("For %s loan, expect at least %s/mo",
				format.WholeCurrency(loanAmount), format.WholeCurrency(minReasonable)),
		})
	}

	return issues
}
