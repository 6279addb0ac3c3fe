package rules

import (
	"fmt"

	"github.com/ownerfi/listing-validate/internal/listing"
)

// Outliers is a cross-cutting pass for corruption patterns the per-field
// rules can miss when every field is individually in range, such as monthly
// and annual payment columns swapped at the source.
func Outliers(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue

	if data.ListPrice <= 0 {
		// Ratios against price are undefined; the price rule already
		// rejects the record.
		return issues
	}

	annualPaymentRatio := (data.MonthlyPayment * 12) / data.ListPrice
	if annualPaymentRatio > th.AnnualPaymentToPriceOutlier {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldMonthlyPayment,
			Issue:       "Annual payments exceed 15% of price - extreme outlier",
			Severity:    listing.SeverityError,
			ActualValue: fmt.Sprintf("%.1f%%", annualPaymentRatio*100),
			Suggestion:  "Check if monthly payment is actually annual payment",
			HardFail:    true,
		})
	}

	downRatio := data.DownPaymentAmount / data.ListPrice
	if downRatio > th.CashPurchaseDownRatio {
		issues = append(issues, listing.Issue{
			Field:       listing.FieldDownPaymentAmount,
			Issue:       "Down payment is 90%+ of price",
			Severity:    listing.SeverityWarning,
			ActualValue: fmt.Sprintf("%.1f%%", downRatio*100),
			Suggestion:  "Buyer may prefer to pay cash instead of financing",
		})
	}

	return issues
}
