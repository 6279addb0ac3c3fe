// Package validate evaluates a normalized listing financial record against
// the rule catalog and reduces the issues to a publish decision. Evaluation
// is a pure function of the record and the thresholds: no clock, randomness,
// or I/O influences a decision, and all issues are always collected so a
// reviewer sees the complete picture in one pass.
package validate

import (
	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/internal/normalize"
	"github.com/ownerfi/listing-validate/internal/rules"
)

// Validate runs the full rule catalog over a populated record and aggregates
// the issues into a Result.
func Validate(data listing.FinancialData, th rules.Thresholds) listing.Result {
	return Reduce(rules.Evaluate(data, th))
}

// ValidateRecord normalizes a partial record and validates the result,
// covering the common caller sequence in one step.
func ValidateRecord(partial listing.PartialFinancialData, th rules.Thresholds) (listing.FinancialData, listing.Result) {
	data := normalize.Normalize(partial)
	return data, Validate(data, th)
}

// Reduce folds an issue list into the decision flags. Severity is the worst
// present (info when there are no issues); auto-rejection follows from any
// error or any hard-fail issue; anything rejected or warned needs review.
func Reduce(issues []listing.Issue) listing.Result {
	severity := listing.SeverityInfo
	hasError := false
	hasWarning := false
	hardFail := false

	for _, issue := range issues {
		severity = listing.Worse(severity, issue.Severity)
		switch issue.Severity {
		case listing.SeverityError:
			hasError = true
		case listing.SeverityWarning:
			hasWarning = true
		}
		if issue.HardFail {
			hardFail = true
		}
	}

	shouldAutoReject := hasError || hardFail
	return listing.Result{
		IsValid:          !hasError,
		Severity:         severity,
		Issues:           issues,
		ShouldAutoReject: shouldAutoReject,
		NeedsReview:      shouldAutoReject || hasWarning,
	}
}
