// Package output provides utilities for formatting and displaying
// validation reports.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ownerfi/listing-validate/internal/listing"
)

// Outcome pairs one validated record with its result and the disposition the
// ingestion contract prescribes for it.
type Outcome struct {
	Record      listing.FinancialData `json:"record"`
	Result      listing.Result        `json:"result"`
	Disposition string                `json:"disposition"`
}

// Report is a full batch validation report.
type Report struct {
	ReportID string    `json:"reportId"`
	Outcomes []Outcome `json:"outcomes"`
}

// PrettyFormat outputs a human-readable report, one banner per record.
func PrettyFormat(report Report) {
	p := message.NewPrinter(language.English)
	for _, outcome := range report.Outcomes {
		record := outcome.Record
		result := outcome.Result

		fmt.Println(strings.Repeat("=", 80))
		fmt.Println("PROPERTY FINANCIAL VALIDATION RESULT")
		fmt.Println(strings.Repeat("=", 80))
		fmt.Println()
		address := record.Address
		if address == "" {
			address = "Unknown"
		}
		fmt.Printf("Address: %s, %s, %s\n", address, record.City, record.State)
		_, _ = p.Printf("Price: $%.0f\n", record.ListPrice)
		_, _ = p.Printf("Monthly Payment: $%.2f\n", record.MonthlyPayment)
		fmt.Printf("Term: %g years @ %.2f%%\n", record.TermYears, record.InterestRate)
		_, _ = p.Printf("Down: $%.0f (%.1f%%)\n", record.DownPaymentAmount, record.DownPaymentPercent)
		if record.CalculationApplied != "" {
			fmt.Printf("Computed: %s\n", record.CalculationApplied)
		}
		fmt.Println()

		switch outcome.Disposition {
		case "reject":
			fmt.Println("STATUS: AUTO-REJECTED")
		case "review":
			fmt.Println("STATUS: NEEDS MANUAL REVIEW")
		default:
			fmt.Println("STATUS: APPROVED")
		}
		fmt.Println()

		if len(result.Issues) == 0 {
			fmt.Println("No issues found - all checks passed")
			fmt.Println()
			continue
		}

		fmt.Printf("ISSUES FOUND (%d):\n", len(result.Issues))
		fmt.Println(strings.Repeat("-", 80))
		for i, issue := range result.Issues {
			fmt.Printf("\n%d. [%s] %s\n", i+1, strings.ToUpper(string(issue.Severity)), issue.Field)
			fmt.Printf("   Issue: %s\n", issue.Issue)
			fmt.Printf("   Value: %s\n", issue.ActualValue)
			if issue.ExpectedRange != "" {
				fmt.Printf("   Expected: %s\n", issue.ExpectedRange)
			}
			if issue.Suggestion != "" {
				fmt.Printf("   Suggestion: %s\n", issue.Suggestion)
			}
		}
		fmt.Println()
	}
}

// CsvFormat outputs one row per record in comma-separated value format.
func CsvFormat(report Report) {
	fmt.Println(`"address","city","state","listPrice","monthlyPayment","downPaymentAmount","downPaymentPercent","interestRate","termYears","disposition","severity","issues"`)
	for _, outcome := range report.Outcomes {
		record := outcome.Record
		issues := make([]string, 0, len(outcome.Result.Issues))
		for _, issue := range outcome.Result.Issues {
			issues = append(issues, issue.Issue)
		}
		fmt.Printf("\"%s\",\"%s\",\"%s\",\"%.0f\",\"%.2f\",\"%.0f\",\"%.1f\",\"%.2f\",\"%g\",\"%s\",\"%s\",\"%s\"\n",
			escape(record.Address), escape(record.City), escape(record.State),
			record.ListPrice, record.MonthlyPayment, record.DownPaymentAmount,
			record.DownPaymentPercent, record.InterestRate, record.TermYears,
			outcome.Disposition, outcome.Result.Severity, escape(strings.Join(issues, "; ")))
	}
}

// JSONFormat outputs the full report as indented JSON.
func JSONFormat(report Report) error {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func escape(value string) string {
	return strings.ReplaceAll(value, `"`, `""`)
}
