package rules

import (
	"strings"
	"testing"

	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/pkg/amortize"
	"github.com/ownerfi/listing-validate/pkg/mathutil"
)

// soundListing returns a record that passes every rule, for tests that
// perturb one field at a time.
func soundListing() listing.FinancialData {
	return listing.FinancialData{
		ListPrice:          250000,
		MonthlyPayment:     1800,
		DownPaymentAmount:  25000,
		DownPaymentPercent: 10,
		InterestRate:       8,
		TermYears:          20,
	}
}

func issuesBySeverity(issues []listing.Issue, severity listing.Severity) []listing.Issue {
	var matched []listing.Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			matched = append(matched, issue)
		}
	}
	return matched
}

func TestPriceRangeBoundaries(t *testing.T) {
	tests := []struct {
		name             string
		price            float64
		expectedIssues   int
		expectedSeverity listing.Severity
	}{
		{name: "At minimum passes clean", price: 10000, expectedIssues: 0},
		{name: "One below minimum errors", price: 9999, expectedIssues: 1, expectedSeverity: listing.SeverityError},
		{name: "At maximum passes clean", price: 10000000, expectedIssues: 0},
		{name: "One above maximum warns", price: 10000001, expectedIssues: 1, expectedSeverity: listing.SeverityWarning},
		{name: "Zero price errors twice", price: 0, expectedIssues: 2, expectedSeverity: listing.SeverityError},
		{name: "Negative price errors twice", price: -5000, expectedIssues: 2, expectedSeverity: listing.SeverityError},
	}

	th := DefaultThresholds()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := soundListing()
			data.ListPrice = tt.price
			issues := PriceRange(data, th)

			if len(issues) != tt.expectedIssues {
				t.Fatalf("PriceRange() produced %d issues, expected %d: %+v", len(issues), tt.expectedIssues, issues)
			}
			for _, issue := range issues {
				if issue.Severity != tt.expectedSeverity {
					t.Errorf("issue severity = %s, expected %s", issue.Severity, tt.expectedSeverity)
				}
				if issue.Field != listing.FieldListPrice {
					t.Errorf("issue field = %s, expected listPrice", issue.Field)
				}
			}
		})
	}
}

func TestDownPayment(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name             string
		mutate           func(*listing.FinancialData)
		expectedSeverity listing.Severity
		expectedContains string
	}{
		{
			name:             "Negative amount",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentAmount = -100; d.DownPaymentPercent = 0 },
			expectedSeverity: listing.SeverityError,
			expectedContains: "cannot be negative",
		},
		{
			name:             "Amount exceeds price",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentAmount = 300000 },
			expectedSeverity: listing.SeverityError,
			expectedContains: "exceeds list price",
		},
		{
			name:             "Percent above 100",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentPercent = 120 },
			expectedSeverity: listing.SeverityError,
			expectedContains: "out of valid range",
		},
		{
			name:             "Percent below typical band",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentPercent = 3; d.DownPaymentAmount = 7500 },
			expectedSeverity: listing.SeverityWarning,
			expectedContains: "very low",
		},
		{
			name:             "Percent above typical band",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentPercent = 80; d.DownPaymentAmount = 200000 },
			expectedSeverity: listing.SeverityWarning,
			expectedContains: "unusually high",
		},
		{
			name:             "Amount and percent disagree",
			mutate:           func(d *listing.FinancialData) { d.DownPaymentPercent = 15 },
			expectedSeverity: listing.SeverityError,
			expectedContains: "do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := soundListing()
			tt.mutate(&data)
			issues := DownPayment(data, th)

			found := false
			for _, issue := range issues {
				if strings.Contains(issue.Issue, tt.expectedContains) {
					found = true
					if issue.Severity != tt.expectedSeverity {
						t.Errorf("severity = %s, expected %s", issue.Severity, tt.expectedSeverity)
					}
				}
			}
			if !found {
				t.Errorf("expected an issue containing %q, got %+v", tt.expectedContains, issues)
			}
		})
	}

	t.Run("Sound record passes clean", func(t *testing.T) {
		if issues := DownPayment(soundListing(), th); len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})
}

func TestDownPaymentCrossCheckTolerance(t *testing.T) {
	th := DefaultThresholds()
	data := soundListing()

	// 10.9% stated against a computed 10% is inside the one-point tolerance.
	data.DownPaymentPercent = 10.9
	if issues := DownPayment(data, th); len(issues) != 0 {
		t.Errorf("expected 0.9-point gap to pass, got %+v", issues)
	}

	// 11.1% stated is outside it.
	data.DownPaymentPercent = 11.1
	issues := DownPayment(data, th)
	if len(issues) != 1 || !strings.Contains(issues[0].Issue, "do not match") {
		t.Errorf("expected a mismatch error, got %+v", issues)
	}
}

func TestInterestRate(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name           string
		rate           float64
		expectedIssues int
		expectHardFail bool
	}{
		{name: "Typical rate passes", rate: 8, expectedIssues: 0},
		{name: "Below typical band warns", rate: 2, expectedIssues: 1},
		{name: "Above typical band warns", rate: 16, expectedIssues: 1},
		{name: "Usury-level rate is an extreme outlier", rate: 22, expectedIssues: 2, expectHardFail: true},
		{name: "Above legal maximum", rate: 55, expectedIssues: 3, expectHardFail: true},
		{name: "Negative rate errors", rate: -1, expectedIssues: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := soundListing()
			data.InterestRate = tt.rate
			issues := InterestRate(data, th)

			if len(issues) != tt.expectedIssues {
				t.Fatalf("InterestRate() produced %d issues, expected %d: %+v", len(issues), tt.expectedIssues, issues)
			}
			hardFail := false
			for _, issue := range issues {
				if issue.HardFail {
					hardFail = true
				}
			}
			if hardFail != tt.expectHardFail {
				t.Errorf("hardFail = %v, expected %v", hardFail, tt.expectHardFail)
			}
		})
	}
}

func TestTerm(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name             string
		term             float64
		price            float64
		expectedContains string
		expectedSeverity listing.Severity
	}{
		{name: "Zero term", term: 0, price: 250000, expectedContains: "out of valid range", expectedSeverity: listing.SeverityError},
		{name: "Beyond maximum", term: 55, price: 250000, expectedContains: "out of valid range", expectedSeverity: listing.SeverityError},
		{name: "Short term", term: 7, price: 250000, expectedContains: "unusually short", expectedSeverity: listing.SeverityWarning},
		{name: "Long term", term: 45, price: 250000, expectedContains: "unusually long", expectedSeverity: listing.SeverityWarning},
		{name: "Reverse-calculated term", term: 17.6, price: 250000, expectedContains: "reverse-calculated", expectedSeverity: listing.SeverityWarning},
		{name: "Long term on cheap property", term: 25, price: 100000, expectedContains: "too long for property price", expectedSeverity: listing.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := soundListing()
			data.TermYears = tt.term
			data.ListPrice = tt.price
			issues := Term(data, th)

			found := false
			for _, issue := range issues {
				if strings.Contains(issue.Issue, tt.expectedContains) {
					found = true
					if issue.Severity != tt.expectedSeverity {
						t.Errorf("severity = %s, expected %s", issue.Severity, tt.expectedSeverity)
					}
				}
			}
			if !found {
				t.Errorf("expected an issue containing %q, got %+v", tt.expectedContains, issues)
			}
		})
	}

	t.Run("Standard term passes clean", func(t *testing.T) {
		if issues := Term(soundListing(), th); len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})
}

func TestMonthlyPaymentRule(t *testing.T) {
	th := DefaultThresholds()

	t.Run("Zero payment errors", func(t *testing.T) {
		data := soundListing()
		data.MonthlyPayment = 0
		issues := MonthlyPayment(data, th)
		if len(issuesBySeverity(issues, listing.SeverityError)) != 1 {
			t.Errorf("expected one error, got %+v", issues)
		}
	})

	t.Run("Payment above two percent of loan warns", func(t *testing.T) {
		data := soundListing()
		data.MonthlyPayment = 5000 // loan is 225000, 2% is 4500
		issues := MonthlyPayment(data, th)
		if len(issues) != 1 || issues[0].Severity != listing.SeverityWarning {
			t.Errorf("expected one warning, got %+v", issues)
		}
	})

	t.Run("Payment below a third of a percent warns", func(t *testing.T) {
		data := soundListing()
		data.MonthlyPayment = 500 // 0.3% of 225000 is 675
		issues := MonthlyPayment(data, th)
		if len(issues) != 1 || issues[0].Severity != listing.SeverityWarning {
			t.Errorf("expected one warning, got %+v", issues)
		}
	})

	t.Run("No ratio checks without a positive loan", func(t *testing.T) {
		data := soundListing()
		data.ListPrice = 0
		data.DownPaymentAmount = 0
		data.MonthlyPayment = 500
		issues := MonthlyPayment(data, th)
		if len(issues) != 0 {
			t.Errorf("expected no issues without a loan amount, got %+v", issues)
		}
	})
}

func TestAmortizationConsistencyBands(t *testing.T) {
	th := DefaultThresholds()

	// Computed P&I for the sound listing is about $1,882 on the $225,000
	// financed amount.
	tests := []struct {
		name             string
		payment          float64
		expectedIssues   int
		expectedSeverity listing.Severity
	}{
		{name: "Within ten percent is silent", payment: 1800, expectedIssues: 0},
		{name: "Minor deviation is advisory", payment: 2200, expectedIssues: 1, expectedSeverity: listing.SeverityInfo},
		{name: "Escrow-sized deviation warns", payment: 2800, expectedIssues: 1, expectedSeverity: listing.SeverityWarning},
		{name: "Beyond tolerance errors", payment: 4500, expectedIssues: 1, expectedSeverity: listing.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := soundListing()
			data.MonthlyPayment = tt.payment
			issues := AmortizationConsistency(data, th)

			if len(issues) != tt.expectedIssues {
				t.Fatalf("produced %d issues, expected %d: %+v", len(issues), tt.expectedIssues, issues)
			}
			if tt.expectedIssues > 0 && issues[0].Severity != tt.expectedSeverity {
				t.Errorf("severity = %s, expected %s", issues[0].Severity, tt.expectedSeverity)
			}
		})
	}
}

func TestAmortizationConsistencyNegativeAmortization(t *testing.T) {
	th := DefaultThresholds()
	data := soundListing()
	data.InterestRate = 12
	data.MonthlyPayment = 1000 // interest alone on 225000 at 12% is 2250

	issues := AmortizationConsistency(data, th)

	foundHardFail := false
	for _, issue := range issues {
		if issue.HardFail {
			foundHardFail = true
			if !strings.Contains(issue.Issue, "mathematically impossible") {
				t.Errorf("hard-fail message = %q, expected the negative amortization text", issue.Issue)
			}
		}
	}
	if !foundHardFail {
		t.Errorf("expected a hard-fail issue, got %+v", issues)
	}
}

func TestAmortizationRoundTrip(t *testing.T) {
	// The engine must never flag its own computed payment as inconsistent
	// with itself.
	th := DefaultThresholds()
	prices := []float64{50000, 189900, 250000, 1000000}
	rates := []float64{3, 8, 15}
	terms := []float64{10, 20, 30}

	for _, price := range prices {
		for _, rate := range rates {
			for _, term := range terms {
				down := mathutil.Round(price * 0.2)
				payment := mathutil.Round(amortize.MonthlyPayment(price-down, rate, term))
				data := listing.FinancialData{
					ListPrice:          price,
					DownPaymentAmount:  down,
					DownPaymentPercent: 20,
					InterestRate:       rate,
					TermYears:          term,
					MonthlyPayment:     payment,
				}
				if issues := AmortizationConsistency(data, th); len(issues) != 0 {
					t.Errorf("price %.0f rate %.1f term %.0f: computed payment flagged: %+v",
						price, rate, term, issues)
				}
			}
		}
	}
}

func TestPaymentToIncome(t *testing.T) {
	th := DefaultThresholds()

	t.Run("Affordable payment is silent", func(t *testing.T) {
		if issues := PaymentToIncome(soundListing(), th); len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})

	t.Run("Unaffordable payment is advisory only", func(t *testing.T) {
		data := soundListing()
		data.MonthlyPayment = 3000 // ceiling for a 250k home is about 2083
		issues := PaymentToIncome(data, th)
		if len(issues) != 1 || issues[0].Severity != listing.SeverityInfo {
			t.Errorf("expected one info issue, got %+v", issues)
		}
	})
}

func TestOutliers(t *testing.T) {
	th := DefaultThresholds()

	t.Run("Swapped payment fields reject", func(t *testing.T) {
		data := soundListing()
		data.MonthlyPayment = 21600 // an annual payment in the monthly column
		issues := Outliers(data, th)

		found := false
		for _, issue := range issues {
			if strings.Contains(issue.Issue, "extreme outlier") {
				found = true
				if issue.Severity != listing.SeverityError || !issue.HardFail {
					t.Errorf("expected a hard-fail error, got %+v", issue)
				}
			}
		}
		if !found {
			t.Errorf("expected the outlier issue, got %+v", issues)
		}
	})

	t.Run("Near-cash down payment warns", func(t *testing.T) {
		data := soundListing()
		data.DownPaymentAmount = 237500
		data.DownPaymentPercent = 95
		issues := Outliers(data, th)
		if len(issues) != 1 || issues[0].Severity != listing.SeverityWarning {
			t.Errorf("expected one warning, got %+v", issues)
		}
	})

	t.Run("Zero price produces nothing here", func(t *testing.T) {
		data := soundListing()
		data.ListPrice = 0
		if issues := Outliers(data, th); len(issues) != 0 {
			t.Errorf("expected no issues, got %+v", issues)
		}
	})
}

func TestCatalogOrderIsStable(t *testing.T) {
	expected := []string{
		"price-range",
		"down-payment",
		"interest-rate",
		"term",
		"monthly-payment",
		"amortization-consistency",
		"payment-to-income",
		"outliers",
	}

	catalog := Catalog()
	if len(catalog) != len(expected) {
		t.Fatalf("catalog has %d rules, expected %d", len(catalog), len(expected))
	}
	for i, rule := range catalog {
		if rule.Name != expected[i] {
			t.Errorf("catalog[%d] = %s, expected %s", i, rule.Name, expected[i])
		}
	}
}
