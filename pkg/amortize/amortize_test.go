package amortize

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		annualRate    float64
		termYears     float64
		expectedRange []float64 // [min, max]
	}{
		{
			name:          "Standard 30-year note",
			loanAmount:    240000,
			annualRate:    6.0,
			termYears:     30,
			expectedRange: []float64{1430, 1450}, // Around $1439
		},
		{
			name:          "Owner-financed 20-year note",
			loanAmount:    225000,
			annualRate:    8.0,
			termYears:     20,
			expectedRange: []float64{1875, 1890}, // Around $1882
		},
		{
			name:          "Zero interest note",
			loanAmount:    120000,
			annualRate:    0.0,
			termYears:     10,
			expectedRange: []float64{1000, 1000}, // Exactly $1000
		},
		{
			name:          "High interest note",
			loanAmount:    100000,
			annualRate:    18.0,
			termYears:     15,
			expectedRange: []float64{1600, 1620}, // Around $1610
		},
		{
			name:          "Zero loan amount",
			loanAmount:    0,
			annualRate:    8.0,
			termYears:     20,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Zero term",
			loanAmount:    100000,
			annualRate:    8.0,
			termYears:     0,
			expectedRange: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.loanAmount, tt.annualRate, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyInterest(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		annualRate float64
		expected   float64
	}{
		{
			name:       "Standard rate",
			loanAmount: 180000,
			annualRate: 12.0,
			expected:   1800,
		},
		{
			name:       "Zero rate",
			loanAmount: 180000,
			annualRate: 0.0,
			expected:   0,
		},
		{
			name:       "Small balance",
			loanAmount: 4500,
			annualRate: 8.0,
			expected:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyInterest(tt.loanAmount, tt.annualRate)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("MonthlyInterest() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestDownPaymentConversions(t *testing.T) {
	tests := []struct {
		name            string
		price           float64
		percent         float64
		expectedAmount  float64
		expectedPercent float64
	}{
		{
			name:            "Ten percent down",
			price:           189900,
			percent:         10,
			expectedAmount:  18990,
			expectedPercent: 10,
		},
		{
			name:            "Rounds to whole dollars",
			price:           150555,
			percent:         10,
			expectedAmount:  15056,
			expectedPercent: 10.0003,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := DownPaymentFromPercent(tt.price, tt.percent)
			if amount != tt.expectedAmount {
				t.Errorf("DownPaymentFromPercent() = %.2f, expected %.2f", amount, tt.expectedAmount)
			}

			percent := PercentFromDownPayment(tt.price, amount)
			if math.Abs(percent-tt.expectedPercent) > 0.001 {
				t.Errorf("PercentFromDownPayment() = %.4f, expected %.4f", percent, tt.expectedPercent)
			}
		})
	}
}

func TestPercentFromDownPaymentZeroPrice(t *testing.T) {
	if got := PercentFromDownPayment(0, 25000); got != 0 {
		t.Errorf("PercentFromDownPayment(0, 25000) = %.2f, expected 0", got)
	}
}

func TestLoanAmountRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		annualRate float64
		termYears  float64
	}{
		{name: "Mid-range note", loanAmount: 170910, annualRate: 8.0, termYears: 30},
		{name: "Short note", loanAmount: 50000, annualRate: 10.0, termYears: 10},
		{name: "Zero interest", loanAmount: 60000, annualRate: 0.0, termYears: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.loanAmount, tt.annualRate, tt.termYears)
			recovered := LoanAmount(payment, tt.annualRate, tt.termYears)
			if math.Abs(recovered-tt.loanAmount) > 1.0 {
				t.Errorf("LoanAmount() = %.2f, expected %.2f within a dollar", recovered, tt.loanAmount)
			}
		})
	}
}

func TestTermYears(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		annualRate    float64
		termYears     float64
		expectedRange []float64
	}{
		{
			name:          "Recovers a 20-year term",
			loanAmount:    162000,
			annualRate:    8.0,
			termYears:     20,
			expectedRange: []float64{19.9, 20.1},
		},
		{
			name:          "Recovers a 30-year term",
			loanAmount:    170910,
			annualRate:    8.0,
			termYears:     30,
			expectedRange: []float64{29.9, 30.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.loanAmount, tt.annualRate, tt.termYears)
			recovered := TermYears(payment, tt.loanAmount, tt.annualRate)
			if recovered < tt.expectedRange[0] || recovered > tt.expectedRange[1] {
				t.Errorf("TermYears() = %.1f, expected range [%.1f, %.1f]",
					recovered, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestTermYearsNonAmortizing(t *testing.T) {
	// A payment at or below the monthly interest never amortizes; the solver
	// caps at the maximum plausible term instead of diverging.
	loanAmount := 180000.0
	rate := 12.0
	interestOnly := MonthlyInterest(loanAmount, rate)

	if got := TermYears(interestOnly, loanAmount, rate); got != 50 {
		t.Errorf("TermYears() at interest-only payment = %.1f, expected 50", got)
	}
	if got := TermYears(interestOnly-100, loanAmount, rate); got != 50 {
		t.Errorf("TermYears() below interest-only payment = %.1f, expected 50", got)
	}
}

func TestTermYearsZeroInterest(t *testing.T) {
	// 60000 at 500/month with no interest is exactly 120 months.
	if got := TermYears(500, 60000, 0); got != 10 {
		t.Errorf("TermYears() = %.1f, expected 10", got)
	}
}
