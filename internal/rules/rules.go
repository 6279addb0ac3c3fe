// Package rules implements the validation rule catalog for normalized
// listing financial data. Each rule is an independent, stateless function;
// the catalog is an explicit ordered list, and the issues a record produces
// are the concatenation of each rule's output in catalog order.
package rules

import (
	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/pkg/constants"
)

// Rule is one named validation check over a fully-populated record.
type Rule struct {
	Name  string
	Check func(listing.FinancialData, Thresholds) []listing.Issue
}

// Thresholds carries every tunable bound the rules consult. Values come from
// the rules section of the config file; DefaultThresholds supplies the
// standard bounds for callers without one.
type Thresholds struct {
	MinPrice float64 `mapstructure:"minPrice"`
	MaxPrice float64 `mapstructure:"maxPrice"`

	DownPaymentPercentLow     float64 `mapstructure:"downPaymentPercentLow"`
	DownPaymentPercentHigh    float64 `mapstructure:"downPaymentPercentHigh"`
	DownPaymentMatchTolerance float64 `mapstructure:"downPaymentMatchTolerance"`

	MaxInterestRate   float64 `mapstructure:"maxInterestRate"`
	UsuryInterestRate float64 `mapstructure:"usuryInterestRate"`
	InterestRateLow   float64 `mapstructure:"interestRateLow"`
	InterestRateHigh  float64 `mapstructure:"interestRateHigh"`

	MaxTermYears           float64 `mapstructure:"maxTermYears"`
	TermYearsShort         float64 `mapstructure:"termYearsShort"`
	TermYearsLong          float64 `mapstructure:"termYearsLong"`
	SmallPropertyPrice     float64 `mapstructure:"smallPropertyPrice"`
	SmallPropertyTermYears float64 `mapstructure:"smallPropertyTermYears"`

	PaymentToLoanHigh float64 `mapstructure:"paymentToLoanHigh"`
	PaymentToLoanLow  float64 `mapstructure:"paymentToLoanLow"`

	EscrowTolerancePercent float64 `mapstructure:"escrowTolerancePercent"`
	EscrowWarningPercent   float64 `mapstructure:"escrowWarningPercent"`
	EscrowInfoPercent      float64 `mapstructure:"escrowInfoPercent"`

	AnnualPaymentToPriceOutlier float64 `mapstructure:"annualPaymentToPriceOutlier"`
	CashPurchaseDownRatio       float64 `mapstructure:"cashPurchaseDownRatio"`

	IncomePriceDivisor     float64 `mapstructure:"incomePriceDivisor"`
	AffordablePaymentShare float64 `mapstructure:"affordablePaymentShare"`
}

// DefaultThresholds returns the standard validation bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinPrice:                    constants.MinPlausiblePrice,
		MaxPrice:                    constants.MaxPlausiblePrice,
		DownPaymentPercentLow:       constants.DownPaymentPercentLow,
		DownPaymentPercentHigh:      constants.DownPaymentPercentHigh,
		DownPaymentMatchTolerance:   constants.DownPaymentMatchTolerance,
		MaxInterestRate:             constants.MaxInterestRate,
		UsuryInterestRate:           constants.UsuryInterestRate,
		InterestRateLow:             constants.InterestRateLow,
		InterestRateHigh:            constants.InterestRateHigh,
		MaxTermYears:                constants.MaxTermYears,
		TermYearsShort:              constants.TermYearsShort,
		TermYearsLong:               constants.TermYearsLong,
		SmallPropertyPrice:          constants.SmallPropertyPrice,
		SmallPropertyTermYears:      constants.SmallPropertyTermYears,
		PaymentToLoanHigh:           constants.PaymentToLoanHigh,
		PaymentToLoanLow:            constants.PaymentToLoanLow,
		EscrowTolerancePercent:      constants.EscrowTolerancePercent,
		EscrowWarningPercent:        constants.EscrowWarningPercent,
		EscrowInfoPercent:           constants.EscrowInfoPercent,
		AnnualPaymentToPriceOutlier: constants.AnnualPaymentToPriceOutlier,
		CashPurchaseDownRatio:       constants.CashPurchaseDownRatio,
		IncomePriceDivisor:          constants.IncomePriceDivisor,
		AffordablePaymentShare:      constants.AffordablePaymentShare,
	}
}

// Catalog returns the full rule list in evaluation order. Rules never
// communicate; order only determines the order issues appear in the result.
func Catalog() []Rule {
	return []Rule{
		{Name: "price-range", Check: PriceRange},
		{Name: "down-payment", Check: DownPayment},
		{Name: "interest-rate", Check: InterestRate},
		{Name: "term", Check: Term},
		{Name: "monthly-payment", Check: MonthlyPayment},
		{Name: "amortization-consistency", Check: AmortizationConsistency},
		{Name: "payment-to-income", Check: PaymentToIncome},
		{Name: "outliers", Check: Outliers},
	}
}

// Evaluate runs every rule in the catalog and concatenates the issues.
func Evaluate(data listing.FinancialData, th Thresholds) []listing.Issue {
	var issues []listing.Issue
	for _, rule := range Catalog() {
		issues = append(issues, rule.Check(data, th)...)
	}
	return issues
}
