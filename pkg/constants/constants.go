// Package constants provides shared constants for the listing-validate application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Default validation thresholds. These seed the rules configuration; the
// config file may override any of them.
const (
	// MinPlausiblePrice is the lowest list price not treated as a data entry
	// error (missing zeros)
	MinPlausiblePrice = 10000.0

	// MaxPlausiblePrice is the highest list price before a listing is flagged
	// as unusual for owner financing
	MaxPlausiblePrice = 10000000.0

	// DownPaymentPercentLow flags unusually small down payments
	DownPaymentPercentLow = 5.0

	// DownPaymentPercentHigh flags unusually large down payments
	DownPaymentPercentHigh = 75.0

	// DownPaymentMatchTolerance is the allowed gap, in percentage points,
	// between the stated down payment percent and the percent recomputed
	// from the stated amount
	DownPaymentMatchTolerance = 1.0

	// MaxInterestRate bounds the legal interest rate range
	MaxInterestRate = 50.0

	// UsuryInterestRate marks rates treated as extreme outliers
	UsuryInterestRate = 20.0

	// InterestRateLow and InterestRateHigh bound the typical owner-financing
	// rate band
	InterestRateLow  = 3.0
	InterestRateHigh = 15.0

	// MaxTermYears bounds the legal amortization term
	MaxTermYears = 50.0

	// TermYearsShort and TermYearsLong bound the typical term band
	TermYearsShort = 10.0
	TermYearsLong  = 40.0

	// SmallPropertyPrice and SmallPropertyTermYears drive the advisory for
	// long terms on inexpensive properties
	SmallPropertyPrice     = 150000.0
	SmallPropertyTermYears = 20.0

	// PaymentToLoanHigh and PaymentToLoanLow bound the plausible monthly
	// payment as a fraction of the financed amount
	PaymentToLoanHigh = 0.02
	PaymentToLoanLow  = 0.003

	// EscrowTolerancePercent is the stated-vs-computed payment deviation
	// above which the record is rejected rather than attributed to escrow
	EscrowTolerancePercent = 50.0

	// EscrowWarningPercent and EscrowInfoPercent are the lower deviation
	// bands (significant and minor)
	EscrowWarningPercent = 30.0
	EscrowInfoPercent    = 10.0

	// AnnualPaymentToPriceOutlier is the annualized-payment-to-price ratio
	// indicating swapped monthly/annual payment fields
	AnnualPaymentToPriceOutlier = 0.15

	// CashPurchaseDownRatio is the down-payment-to-price ratio suggesting
	// the buyer would rather pay cash
	CashPurchaseDownRatio = 0.9

	// IncomePriceDivisor and AffordablePaymentShare drive the rough
	// affordability estimate (home price 3-5x annual income, 40% of monthly
	// income on the payment)
	IncomePriceDivisor     = 4.0
	AffordablePaymentShare = 0.4
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// validation payloads (1 MB)
	DefaultMaxBodySizeBytes int64 = 1024 * 1024
)
