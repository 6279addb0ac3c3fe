// Package config defines the data structures related to configuration and
// includes functions for loading and sanity-checking the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ownerfi/listing-validate/internal/rules"
	"github.com/ownerfi/listing-validate/pkg/constants"
)

// Configuration holds all configuration for listing-validate.
type Configuration struct {
	Logging LoggingConfig    `yaml:"logging,omitempty"`
	Output  OutputConfig     `yaml:"output,omitempty"`
	Rules   rules.Thresholds `yaml:"rules,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Every rule threshold defaults to the standard bound,
// so an empty or missing rules section yields standard validation behavior.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()
	setThresholdDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// DefaultConfiguration returns a configuration carrying the standard
// thresholds, for callers running without a config file.
func DefaultConfiguration() *Configuration {
	return &Configuration{Rules: rules.DefaultThresholds()}
}

func setThresholdDefaults(v *viper.Viper) {
	defaults := rules.DefaultThresholds()
	v.SetDefault("rules.minPrice", defaults.MinPrice)
	v.SetDefault("rules.maxPrice", defaults.MaxPrice)
	v.SetDefault("rules.downPaymentPercentLow", defaults.DownPaymentPercentLow)
	v.SetDefault("rules.downPaymentPercentHigh", defaults.DownPaymentPercentHigh)
	v.SetDefault("rules.downPaymentMatchTolerance", defaults.DownPaymentMatchTolerance)
	v.SetDefault("rules.maxInterestRate", defaults.MaxInterestRate)
	v.SetDefault("rules.usuryInterestRate", defaults.UsuryInterestRate)
	v.SetDefault("rules.interestRateLow", defaults.InterestRateLow)
	v.SetDefault("rules.interestRateHigh", defaults.InterestRateHigh)
	v.SetDefault("rules.maxTermYears", defaults.MaxTermYears)
	v.SetDefault("rules.termYearsShort", defaults.TermYearsShort)
	v.SetDefault("rules.termYearsLong", defaults.TermYearsLong)
	v.SetDefault("rules.smallPropertyPrice", defaults.SmallPropertyPrice)
	v.SetDefault("rules.smallPropertyTermYears", defaults.SmallPropertyTermYears)
	v.SetDefault("rules.paymentToLoanHigh", defaults.PaymentToLoanHigh)
	v.SetDefault("rules.paymentToLoanLow", defaults.PaymentToLoanLow)
	v.SetDefault("rules.escrowTolerancePercent", defaults.EscrowTolerancePercent)
	v.SetDefault("rules.escrowWarningPercent", defaults.EscrowWarningPercent)
	v.SetDefault("rules.escrowInfoPercent", defaults.EscrowInfoPercent)
	v.SetDefault("rules.annualPaymentToPriceOutlier", defaults.AnnualPaymentToPriceOutlier)
	v.SetDefault("rules.cashPurchaseDownRatio", defaults.CashPurchaseDownRatio)
	v.SetDefault("rules.incomePriceDivisor", defaults.IncomePriceDivisor)
	v.SetDefault("rules.affordablePaymentShare", defaults.AffordablePaymentShare)
}

// ValidateConfiguration checks threshold coherence and returns
// human-readable warnings. Incoherent thresholds do not stop a run; they are
// surfaced so an operator can fix the config.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	th := conf.Rules

	if th.MinPrice <= 0 || th.MaxPrice <= th.MinPrice {
		warnings = append(warnings, fmt.Sprintf("price bounds are incoherent (min %.0f, max %.0f)", th.MinPrice, th.MaxPrice))
	}
	if th.DownPaymentPercentHigh <= th.DownPaymentPercentLow {
		warnings = append(warnings, fmt.Sprintf("down payment percent bands are incoherent (low %.1f, high %.1f)",
			th.DownPaymentPercentLow, th.DownPaymentPercentHigh))
	}
	if th.UsuryInterestRate > th.MaxInterestRate {
		warnings = append(warnings, fmt.Sprintf("usury rate %.1f exceeds the maximum valid rate %.1f",
			th.UsuryInterestRate, th.MaxInterestRate))
	}
	if th.InterestRateHigh <= th.InterestRateLow {
		warnings = append(warnings, fmt.Sprintf("interest rate bands are incoherent (low %.1f, high %.1f)",
			th.InterestRateLow, th.InterestRateHigh))
	}
	if th.TermYearsLong > th.MaxTermYears {
		warnings = append(warnings, fmt.Sprintf("long-term band %.0f exceeds the maximum valid term %.0f",
			th.TermYearsLong, th.MaxTermYears))
	}
	if th.PaymentToLoanLow >= th.PaymentToLoanHigh {
		warnings = append(warnings, fmt.Sprintf("payment-to-loan bands are incoherent (low %.3f, high %.3f)",
			th.PaymentToLoanLow, th.PaymentToLoanHigh))
	}
	if th.EscrowInfoPercent >= th.EscrowWarningPercent || th.EscrowWarningPercent >= th.EscrowTolerancePercent {
		warnings = append(warnings, fmt.Sprintf("escrow deviation bands must increase (info %.0f, warning %.0f, tolerance %.0f)",
			th.EscrowInfoPercent, th.EscrowWarningPercent, th.EscrowTolerancePercent))
	}

	return warnings
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(formatName string) error {
	switch formatName {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, formatName)
}
