// Package amortize implements the fixed-rate amortization identity and its
// directed inverses for seller-financed loans.
package amortize

import (
	"math"

	"github.com/ownerfi/listing-validate/pkg/constants"
	"github.com/ownerfi/listing-validate/pkg/mathutil"
)

// MonthlyPayment calculates the monthly payment for a loan using the standard
// amortization formula. Returns 0 for a non-positive loan amount or term; the
// validation rules reject those upstream.
func MonthlyPayment(loanAmount, annualRatePercent, termYears float64) float64 {
	if loanAmount <= 0 || termYears <= 0 || annualRatePercent < 0 {
		return 0
	}

	termMonths := termYears * constants.MonthsPerYear
	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if periodicRate == 0 {
		// For zero interest, simply divide the principal by term
		return loanAmount / termMonths
	}

	power := math.Pow(1.00+periodicRate, termMonths)
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicRate / discountFactor
}

// MonthlyInterest calculates the interest portion of a single payment on the
// given balance.
func MonthlyInterest(loanAmount, annualRatePercent float64) float64 {
	return loanAmount * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// DownPaymentFromPercent converts a down payment percent into a whole-dollar
// amount against the list price.
func DownPaymentFromPercent(price, percent float64) float64 {
	return math.Round(mathutil.ApplyPercentage(price, percent))
}

// PercentFromDownPayment converts a down payment amount into a percent of the
// list price. Returns 0 when the price is 0.
func PercentFromDownPayment(price, amount float64) float64 {
	return mathutil.CalculatePercentage(amount, price)
}

// LoanAmount solves the amortization formula for principal given the monthly
// payment, rate, and term. Returns 0 outside the documented domain.
func LoanAmount(payment, annualRatePercent, termYears float64) float64 {
	if payment <= 0 || annualRatePercent < 0 || termYears <= 0 {
		return 0
	}

	termMonths := termYears * constants.MonthsPerYear
	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if periodicRate == 0 {
		return mathutil.Round(payment * termMonths)
	}

	power := math.Pow(1.00+periodicRate, termMonths)
	return mathutil.Round(payment * (power - 1.00) / (periodicRate * power))
}

// TermYears solves the amortization formula for the term given the monthly
// payment, principal, and rate, rounded to one decimal place. When the
// payment does not cover the monthly interest the loan never amortizes, so
// the maximum plausible term is returned and the consistency rules flag the
// record downstream.
func TermYears(payment, loanAmount, annualRatePercent float64) float64 {
	if payment <= 0 || loanAmount <= 0 || annualRatePercent < 0 {
		return 0
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if periodicRate == 0 {
		months := loanAmount / payment
		return mathutil.RoundTo(months/constants.MonthsPerYear, 1)
	}

	if payment <= loanAmount*periodicRate {
		return constants.MaxTermYears
	}

	// n = log(M / (M - P*r)) / log(1 + r)
	termMonths := math.Log(payment/(payment-loanAmount*periodicRate)) / math.Log(1.00+periodicRate)
	return mathutil.RoundTo(termMonths/constants.MonthsPerYear, 1)
}
