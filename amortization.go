package main

import "math"

// Amortization primitives shared by the capacity and investment calculators.
//
// Standard annuity formulas with a fixed monthly payment:
//
//   Payment:   M = P × r / (1 - (1+r)^-n)
//   Principal: P = M × (1 - (1+r)^-n) / r
//   Balance:   B = P × [(1+r)^n - (1+r)^k] / [(1+r)^n - 1]
//
// where r is the monthly rate and n the number of monthly payments. The
// monthly rate is always the nominal annual rate divided by 12; the
// compounded-effective conversion is deliberately not used anywhere.
//
// Degenerate inputs never raise: every function returns 0 when a required
// quantity is non-positive. Callers treat all-zero output as "insufficient
// data", not as a priced result. No rounding happens here; formatting is a
// presentation concern.

// MonthlyPayment returns the fixed monthly payment (dividend) that amortizes
// principal at the given nominal annual rate over termYears.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || annualRate < 0 || termYears <= 0 {
		return 0
	}

	months := float64(termYears * 12)
	monthlyRate := annualRate / 12

	if monthlyRate == 0 {
		return principal / months
	}

	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -months))
}

// PrincipalFromPayment returns the principal a fixed monthly payment can
// amortize at the given nominal annual rate over termYears. This is the
// inverse of MonthlyPayment and is used to size a loan from an affordable
// dividend.
func PrincipalFromPayment(payment, annualRate float64, termYears int) float64 {
	if payment <= 0 || annualRate < 0 || termYears <= 0 {
		return 0
	}

	months := float64(termYears * 12)
	monthlyRate := annualRate / 12

	if monthlyRate == 0 {
		return payment * months
	}

	denominator := monthlyRate / (1 - math.Pow(1+monthlyRate, -months))
	if denominator <= 0 {
		return 0
	}

	return payment / denominator
}

// RemainingBalance returns the outstanding principal after monthsPaid
// payments on an amortizing loan. Used by the reports to show credit
// progress over the analysis horizon.
func RemainingBalance(principal, annualRate float64, termYears, monthsPaid int) float64 {
	if principal <= 0 || annualRate < 0 || termYears <= 0 {
		return 0
	}
	if monthsPaid <= 0 {
		return principal
	}

	totalMonths := termYears * 12
	if monthsPaid >= totalMonths {
		return 0
	}

	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return principal * (1 - float64(monthsPaid)/float64(totalMonths))
	}

	factorN := math.Pow(1+monthlyRate, float64(totalMonths))
	factorK := math.Pow(1+monthlyRate, float64(monthsPaid))

	return principal * (factorN - factorK) / (factorN - 1)
}
