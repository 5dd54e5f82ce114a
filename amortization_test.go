package main

import (
	"math"
	"testing"
)

// Amortization Validation Tests
//
// These tests validate the annuity calculations against standard mortgage
// formulas:
//
//   Payment:   M = P × r / (1 - (1+r)^-n)
//   Principal: P = M × (1 - (1+r)^-n) / r
//   Balance:   B = P × [(1+r)^n - (1+r)^k] / [(1+r)^n - 1]
//
// with r = nominal annual rate / 12 and n = termYears × 12.

const paymentTolerance = 1.0 // one peso/pound of rounding slack

func assertPaymentEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > paymentTolerance {
		t.Errorf("%s: expected %.2f, got %.2f (diff: %.2f)",
			description, expected, actual, actual-expected)
	}
}

func TestMonthlyPayment_ReferenceValues(t *testing.T) {
	tests := []struct {
		principal       float64
		annualRate      float64
		termYears       int
		expectedMonthly float64
		description     string
	}{
		{
			principal:       200000,
			annualRate:      0.04,
			termYears:       25,
			expectedMonthly: 1055.67,
			description:     "200k @ 4% for 25 years",
			// M = 200000 × [0.00333 × 2.7138] / [2.7138 - 1] = 1055.67
		},
		{
			principal:       300000,
			annualRate:      0.05,
			termYears:       30,
			expectedMonthly: 1610.46,
			description:     "300k @ 5% for 30 years",
		},
		{
			principal:       150000,
			annualRate:      0.035,
			termYears:       20,
			expectedMonthly: 869.94,
			description:     "150k @ 3.5% for 20 years",
		},
		{
			principal:       80_000_000,
			annualRate:      0.045,
			termYears:       30,
			expectedMonthly: 405348.66,
			description:     "CLP 80M @ 4.5% for 30 years",
		},
	}

	for _, tt := range tests {
		actual := MonthlyPayment(tt.principal, tt.annualRate, tt.termYears)
		assertPaymentEquals(t, tt.expectedMonthly, actual, tt.description)
	}
}

func TestMonthlyPayment_ZeroRateIsLinear(t *testing.T) {
	// With a zero rate the annuity degenerates to principal / months
	payment := MonthlyPayment(1_200_000, 0, 10)
	if payment != 10_000 {
		t.Errorf("zero-rate payment: expected 10000, got %.4f", payment)
	}
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	tests := []struct {
		principal   float64
		annualRate  float64
		termYears   int
		description string
	}{
		{0, 0.045, 30, "zero principal"},
		{-50000, 0.045, 30, "negative principal"},
		{100000, -0.01, 30, "negative rate"},
		{100000, 0.045, 0, "zero term"},
		{100000, 0.045, -5, "negative term"},
	}

	for _, tt := range tests {
		if got := MonthlyPayment(tt.principal, tt.annualRate, tt.termYears); got != 0 {
			t.Errorf("%s: expected 0, got %.4f", tt.description, got)
		}
	}
}

func TestPrincipalFromPayment_InvertsMonthlyPayment(t *testing.T) {
	// Property: sizing a loan from a payment and re-deriving the payment
	// must round-trip to the original principal.
	principals := []float64{10_000_000, 64_000_000, 80_000_000, 120_000_000}
	rates := []float64{0.03, 0.045, 0.06}
	terms := []int{15, 20, 25, 30}

	for _, principal := range principals {
		for _, rate := range rates {
			for _, term := range terms {
				payment := MonthlyPayment(principal, rate, term)
				back := PrincipalFromPayment(payment, rate, term)

				relErr := math.Abs(back-principal) / principal
				if relErr > 1e-6 {
					t.Errorf("round trip %.0f @ %.3f / %dy: got %.2f back (rel err %.2e)",
						principal, rate, term, back, relErr)
				}
			}
		}
	}
}

func TestPrincipalFromPayment_ZeroRate(t *testing.T) {
	if got := PrincipalFromPayment(10_000, 0, 10); got != 1_200_000 {
		t.Errorf("zero-rate principal: expected 1200000, got %.2f", got)
	}
}

func TestPrincipalFromPayment_DegenerateInputs(t *testing.T) {
	if got := PrincipalFromPayment(0, 0.045, 30); got != 0 {
		t.Errorf("zero payment: expected 0, got %.4f", got)
	}
	if got := PrincipalFromPayment(-100, 0.045, 30); got != 0 {
		t.Errorf("negative payment: expected 0, got %.4f", got)
	}
	if got := PrincipalFromPayment(100000, 0.045, 0); got != 0 {
		t.Errorf("zero term: expected 0, got %.4f", got)
	}
}

func TestRemainingBalance_Endpoints(t *testing.T) {
	principal := 64_000_000.0

	if got := RemainingBalance(principal, 0.045, 30, 0); got != principal {
		t.Errorf("balance before first payment: expected %.0f, got %.2f", principal, got)
	}
	if got := RemainingBalance(principal, 0.045, 30, 360); got != 0 {
		t.Errorf("balance after last payment: expected 0, got %.2f", got)
	}
	if got := RemainingBalance(principal, 0.045, 30, 400); got != 0 {
		t.Errorf("balance past the term: expected 0, got %.2f", got)
	}
}

func TestRemainingBalance_MonotonicallyDecreases(t *testing.T) {
	principal := 64_000_000.0
	previous := principal + 1

	for months := 0; months <= 360; months += 12 {
		balance := RemainingBalance(principal, 0.045, 30, months)
		if balance >= previous {
			t.Errorf("balance did not decrease at month %d: %.2f >= %.2f", months, balance, previous)
		}
		previous = balance
	}
}

func TestRemainingBalance_ZeroRateIsLinear(t *testing.T) {
	if got := RemainingBalance(120_000, 0, 10, 60); got != 60_000 {
		t.Errorf("zero-rate balance at midpoint: expected 60000, got %.2f", got)
	}
}
