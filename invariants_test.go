package main

import (
	"math"
	"testing"
)

// Mathematical Invariants Test Suite
//
// Property-based checks that must hold for any input: the engine degrades to
// zero on degenerate values and never produces NaN or Inf anywhere.

func assertFinite(t *testing.T, value float64, description string) {
	t.Helper()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		t.Errorf("%s: got non-finite value %v", description, value)
	}
}

func TestInvariant_PaymentScalesWithPrincipal(t *testing.T) {
	// Property: doubling the principal doubles the payment
	principals := []float64{1_000_000, 10_000_000, 64_000_000}

	for _, principal := range principals {
		single := MonthlyPayment(principal, 0.045, 30)
		double := MonthlyPayment(principal*2, 0.045, 30)

		if math.Abs(double-2*single) > 1e-6 {
			t.Errorf("payment not linear in principal at %.0f: %.6f vs 2×%.6f", principal, double, single)
		}
	}
}

func TestInvariant_PaymentGrowsWithRate(t *testing.T) {
	// Property: a higher rate never lowers the payment
	previous := 0.0
	for rate := 0.0; rate <= 0.10; rate += 0.005 {
		payment := MonthlyPayment(64_000_000, rate, 30)
		if payment < previous {
			t.Errorf("payment decreased when rate rose to %.3f: %.2f < %.2f", rate, payment, previous)
		}
		previous = payment
	}
}

func TestInvariant_PaymentShrinksWithTerm(t *testing.T) {
	// Property: a longer term never raises the payment
	previous := math.Inf(1)
	for _, term := range []int{5, 10, 15, 20, 25, 30, 40} {
		payment := MonthlyPayment(64_000_000, 0.045, term)
		if payment > previous {
			t.Errorf("payment increased when term rose to %d: %.2f > %.2f", term, payment, previous)
		}
		previous = payment
	}
}

func TestInvariant_UnitConversionRoundTrips(t *testing.T) {
	ufValues := []float64{35_000, 39_643, 40_000}
	amounts := []float64{0.5, 100, 2880, 1_000_000}

	for _, ufValue := range ufValues {
		for _, amount := range amounts {
			back := CLPToUF(UFToCLP(amount, ufValue), ufValue)
			if math.Abs(back-amount)/amount > 1e-12 {
				t.Errorf("UF round trip at %.0f: %.6f became %.6f", ufValue, amount, back)
			}
		}
	}
}

func TestInvariant_AdjustedIncomeNeverExceedsGross(t *testing.T) {
	profiles := []IncomeProfile{
		{FixedSalary: true},
		{VariableSalary: true},
		{Independent: true},
		{FixedSalary: true, VariableSalary: true, Independent: true},
	}

	for _, profile := range profiles {
		for _, income := range []float64{100_000, 1_000_000, 10_000_000} {
			adjusted := AdjustIncome(income, profile)
			if adjusted > income {
				t.Errorf("adjusted income %.2f exceeds gross %.0f for %+v", adjusted, income, profile)
			}
			if adjusted <= 0 {
				t.Errorf("adjusted income must stay positive for declared profiles, got %.2f", adjusted)
			}
		}
	}
}

func TestInvariant_EngineNeverProducesNaN(t *testing.T) {
	// Sweep deliberately hostile inputs through every calculator and check
	// all numeric outputs stay finite.
	assumptions := []Assumptions{
		testAssumptions(),
		{}, // all-zero assumptions
		{UFValue: 40_000, TermYears: 30, HorizonYears: 4},
		{UFValue: -1, AnnualRate: -0.05, TermYears: -3, HorizonYears: -2},
	}
	properties := []PropertyInput{
		{},
		{ValueUF: 2880, FinancingFraction: 0.9, MonthlyRentCLP: 420_000},
		{ValueUF: -500, FinancingFraction: 0.9},
		{ValueUF: 2880, FinancingFraction: 0, SubsidyApplies: true},
		{ValueUF: 2880, FinancingFraction: 1.0, TaxApplies: true},
	}

	for _, a := range assumptions {
		for _, p := range properties {
			r := ComputeProperty(a, p)

			assertFinite(t, r.DividendCLP, "dividend")
			assertFinite(t, r.CashFlowWithInstallmentCLP, "cash flow with installment")
			assertFinite(t, r.CashFlowWithoutInstallmentCLP, "cash flow without installment")
			assertFinite(t, r.InvestmentTotalCLP, "investment total")
			assertFinite(t, r.GrossYield, "gross yield")
			assertFinite(t, r.NetYieldOnValue, "net yield on value")
			assertFinite(t, r.NetYieldOnInvestment, "net yield on investment")
			assertFinite(t, r.FutureValueCLP, "future value")
			assertFinite(t, r.CapitalGainCLP, "capital gain")
			assertFinite(t, r.TotalGainCLP, "total gain")
			assertFinite(t, r.ROI, "ROI")
		}

		portfolio := AggregatePortfolio(a, properties)
		assertFinite(t, portfolio.TotalGainCLP, "portfolio total gain")
		assertFinite(t, portfolio.ROI, "portfolio ROI")
	}

	hostileParams := []CapacityParams{
		{},
		testCapacityParams(),
		{GrossIncomeCLP: -1_000_000, Profile: IncomeProfile{Independent: true}, LoadFraction: 0.25, AnnualRate: 0.045, TermYears: 30, UFValue: 40_000, FinancingFractions: []float64{0, 0.8, 1.5}},
		{GrossIncomeCLP: 1_000_000, Profile: IncomeProfile{FixedSalary: true}, LoadFraction: 0.25, UFValue: 0, FinancingFractions: []float64{0.8}, TargetValueUF: 2000},
	}
	for _, params := range hostileParams {
		result := ComputeCapacity(params)
		assertFinite(t, result.MaxLoanCLP, "max loan")
		assertFinite(t, result.MaxLoanUF, "max loan UF")
		for _, s := range result.Scenarios {
			assertFinite(t, s.MaxPropertyValueCLP, "scenario max value")
			assertFinite(t, s.DownPaymentCLP, "scenario down payment")
			assertFinite(t, s.TargetDividendCLP, "scenario target dividend")
		}
	}
}

func TestInvariant_SubsidyNeverWorsensInvestment(t *testing.T) {
	// Property: with identical inputs, the subsidized purchase never commits
	// more cash than the unsubsidized one.
	a := testAssumptions()
	p := PropertyInput{
		ValueUF:            2880,
		FinancingFraction:  0.9,
		MonthlyRentCLP:     420_000,
		ReservationCLP:     500_000,
		InitialDepositsCLP: 1_000_000,
	}

	without := ComputeProperty(a, p)
	p.SubsidyApplies = true
	with := ComputeProperty(a, p)

	if with.InvestmentTotalCLP > without.InvestmentTotalCLP {
		t.Errorf("subsidy increased the investment: %.2f > %.2f",
			with.InvestmentTotalCLP, without.InvestmentTotalCLP)
	}
	if with.TotalGainCLP < without.TotalGainCLP {
		t.Errorf("subsidy lowered the total gain: %.2f < %.2f",
			with.TotalGainCLP, without.TotalGainCLP)
	}
}
