package main

import (
	"math"
	"strings"
	"testing"
)

// Mortgage capacity tests: payment sizing, scenario derivation, and the
// reverse-search verdict boundaries.

const capacityTolerance = 1000.0 // CLP slack on loan-sized amounts

func assertCapacityEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > capacityTolerance {
		t.Errorf("%s: expected %.0f, got %.2f (diff: %.2f)",
			description, expected, actual, actual-expected)
	}
}

func TestMaxPayment(t *testing.T) {
	if got := MaxPayment(1_000_000, 0.25); got != 250_000 {
		t.Errorf("expected 250000, got %.2f", got)
	}
	if got := MaxPayment(0, 0.25); got != 0 {
		t.Errorf("zero income: expected 0, got %.2f", got)
	}
	if got := MaxPayment(1_000_000, 0); got != 0 {
		t.Errorf("zero load fraction: expected 0, got %.2f", got)
	}
}

func TestPropertyValueFromLoan(t *testing.T) {
	tests := []struct {
		loan        float64
		fraction    float64
		expected    float64
		description string
	}{
		{80_000_000, 0.80, 100_000_000, "80% financing"},
		{90_000_000, 0.90, 100_000_000, "90% financing"},
		{50_000_000, 1.00, 50_000_000, "full financing"},
		{50_000_000, 0, 0, "zero fraction"},
		{50_000_000, 1.10, 0, "fraction above 1"},
		{0, 0.80, 0, "zero loan"},
	}

	for _, tt := range tests {
		if got := PropertyValueFromLoan(tt.loan, tt.fraction); math.Abs(got-tt.expected) > 0.01 {
			t.Errorf("%s: expected %.0f, got %.2f", tt.description, tt.expected, got)
		}
	}
}

func TestDownPayment(t *testing.T) {
	if got := DownPayment(100_000_000, 0.80); math.Abs(got-20_000_000) > 0.01 {
		t.Errorf("expected 20000000, got %.2f", got)
	}
	// Full financing means no down payment scenario
	if got := DownPayment(100_000_000, 1.0); got != 0 {
		t.Errorf("full financing: expected 0, got %.2f", got)
	}
}

// =============================================================================
// Reverse-search verdict boundaries
// =============================================================================

func TestEvaluateTarget_Boundaries(t *testing.T) {
	tests := []struct {
		target      float64
		max         float64
		expected    Verdict
		description string
	}{
		{900, 1000, Viable, "below capacity"},
		{1000, 1000, Viable, "equality counts as viable"},
		{1050, 1000, Marginal, "5% over is marginal"},
		{1100, 1000, Marginal, "exactly 10% over is still marginal"},
		{1100.01, 1000, NotViable, "just past the marginal band"},
		{1500, 1000, NotViable, "far past capacity"},
	}

	for _, tt := range tests {
		if got := EvaluateTarget(tt.target, tt.max); got != tt.expected {
			t.Errorf("%s (target %.2f, max %.2f): expected %v, got %v",
				tt.description, tt.target, tt.max, tt.expected, got)
		}
	}
}

func TestVerdictString(t *testing.T) {
	tests := []struct {
		verdict  Verdict
		expected string
	}{
		{Viable, "viable"},
		{Marginal, "marginal"},
		{NotViable, "not_viable"},
	}
	for _, tt := range tests {
		if got := tt.verdict.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

// =============================================================================
// Full capacity calculation
// =============================================================================

func testCapacityParams() CapacityParams {
	return CapacityParams{
		GrossIncomeCLP:     1_500_000,
		Profile:            IncomeProfile{FixedSalary: true},
		LoadFraction:       0.25,
		AnnualRate:         0.045,
		TermYears:          30,
		UFValue:            40_000,
		FinancingFractions: []float64{0.80, 0.85, 0.90},
	}
}

func TestComputeCapacity(t *testing.T) {
	result := ComputeCapacity(testCapacityParams())

	if result.AdjustedIncomeCLP != 1_500_000 {
		t.Errorf("adjusted income: expected 1500000, got %.2f", result.AdjustedIncomeCLP)
	}
	if result.MaxPaymentCLP != 375_000 {
		t.Errorf("max payment: expected 375000, got %.2f", result.MaxPaymentCLP)
	}
	// 375000 × (1 - 1.00375^-360) / 0.00375 ≈ 74.01M
	assertCapacityEquals(t, 74_010_438, result.MaxLoanCLP, "max loan")
	if math.Abs(result.MaxLoanUF-result.MaxLoanCLP/40_000) > 0.01 {
		t.Errorf("max loan UF inconsistent with CLP: %.2f vs %.2f", result.MaxLoanUF, result.MaxLoanCLP/40_000)
	}

	if len(result.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(result.Scenarios))
	}
	for i, fraction := range []float64{0.80, 0.85, 0.90} {
		s := result.Scenarios[i]
		if s.FinancingFraction != fraction {
			t.Errorf("scenario %d: expected fraction %.2f, got %.2f", i, fraction, s.FinancingFraction)
		}
		wantValue := result.MaxLoanCLP / fraction
		if math.Abs(s.MaxPropertyValueCLP-wantValue) > 1 {
			t.Errorf("scenario %.0f%%: max value expected %.0f, got %.2f", fraction*100, wantValue, s.MaxPropertyValueCLP)
		}
		wantDown := wantValue * (1 - fraction)
		if math.Abs(s.DownPaymentCLP-wantDown) > 1 {
			t.Errorf("scenario %.0f%%: down payment expected %.0f, got %.2f", fraction*100, wantDown, s.DownPaymentCLP)
		}
		if s.TargetVerdict != Viable || s.TargetMessage != "" {
			t.Errorf("scenario %.0f%%: no target supplied, reverse-search fields must stay zero", fraction*100)
		}
	}

	// Higher financing fraction always means a lower affordable value
	if result.Scenarios[0].MaxPropertyValueCLP <= result.Scenarios[2].MaxPropertyValueCLP {
		t.Error("80% financing should afford a higher property value than 90%")
	}
}

func TestComputeCapacity_ReverseSearch(t *testing.T) {
	params := testCapacityParams()
	params.TargetValueUF = 2000 // CLP 80M target, affordable at every fraction

	result := ComputeCapacity(params)

	for _, s := range result.Scenarios {
		if s.TargetVerdict != Viable {
			t.Errorf("scenario %.0f%%: expected viable, got %v", s.FinancingFraction*100, s.TargetVerdict)
		}
		if s.TargetMessage == "" {
			t.Errorf("scenario %.0f%%: expected a target message", s.FinancingFraction*100)
		}
		// The target dividend amortizes value × fraction
		want := MonthlyPayment(80_000_000*s.FinancingFraction, params.AnnualRate, params.TermYears)
		if math.Abs(s.TargetDividendCLP-want) > 0.01 {
			t.Errorf("scenario %.0f%%: target dividend expected %.2f, got %.2f",
				s.FinancingFraction*100, want, s.TargetDividendCLP)
		}
	}
}

func TestComputeCapacity_ReverseSearchVerdictsDiffer(t *testing.T) {
	// A 2400 UF (CLP 96M) target against a ~74M max loan: at 80% financing
	// the affordable value is ~92.5M, so 96M sits inside the 10% marginal
	// band; at 85% (~87.1M) and 90% (~82.2M) it is past the band.
	params := testCapacityParams()
	params.TargetValueUF = 2400

	result := ComputeCapacity(params)
	expected := []Verdict{Marginal, NotViable, NotViable}
	for i, s := range result.Scenarios {
		if s.TargetVerdict != expected[i] {
			t.Errorf("scenario %.0f%%: expected %v, got %v", s.FinancingFraction*100, expected[i], s.TargetVerdict)
		}
	}
	if !strings.Contains(result.Scenarios[2].TargetMessage, "supera tu capacidad") {
		t.Errorf("not-viable scenario: unexpected message %q", result.Scenarios[2].TargetMessage)
	}
}

func TestComputeCapacity_DividendOverride(t *testing.T) {
	params := testCapacityParams()
	params.DividendOverrideCLP = 500_000

	result := ComputeCapacity(params)
	if result.MaxPaymentCLP != 500_000 {
		t.Errorf("override: expected max payment 500000, got %.2f", result.MaxPaymentCLP)
	}
	assertCapacityEquals(t, 500_000*197.36117, result.MaxLoanCLP, "max loan from override")
}

func TestComputeCapacity_NoProfileDegradesToZero(t *testing.T) {
	params := testCapacityParams()
	params.Profile = IncomeProfile{}

	result := ComputeCapacity(params)
	if result.AdjustedIncomeCLP != 0 || result.MaxPaymentCLP != 0 || result.MaxLoanCLP != 0 {
		t.Errorf("expected all-zero capacity, got %+v", result)
	}
	for _, s := range result.Scenarios {
		if s.MaxPropertyValueCLP != 0 || s.DownPaymentCLP != 0 {
			t.Errorf("scenario %.0f%%: expected zero values, got %+v", s.FinancingFraction*100, s)
		}
	}
}
