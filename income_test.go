package main

import "testing"

// Income adjustment tests. The multiplier is a discrete priority rule:
// independent beats variable beats fixed, applied to the whole income.

func TestAdjustIncome_SingleCategory(t *testing.T) {
	tests := []struct {
		profile     IncomeProfile
		expected    float64
		description string
	}{
		{IncomeProfile{FixedSalary: true}, 1_000_000, "fixed salary keeps 100%"},
		{IncomeProfile{VariableSalary: true}, 800_000, "variable salary keeps 80%"},
		{IncomeProfile{Independent: true}, 700_000, "independent keeps 70%"},
	}

	for _, tt := range tests {
		if got := AdjustIncome(1_000_000, tt.profile); got != tt.expected {
			t.Errorf("%s: expected %.0f, got %.2f", tt.description, tt.expected, got)
		}
	}
}

func TestAdjustIncome_MostConservativeWins(t *testing.T) {
	tests := []struct {
		profile     IncomeProfile
		expected    float64
		description string
	}{
		{IncomeProfile{Independent: true, FixedSalary: true}, 700_000, "independent beats fixed"},
		{IncomeProfile{Independent: true, VariableSalary: true}, 700_000, "independent beats variable"},
		{IncomeProfile{VariableSalary: true, FixedSalary: true}, 800_000, "variable beats fixed"},
		{IncomeProfile{Independent: true, VariableSalary: true, FixedSalary: true}, 700_000, "independent beats everything"},
	}

	for _, tt := range tests {
		if got := AdjustIncome(1_000_000, tt.profile); got != tt.expected {
			t.Errorf("%s: expected %.0f, got %.2f", tt.description, tt.expected, got)
		}
	}
}

func TestAdjustIncome_DegenerateInputs(t *testing.T) {
	if got := AdjustIncome(1_000_000, IncomeProfile{}); got != 0 {
		t.Errorf("no declared category: expected 0, got %.2f", got)
	}
	if got := AdjustIncome(0, IncomeProfile{FixedSalary: true}); got != 0 {
		t.Errorf("zero income: expected 0, got %.2f", got)
	}
	if got := AdjustIncome(-500_000, IncomeProfile{FixedSalary: true}); got != 0 {
		t.Errorf("negative income: expected 0, got %.2f", got)
	}
}
