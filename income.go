package main

// Income adjustment multipliers per declared income category. Banks size a
// credit on a discounted income for variable and independent earners; when a
// buyer declares several categories the most conservative multiplier applies
// to the whole income. This is a discrete priority rule (independent beats
// variable beats fixed), not a weighted average: blending the multipliers
// would silently change the user-facing capacity figures.
const (
	IndependentMultiplier    = 0.70
	VariableSalaryMultiplier = 0.80
	FixedSalaryMultiplier    = 1.00
)

// AdjustIncome maps a gross monthly income and the declared income categories
// to the conservative adjusted income used for capacity sizing. Returns 0
// when no category is declared or the income is non-positive.
func AdjustIncome(grossCLP float64, profile IncomeProfile) float64 {
	if grossCLP <= 0 || !profile.HasAny() {
		return 0
	}

	switch {
	case profile.Independent:
		return grossCLP * IndependentMultiplier
	case profile.VariableSalary:
		return grossCLP * VariableSalaryMultiplier
	default:
		return grossCLP * FixedSalaryMultiplier
	}
}
