package main

import "fmt"

// Verdict thresholds for evaluating a target property against capacity.
// Kept as named constants so boundary values can be probed precisely.
const (
	// MarginalOverageFraction: a target exceeding capacity by at most this
	// fraction of the affordable value is marginal rather than not viable.
	MarginalOverageFraction = 0.10
	// ComfortMarginFraction: a viable target with at least this margin below
	// capacity gets the "comfortable" message instead of "tight".
	ComfortMarginFraction = 0.20
)

// MaxPayment returns the maximum monthly dividend a buyer can commit given an
// adjusted income and a debt-load fraction (typically 0.25).
func MaxPayment(adjustedIncomeCLP, loadFraction float64) float64 {
	if adjustedIncomeCLP <= 0 || loadFraction <= 0 {
		return 0
	}
	return adjustedIncomeCLP * loadFraction
}

// MaxLoan returns the largest credit the given monthly payment can amortize.
func MaxLoan(paymentCLP, annualRate float64, termYears int) float64 {
	return PrincipalFromPayment(paymentCLP, annualRate, termYears)
}

// PropertyValueFromLoan returns the property value a loan covers at the given
// financing fraction. The fraction must be in (0, 1]; anything else yields 0.
func PropertyValueFromLoan(loanAmount, financingFraction float64) float64 {
	if loanAmount <= 0 || financingFraction <= 0 || financingFraction > 1 {
		return 0
	}
	return loanAmount / financingFraction
}

// DownPayment returns the down payment required for a property value at the
// given financing fraction. A fraction at or above 1 means no down payment
// scenario, which is not modeled, so 0.
func DownPayment(propertyValue, financingFraction float64) float64 {
	if propertyValue <= 0 || financingFraction <= 0 || financingFraction >= 1 {
		return 0
	}
	return propertyValue * (1 - financingFraction)
}

// EvaluateTarget compares a target property value against the maximum
// affordable value. Equality counts as viable; an overage of at most
// MarginalOverageFraction of the affordable value is marginal.
func EvaluateTarget(targetValue, maxPropertyValue float64) Verdict {
	if targetValue <= maxPropertyValue {
		return Viable
	}
	if targetValue <= maxPropertyValue*(1+MarginalOverageFraction) {
		return Marginal
	}
	return NotViable
}

// targetMessage renders the user-facing text for a reverse-search scenario.
// The comfortable/tight split affects the message only, never the verdict.
func targetMessage(verdict Verdict, targetValue, maxValue float64) string {
	switch verdict {
	case Viable:
		if maxValue > 0 && (maxValue-targetValue) > maxValue*ComfortMarginFraction {
			return fmt.Sprintf("Puedes acceder cómodamente, con un margen de %s.", FormatCLP(maxValue-targetValue))
		}
		return "Puedes acceder, pero estás cerca del límite."
	case Marginal:
		return "Este proyecto está cerca de tu capacidad. Considera negociar condiciones o aumentar tu pie."
	default:
		return "Este proyecto supera tu capacidad actual. Busca opciones más accesibles o reduce tus deudas."
	}
}

// ComputeCapacity runs the full mortgage capacity calculation: adjusted
// income, maximum dividend at the debt-load fraction, maximum credit, and per
// financing scenario the maximum property value and required down payment.
// When a target project value is supplied each scenario also carries the
// reverse-search verdict.
//
// Like the rest of the engine it degrades to zero on incomplete input rather
// than failing: an all-zero result means "not enough data yet".
func ComputeCapacity(params CapacityParams) CapacityResult {
	adjusted := AdjustIncome(params.GrossIncomeCLP+params.CoIncomeCLP, params.Profile)

	maxPayment := MaxPayment(adjusted, params.LoadFraction)
	if params.DividendOverrideCLP > 0 {
		maxPayment = params.DividendOverrideCLP
	}

	maxLoan := MaxLoan(maxPayment, params.AnnualRate, params.TermYears)

	result := CapacityResult{
		AdjustedIncomeCLP: adjusted,
		MaxPaymentCLP:     maxPayment,
		MaxLoanCLP:        maxLoan,
		MaxLoanUF:         CLPToUF(maxLoan, params.UFValue),
	}

	targetCLP := UFToCLP(params.TargetValueUF, params.UFValue)

	for _, fraction := range params.FinancingFractions {
		maxValue := PropertyValueFromLoan(maxLoan, fraction)

		scenario := CapacityScenario{
			FinancingFraction:   fraction,
			MaxPropertyValueCLP: maxValue,
			MaxPropertyValueUF:  CLPToUF(maxValue, params.UFValue),
			DownPaymentCLP:      DownPayment(maxValue, fraction),
			DownPaymentUF:       CLPToUF(DownPayment(maxValue, fraction), params.UFValue),
		}

		if targetCLP > 0 {
			// Reverse search: what dividend would the target demand at this
			// financing fraction, and does the target fit the capacity?
			targetLoan := targetCLP * fraction
			scenario.TargetDividendCLP = MonthlyPayment(targetLoan, params.AnnualRate, params.TermYears)
			scenario.TargetVerdict = EvaluateTarget(targetCLP, maxValue)
			scenario.TargetMessage = targetMessage(scenario.TargetVerdict, targetCLP, maxValue)
		}

		result.Scenarios = append(result.Scenarios, scenario)
	}

	return result
}
