package main

import "fmt"

// Recommendation thresholds. The UF bands come from the brokerage's current
// project catalog; the debt band matches the usual bank guideline.
const (
	// Capacity bands in UF of maximum credit
	CapacityBandLow  = 2500.0 // Below: suggest growing the down payment
	CapacityBandMid  = 2900.0 // 2500-2900: projects under development
	CapacityBandHigh = 3200.0 // 2900-3200: immediate-delivery range; above: premium

	// Debt load over gross income that triggers the debt-reduction suggestion
	DebtLoadWarningFraction = 0.30
	// Fraction of the existing debt the suggestion proposes to reduce
	DebtReductionFraction = 0.30
	// Minimum capacity improvement in UF worth mentioning
	DebtAdviceMinImprovementUF = 50.0
)

// RecommendationInput gathers the figures the guidance bands are derived
// from. Everything here is an output of the capacity calculation plus the raw
// inputs that produced it.
type RecommendationInput struct {
	Params   CapacityParams
	Capacity CapacityResult
}

// Recommendations derives the ordered guidance list shown next to the
// capacity results. Order matters: the UI assigns icons by list position, so
// messages are appended strictly in band order (capacity range, debt load,
// financing trade-off, target verdict, term trade-off, generic fallback).
func Recommendations(in RecommendationInput) []string {
	var recs []string

	maxLoanUF := in.Capacity.MaxLoanUF

	// Capacity range
	switch {
	case maxLoanUF <= 0:
		// No capacity figure yet; skip the band message
	case maxLoanUF < CapacityBandLow:
		recs = append(recs, "Considera aumentar tu pie para acceder a más opciones.")
	case maxLoanUF < CapacityBandMid:
		recs = append(recs, "Excelente capacidad para proyectos en desarrollo.")
	case maxLoanUF <= CapacityBandHigh:
		recs = append(recs, "Rango ideal para entrega inmediata en Santiago Centro, Macul y La Florida.")
	default:
		recs = append(recs, "Tienes una capacidad muy alta. Puedes considerar proyectos premium o aumentar tu pie para reducir el dividendo.")
	}

	// Debt load: estimate how much capacity a debt reduction would free up by
	// re-running the sizing with the improved income. Both sides of the
	// comparison net the debt off the income so the difference isolates the
	// effect of the reduction itself.
	totalIncome := in.Params.GrossIncomeCLP + in.Params.CoIncomeCLP
	if in.Params.MonthlyDebtCLP > 0 && totalIncome > 0 {
		debtLoad := in.Params.MonthlyDebtCLP / totalIncome
		if debtLoad > DebtLoadWarningFraction {
			reduction := in.Params.MonthlyDebtCLP * DebtReductionFraction
			sizeUF := func(incomeCLP float64) float64 {
				adjusted := AdjustIncome(incomeCLP, in.Params.Profile)
				loan := MaxLoan(MaxPayment(adjusted, in.Params.LoadFraction), in.Params.AnnualRate, in.Params.TermYears)
				return CLPToUF(loan, in.Params.UFValue)
			}
			currentUF := sizeUF(totalIncome - in.Params.MonthlyDebtCLP)
			improvedUF := sizeUF(totalIncome - (in.Params.MonthlyDebtCLP - reduction))
			improvementUF := improvedUF - currentUF

			if improvementUF > DebtAdviceMinImprovementUF {
				recs = append(recs, fmt.Sprintf(
					"Reduciendo tu deuda mensual en %s podrías aumentar tu capacidad en aproximadamente UF %.0f.",
					FormatCLP(reduction), improvementUF))
			}
		}
	}

	// Financing-ratio trade-off: comment on the highest fraction selected
	// when there is a real choice between scenarios.
	if len(in.Params.FinancingFractions) > 1 {
		best := 0.0
		for _, f := range in.Params.FinancingFractions {
			if f > best {
				best = f
			}
		}
		switch {
		case best >= 0.90:
			recs = append(recs, "90% maximiza tu capacidad de compra, pero requiere un dividendo más alto.")
		case best >= 0.85:
			recs = append(recs, "85% balancea pie y dividendo, un equilibrio entre capacidad y seguridad financiera.")
		case best >= 0.80:
			recs = append(recs, "80% ofrece mayor seguridad financiera con un pie más alto y un dividendo menor.")
		}
	}

	// Target project verdict, judged on the best (highest) financing scenario
	if in.Params.TargetValueUF > 0 && len(in.Capacity.Scenarios) > 0 {
		best := in.Capacity.Scenarios[0]
		for _, s := range in.Capacity.Scenarios[1:] {
			if s.FinancingFraction > best.FinancingFraction {
				best = s
			}
		}
		switch best.TargetVerdict {
		case Viable:
			recs = append(recs, "Este proyecto está dentro de tu capacidad. Es una excelente opción para ti.")
		case Marginal:
			recs = append(recs, "Este proyecto está cerca de tu capacidad. Considera negociar condiciones, aumentar tu pie, o buscar financiamiento complementario.")
		default:
			recs = append(recs, "Este proyecto excede tu capacidad actual. Busca opciones más accesibles o trabaja en aumentar tu capacidad (reducir deudas, aumentar ingresos, ahorrar más pie).")
		}
	}

	// Term trade-off
	switch in.Params.TermYears {
	case 30:
		recs = append(recs, "Un plazo de 30 años maximiza tu capacidad, pero pagarás más intereses en el largo plazo.")
	case 20:
		recs = append(recs, "Un plazo de 20 años reduce el costo total del crédito, pero aumenta el dividendo mensual.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Tu perfil financiero es sólido. Continúa evaluando diferentes proyectos y opciones de financiamiento.")
	}

	return recs
}
