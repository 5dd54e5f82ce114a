package main

import "fmt"

// Sensitivity analysis: recompute the headline figures across ranges of the
// assumptions that move them most. Rate and term drive the capacity
// calculator; long-run appreciation and horizon drive portfolio ROI.

// CapacityCell is one point of the rate x term capacity grid.
type CapacityCell struct {
	AnnualRate         float64 `json:"annual_rate"`
	TermYears          int     `json:"term_years"`
	MaxPropertyValueUF float64 `json:"max_property_value_uf"`
}

// ROICell is one point of the appreciation x horizon portfolio grid.
type ROICell struct {
	Appreciation float64 `json:"appreciation"`
	HorizonYears int     `json:"horizon_years"`
	ROI          float64 `json:"roi"`
}

// CapacitySensitivity evaluates the maximum affordable property value across
// the configured rate range and terms, at the highest configured financing
// fraction. The base params are copied per cell; nothing is mutated.
func CapacitySensitivity(params CapacityParams, cfg SensitivityConfig) []CapacityCell {
	if cfg.RateStep <= 0 || cfg.RateMin <= 0 || cfg.RateMax < cfg.RateMin {
		return nil
	}

	fraction := 0.0
	for _, f := range params.FinancingFractions {
		if f > fraction {
			fraction = f
		}
	}
	if fraction == 0 {
		return nil
	}

	var cells []CapacityCell
	for rate := cfg.RateMin; rate <= cfg.RateMax+cfg.RateStep/2; rate += cfg.RateStep {
		for _, term := range cfg.TermsYears {
			cell := params
			cell.AnnualRate = rate
			cell.TermYears = term
			cell.FinancingFractions = []float64{fraction}

			result := ComputeCapacity(cell)
			maxUF := 0.0
			if len(result.Scenarios) > 0 {
				maxUF = result.Scenarios[0].MaxPropertyValueUF
			}
			cells = append(cells, CapacityCell{AnnualRate: rate, TermYears: term, MaxPropertyValueUF: maxUF})
		}
	}
	return cells
}

// PortfolioSensitivity evaluates portfolio ROI across long-run appreciation
// rates and horizons. Year-1 appreciation is held at the base assumption;
// only the year-2+ rate and the horizon vary.
func PortfolioSensitivity(a Assumptions, properties []PropertyInput, cfg SensitivityConfig) []ROICell {
	if len(cfg.Appreciations) == 0 || len(cfg.Horizons) == 0 {
		return nil
	}

	var cells []ROICell
	for _, appreciation := range cfg.Appreciations {
		for _, horizon := range cfg.Horizons {
			varied := a
			varied.AppreciationYear2Plus = appreciation
			varied.HorizonYears = horizon

			result := AggregatePortfolio(varied, properties)
			cells = append(cells, ROICell{Appreciation: appreciation, HorizonYears: horizon, ROI: result.ROI})
		}
	}
	return cells
}

// PrintCapacitySensitivity renders the capacity grid as a term x rate table
func PrintCapacitySensitivity(cells []CapacityCell, cfg SensitivityConfig) {
	if len(cells) == 0 {
		return
	}

	fmt.Println("SENSIBILIDAD DE CAPACIDAD (valor máximo de propiedad, UF)")
	fmt.Println("─────────────────────────────────────────────────────────")
	fmt.Printf("  %8s", "tasa")
	for _, term := range cfg.TermsYears {
		fmt.Printf("  %8d años", term)
	}
	fmt.Println()

	for i := 0; i < len(cells); i += len(cfg.TermsYears) {
		fmt.Printf("  %8s", FormatPercent(cells[i].AnnualRate))
		for j := 0; j < len(cfg.TermsYears) && i+j < len(cells); j++ {
			fmt.Printf("  %13.0f", cells[i+j].MaxPropertyValueUF)
		}
		fmt.Println()
	}
	fmt.Println()
}

// PrintPortfolioSensitivity renders the ROI grid as an appreciation x horizon table
func PrintPortfolioSensitivity(cells []ROICell, cfg SensitivityConfig) {
	if len(cells) == 0 {
		return
	}

	fmt.Println("SENSIBILIDAD DE ROI (plusvalía año 2+ vs horizonte)")
	fmt.Println("───────────────────────────────────────────────────")
	fmt.Printf("  %10s", "plusvalía")
	for _, horizon := range cfg.Horizons {
		fmt.Printf("  %6d años", horizon)
	}
	fmt.Println()

	for i := 0; i < len(cells); i += len(cfg.Horizons) {
		fmt.Printf("  %10s", FormatPercent(cells[i].Appreciation))
		for j := 0; j < len(cfg.Horizons) && i+j < len(cells); j++ {
			fmt.Printf("  %10s", FormatPercent(cells[i+j].ROI))
		}
		fmt.Println()
	}
	fmt.Println()
}
