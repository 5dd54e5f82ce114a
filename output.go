package main

import (
	"fmt"
	"strings"
)

// FormatCLP formats pesos with dot thousand separators, e.g. $80.000.000.
// Negative amounts keep the sign in front of the symbol.
func FormatCLP(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// FormatUF formats a UF amount with one decimal, e.g. UF 2.880,0
func FormatUF(amount float64) string {
	parts := strings.SplitN(fmt.Sprintf("%.1f", amount), ".", 2)
	sign := ""
	digits := parts[0]
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return fmt.Sprintf("UF %s%s,%s", sign, b.String(), parts[1])
}

// FormatPercent formats a decimal fraction as a percentage, e.g. 4,5%
func FormatPercent(fraction float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.1f%%", fraction*100), ".", ",")
}

// PrintAssumptions prints the session assumptions header
func PrintAssumptions(a Assumptions) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                    SIMULADOR DE INVERSIÓN INMOBILIARIA                       ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Supuestos:")
	fmt.Println("──────────")
	fmt.Printf("  UF: %s | Tasa: %s anual | Plazo: %d años | Horizonte: %d años\n",
		FormatCLP(a.UFValue), FormatPercent(a.AnnualRate), a.TermYears, a.HorizonYears)
	fmt.Printf("  Plusvalía: %s año 1, %s año 2+ | Pie teórico: %s | Gastos banco: %s\n",
		FormatPercent(a.AppreciationYear1), FormatPercent(a.AppreciationYear2Plus),
		FormatPercent(a.DownPaymentFraction), FormatPercent(a.BankFeeFraction))
	fmt.Println()
}

// PrintProperty prints the full result for one property
func PrintProperty(r PropertyResult) {
	name := r.Input.Name
	if name == "" {
		name = r.Input.ID
	}
	fmt.Printf("▸ %s (%s, %s)\n", name, r.Input.Location, r.Input.Typology)
	fmt.Printf("    Valor: %s (%s)  Financiado: %s (UF %.0f)\n",
		FormatCLP(r.ValueCLP), FormatUF(r.Input.ValueUF), FormatCLP(r.FinancedCLP), r.FinancedUF)
	fmt.Printf("    Dividendo: %s/mes  Pie pagado: %s  Gastos banco: %s\n",
		FormatCLP(r.DividendCLP), FormatCLP(r.DownPaymentPaidCLP), FormatCLP(r.BankFeesCLP))
	if r.SubsidyCLP > 0 {
		fmt.Printf("    Bono pie: %s (cubre el pie teórico)\n", FormatCLP(r.SubsidyCLP))
	} else if r.DownPaymentInstallmentCLP > 0 {
		fmt.Printf("    Pie en cuotas: %s/mes (%s restante)\n",
			FormatCLP(r.DownPaymentInstallmentCLP), FormatCLP(r.RemainingDownPaymentCLP))
	}
	fmt.Printf("    Flujo mensual: %s con cuota de pie / %s sin cuota\n",
		FormatCLP(r.CashFlowWithInstallmentCLP), FormatCLP(r.CashFlowWithoutInstallmentCLP))
	fmt.Printf("    Inversión total: %s  Rentabilidad bruta: %s  Neta s/inversión: %s\n",
		FormatCLP(r.InvestmentTotalCLP), FormatPercent(r.GrossYield), FormatPercent(r.NetYieldOnInvestment))
	fmt.Printf("    Plusvalía al horizonte: %s  Ganancia total: %s  ROI: %s\n",
		FormatCLP(r.CapitalGainCLP), FormatCLP(r.TotalGainCLP), FormatPercent(r.ROI))
	fmt.Println()
}

// PrintPortfolio prints per-property results followed by the totals block
func PrintPortfolio(result PortfolioResult) {
	for _, r := range result.Properties {
		PrintProperty(r)
	}

	fmt.Println("PORTAFOLIO")
	fmt.Println("──────────")
	fmt.Printf("  Inversión total:      %s\n", FormatCLP(result.InvestmentTotalCLP))
	fmt.Printf("  Flujo mensual:        %s con cuota / %s sin cuota\n",
		FormatCLP(result.CashFlowWithInstallmentCLP), FormatCLP(result.CashFlowWithoutInstallmentCLP))
	fmt.Printf("  Plusvalía:            %s\n", FormatCLP(result.CapitalGainCLP))
	fmt.Printf("  Bono pie:             %s\n", FormatCLP(result.SubsidyGainCLP))
	fmt.Printf("  IVA recuperable:      %s\n", FormatCLP(result.RecoverableTaxCLP))
	fmt.Printf("  Ganancia bruta/neta:  %s / %s\n", FormatCLP(result.GrossGainCLP), FormatCLP(result.NetGainCLP))
	fmt.Printf("  Ganancia total:       %s\n", FormatCLP(result.TotalGainCLP))
	fmt.Printf("  ROI:                  %s\n", FormatPercent(result.ROI))
	fmt.Println()
}

// PrintCapacity prints the capacity result with its scenarios and guidance
func PrintCapacity(params CapacityParams, result CapacityResult, recommendations []string) {
	fmt.Println("CAPACIDAD DE COMPRA")
	fmt.Println("───────────────────")
	fmt.Printf("  Renta ajustada:    %s\n", FormatCLP(result.AdjustedIncomeCLP))
	fmt.Printf("  Dividendo máximo:  %s (carga %s)\n", FormatCLP(result.MaxPaymentCLP), FormatPercent(params.LoadFraction))
	fmt.Printf("  Crédito máximo:    %s (%s)\n", FormatCLP(result.MaxLoanCLP), FormatUF(result.MaxLoanUF))
	fmt.Println()

	for _, s := range result.Scenarios {
		fmt.Printf("  Financiamiento %s:\n", FormatPercent(s.FinancingFraction))
		fmt.Printf("    Propiedad máxima: %s (%s)  Pie: %s\n",
			FormatCLP(s.MaxPropertyValueCLP), FormatUF(s.MaxPropertyValueUF), FormatCLP(s.DownPaymentCLP))
		if params.TargetValueUF > 0 {
			marker := "✓"
			if s.TargetVerdict == NotViable {
				marker = "✗"
			} else if s.TargetVerdict == Marginal {
				marker = "~"
			}
			fmt.Printf("    Proyecto objetivo: %s %s — %s\n", marker, s.TargetVerdict, s.TargetMessage)
		}
	}
	fmt.Println()

	if len(recommendations) > 0 {
		fmt.Println("RECOMENDACIONES")
		fmt.Println("───────────────")
		for i, rec := range recommendations {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
		fmt.Println()
	}
}
