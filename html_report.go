package main

import (
	"fmt"
	"os"
	"time"
)

const htmlReportStyle = `<style>body{font-family:system-ui;background:#f1f5f9;margin:0;padding:0}.header{background:linear-gradient(135deg,#2563eb,#1e40af);color:#fff;padding:2rem;text-align:center}.container{max-width:1200px;margin:0 auto;padding:1.5rem}.card{background:#fff;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:1.5rem;margin-bottom:1.5rem}.metrics{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:1rem;margin-bottom:1.5rem}.metric{text-align:center;padding:1rem;background:#f1f5f9;border-radius:8px}.metric-value{font-size:1.5rem;font-weight:700;color:#2563eb}.metric-label{font-size:.875rem;color:#64748b}table{width:100%%;border-collapse:collapse}th,td{padding:.75rem;text-align:left;border-bottom:1px solid #e2e8f0}th{background:#f1f5f9}.positive{color:#16a34a}.negative{color:#dc2626}.viable{color:#16a34a;font-weight:600}.marginal{color:#ea580c;font-weight:600}.not_viable{color:#dc2626;font-weight:600}.footer{text-align:center;padding:1rem;color:#64748b}</style>`

func writeHTMLHeader(f *os.File, title, subtitle string) {
	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
`+htmlReportStyle+`</head>
<body>
<div class="header"><h1>%s</h1><p>%s</p></div>
<div class="container">
`, title, title, subtitle)
}

func writeHTMLFooter(f *os.File) {
	fmt.Fprintf(f, `</div>
<div class="footer">Generado el %s</div>
</body>
</html>
`, time.Now().Format("02-01-2006 15:04"))
}

func writeMetric(f *os.File, label, value string) {
	fmt.Fprintf(f, `<div class="metric"><div class="metric-value">%s</div><div class="metric-label">%s</div></div>
`, value, label)
}

func cashFlowClass(v float64) string {
	if v < 0 {
		return "negative"
	}
	return "positive"
}

// GeneratePortfolioHTMLReport writes the investment report for a portfolio
// to a self-contained HTML file.
func GeneratePortfolioHTMLReport(a Assumptions, result PortfolioResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	writeHTMLHeader(f, "Simulación de Inversión Inmobiliaria",
		fmt.Sprintf("UF %s · tasa %s · %d años · horizonte %d años",
			FormatCLP(a.UFValue), FormatPercent(a.AnnualRate), a.TermYears, a.HorizonYears))

	fmt.Fprintf(f, `<div class="metrics">
`)
	writeMetric(f, "Inversión total", FormatCLP(result.InvestmentTotalCLP))
	writeMetric(f, "Flujo mensual", FormatCLP(result.CashFlowWithInstallmentCLP))
	writeMetric(f, "Ganancia total", FormatCLP(result.TotalGainCLP))
	writeMetric(f, "ROI", FormatPercent(result.ROI))
	fmt.Fprintf(f, `</div>
`)

	fmt.Fprintf(f, `<div class="card"><h2>Propiedades</h2>
<table>
<tr><th>Propiedad</th><th>Valor</th><th>Financiamiento</th><th>Dividendo</th><th>Flujo mensual</th><th>Inversión</th><th>Ganancia total</th><th>ROI</th></tr>
`)
	for _, r := range result.Properties {
		name := r.Input.Name
		if name == "" {
			name = r.Input.ID
		}
		fmt.Fprintf(f, `<tr><td>%s<br><small>%s · %s</small></td><td>%s</td><td>%s</td><td>%s</td><td class="%s">%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`,
			name, r.Input.Location, r.Input.Typology,
			FormatUF(r.Input.ValueUF),
			FormatPercent(r.Input.FinancingFraction),
			FormatCLP(r.DividendCLP),
			cashFlowClass(r.CashFlowWithInstallmentCLP), FormatCLP(r.CashFlowWithInstallmentCLP),
			FormatCLP(r.InvestmentTotalCLP),
			FormatCLP(r.TotalGainCLP),
			FormatPercent(r.ROI))
	}
	fmt.Fprintf(f, `</table></div>
`)

	for _, r := range result.Properties {
		name := r.Input.Name
		if name == "" {
			name = r.Input.ID
		}
		fmt.Fprintf(f, `<div class="card"><h2>%s</h2>
<table>
`, name)
		writeDetailRow(f, "Valor propiedad", fmt.Sprintf("%s (%s)", FormatCLP(r.ValueCLP), FormatUF(r.Input.ValueUF)))
		writeDetailRow(f, "Monto financiado", fmt.Sprintf("%s (%s)", FormatCLP(r.FinancedCLP), FormatUF(r.FinancedUF)))
		writeDetailRow(f, "Dividendo mensual", FormatCLP(r.DividendCLP))
		if r.SubsidyCLP > 0 {
			writeDetailRow(f, "Bono pie", FormatCLP(r.SubsidyCLP))
		}
		if r.DownPaymentInstallmentCLP > 0 {
			writeDetailRow(f, "Cuota mensual de pie", FormatCLP(r.DownPaymentInstallmentCLP))
		}
		writeDetailRow(f, "Arriendo mensual", FormatCLP(r.GrossMonthlyRentCLP))
		writeDetailRow(f, "Flujo con cuota de pie", FormatCLP(r.CashFlowWithInstallmentCLP))
		writeDetailRow(f, "Flujo sin cuota de pie", FormatCLP(r.CashFlowWithoutInstallmentCLP))
		writeDetailRow(f, "Inversión total", FormatCLP(r.InvestmentTotalCLP))
		writeDetailRow(f, "Rentabilidad bruta", FormatPercent(r.GrossYield))
		writeDetailRow(f, "Rentabilidad neta sobre inversión", FormatPercent(r.NetYieldOnInvestment))
		writeDetailRow(f, fmt.Sprintf("Valor futuro (%d años)", a.HorizonYears),
			fmt.Sprintf("%s (%s)", FormatCLP(r.FutureValueCLP), FormatUF(r.FutureValueUF)))
		writeDetailRow(f, fmt.Sprintf("Saldo del crédito (%d años)", a.HorizonYears),
			FormatCLP(RemainingBalance(r.FinancedCLP, a.AnnualRate, a.TermYears, a.HorizonYears*12)))
		writeDetailRow(f, "Plusvalía", FormatCLP(r.CapitalGainCLP))
		if r.RecoverableTaxCLP > 0 {
			writeDetailRow(f, "IVA recuperable", FormatCLP(r.RecoverableTaxCLP))
		}
		writeDetailRow(f, "Ganancia total", FormatCLP(r.TotalGainCLP))
		writeDetailRow(f, "ROI", FormatPercent(r.ROI))
		fmt.Fprintf(f, `</table></div>
`)
	}

	writeHTMLFooter(f)
	reportExports.WithLabelValues("html").Inc()
	return nil
}

func writeDetailRow(f *os.File, label, value string) {
	fmt.Fprintf(f, `<tr><td>%s</td><td style="text-align:right;font-weight:600">%s</td></tr>
`, label, value)
}

// GenerateCapacityHTMLReport writes the mortgage capacity report to an HTML file.
func GenerateCapacityHTMLReport(params CapacityParams, result CapacityResult, recommendations []string, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	writeHTMLHeader(f, "Simulación de Capacidad de Compra",
		fmt.Sprintf("tasa %s · %d años · carga %s",
			FormatPercent(params.AnnualRate), params.TermYears, FormatPercent(params.LoadFraction)))

	fmt.Fprintf(f, `<div class="metrics">
`)
	writeMetric(f, "Renta ajustada", FormatCLP(result.AdjustedIncomeCLP))
	writeMetric(f, "Dividendo máximo", FormatCLP(result.MaxPaymentCLP))
	writeMetric(f, "Crédito máximo", FormatCLP(result.MaxLoanCLP))
	writeMetric(f, "Crédito máximo UF", FormatUF(result.MaxLoanUF))
	fmt.Fprintf(f, `</div>
`)

	fmt.Fprintf(f, `<div class="card"><h2>Escenarios de financiamiento</h2>
<table>
<tr><th>Financiamiento</th><th>Propiedad máxima</th><th>Pie requerido</th>`)
	if params.TargetValueUF > 0 {
		fmt.Fprintf(f, `<th>Dividendo objetivo</th><th>Evaluación</th>`)
	}
	fmt.Fprintf(f, `</tr>
`)
	for _, s := range result.Scenarios {
		fmt.Fprintf(f, `<tr><td>%s</td><td>%s (%s)</td><td>%s</td>`,
			FormatPercent(s.FinancingFraction),
			FormatCLP(s.MaxPropertyValueCLP), FormatUF(s.MaxPropertyValueUF),
			FormatCLP(s.DownPaymentCLP))
		if params.TargetValueUF > 0 {
			fmt.Fprintf(f, `<td>%s</td><td class="%s">%s</td>`,
				FormatCLP(s.TargetDividendCLP), s.TargetVerdict.String(), s.TargetMessage)
		}
		fmt.Fprintf(f, `</tr>
`)
	}
	fmt.Fprintf(f, `</table></div>
`)

	if len(recommendations) > 0 {
		fmt.Fprintf(f, `<div class="card"><h2>Recomendaciones</h2><ol>
`)
		for _, rec := range recommendations {
			fmt.Fprintf(f, `<li>%s</li>
`, rec)
		}
		fmt.Fprintf(f, `</ol></div>
`)
	}

	writeHTMLFooter(f)
	reportExports.WithLabelValues("html").Inc()
	return nil
}
