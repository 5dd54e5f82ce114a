package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDF quote/proposal generation. Layout follows the commercial proposal the
// advisors hand to clients: assumptions header, one block per property,
// portfolio totals, and a capacity quote variant for the mortgage
// calculator.

const (
	pdfMarginLeft = 15.0
	pdfLineHeight = 6.0
)

// newReportPDF creates a page with the shared header. The returned translator
// maps UTF-8 (accents, ñ) to the CP1252 the core fonts expect.
func newReportPDF(title string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pdfMarginLeft, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Generado el %s", time.Now().Format("02-01-2006"))), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	return pdf, tr
}

func pdfSectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 240, 245)
	pdf.CellFormat(0, 7, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func pdfRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(90, pdfLineHeight, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, pdfLineHeight, tr(value), "", 1, "R", false, 0, "")
}

func pdfAssumptions(pdf *fpdf.Fpdf, tr func(string) string, a Assumptions) {
	pdfSectionTitle(pdf, tr, "Supuestos")
	pdfRow(pdf, tr, "Valor UF", FormatCLP(a.UFValue))
	pdfRow(pdf, tr, "Tasa anual", FormatPercent(a.AnnualRate))
	pdfRow(pdf, tr, "Plazo del crédito", fmt.Sprintf("%d años", a.TermYears))
	pdfRow(pdf, tr, "Plusvalía año 1 / año 2+", fmt.Sprintf("%s / %s", FormatPercent(a.AppreciationYear1), FormatPercent(a.AppreciationYear2Plus)))
	pdfRow(pdf, tr, "Horizonte de análisis", fmt.Sprintf("%d años", a.HorizonYears))
	pdf.Ln(3)
}

// RenderPortfolioPDF writes the investment proposal for a portfolio.
func RenderPortfolioPDF(a Assumptions, result PortfolioResult, out *bytes.Buffer) error {
	pdf, tr := newReportPDF("Propuesta de Inversión Inmobiliaria")
	pdfAssumptions(pdf, tr, a)

	for _, r := range result.Properties {
		name := r.Input.Name
		if name == "" {
			name = r.Input.ID
		}
		pdfSectionTitle(pdf, tr, fmt.Sprintf("%s — %s (%s)", name, r.Input.Location, r.Input.Typology))

		pdfRow(pdf, tr, "Valor propiedad", fmt.Sprintf("%s (%s)", FormatCLP(r.ValueCLP), FormatUF(r.Input.ValueUF)))
		pdfRow(pdf, tr, fmt.Sprintf("Monto financiado (%s)", FormatPercent(r.Input.FinancingFraction)), FormatCLP(r.FinancedCLP))
		pdfRow(pdf, tr, "Dividendo mensual", FormatCLP(r.DividendCLP))
		if r.SubsidyCLP > 0 {
			pdfRow(pdf, tr, "Bono pie", FormatCLP(r.SubsidyCLP))
		} else if r.DownPaymentInstallmentCLP > 0 {
			pdfRow(pdf, tr, "Cuota mensual de pie", FormatCLP(r.DownPaymentInstallmentCLP))
		}
		pdfRow(pdf, tr, "Pie pagado por el comprador", FormatCLP(r.DownPaymentPaidCLP))
		pdfRow(pdf, tr, "Flujo mensual (con cuota de pie)", FormatCLP(r.CashFlowWithInstallmentCLP))
		pdfRow(pdf, tr, "Inversión total", FormatCLP(r.InvestmentTotalCLP))
		pdfRow(pdf, tr, "Rentabilidad bruta", FormatPercent(r.GrossYield))
		pdfRow(pdf, tr, fmt.Sprintf("Saldo del crédito (%d años)", a.HorizonYears),
			FormatCLP(RemainingBalance(r.FinancedCLP, a.AnnualRate, a.TermYears, a.HorizonYears*12)))
		pdfRow(pdf, tr, "Plusvalía al horizonte", FormatCLP(r.CapitalGainCLP))
		if r.RecoverableTaxCLP > 0 {
			pdfRow(pdf, tr, "IVA recuperable", FormatCLP(r.RecoverableTaxCLP))
		}
		pdfRow(pdf, tr, "Ganancia total", FormatCLP(r.TotalGainCLP))
		pdfRow(pdf, tr, "ROI", FormatPercent(r.ROI))
		pdf.Ln(3)
	}

	pdfSectionTitle(pdf, tr, "Resumen del portafolio")
	pdfRow(pdf, tr, "Inversión total", FormatCLP(result.InvestmentTotalCLP))
	pdfRow(pdf, tr, "Flujo mensual (con / sin cuota de pie)",
		fmt.Sprintf("%s / %s", FormatCLP(result.CashFlowWithInstallmentCLP), FormatCLP(result.CashFlowWithoutInstallmentCLP)))
	pdfRow(pdf, tr, "Plusvalía total", FormatCLP(result.CapitalGainCLP))
	pdfRow(pdf, tr, "Ganancia total", FormatCLP(result.TotalGainCLP))
	pdfRow(pdf, tr, "ROI del portafolio", FormatPercent(result.ROI))

	return pdf.Output(out)
}

// RenderCapacityPDF writes the capacity quote for the mortgage calculator.
func RenderCapacityPDF(params CapacityParams, result CapacityResult, recommendations []string, out *bytes.Buffer) error {
	pdf, tr := newReportPDF("Simulación de Capacidad de Compra")

	pdfSectionTitle(pdf, tr, "Capacidad")
	pdfRow(pdf, tr, "Renta ajustada", FormatCLP(result.AdjustedIncomeCLP))
	pdfRow(pdf, tr, fmt.Sprintf("Dividendo máximo (carga %s)", FormatPercent(params.LoadFraction)), FormatCLP(result.MaxPaymentCLP))
	pdfRow(pdf, tr, "Crédito máximo", fmt.Sprintf("%s (%s)", FormatCLP(result.MaxLoanCLP), FormatUF(result.MaxLoanUF)))
	pdf.Ln(3)

	for _, s := range result.Scenarios {
		pdfSectionTitle(pdf, tr, fmt.Sprintf("Financiamiento %s", FormatPercent(s.FinancingFraction)))
		pdfRow(pdf, tr, "Propiedad máxima", fmt.Sprintf("%s (%s)", FormatCLP(s.MaxPropertyValueCLP), FormatUF(s.MaxPropertyValueUF)))
		pdfRow(pdf, tr, "Pie requerido", FormatCLP(s.DownPaymentCLP))
		if params.TargetValueUF > 0 {
			pdfRow(pdf, tr, "Dividendo del proyecto objetivo", FormatCLP(s.TargetDividendCLP))
			pdfRow(pdf, tr, "Evaluación", s.TargetMessage)
		}
		pdf.Ln(2)
	}

	if len(recommendations) > 0 {
		pdfSectionTitle(pdf, tr, "Recomendaciones")
		pdf.SetFont("Helvetica", "", 9)
		for _, rec := range recommendations {
			pdf.MultiCell(0, 5, tr("• "+rec), "", "L", false)
			pdf.Ln(1)
		}
	}

	return pdf.Output(out)
}

// WritePortfolioPDF renders the proposal to a file.
func WritePortfolioPDF(a Assumptions, result PortfolioResult, filename string) error {
	var buf bytes.Buffer
	if err := RenderPortfolioPDF(a, result, &buf); err != nil {
		return err
	}
	reportExports.WithLabelValues("pdf").Inc()
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

// WriteCapacityPDF renders the capacity quote to a file.
func WriteCapacityPDF(params CapacityParams, result CapacityResult, recommendations []string, filename string) error {
	var buf bytes.Buffer
	if err := RenderCapacityPDF(params, result, recommendations, &buf); err != nil {
		return err
	}
	reportExports.WithLabelValues("pdf").Inc()
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
