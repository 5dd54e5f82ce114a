package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================================
// Report generation
// ============================================================================

func TestGeneratePortfolioHTMLReport_ShowsCreditBalance(t *testing.T) {
	a := testAssumptions()
	result := AggregatePortfolio(a, testPortfolioInputs())
	filename := filepath.Join(t.TempDir(), "portafolio.html")

	if err := GeneratePortfolioHTMLReport(a, result, filename); err != nil {
		t.Fatalf("GeneratePortfolioHTMLReport: %v", err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "Saldo del crédito") {
		t.Error("report is missing the credit balance row")
	}
	for _, r := range result.Properties {
		balance := FormatCLP(RemainingBalance(r.FinancedCLP, a.AnnualRate, a.TermYears, a.HorizonYears*12))
		if !strings.Contains(html, balance) {
			t.Errorf("report is missing balance %s for %s", balance, r.Input.ID)
		}
	}
}

func TestRenderPortfolioPDF_ProducesDocument(t *testing.T) {
	a := testAssumptions()
	result := AggregatePortfolio(a, testPortfolioInputs())

	var buf bytes.Buffer
	if err := RenderPortfolioPDF(a, result, &buf); err != nil {
		t.Fatalf("RenderPortfolioPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header (got %q)", buf.Bytes()[:min(8, buf.Len())])
	}
}
