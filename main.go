package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Real Estate Investment Simulator

Runs the two calculators a brokerage advisor uses in a client session:

  MORTGAGE CAPACITY
    From gross income and income type, computes the maximum dividend the
    bank accepts, the maximum loan, and the maximum property value under
    each financing scenario (80/85/90). With a target project it also
    tells whether the project is viable, marginal, or out of reach.

  PROPERTY INVESTMENT
    For each configured property: dividend, monthly cash flow with and
    without the down payment installment, total investment, yields,
    appreciation over the analysis horizon, and ROI. Portfolios aggregate
    every property into a single result.

All property values are handled in UF; income, rents, and cash flows in
CLP. The UF value is fetched live when an endpoint is configured and falls
back to the configured value otherwise.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Interactive mode selector
  %s -config my.yaml           Use custom configuration file
  %s -web                      Web server mode
  %s -web -addr :8080          Web server on specific port
  %s -capacity                 Capacity calculation from config defaults
  %s -portfolio                Evaluate the configured portfolio
  %s -portfolio -html          Portfolio report as HTML
  %s -portfolio -pdf           Portfolio proposal as PDF
  %s -sensitivity              Rate/term and appreciation/horizon grids
  %s -uf                       Print the current UF value and exit

Configuration:
  Edit config.yaml to set market assumptions, credit terms, and the
  property list. Missing file falls back to built-in defaults.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	webMode := flag.Bool("web", false, "Start web server mode")
	webAddr := flag.String("addr", "localhost:0", "Web server address (use :0 for auto port)")
	runCapacity := flag.Bool("capacity", false, "Run the mortgage capacity calculation")
	runPortfolio := flag.Bool("portfolio", false, "Evaluate the configured property portfolio")
	generateHTML := flag.Bool("html", false, "Write the results as an HTML report")
	generatePDF := flag.Bool("pdf", false, "Write the results as a PDF document")
	runSensitivity := flag.Bool("sensitivity", false, "Run sensitivity grids (rate/term and appreciation/horizon)")
	showUF := flag.Bool("uf", false, "Print the current UF value and exit")
	flag.Parse()

	config, err := LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config, err = LoadDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading default config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if *showUF {
		quote := NewUFClient(config.Market.UFEndpoint, config.Market.UFValue).Current()
		if quote.Date != "" {
			fmt.Printf("UF %s (%s, fuente: %s)\n", FormatCLP(quote.Value), quote.Date, quote.Source)
		} else {
			fmt.Printf("UF %s (fuente: %s)\n", FormatCLP(quote.Value), quote.Source)
		}
		return
	}

	if *webMode {
		addr := *webAddr
		if config.Server.Addr != "" && addr == "localhost:0" {
			addr = config.Server.Addr
		}
		if err := NewWebServer(config, addr).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := config.BuildAssumptions()

	if *runCapacity {
		runCapacityMode(config, *generateHTML, *generatePDF)
		if *runSensitivity {
			params := capacityParamsFromConfig(config)
			PrintCapacitySensitivity(CapacitySensitivity(params, config.Sensitivity), config.Sensitivity)
		}
		return
	}

	if *runPortfolio {
		runPortfolioMode(config, a, *generateHTML, *generatePDF)
		if *runSensitivity {
			cells := PortfolioSensitivity(a, config.PropertyInputs(), config.Sensitivity)
			PrintPortfolioSensitivity(cells, config.Sensitivity)
		}
		return
	}

	if *runSensitivity {
		params := capacityParamsFromConfig(config)
		PrintCapacitySensitivity(CapacitySensitivity(params, config.Sensitivity), config.Sensitivity)
		cells := PortfolioSensitivity(a, config.PropertyInputs(), config.Sensitivity)
		PrintPortfolioSensitivity(cells, config.Sensitivity)
		return
	}

	NewInteractiveSession(config).Run()
}

// capacityParamsFromConfig builds capacity inputs from the configured defaults
func capacityParamsFromConfig(config *Config) CapacityParams {
	return CapacityParams{
		GrossIncomeCLP:     config.Capacity.GrossIncomeCLP,
		CoIncomeCLP:        config.Capacity.CoIncomeCLP,
		Profile:            config.Capacity.Profile(),
		MonthlyDebtCLP:     config.Capacity.MonthlyDebtCLP,
		LoadFraction:       config.Capacity.LoadFraction,
		AnnualRate:         config.Credit.AnnualRate,
		TermYears:          config.Credit.TermYears,
		UFValue:            config.Market.UFValue,
		FinancingFractions: config.Capacity.FinancingFractions,
		TargetValueUF:      config.Capacity.TargetValueUF,
	}
}

func runCapacityMode(config *Config, generateHTML, generatePDF bool) {
	params := capacityParamsFromConfig(config)
	result := ComputeCapacity(params)
	calculations.WithLabelValues("capacity", "cli").Inc()
	recs := Recommendations(RecommendationInput{Params: params, Capacity: result})
	PrintCapacity(params, result, recs)

	if generateHTML {
		filename := "capacidad.html"
		if err := GenerateCapacityHTMLReport(params, result, recs, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing HTML report: %v\n", err)
		} else {
			fmt.Printf("\nReporte HTML: %s\n", filename)
			openBrowser(filename)
		}
	}
	if generatePDF {
		filename := "capacidad.pdf"
		if err := WriteCapacityPDF(params, result, recs, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("\nDocumento PDF: %s\n", filename)
		}
	}
}

func runPortfolioMode(config *Config, a Assumptions, generateHTML, generatePDF bool) {
	properties := config.PropertyInputs()
	if len(properties) == 0 {
		fmt.Fprintln(os.Stderr, "No properties configured; add entries under properties: in config.yaml")
		return
	}

	PrintAssumptions(a)
	result := AggregatePortfolio(a, properties)
	calculations.WithLabelValues("portfolio", "cli").Inc()
	PrintPortfolio(result)

	if generateHTML {
		filename := "portafolio.html"
		if err := GeneratePortfolioHTMLReport(a, result, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing HTML report: %v\n", err)
		} else {
			fmt.Printf("\nReporte HTML: %s\n", filename)
			openBrowser(filename)
		}
	}
	if generatePDF {
		filename := "propuesta.pdf"
		if err := WritePortfolioPDF(a, result, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("\nDocumento PDF: %s\n", filename)
		}
	}
}

// openBrowser opens a file in the default browser
func openBrowser(filename string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", filename)
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filename)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
