package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config   *Config
	addr     string
	ufClient *UFClient
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config:   config,
		addr:     addr,
		ufClient: NewUFClient(config.Market.UFEndpoint, config.Market.UFValue),
	}
}

// APICapacityRequest is the mortgage capacity calculator request. Income types
// are declared as strings ("fixed", "variable", "independent"); when several
// apply the most conservative multiplier wins.
type APICapacityRequest struct {
	GrossIncome        float64   `json:"gross_income"`
	CoIncome           float64   `json:"co_income,omitempty"`
	IncomeTypes        []string  `json:"income_types"`
	MonthlyDebt        float64   `json:"monthly_debt,omitempty"`
	LoadFraction       float64   `json:"load_fraction,omitempty"`
	AnnualRate         float64   `json:"annual_rate,omitempty"`
	TermYears          int       `json:"term_years,omitempty"`
	UFValue            float64   `json:"uf_value,omitempty"`
	FinancingFractions []float64 `json:"financing_fractions,omitempty"`
	TargetValueUF      float64   `json:"target_value_uf,omitempty"`
	DividendOverride   float64   `json:"dividend_override,omitempty"`
}

// APICapacityScenario mirrors CapacityScenario for the JSON API
type APICapacityScenario struct {
	FinancingFraction   float64 `json:"financing_fraction"`
	MaxPropertyValueCLP float64 `json:"max_property_value_clp"`
	MaxPropertyValueUF  float64 `json:"max_property_value_uf"`
	DownPaymentCLP      float64 `json:"down_payment_clp"`
	DownPaymentUF       float64 `json:"down_payment_uf"`
	TargetDividendCLP   float64 `json:"target_dividend_clp,omitempty"`
	TargetVerdict       string  `json:"target_verdict,omitempty"`
	TargetMessage       string  `json:"target_message,omitempty"`
}

// APICapacityResponse is the mortgage capacity calculator response
type APICapacityResponse struct {
	Success           bool                  `json:"success"`
	Error             string                `json:"error,omitempty"`
	AdjustedIncomeCLP float64               `json:"adjusted_income_clp"`
	MaxPaymentCLP     float64               `json:"max_payment_clp"`
	MaxLoanCLP        float64               `json:"max_loan_clp"`
	MaxLoanUF         float64               `json:"max_loan_uf"`
	Scenarios         []APICapacityScenario `json:"scenarios"`
	Recommendations   []string              `json:"recommendations"`
}

// APIAssumptions carries optional overrides of the configured assumptions.
// Zero fields keep the configured value.
type APIAssumptions struct {
	UFValue               float64 `json:"uf_value,omitempty"`
	AnnualRate            float64 `json:"annual_rate,omitempty"`
	TermYears             int     `json:"term_years,omitempty"`
	AppreciationYear1     float64 `json:"appreciation_year1,omitempty"`
	AppreciationYear2Plus float64 `json:"appreciation_year2_plus,omitempty"`
	HorizonYears          int     `json:"horizon_years,omitempty"`
}

// APIProperty mirrors PropertyInput for the JSON API
type APIProperty struct {
	ID                string  `json:"id,omitempty"`
	Name              string  `json:"name,omitempty"`
	Location          string  `json:"location,omitempty"`
	Typology          string  `json:"typology,omitempty"`
	FloorArea         float64 `json:"floor_area,omitempty"`
	ValueUF           float64 `json:"value_uf"`
	FinancingFraction float64 `json:"financing_fraction"`
	MonthlyRent       float64 `json:"monthly_rent"`
	BuildingFee       float64 `json:"building_fee,omitempty"`
	OtherCosts        float64 `json:"other_costs,omitempty"`
	Reservation       float64 `json:"reservation,omitempty"`
	InitialDeposits   float64 `json:"initial_deposits,omitempty"`
	Furnishing        float64 `json:"furnishing,omitempty"`
	Management        float64 `json:"management,omitempty"`
	SubsidyApplies    bool    `json:"subsidy_applies,omitempty"`
	TaxApplies        bool    `json:"tax_applies,omitempty"`
	GraceMonths       int     `json:"grace_months,omitempty"`
}

// APIPropertyRequest evaluates a single property
type APIPropertyRequest struct {
	Assumptions APIAssumptions `json:"assumptions"`
	Property    APIProperty    `json:"property"`
}

// APIPortfolioRequest evaluates a set of properties as one portfolio
type APIPortfolioRequest struct {
	Assumptions APIAssumptions `json:"assumptions"`
	Properties  []APIProperty  `json:"properties"`
}

// APIPropertyResult is the per-property portion of the JSON responses
type APIPropertyResult struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name,omitempty"`
	ValueCLP            float64 `json:"value_clp"`
	FinancedUF          float64 `json:"financed_uf"`
	FinancedCLP         float64 `json:"financed_clp"`
	SubsidyCLP          float64 `json:"subsidy_clp,omitempty"`
	DividendUF          float64 `json:"dividend_uf"`
	DividendCLP         float64 `json:"dividend_clp"`
	DownPaymentPaidCLP  float64 `json:"down_payment_paid_clp"`
	InstallmentCLP      float64 `json:"down_payment_installment_clp,omitempty"`
	CashFlowWithCLP     float64 `json:"cash_flow_with_installment_clp"`
	CashFlowWithoutCLP  float64 `json:"cash_flow_without_installment_clp"`
	InvestmentTotalCLP  float64 `json:"investment_total_clp"`
	GrossYield          float64 `json:"gross_yield"`
	NetYieldOnValue     float64 `json:"net_yield_on_value"`
	NetYieldOnInvest    float64 `json:"net_yield_on_investment"`
	FutureValueUF       float64 `json:"future_value_uf"`
	FutureValueCLP      float64 `json:"future_value_clp"`
	CapitalGainCLP      float64 `json:"capital_gain_clp"`
	RecoverableTaxCLP   float64 `json:"recoverable_tax_clp,omitempty"`
	GrossGainCLP        float64 `json:"gross_gain_clp"`
	NetGainCLP          float64 `json:"net_gain_clp"`
	TotalGainCLP        float64 `json:"total_gain_clp"`
	ROI                 float64 `json:"roi"`
}

// APIPortfolioResponse is the portfolio evaluation response
type APIPortfolioResponse struct {
	Success            bool                `json:"success"`
	Error              string              `json:"error,omitempty"`
	Properties         []APIPropertyResult `json:"properties,omitempty"`
	InvestmentTotalCLP float64             `json:"investment_total_clp"`
	CashFlowWithCLP    float64             `json:"cash_flow_with_installment_clp"`
	CashFlowWithoutCLP float64             `json:"cash_flow_without_installment_clp"`
	CapitalGainCLP     float64             `json:"capital_gain_clp"`
	SubsidyGainCLP     float64             `json:"subsidy_gain_clp"`
	RecoverableTaxCLP  float64             `json:"recoverable_tax_clp"`
	GrossGainCLP       float64             `json:"gross_gain_clp"`
	NetGainCLP         float64             `json:"net_gain_clp"`
	TotalGainCLP       float64             `json:"total_gain_clp"`
	ROI                float64             `json:"roi"`
}

// APIUFResponse is the UF quote response
type APIUFResponse struct {
	Value  float64 `json:"value"`
	Date   string  `json:"date,omitempty"`
	Source string  `json:"source"`
}

// Start starts the web server and blocks serving requests
func (ws *WebServer) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/uf", ws.handleUF)
	mux.HandleFunc("/api/capacity", ws.handleCapacity)
	mux.HandleFunc("/api/property", ws.handleProperty)
	mux.HandleFunc("/api/portfolio", ws.handlePortfolio)
	mux.HandleFunc("/api/export-pdf", ws.handleExportPDF)
	mux.Handle("/metrics", promhttp.Handler())

	// Listen on the address (use :0 for auto-assign)
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	log.Printf("Starting web server on %s", actualAddr)
	log.Printf("Open %s in your browser", url)

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return server.Serve(listener)
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws.config)
}

// handleUF returns the current UF quote (live when the endpoint answers,
// configured or fallback value otherwise)
func (ws *WebServer) handleUF(w http.ResponseWriter, r *http.Request) {
	quote := ws.ufClient.Current()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIUFResponse{
		Value:  quote.Value,
		Date:   quote.Date,
		Source: quote.Source,
	})
}

func sendJSONError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// buildCapacityParams merges a capacity request with the configured defaults
func (ws *WebServer) buildCapacityParams(req *APICapacityRequest) CapacityParams {
	params := CapacityParams{
		GrossIncomeCLP:      req.GrossIncome,
		CoIncomeCLP:         req.CoIncome,
		MonthlyDebtCLP:      req.MonthlyDebt,
		LoadFraction:        req.LoadFraction,
		AnnualRate:          req.AnnualRate,
		TermYears:           req.TermYears,
		UFValue:             req.UFValue,
		FinancingFractions:  req.FinancingFractions,
		TargetValueUF:       req.TargetValueUF,
		DividendOverrideCLP: req.DividendOverride,
	}
	for _, t := range req.IncomeTypes {
		switch t {
		case "fixed":
			params.Profile.FixedSalary = true
		case "variable":
			params.Profile.VariableSalary = true
		case "independent":
			params.Profile.Independent = true
		}
	}
	if params.LoadFraction == 0 {
		params.LoadFraction = ws.config.Capacity.LoadFraction
	}
	if params.AnnualRate == 0 {
		params.AnnualRate = ws.config.Credit.AnnualRate
	}
	if params.TermYears == 0 {
		params.TermYears = ws.config.Credit.TermYears
	}
	if params.UFValue == 0 {
		params.UFValue = ws.ufClient.Current().Value
	}
	if len(params.FinancingFractions) == 0 {
		params.FinancingFractions = ws.config.Capacity.FinancingFractions
	}
	return params
}

// handleCapacity runs the mortgage capacity calculator
func (ws *WebServer) handleCapacity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APICapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	params := ws.buildCapacityParams(&req)
	result := ComputeCapacity(params)
	calculations.WithLabelValues("capacity", "web").Inc()

	response := APICapacityResponse{
		Success:           true,
		AdjustedIncomeCLP: result.AdjustedIncomeCLP,
		MaxPaymentCLP:     result.MaxPaymentCLP,
		MaxLoanCLP:        result.MaxLoanCLP,
		MaxLoanUF:         result.MaxLoanUF,
		Recommendations:   Recommendations(RecommendationInput{Params: params, Capacity: result}),
	}
	for _, s := range result.Scenarios {
		api := APICapacityScenario{
			FinancingFraction:   s.FinancingFraction,
			MaxPropertyValueCLP: s.MaxPropertyValueCLP,
			MaxPropertyValueUF:  s.MaxPropertyValueUF,
			DownPaymentCLP:      s.DownPaymentCLP,
			DownPaymentUF:       s.DownPaymentUF,
		}
		if params.TargetValueUF > 0 {
			api.TargetDividendCLP = s.TargetDividendCLP
			api.TargetVerdict = s.TargetVerdict.String()
			api.TargetMessage = s.TargetMessage
		}
		response.Scenarios = append(response.Scenarios, api)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// buildAssumptions merges request overrides onto the configured assumptions
func (ws *WebServer) buildAssumptions(req APIAssumptions) Assumptions {
	a := ws.config.BuildAssumptions()
	if req.UFValue > 0 {
		a.UFValue = req.UFValue
	} else {
		a.UFValue = ws.ufClient.Current().Value
	}
	if req.AnnualRate > 0 {
		a.AnnualRate = req.AnnualRate
	}
	if req.TermYears > 0 {
		a.TermYears = req.TermYears
	}
	if req.AppreciationYear1 > 0 {
		a.AppreciationYear1 = req.AppreciationYear1
	}
	if req.AppreciationYear2Plus > 0 {
		a.AppreciationYear2Plus = req.AppreciationYear2Plus
	}
	if req.HorizonYears > 0 {
		a.HorizonYears = req.HorizonYears
	}
	return a
}

func (p APIProperty) toInput() PropertyInput {
	return PropertyInput{
		ID:                 p.ID,
		Name:               p.Name,
		Location:           p.Location,
		Typology:           p.Typology,
		FloorArea:          p.FloorArea,
		ValueUF:            p.ValueUF,
		FinancingFraction:  p.FinancingFraction,
		MonthlyRentCLP:     p.MonthlyRent,
		BuildingFeeCLP:     p.BuildingFee,
		OtherCostsCLP:      p.OtherCosts,
		ReservationCLP:     p.Reservation,
		InitialDepositsCLP: p.InitialDeposits,
		FurnishingCLP:      p.Furnishing,
		ManagementCLP:      p.Management,
		SubsidyApplies:     p.SubsidyApplies,
		TaxApplies:         p.TaxApplies,
		GraceMonths:        p.GraceMonths,
	}
}

func toAPIPropertyResult(r PropertyResult) APIPropertyResult {
	return APIPropertyResult{
		ID:                 r.Input.ID,
		Name:               r.Input.Name,
		ValueCLP:           r.ValueCLP,
		FinancedUF:         r.FinancedUF,
		FinancedCLP:        r.FinancedCLP,
		SubsidyCLP:         r.SubsidyCLP,
		DividendUF:         r.DividendUF,
		DividendCLP:        r.DividendCLP,
		DownPaymentPaidCLP: r.DownPaymentPaidCLP,
		InstallmentCLP:     r.DownPaymentInstallmentCLP,
		CashFlowWithCLP:    r.CashFlowWithInstallmentCLP,
		CashFlowWithoutCLP: r.CashFlowWithoutInstallmentCLP,
		InvestmentTotalCLP: r.InvestmentTotalCLP,
		GrossYield:         r.GrossYield,
		NetYieldOnValue:    r.NetYieldOnValue,
		NetYieldOnInvest:   r.NetYieldOnInvestment,
		FutureValueUF:      r.FutureValueUF,
		FutureValueCLP:     r.FutureValueCLP,
		CapitalGainCLP:     r.CapitalGainCLP,
		RecoverableTaxCLP:  r.RecoverableTaxCLP,
		GrossGainCLP:       r.GrossGainCLP,
		NetGainCLP:         r.NetGainCLP,
		TotalGainCLP:       r.TotalGainCLP,
		ROI:                r.ROI,
	}
}

// handleProperty evaluates one property
func (ws *WebServer) handleProperty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}
	if req.Property.ValueUF <= 0 {
		sendJSONError(w, "property value_uf must be positive")
		return
	}

	a := ws.buildAssumptions(req.Assumptions)
	result := ComputeProperty(a, req.Property.toInput())
	calculations.WithLabelValues("property", "web").Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Success bool              `json:"success"`
		Result  APIPropertyResult `json:"result"`
	}{true, toAPIPropertyResult(result)})
}

// handlePortfolio evaluates a set of properties as one portfolio
func (ws *WebServer) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	a := ws.buildAssumptions(req.Assumptions)
	inputs := make([]PropertyInput, 0, len(req.Properties))
	for _, p := range req.Properties {
		inputs = append(inputs, p.toInput())
	}
	result := AggregatePortfolio(a, inputs)
	calculations.WithLabelValues("portfolio", "web").Inc()

	response := APIPortfolioResponse{
		Success:            true,
		InvestmentTotalCLP: result.InvestmentTotalCLP,
		CashFlowWithCLP:    result.CashFlowWithInstallmentCLP,
		CashFlowWithoutCLP: result.CashFlowWithoutInstallmentCLP,
		CapitalGainCLP:     result.CapitalGainCLP,
		SubsidyGainCLP:     result.SubsidyGainCLP,
		RecoverableTaxCLP:  result.RecoverableTaxCLP,
		GrossGainCLP:       result.GrossGainCLP,
		NetGainCLP:         result.NetGainCLP,
		TotalGainCLP:       result.TotalGainCLP,
		ROI:                result.ROI,
	}
	for _, pr := range result.Properties {
		response.Properties = append(response.Properties, toAPIPropertyResult(pr))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// APIPDFExportRequest drives PDF generation from the web UI. Kind selects
// the document: "portfolio" (investment proposal) or "capacity" (quote).
type APIPDFExportRequest struct {
	Kind        string             `json:"kind"`
	Assumptions APIAssumptions     `json:"assumptions"`
	Properties  []APIProperty      `json:"properties,omitempty"`
	Capacity    APICapacityRequest `json:"capacity,omitempty"`
}

// handleExportPDF streams the requested PDF document
func (ws *WebServer) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIPDFExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request: "+err.Error())
		return
	}

	var buf bytes.Buffer
	var filename string

	switch req.Kind {
	case "capacity":
		params := ws.buildCapacityParams(&req.Capacity)
		result := ComputeCapacity(params)
		recs := Recommendations(RecommendationInput{Params: params, Capacity: result})
		if err := RenderCapacityPDF(params, result, recs, &buf); err != nil {
			sendJSONError(w, "PDF generation failed: "+err.Error())
			return
		}
		filename = "simulacion-capacidad.pdf"
	case "portfolio", "":
		a := ws.buildAssumptions(req.Assumptions)
		inputs := make([]PropertyInput, 0, len(req.Properties))
		for _, p := range req.Properties {
			inputs = append(inputs, p.toInput())
		}
		result := AggregatePortfolio(a, inputs)
		if err := RenderPortfolioPDF(a, result, &buf); err != nil {
			sendJSONError(w, "PDF generation failed: "+err.Error())
			return
		}
		filename = "propuesta-inversion.pdf"
	default:
		sendJSONError(w, fmt.Sprintf("unknown export kind: %q", req.Kind))
		return
	}

	reportExports.WithLabelValues("pdf").Inc()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}

// webUIHTML is the embedded web interface HTML
const webUIHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Simulador de Inversión Inmobiliaria</title>
<style>
:root{--primary:#2563eb;--success:#16a34a;--warning:#ea580c;--danger:#dc2626;--bg:#f8fafc;--card:#fff;--text:#1e293b;--muted:#64748b;--border:#e2e8f0}
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:var(--bg);color:var(--text);line-height:1.6;padding:2rem}
.container{max-width:1100px;margin:0 auto}
h1{font-size:1.6rem;color:var(--primary);margin-bottom:.25rem}
.subtitle{color:var(--muted);margin-bottom:1.5rem}
.tabs{display:flex;gap:.5rem;margin-bottom:1.5rem}
.tab{padding:.5rem 1.25rem;border:1px solid var(--border);border-radius:6px;background:var(--card);cursor:pointer;font-size:.95rem}
.tab.active{background:var(--primary);color:#fff;border-color:var(--primary)}
.card{background:var(--card);border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:1.5rem;margin-bottom:1.5rem}
.grid{display:grid;gap:1rem;grid-template-columns:repeat(auto-fit,minmax(220px,1fr))}
label{display:block;font-size:.85rem;color:var(--muted);margin-bottom:.25rem}
input,select{width:100%;padding:.5rem;border:1px solid var(--border);border-radius:6px;font-size:.95rem}
.checks{display:flex;gap:1rem;align-items:center}
.checks label{display:flex;align-items:center;gap:.35rem;margin:0;color:var(--text)}
.checks input{width:auto}
button{background:var(--primary);color:#fff;border:none;border-radius:6px;padding:.6rem 1.5rem;font-size:.95rem;cursor:pointer;margin-top:1rem}
button.secondary{background:var(--muted)}
.metrics{display:grid;grid-template-columns:repeat(auto-fit,minmax(180px,1fr));gap:1rem;margin:1rem 0}
.metric{text-align:center;padding:1rem;background:var(--bg);border-radius:8px}
.metric-value{font-size:1.3rem;font-weight:700;color:var(--primary)}
.metric-label{font-size:.8rem;color:var(--muted)}
table{width:100%;border-collapse:collapse;margin-top:1rem}
th,td{padding:.6rem;text-align:left;border-bottom:1px solid var(--border);font-size:.9rem}
th{background:var(--bg)}
.viable{color:var(--success);font-weight:600}
.marginal{color:var(--warning);font-weight:600}
.not_viable{color:var(--danger);font-weight:600}
.recs{margin-top:1rem;padding-left:1.25rem}
.recs li{margin-bottom:.5rem}
.uf-badge{float:right;font-size:.85rem;color:var(--muted)}
.hidden{display:none}
</style>
</head>
<body>
<div class="container">
<h1>Simulador de Inversión Inmobiliaria <span class="uf-badge" id="ufBadge"></span></h1>
<p class="subtitle">Capacidad de compra y evaluación de inversión en UF</p>

<div class="tabs">
<div class="tab active" data-panel="capacityPanel">Capacidad de compra</div>
<div class="tab" data-panel="propertyPanel">Evaluar propiedad</div>
</div>

<div id="capacityPanel">
<div class="card">
<div class="grid">
<div><label>Renta bruta mensual (CLP)</label><input type="number" id="grossIncome" value="1500000"></div>
<div><label>Renta complemento (CLP)</label><input type="number" id="coIncome" value="0"></div>
<div><label>Deuda mensual (CLP)</label><input type="number" id="monthlyDebt" value="0"></div>
<div><label>Proyecto objetivo (UF, opcional)</label><input type="number" id="targetUF" value="0"></div>
<div><label>Tasa anual</label><input type="number" id="capRate" step="0.001" value="0.045"></div>
<div><label>Plazo (años)</label><input type="number" id="capTerm" value="30"></div>
</div>
<div class="checks" style="margin-top:1rem">
<span style="color:var(--muted);font-size:.85rem">Tipo de renta:</span>
<label><input type="checkbox" id="incFixed" checked> Fija</label>
<label><input type="checkbox" id="incVariable"> Variable</label>
<label><input type="checkbox" id="incIndependent"> Independiente</label>
</div>
<button onclick="runCapacity()">Calcular capacidad</button>
<button class="secondary" onclick="exportCapacityPDF()">Exportar PDF</button>
</div>
<div class="card hidden" id="capacityResults"></div>
</div>

<div id="propertyPanel" class="hidden">
<div class="card">
<div class="grid">
<div><label>Valor propiedad (UF)</label><input type="number" id="propValue" value="2880"></div>
<div><label>Financiamiento</label><select id="propFinancing"><option value="0.8">80%</option><option value="0.85">85%</option><option value="0.9" selected>90%</option><option value="1.0">100%</option></select></div>
<div><label>Arriendo mensual (CLP)</label><input type="number" id="propRent" value="420000"></div>
<div><label>Gasto común (CLP)</label><input type="number" id="propFee" value="45000"></div>
<div><label>Reserva (CLP)</label><input type="number" id="propReservation" value="200000"></div>
<div><label>Amoblado (CLP)</label><input type="number" id="propFurnishing" value="0"></div>
</div>
<div class="checks" style="margin-top:1rem">
<label><input type="checkbox" id="propSubsidy"> Con bono pie</label>
<label><input type="checkbox" id="propTax"> Afecta a IVA</label>
</div>
<button onclick="runProperty()">Evaluar inversión</button>
</div>
<div class="card hidden" id="propertyResults"></div>
</div>

</div>
<script>
function fmtCLP(v){return '$'+Math.round(v).toLocaleString('es-CL')}
function fmtUF(v){return 'UF '+v.toLocaleString('es-CL',{maximumFractionDigits:1})}
function fmtPct(v){return (v*100).toLocaleString('es-CL',{maximumFractionDigits:1})+'%'}

document.querySelectorAll('.tab').forEach(function(tab){
  tab.addEventListener('click',function(){
    document.querySelectorAll('.tab').forEach(function(t){t.classList.remove('active')});
    tab.classList.add('active');
    document.getElementById('capacityPanel').classList.toggle('hidden',tab.dataset.panel!=='capacityPanel');
    document.getElementById('propertyPanel').classList.toggle('hidden',tab.dataset.panel!=='propertyPanel');
  });
});

fetch('/api/uf').then(function(r){return r.json()}).then(function(q){
  document.getElementById('ufBadge').textContent='UF '+q.value.toLocaleString('es-CL')+' ('+q.source+')';
});

function capacityRequest(){
  var types=[];
  if(document.getElementById('incFixed').checked)types.push('fixed');
  if(document.getElementById('incVariable').checked)types.push('variable');
  if(document.getElementById('incIndependent').checked)types.push('independent');
  return {
    gross_income:+document.getElementById('grossIncome').value,
    co_income:+document.getElementById('coIncome').value,
    monthly_debt:+document.getElementById('monthlyDebt').value,
    income_types:types,
    annual_rate:+document.getElementById('capRate').value,
    term_years:+document.getElementById('capTerm').value,
    target_value_uf:+document.getElementById('targetUF').value
  };
}

function runCapacity(){
  fetch('/api/capacity',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(capacityRequest())})
  .then(function(r){return r.json()})
  .then(function(res){
    if(!res.success){alert(res.error);return}
    var el=document.getElementById('capacityResults');
    var html='<div class="metrics">'
      +'<div class="metric"><div class="metric-value">'+fmtCLP(res.adjusted_income_clp)+'</div><div class="metric-label">Renta ajustada</div></div>'
      +'<div class="metric"><div class="metric-value">'+fmtCLP(res.max_payment_clp)+'</div><div class="metric-label">Dividendo máximo</div></div>'
      +'<div class="metric"><div class="metric-value">'+fmtCLP(res.max_loan_clp)+'</div><div class="metric-label">Crédito máximo</div></div>'
      +'<div class="metric"><div class="metric-value">'+fmtUF(res.max_loan_uf)+'</div><div class="metric-label">Crédito máximo UF</div></div>'
      +'</div><table><tr><th>Financiamiento</th><th>Propiedad máxima</th><th>Pie</th>';
    var hasTarget=res.scenarios.length&&res.scenarios[0].target_verdict;
    if(hasTarget)html+='<th>Dividendo objetivo</th><th>Evaluación</th>';
    html+='</tr>';
    res.scenarios.forEach(function(s){
      html+='<tr><td>'+fmtPct(s.financing_fraction)+'</td><td>'+fmtCLP(s.max_property_value_clp)+' ('+fmtUF(s.max_property_value_uf)+')</td><td>'+fmtCLP(s.down_payment_clp)+'</td>';
      if(hasTarget)html+='<td>'+fmtCLP(s.target_dividend_clp)+'</td><td class="'+s.target_verdict+'">'+s.target_message+'</td>';
      html+='</tr>';
    });
    html+='</table>';
    if(res.recommendations&&res.recommendations.length){
      html+='<ol class="recs">';
      res.recommendations.forEach(function(rec){html+='<li>'+rec+'</li>'});
      html+='</ol>';
    }
    el.innerHTML=html;
    el.classList.remove('hidden');
  });
}

function exportCapacityPDF(){
  fetch('/api/export-pdf',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({kind:'capacity',capacity:capacityRequest()})})
  .then(function(r){return r.blob()})
  .then(function(blob){
    var a=document.createElement('a');
    a.href=URL.createObjectURL(blob);
    a.download='simulacion-capacidad.pdf';
    a.click();
  });
}

function runProperty(){
  var req={property:{
    value_uf:+document.getElementById('propValue').value,
    financing_fraction:+document.getElementById('propFinancing').value,
    monthly_rent:+document.getElementById('propRent').value,
    building_fee:+document.getElementById('propFee').value,
    reservation:+document.getElementById('propReservation').value,
    furnishing:+document.getElementById('propFurnishing').value,
    subsidy_applies:document.getElementById('propSubsidy').checked,
    tax_applies:document.getElementById('propTax').checked
  }};
  fetch('/api/property',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(req)})
  .then(function(r){return r.json()})
  .then(function(res){
    if(!res.success){alert(res.error);return}
    var p=res.result;
    var flowClass=p.cash_flow_with_installment_clp<0?'not_viable':'viable';
    var el=document.getElementById('propertyResults');
    el.innerHTML='<div class="metrics">'
      +'<div class="metric"><div class="metric-value">'+fmtCLP(p.dividend_clp)+'</div><div class="metric-label">Dividendo mensual</div></div>'
      +'<div class="metric"><div class="metric-value '+flowClass+'">'+fmtCLP(p.cash_flow_with_installment_clp)+'</div><div class="metric-label">Flujo mensual</div></div>'
      +'<div class="metric"><div class="metric-value">'+fmtCLP(p.investment_total_clp)+'</div><div class="metric-label">Inversión total</div></div>'
      +'<div class="metric"><div class="metric-value">'+fmtPct(p.roi)+'</div><div class="metric-label">ROI</div></div>'
      +'</div><table>'
      +'<tr><td>Valor propiedad</td><td>'+fmtCLP(p.value_clp)+'</td></tr>'
      +'<tr><td>Monto financiado</td><td>'+fmtCLP(p.financed_clp)+' ('+fmtUF(p.financed_uf)+')</td></tr>'
      +(p.subsidy_clp?'<tr><td>Bono pie</td><td>'+fmtCLP(p.subsidy_clp)+'</td></tr>':'')
      +(p.down_payment_installment_clp?'<tr><td>Cuota mensual de pie</td><td>'+fmtCLP(p.down_payment_installment_clp)+'</td></tr>':'')
      +'<tr><td>Rentabilidad bruta</td><td>'+fmtPct(p.gross_yield)+'</td></tr>'
      +'<tr><td>Rentabilidad neta sobre inversión</td><td>'+fmtPct(p.net_yield_on_investment)+'</td></tr>'
      +'<tr><td>Valor futuro</td><td>'+fmtCLP(p.future_value_clp)+' ('+fmtUF(p.future_value_uf)+')</td></tr>'
      +'<tr><td>Plusvalía</td><td>'+fmtCLP(p.capital_gain_clp)+'</td></tr>'
      +(p.recoverable_tax_clp?'<tr><td>IVA recuperable</td><td>'+fmtCLP(p.recoverable_tax_clp)+'</td></tr>':'')
      +'<tr><td>Ganancia total</td><td>'+fmtCLP(p.total_gain_clp)+'</td></tr>'
      +'</table>';
    el.classList.remove('hidden');
  });
}
</script>
</body>
</html>
`
