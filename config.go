package main

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// MarketConfig holds the UF value and appreciation assumptions
type MarketConfig struct {
	UFValue            float64 `yaml:"uf_value" json:"uf_value"`                         // CLP per UF (overridden by the indicator endpoint when reachable)
	UFEndpoint         string  `yaml:"uf_endpoint" json:"uf_endpoint"`                   // Daily indicator endpoint (findic.cl-style serie JSON)
	AppreciationSource string  `yaml:"appreciation_source" json:"appreciation_source"`   // Preset ID or "custom"
	AppreciationYear1  float64 `yaml:"appreciation_year1" json:"appreciation_year1"`     // Used when source is "custom"
	AppreciationYear2  float64 `yaml:"appreciation_year2plus" json:"appreciation_year2plus"`
}

// CreditConfig holds the mortgage credit assumptions
type CreditConfig struct {
	AnnualRate          float64 `yaml:"annual_rate" json:"annual_rate"`                     // Nominal annual rate as decimal (0.045 = 4.5%)
	TermYears           int     `yaml:"term_years" json:"term_years"`                       // e.g., 30
	DownPaymentFraction float64 `yaml:"down_payment_fraction" json:"down_payment_fraction"` // Theoretical down payment (0.10 = 10%)
	InstallmentMonths   int     `yaml:"installment_months" json:"installment_months"`       // Months to pay a remaining down payment (e.g., 48)
	BankFeeFraction     float64 `yaml:"bank_fee_fraction" json:"bank_fee_fraction"`         // Operational fees over value (0.01 = 1%)
}

// InvestmentTaxConfig holds the investment tax treatment
type InvestmentTaxConfig struct {
	Rate                float64 `yaml:"rate" json:"rate"`                                 // e.g., 0.19
	RecoverableFraction float64 `yaml:"recoverable_fraction" json:"recoverable_fraction"` // Part actually reclaimable (e.g., 0.70)
}

// AnalysisConfig holds the projection horizon
type AnalysisConfig struct {
	HorizonYears int `yaml:"horizon_years" json:"horizon_years"`
}

// CapacityConfig holds the defaults of the capacity calculator
type CapacityConfig struct {
	LoadFraction       float64   `yaml:"load_fraction" json:"load_fraction"`             // Debt load over adjusted income, default 0.25, valid 0.20-0.35
	FinancingFractions []float64 `yaml:"financing_fractions" json:"financing_fractions"` // Scenarios, default 0.80/0.85/0.90

	// Default client used by -capacity runs; the web and interactive
	// surfaces override these per request.
	GrossIncomeCLP float64 `yaml:"gross_income_clp" json:"gross_income_clp"`
	CoIncomeCLP    float64 `yaml:"co_income_clp" json:"co_income_clp"`
	IncomeType     string  `yaml:"income_type" json:"income_type"` // "fixed", "variable", or "independent"
	MonthlyDebtCLP float64 `yaml:"monthly_debt_clp" json:"monthly_debt_clp"`
	TargetValueUF  float64 `yaml:"target_value_uf" json:"target_value_uf"` // 0 disables the reverse search
}

// Profile maps the configured income type to the adjustment profile
func (cc CapacityConfig) Profile() IncomeProfile {
	switch cc.IncomeType {
	case "variable":
		return IncomeProfile{VariableSalary: true}
	case "independent":
		return IncomeProfile{Independent: true}
	default:
		return IncomeProfile{FixedSalary: true}
	}
}

// PropertyConfig represents one property from YAML
type PropertyConfig struct {
	ID              string  `yaml:"id" json:"id"`
	Name            string  `yaml:"name" json:"name"`
	Location        string  `yaml:"location" json:"location"`
	Typology        string  `yaml:"typology" json:"typology"`
	FloorArea       float64 `yaml:"floor_area" json:"floor_area"`
	ValueUF         float64 `yaml:"value_uf" json:"value_uf"` // Always 100% of price, never the financed portion
	Financing       float64 `yaml:"financing_fraction" json:"financing_fraction"`
	MonthlyRent     float64 `yaml:"monthly_rent_clp" json:"monthly_rent_clp"`
	BuildingFee     float64 `yaml:"building_fee_clp" json:"building_fee_clp"`
	OtherCosts      float64 `yaml:"other_costs_clp" json:"other_costs_clp"`
	Reservation     float64 `yaml:"reservation_clp" json:"reservation_clp"`
	InitialDeposits float64 `yaml:"initial_deposits_clp" json:"initial_deposits_clp"`
	Furnishing      float64 `yaml:"furnishing_clp" json:"furnishing_clp"`
	Management      float64 `yaml:"management_clp" json:"management_clp"`
	SubsidyApplies  bool    `yaml:"subsidy_applies" json:"subsidy_applies"`
	TaxApplies      bool    `yaml:"tax_applies" json:"tax_applies"`
	GraceMonths     int     `yaml:"grace_months" json:"grace_months"`
}

// ToInput converts a YAML property entry to engine input
func (pc PropertyConfig) ToInput() PropertyInput {
	return PropertyInput{
		ID:                 pc.ID,
		Name:               pc.Name,
		Location:           pc.Location,
		Typology:           pc.Typology,
		FloorArea:          pc.FloorArea,
		ValueUF:            pc.ValueUF,
		FinancingFraction:  pc.Financing,
		MonthlyRentCLP:     pc.MonthlyRent,
		BuildingFeeCLP:     pc.BuildingFee,
		OtherCostsCLP:      pc.OtherCosts,
		ReservationCLP:     pc.Reservation,
		InitialDepositsCLP: pc.InitialDeposits,
		FurnishingCLP:      pc.Furnishing,
		ManagementCLP:      pc.Management,
		SubsidyApplies:     pc.SubsidyApplies,
		TaxApplies:         pc.TaxApplies,
		GraceMonths:        pc.GraceMonths,
	}
}

// ServerConfig holds the web server settings
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"` // e.g., "localhost:0" for auto port
}

// SensitivityConfig holds the sensitivity grid ranges
type SensitivityConfig struct {
	RateMin       float64   `yaml:"rate_min" json:"rate_min"`           // Min annual rate (e.g., 0.03)
	RateMax       float64   `yaml:"rate_max" json:"rate_max"`           // Max annual rate (e.g., 0.06)
	RateStep      float64   `yaml:"rate_step" json:"rate_step"`         // Step (e.g., 0.005)
	TermsYears    []int     `yaml:"terms_years" json:"terms_years"`     // Terms to compare (e.g., 15/20/25/30)
	Appreciations []float64 `yaml:"appreciations" json:"appreciations"` // Long-run appreciation rates for the ROI grid
	Horizons      []int     `yaml:"horizons" json:"horizons"`           // Horizons for the ROI grid
}

// Config holds the complete configuration
type Config struct {
	Market      MarketConfig        `yaml:"market" json:"market"`
	Credit      CreditConfig        `yaml:"credit" json:"credit"`
	Tax         InvestmentTaxConfig `yaml:"tax" json:"tax"`
	Analysis    AnalysisConfig      `yaml:"analysis" json:"analysis"`
	Capacity    CapacityConfig      `yaml:"capacity" json:"capacity"`
	Properties  []PropertyConfig    `yaml:"properties" json:"properties"`
	Server      ServerConfig        `yaml:"server" json:"server"`
	Sensitivity SensitivityConfig   `yaml:"sensitivity" json:"sensitivity"`
}

// BuildAssumptions resolves the engine assumptions from config, applying the
// selected appreciation preset when one is configured.
func (c *Config) BuildAssumptions() Assumptions {
	year1 := c.Market.AppreciationYear1
	year2 := c.Market.AppreciationYear2

	if c.Market.AppreciationSource != "" && c.Market.AppreciationSource != "custom" {
		if preset := FindAppreciationPreset(c.Market.AppreciationSource); preset != nil {
			year1 = preset.Year1
			year2 = preset.Year2Plus
		}
	}

	return Assumptions{
		UFValue:                c.Market.UFValue,
		AnnualRate:             c.Credit.AnnualRate,
		TermYears:              c.Credit.TermYears,
		AppreciationYear1:      year1,
		AppreciationYear2Plus:  year2,
		DownPaymentFraction:    c.Credit.DownPaymentFraction,
		InstallmentMonths:      c.Credit.InstallmentMonths,
		BankFeeFraction:        c.Credit.BankFeeFraction,
		TaxRate:                c.Tax.Rate,
		RecoverableTaxFraction: c.Tax.RecoverableFraction,
		HorizonYears:           c.Analysis.HorizonYears,
	}
}

// PropertyInputs converts every configured property to engine input,
// preserving file order.
func (c *Config) PropertyInputs() []PropertyInput {
	inputs := make([]PropertyInput, 0, len(c.Properties))
	for _, pc := range c.Properties {
		inputs = append(inputs, pc.ToInput())
	}
	return inputs
}

// Validate checks the invariants the engine relies on: non-negative rates and
// fractions, positive term and horizon.
func (c *Config) Validate() error {
	if c.Market.UFValue < 0 {
		return fmt.Errorf("market.uf_value must not be negative")
	}
	if c.Credit.AnnualRate < 0 || c.Credit.DownPaymentFraction < 0 || c.Credit.BankFeeFraction < 0 {
		return fmt.Errorf("credit rates and fractions must not be negative")
	}
	if c.Credit.TermYears <= 0 {
		return fmt.Errorf("credit.term_years must be positive, got %d", c.Credit.TermYears)
	}
	if c.Analysis.HorizonYears <= 0 {
		return fmt.Errorf("analysis.horizon_years must be positive, got %d", c.Analysis.HorizonYears)
	}
	if c.Tax.Rate < 0 || c.Tax.RecoverableFraction < 0 {
		return fmt.Errorf("tax rate and recoverable fraction must not be negative")
	}
	if c.Capacity.LoadFraction < 0.20 || c.Capacity.LoadFraction > 0.35 {
		return fmt.Errorf("capacity.load_fraction must be between 0.20 and 0.35, got %.2f", c.Capacity.LoadFraction)
	}
	for _, f := range c.Capacity.FinancingFractions {
		if f <= 0 || f > 1 {
			return fmt.Errorf("capacity financing fraction %.2f outside (0, 1]", f)
		}
	}
	for _, p := range c.Properties {
		if p.Financing < 0.5 || p.Financing > 1.0 {
			return fmt.Errorf("property %q: financing_fraction %.2f outside 0.5-1.0", p.Name, p.Financing)
		}
		if p.ValueUF < 0 {
			return fmt.Errorf("property %q: value_uf must not be negative", p.Name)
		}
	}
	return nil
}

// LoadConfig loads configuration from a YAML file and applies environment
// overrides. A missing file is an error; use LoadDefaultConfig for the
// embedded defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDefaultConfig loads the embedded default configuration. It handles the
// percentage format ("4.5%" -> 0.045).
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(defaultConfigYAML)), &config); err != nil {
		return nil, err
	}
	config.applyEnvOverrides()
	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Investment Simulator Configuration
#
# VALUE FORMATS
#   Percentages: 0.045 = 4.5% (decimals; "4.5%" is also accepted)
#   UF amounts:  value_uf is ALWAYS 100% of the property price,
#                never the financed portion
#   CLP amounts: plain pesos (e.g., 500000)
#
# RUN COMMANDS
#   ./goInvestSimulator                  Interactive mode selector
#   ./goInvestSimulator -portfolio       Portfolio simulation (console)
#   ./goInvestSimulator -capacity        Capacity calculator (console)
#   ./goInvestSimulator -web             Web server with JSON API
#   ./goInvestSimulator -html -pdf       Write HTML and PDF reports
#   ./goInvestSimulator -help            Show all options

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// applyEnvOverrides lets deployment env vars override the file settings.
// A .env file is honoured when present.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if addr := os.Getenv("SIM_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if endpoint := os.Getenv("SIM_UF_ENDPOINT"); endpoint != "" {
		c.Market.UFEndpoint = endpoint
	}
	if uf := os.Getenv("SIM_UF_VALUE"); uf != "" {
		if value, err := strconv.ParseFloat(uf, 64); err == nil && value > 0 {
			c.Market.UFValue = value
		}
	}
}

// preprocessPercentages converts percentage values like "4.5%" to decimal
// "0.045" so the YAML can be written either way.
func preprocessPercentages(content string) string {
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
