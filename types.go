package main

// Verdict classifies whether a target property fits a buyer's borrowing capacity
type Verdict int

const (
	Viable    Verdict = iota // Target is within capacity (equality counts as viable)
	Marginal                 // Target exceeds capacity by at most the marginal overage band
	NotViable                // Target exceeds capacity beyond the marginal band
)

func (v Verdict) String() string {
	switch v {
	case Viable:
		return "viable"
	case Marginal:
		return "marginal"
	case NotViable:
		return "not_viable"
	default:
		return "unknown"
	}
}

// Assumptions holds the session-wide market and credit assumptions shared by
// every calculation. All rates and fractions are decimals (0.045 = 4.5%),
// never percentage numbers.
type Assumptions struct {
	UFValue                float64 // CLP per UF
	AnnualRate             float64 // Nominal annual credit rate
	TermYears              int     // Credit term
	AppreciationYear1      float64 // Appreciation rate applied in year 1
	AppreciationYear2Plus  float64 // Appreciation rate applied from year 2 on
	DownPaymentFraction    float64 // Theoretical down payment as fraction of value
	InstallmentMonths      int     // Months over which a remaining down payment is paid
	BankFeeFraction        float64 // Operational bank fees as fraction of value
	TaxRate                float64 // Investment tax rate on full property value
	RecoverableTaxFraction float64 // Fraction of the tax that can be reclaimed
	HorizonYears           int     // Analysis horizon
}

// PropertyInput describes one property under evaluation. ValueUF is always
// 100% of the price; the financed amount is derived from it and is never
// stored independently.
type PropertyInput struct {
	ID                 string
	Name               string
	Location           string
	Typology           string
	FloorArea          float64
	ValueUF            float64 // Total property value in UF (100% of price)
	FinancingFraction  float64 // Loan-to-value, 0.5-1.0
	MonthlyRentCLP     float64
	BuildingFeeCLP     float64
	OtherCostsCLP      float64
	ReservationCLP     float64
	InitialDepositsCLP float64
	FurnishingCLP      float64
	ManagementCLP      float64
	SubsidyApplies     bool // Down-payment subsidy covers the theoretical down payment
	TaxApplies         bool // Investment tax applies to this purchase
	GraceMonths        int  // Informational only, not used in the formulas
}

// PropertyResult holds every derived figure for one property. It is computed
// fresh from a PropertyInput and Assumptions on each call and never mutated.
type PropertyResult struct {
	Input PropertyInput

	ValueCLP                  float64
	TheoreticalDownPaymentCLP float64
	SubsidyCLP                float64 // 0 when no subsidy applies
	FinancedUF                float64 // Always ValueUF x FinancingFraction
	FinancedCLP               float64
	BankFeesCLP               float64

	DividendUF  float64
	DividendCLP float64

	DownPaymentPaidCLP        float64 // Cash the buyer puts toward the down payment
	RemainingDownPaymentCLP   float64 // Down payment balance paid in installments (0 with subsidy)
	DownPaymentInstallmentCLP float64 // Monthly installment on that balance

	GrossMonthlyRentCLP           float64
	ExpensesWithInstallmentCLP    float64
	ExpensesWithoutInstallmentCLP float64
	CashFlowWithInstallmentCLP    float64
	CashFlowWithoutInstallmentCLP float64

	InvestmentTotalCLP float64

	GrossYield           float64 // Annual rent / property value
	NetYieldOnValue      float64 // Annual net cash flow / property value
	NetYieldOnInvestment float64 // Annual net cash flow / investment total

	FutureValueUF  float64
	FutureValueCLP float64
	CapitalGainCLP float64

	TaxCLP            float64
	RecoverableTaxCLP float64

	SubsidyGainCLP  float64
	CashFlowGainCLP float64
	GrossGainCLP    float64
	NetGainCLP      float64
	TotalGainCLP    float64
	ROI             float64
}

// PortfolioResult aggregates per-property results plus portfolio-level sums.
type PortfolioResult struct {
	Properties []PropertyResult

	InvestmentTotalCLP            float64
	GrossGainCLP                  float64
	NetGainCLP                    float64
	TotalGainCLP                  float64
	CashFlowWithInstallmentCLP    float64
	CashFlowWithoutInstallmentCLP float64
	CapitalGainCLP                float64
	SubsidyGainCLP                float64
	RecoverableTaxCLP             float64
	ROI                           float64
}

// IncomeProfile flags the declared income categories of a buyer. When several
// are set the most conservative multiplier wins.
type IncomeProfile struct {
	FixedSalary    bool // Dependent worker, fixed salary
	VariableSalary bool // Dependent worker, variable salary
	Independent    bool // Independent / freelance
}

// HasAny returns true if at least one income category is declared
func (p IncomeProfile) HasAny() bool {
	return p.FixedSalary || p.VariableSalary || p.Independent
}

// CapacityParams carries the raw inputs of the mortgage capacity calculator.
type CapacityParams struct {
	GrossIncomeCLP      float64
	CoIncomeCLP         float64 // Co-borrower income, added before adjustment
	Profile             IncomeProfile
	MonthlyDebtCLP      float64 // Existing monthly debt, used by the recommendations
	LoadFraction        float64 // Debt load over adjusted income, typically 0.25
	AnnualRate          float64
	TermYears           int
	UFValue             float64
	FinancingFractions  []float64 // Scenarios to evaluate, e.g. 0.80, 0.85, 0.90
	TargetValueUF       float64   // Optional target project for reverse search (0 = none)
	DividendOverrideCLP float64   // Optional fixed dividend instead of income sizing (0 = none)
}

// CapacityScenario is the capacity outcome for one financing fraction.
type CapacityScenario struct {
	FinancingFraction   float64
	MaxPropertyValueCLP float64
	MaxPropertyValueUF  float64
	DownPaymentCLP      float64
	DownPaymentUF       float64

	// Reverse search, populated when a target project value was supplied
	TargetDividendCLP float64
	TargetVerdict     Verdict
	TargetMessage     string
}

// CapacityResult is the full mortgage capacity outcome.
type CapacityResult struct {
	AdjustedIncomeCLP float64
	MaxPaymentCLP     float64
	MaxLoanCLP        float64
	MaxLoanUF         float64
	Scenarios         []CapacityScenario
}
