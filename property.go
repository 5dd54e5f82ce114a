package main

import "math"

// ComputeProperty derives every investment figure for a single property from
// the shared assumptions. The calculation is a deterministic single pass and
// never mutates its inputs.
//
// The financed amount is always ValueUF × FinancingFraction. ValueUF holds
// 100% of the price by contract; deriving the financed amount any other way
// reintroduces the dual-source-of-truth bug this contract exists to prevent,
// so no alternate derivation path is allowed anywhere.
func ComputeProperty(a Assumptions, p PropertyInput) PropertyResult {
	r := PropertyResult{Input: p}

	// Base values. Everything except the dividend uses the full 100% value.
	r.ValueCLP = UFToCLP(p.ValueUF, a.UFValue)
	r.TheoreticalDownPaymentCLP = r.ValueCLP * a.DownPaymentFraction
	r.BankFeesCLP = r.ValueCLP * a.BankFeeFraction

	// Financed amount: only the dividend is computed from it.
	r.FinancedUF = p.ValueUF * p.FinancingFraction
	r.FinancedCLP = UFToCLP(r.FinancedUF, a.UFValue)

	// Down payment branch. A subsidy fully covers the theoretical down
	// payment, so with the subsidy the buyer's cash is only the reservation
	// and initial deposits; nothing remains to pay in installments.
	if p.SubsidyApplies {
		r.SubsidyCLP = r.TheoreticalDownPaymentCLP
		r.DownPaymentPaidCLP = p.ReservationCLP + p.InitialDepositsCLP
		r.RemainingDownPaymentCLP = 0
		r.DownPaymentInstallmentCLP = 0
	} else {
		r.RemainingDownPaymentCLP = math.Max(r.TheoreticalDownPaymentCLP-p.ReservationCLP-p.InitialDepositsCLP, 0)
		if a.InstallmentMonths > 0 {
			r.DownPaymentInstallmentCLP = r.RemainingDownPaymentCLP / float64(a.InstallmentMonths)
		}
		r.DownPaymentPaidCLP = r.RemainingDownPaymentCLP + p.ReservationCLP + p.InitialDepositsCLP
	}

	// Credit dividend.
	r.DividendUF = MonthlyPayment(r.FinancedUF, a.AnnualRate, a.TermYears)
	r.DividendCLP = UFToCLP(r.DividendUF, a.UFValue)

	// Monthly cash flows, with and without the down-payment installment.
	// Both framings are shown side by side by the UI; neither replaces the
	// other.
	r.GrossMonthlyRentCLP = p.MonthlyRentCLP
	base := r.DividendCLP + p.BuildingFeeCLP + p.OtherCostsCLP
	r.ExpensesWithoutInstallmentCLP = base
	r.ExpensesWithInstallmentCLP = base + r.DownPaymentInstallmentCLP
	r.CashFlowWithoutInstallmentCLP = r.GrossMonthlyRentCLP - r.ExpensesWithoutInstallmentCLP
	r.CashFlowWithInstallmentCLP = r.GrossMonthlyRentCLP - r.ExpensesWithInstallmentCLP

	// Cash actually committed.
	r.InvestmentTotalCLP = math.Max(r.DownPaymentPaidCLP+r.BankFeesCLP+p.FurnishingCLP+p.ManagementCLP, 0)

	// Yields.
	annualFlow := r.CashFlowWithInstallmentCLP * 12
	if r.ValueCLP > 0 {
		r.GrossYield = (p.MonthlyRentCLP * 12) / r.ValueCLP
		r.NetYieldOnValue = annualFlow / r.ValueCLP
	}
	if r.InvestmentTotalCLP > 0 {
		r.NetYieldOnInvestment = annualFlow / r.InvestmentTotalCLP
	}

	// Appreciation over the horizon: year 1 compounds at its own rate, years
	// 2..horizon at the long-run rate.
	futureUF := p.ValueUF
	for year := 1; year <= a.HorizonYears; year++ {
		if year == 1 {
			futureUF *= 1 + a.AppreciationYear1
		} else {
			futureUF *= 1 + a.AppreciationYear2Plus
		}
	}
	r.FutureValueUF = futureUF
	r.FutureValueCLP = UFToCLP(futureUF, a.UFValue)
	r.CapitalGainCLP = r.FutureValueCLP - r.ValueCLP

	// Investment tax. The taxable base is the full property value, a known
	// simplification of the narrower construction-value base.
	if p.TaxApplies {
		r.TaxCLP = r.ValueCLP * a.TaxRate
		r.RecoverableTaxCLP = r.TaxCLP * a.RecoverableTaxFraction
	}

	// Gain rollups.
	r.SubsidyGainCLP = r.SubsidyCLP
	r.CashFlowGainCLP = r.CashFlowWithInstallmentCLP * 12 * float64(a.HorizonYears)
	r.GrossGainCLP = r.CapitalGainCLP + r.SubsidyGainCLP
	r.NetGainCLP = r.GrossGainCLP + r.CashFlowGainCLP
	r.TotalGainCLP = r.NetGainCLP + r.RecoverableTaxCLP
	if r.InvestmentTotalCLP > 0 {
		r.ROI = r.TotalGainCLP / r.InvestmentTotalCLP
	}

	return r
}
