package main

// AggregatePortfolio maps ComputeProperty over every property and folds the
// results into portfolio totals. Input order is preserved in the output list
// because the UI renders properties in the order they were entered.
//
// Aggregation always succeeds: an empty portfolio yields all-zero sums and a
// zero ROI, and degenerate per-property inputs contribute whatever zero or
// non-zero figures they produced.
func AggregatePortfolio(a Assumptions, properties []PropertyInput) PortfolioResult {
	result := PortfolioResult{
		Properties: make([]PropertyResult, 0, len(properties)),
	}

	for _, p := range properties {
		r := ComputeProperty(a, p)
		result.Properties = append(result.Properties, r)

		result.InvestmentTotalCLP += r.InvestmentTotalCLP
		result.GrossGainCLP += r.GrossGainCLP
		result.NetGainCLP += r.NetGainCLP
		result.TotalGainCLP += r.TotalGainCLP
		result.CashFlowWithInstallmentCLP += r.CashFlowWithInstallmentCLP
		result.CashFlowWithoutInstallmentCLP += r.CashFlowWithoutInstallmentCLP
		result.CapitalGainCLP += r.CapitalGainCLP
		result.SubsidyGainCLP += r.SubsidyGainCLP
		result.RecoverableTaxCLP += r.RecoverableTaxCLP
	}

	if result.InvestmentTotalCLP > 0 {
		result.ROI = result.TotalGainCLP / result.InvestmentTotalCLP
	}

	return result
}
