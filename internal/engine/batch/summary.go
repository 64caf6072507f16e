package batch

// Summary aggregates a batch run.
type Summary struct {
	Households      int     `json:"households"`
	Failed          int     `json:"failed"`
	NotViable       int     `json:"not_viable"`
	TotalSystemCost float64 `json:"total_system_cost"`
	TotalPowerKW    float64 `json:"total_system_power_kw"`
	AnnualSavings   float64 `json:"total_annual_net_savings"`
	AnnualCO2Kg     float64 `json:"total_annual_co2_avoided_kg"`
	Trees           int64   `json:"total_trees_equivalent"`
}

// Summarize totals the successful results. Not-viable households count
// toward cost and emissions but not toward savings.
func Summarize(results []Result) Summary {
	s := Summary{Households: len(results)}
	for _, r := range results {
		if r.Estimate == nil {
			s.Failed++
			continue
		}
		e := r.Estimate
		s.TotalSystemCost += e.Economics.SystemCost
		s.TotalPowerKW += e.Economics.SystemPowerKW
		s.AnnualCO2Kg += e.Environmental.AnnualCO2AvoidedKg
		s.Trees += e.Environmental.TreesEquivalent
		if !e.Viable() {
			s.NotViable++
			continue
		}
		s.AnnualSavings += e.Economics.AnnualNetSavings
	}
	return s
}
