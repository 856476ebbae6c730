package response

import (
	"toaigo/internal/usecase/queries"
)

type FinancialSummaryResponse struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCommission float64 `json:"totalCommission"`
	TotalPayout     float64 `json:"totalPayout"`
}

func FromFinancialSummary(s queries.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalRevenue:    s.TotalRevenue,
		TotalCommission: s.TotalCommission,
		TotalPayout:     s.TotalPayout,
	}
}
