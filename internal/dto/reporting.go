package dto

import (
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse carries event counts per status and fund totals
// across all cashbooks.
type DashboardStatsResponse struct {
	TotalEvents     int `json:"totalEvents"`
	UpcomingEvents  int `json:"upcomingEvents"`
	OngoingEvents   int `json:"ongoingEvents"`
	CompletedEvents int `json:"completedEvents"`
	CancelledEvents int `json:"cancelledEvents"`

	TotalFundsRaised decimal.Decimal `json:"totalFundsRaised"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`

	TotalFundsRaisedStr string `json:"totalFundsRaisedDisplay"`
	TotalExpensesStr    string `json:"totalExpensesDisplay"`
	TotalBalanceStr     string `json:"totalBalanceDisplay"`
}

// ToDashboardStatsResponse converts domain DashboardStats to a DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalEvents:         s.TotalEvents,
		UpcomingEvents:      s.UpcomingEvents,
		OngoingEvents:       s.OngoingEvents,
		CompletedEvents:     s.CompletedEvents,
		CancelledEvents:     s.CancelledEvents,
		TotalFundsRaised:    s.TotalFundsRaised,
		TotalExpenses:       s.TotalExpenses,
		TotalBalance:        s.TotalBalance,
		TotalFundsRaisedStr: utils.FormatINR(s.TotalFundsRaised),
		TotalExpensesStr:    utils.FormatINR(s.TotalExpenses),
		TotalBalanceStr:     utils.FormatINR(s.TotalBalance),
	}
}
