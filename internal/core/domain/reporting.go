package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats aggregates event counts by status and fund totals across
// all cashbooks. Counts cover the full closed status set so that the four
// buckets always partition the event population.
type DashboardStats struct {
	TotalEvents     int `json:"totalEvents"`
	UpcomingEvents  int `json:"upcomingEvents"`
	OngoingEvents   int `json:"ongoingEvents"`
	CompletedEvents int `json:"completedEvents"`
	CancelledEvents int `json:"cancelledEvents"`

	TotalFundsRaised decimal.Decimal `json:"totalFundsRaised"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`
}

// FundData is the composed view of a cashbook and its full transaction list,
// with transaction ids normalized back to their per-cashbook local form.
type FundData struct {
	FundsRaised      decimal.Decimal `json:"fundsRaised"`
	Expenses         decimal.Decimal `json:"expenses"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Transactions     []Transaction   `json:"transactions"`
}

// EventsWithFunds pairs the full event collection with the full cashbook
// collection, as loaded together for the events listing page.
type EventsWithFunds struct {
	Events    []Event    `json:"events"`
	Cashbooks []Cashbook `json:"cashbooks"`
}
