package dashboard

import (
	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"expansion/internal/projection"
)

type Response struct {
	ByStatus                         map[domain.Status]int64 `json:"by_status"`
	ActiveRevenue                    float64                 `json:"active_revenue"`
	Averages                         projection.Averages     `json:"averages"`
	Plans                            int64                   `json:"plans"`
	MonthlyTotals                    []MonthlyTotal          `json:"monthly_totals"`
	ComparisonPreviousMonthRides     float64                 `json:"comparison_previous_month_rides"`
	ComparisonPreviousMonthTotalCost float64                 `json:"comparison_previous_month_total_cost"`
}

type MonthlyTotal struct {
	Month           domain.MonthKey `json:"month"`
	Cities          int64           `json:"cities"`
	Rides           int64           `json:"rides"`
	MarketingCost   float64         `json:"marketing_cost"`
	OperationalCost float64         `json:"operational_cost"`
	Revenue         float64         `json:"revenue"`
}

func (m MonthlyTotal) TotalCost() float64 {
	return m.MarketingCost + m.OperationalCost
}

func convertMonthlyTotals(rows []db.GetMonthlyTotalsRow) []MonthlyTotal {
	result := make([]MonthlyTotal, len(rows))
	for i, r := range rows {
		result[i] = MonthlyTotal{
			Month:           domain.MonthKey(r.Month),
			Cities:          r.Cities,
			Rides:           r.Rides,
			MarketingCost:   r.MarketingCost,
			OperationalCost: r.OperationalCost,
			Revenue:         float64(r.Rides) * projection.PricePerRide,
		}
	}
	return result
}
