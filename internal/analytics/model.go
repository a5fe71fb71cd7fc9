package analytics

import (
	"time"

	"expansion/internal/domain"
)

// MonthlyRides aggregates completed rides of one city in one month.
type MonthlyRides struct {
	Month   domain.MonthKey `json:"month"`
	Rides   int64           `json:"rides"`
	Revenue float64         `json:"revenue"`
	Drivers int64           `json:"drivers"`
}

type ridesRow struct {
	Month   time.Time `db:"month"`
	Rides   int64     `db:"rides"`
	Revenue float64   `db:"revenue"`
	Drivers int64     `db:"drivers"`
}

type RidesResponse struct {
	CityID int64           `json:"city_id"`
	Names  []string        `json:"matched_names"`
	From   domain.MonthKey `json:"from"`
	To     domain.MonthKey `json:"to"`
	Months []MonthlyRides  `json:"months"`
}
