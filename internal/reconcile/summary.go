package reconcile

import (
	"expansion/internal/domain"
	"expansion/internal/projection"
)

// Portfolio is the dashboard headline over the current view.
type Portfolio struct {
	ByStatus map[domain.Status]int `json:"by_status"`
	// ActiveRevenue is the Medium-scenario potential revenue of cities at Planning or later.
	ActiveRevenue float64             `json:"active_revenue"`
	Averages      projection.Averages `json:"averages"`
	Plans         int                 `json:"plans"`
	Blocks        int                 `json:"blocks"`
}

func (s *Store) Portfolio() Portfolio {
	cities := s.Cities()

	out := Portfolio{
		ByStatus: map[domain.Status]int{},
		Averages: projection.StateAverages(cities),
	}
	for _, c := range cities {
		out.ByStatus[c.Status]++
		if c.Status.AtLeast(domain.StatusPlanning) {
			out.ActiveRevenue += projection.PotentialRevenue(c, projection.DefaultScenario)
		}
	}

	s.mu.RLock()
	out.Plans = len(s.plans)
	out.Blocks = len(s.blocks)
	s.mu.RUnlock()
	return out
}
