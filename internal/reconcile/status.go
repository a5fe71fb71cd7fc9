package reconcile

import (
	"sort"

	"expansion/internal/domain"
)

// DeriveStatus applies the plan-progress rule to a city's current status.
// A fully complete plan consolidates the city; completing every phase that gates
// expansion (and not the rest) moves it to Expansion. Anything else keeps current.
func DeriveStatus(plan domain.CityPlan, current domain.Status) domain.Status {
	if len(plan.Phases) == 0 {
		return current
	}

	allDone, gatesDone, hasGate := true, true, false
	for _, ph := range plan.Phases {
		done := ph.Complete()
		if !done {
			allDone = false
		}
		if def, ok := domain.LookupPhase(ph.Key); ok && def.GatesExpansion {
			hasGate = true
			if !done {
				gatesDone = false
			}
		}
	}

	switch {
	case allDone:
		return domain.StatusConsolidated
	case hasGate && gatesDone:
		return domain.StatusExpansion
	default:
		return current
	}
}

type StatusCorrection struct {
	CityID int64         `json:"city_id"`
	From   domain.Status `json:"from"`
	To     domain.Status `json:"to"`
}

// ReconcileStatuses compares the two stored collections. Plan state wins: every
// city that owns a plan must be at least Planning. Plans whose city is unknown
// are ignored. Corrections are ordered by city id.
func ReconcileStatuses(cities []domain.City, plans []domain.CityPlan) []StatusCorrection {
	byID := make(map[int64]domain.City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}

	var out []StatusCorrection
	for _, p := range plans {
		city, ok := byID[p.CityID]
		if !ok || city.Status.AtLeast(domain.StatusPlanning) {
			continue
		}
		out = append(out, StatusCorrection{CityID: city.ID, From: city.Status, To: domain.StatusPlanning})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CityID < out[j].CityID })
	return out
}
