package domain

import (
	"maps"
	"slices"
	"time"
)

// CityPlan is the expansion plan of a single city. A city has at most one plan.
type CityPlan struct {
	CityID     int64                    `json:"city_id"`
	StartMonth MonthKey                 `json:"start_month"`
	Phases     []Phase                  `json:"phases"`
	Results    map[MonthKey]MonthResult `json:"results"`
	RealCosts  map[MonthKey]RealCost    `json:"real_costs,omitempty"`
	CreatedAt  time.Time                `json:"created_at,omitempty"`
	UpdatedAt  time.Time                `json:"updated_at,omitempty"`
}

// PlanHeader is the plan record without its separately stored sub-resources.
type PlanHeader struct {
	CityID     int64     `json:"city_id"`
	StartMonth MonthKey  `json:"start_month"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type Phase struct {
	Key                     PhaseKey   `json:"key"`
	Name                    string     `json:"name"`
	StartDate               *time.Time `json:"start_date,omitempty"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date,omitempty"`
	CompletionDate          *time.Time `json:"completion_date,omitempty"`
	Actions                 []Action   `json:"actions"`
}

type Action struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Link        string     `json:"link,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Responsible string     `json:"responsible,omitempty"`
}

type MonthResult struct {
	Rides                    int64    `json:"rides"`
	MarketingCost            float64  `json:"marketing_cost"`
	OperationalCost          float64  `json:"operational_cost"`
	ProjectedMarketingCost   *float64 `json:"projected_marketing_cost,omitempty"`
	ProjectedOperationalCost *float64 `json:"projected_operational_cost,omitempty"`
}

// RealCost is the actual spend recorded for one month, stored apart from the results.
type RealCost struct {
	MarketingCost   float64 `json:"marketing_cost"`
	OperationalCost float64 `json:"operational_cost"`
}

func (p CityPlan) Header() PlanHeader {
	return PlanHeader{CityID: p.CityID, StartMonth: p.StartMonth, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

// PhaseIndex returns the position of the phase with the given key, or -1.
func (p CityPlan) PhaseIndex(key PhaseKey) int {
	return slices.IndexFunc(p.Phases, func(ph Phase) bool { return ph.Key == key })
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (p CityPlan) Clone() CityPlan {
	out := p
	out.Phases = make([]Phase, len(p.Phases))
	for i, ph := range p.Phases {
		out.Phases[i] = ph.Clone()
	}
	out.Results = maps.Clone(p.Results)
	if out.Results == nil {
		out.Results = map[MonthKey]MonthResult{}
	}
	out.RealCosts = maps.Clone(p.RealCosts)
	return out
}

func (ph Phase) Clone() Phase {
	out := ph
	out.StartDate = cloneTime(ph.StartDate)
	out.EstimatedCompletionDate = cloneTime(ph.EstimatedCompletionDate)
	out.CompletionDate = cloneTime(ph.CompletionDate)
	out.Actions = make([]Action, len(ph.Actions))
	for i, a := range ph.Actions {
		a.DueDate = cloneTime(a.DueDate)
		a.Tags = slices.Clone(a.Tags)
		out.Actions[i] = a
	}
	return out
}

// Progress is the share of completed actions in percent; 0 when the phase has no actions.
func (ph Phase) Progress() float64 {
	if len(ph.Actions) == 0 {
		return 0
	}
	done := 0
	for _, a := range ph.Actions {
		if a.Completed {
			done++
		}
	}
	return float64(done) / float64(len(ph.Actions)) * 100
}

func (ph Phase) Complete() bool {
	return ph.Progress() == 100
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
