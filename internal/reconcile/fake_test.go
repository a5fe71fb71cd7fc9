package reconcile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"expansion/internal/domain"
)

var errBackendDown = errors.New("backend indisponível")

// fakeBackend is an in-memory backend-of-record. fail makes the named method return err.
type fakeBackend struct {
	mu        sync.Mutex
	cities    map[int64]domain.City
	plans     map[int64]domain.PlanHeader
	results   map[int64]map[domain.MonthKey]domain.MonthResult
	realCosts map[int64]map[domain.MonthKey]domain.RealCost
	details   map[int64][]domain.Phase
	blocks    []domain.MarketBlock
	fail      map[string]error
	calls     []string
}

func newFakeBackend(cities ...domain.City) *fakeBackend {
	f := &fakeBackend{
		cities:    map[int64]domain.City{},
		plans:     map[int64]domain.PlanHeader{},
		results:   map[int64]map[domain.MonthKey]domain.MonthResult{},
		realCosts: map[int64]map[domain.MonthKey]domain.RealCost{},
		details:   map[int64][]domain.Phase{},
		fail:      map[string]error{},
	}
	for _, c := range cities {
		f.cities[c.ID] = c
	}
	return f
}

func (f *fakeBackend) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
	return f.fail[method]
}

func (f *fakeBackend) failOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[method] = err
}

func (f *fakeBackend) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *fakeBackend) ListCities(ctx context.Context) ([]domain.City, error) {
	if err := f.enter("ListCities"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := slices.Sorted(maps.Keys(f.cities))
	out := make([]domain.City, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.cities[id])
	}
	return out, nil
}

func (f *fakeBackend) SaveCities(ctx context.Context, cities []domain.City) error {
	if err := f.enter("SaveCities"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range cities {
		f.cities[c.ID] = c
	}
	return nil
}

func (f *fakeBackend) UpdateCityStatus(ctx context.Context, cityID int64, status domain.Status) error {
	if err := f.enter("UpdateCityStatus"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cities[cityID]
	if !ok {
		return fmt.Errorf("cidade %d: %w", cityID, domain.ErrNotFound)
	}
	c.Status = status
	f.cities[cityID] = c
	return nil
}

func (f *fakeBackend) ListPlans(ctx context.Context) ([]domain.PlanHeader, error) {
	if err := f.enter("ListPlans"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := slices.Sorted(maps.Keys(f.plans))
	out := make([]domain.PlanHeader, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.plans[id])
	}
	return out, nil
}

func (f *fakeBackend) CreatePlan(ctx context.Context, header domain.PlanHeader) (domain.PlanHeader, error) {
	if err := f.enter("CreatePlan"); err != nil {
		return domain.PlanHeader{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	header.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.plans[header.CityID] = header
	return header, nil
}

func (f *fakeBackend) DeletePlan(ctx context.Context, cityID int64) error {
	if err := f.enter("DeletePlan"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.plans, cityID)
	delete(f.details, cityID)
	return nil
}

func (f *fakeBackend) GetPlanResults(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error) {
	if err := f.enter("GetPlanResults"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := maps.Clone(f.results[cityID])
	if out == nil {
		out = map[domain.MonthKey]domain.MonthResult{}
	}
	for month, rc := range f.realCosts[cityID] {
		r := out[month]
		r.MarketingCost, r.OperationalCost = rc.MarketingCost, rc.OperationalCost
		out[month] = r
	}
	return out, nil
}

func (f *fakeBackend) SavePlanResults(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error {
	if err := f.enter("SavePlanResults"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.results[cityID] == nil {
		f.results[cityID] = map[domain.MonthKey]domain.MonthResult{}
	}
	maps.Copy(f.results[cityID], results)
	return nil
}

func (f *fakeBackend) DeletePlanResults(ctx context.Context, cityID int64) error {
	if err := f.enter("DeletePlanResults"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.results, cityID)
	delete(f.realCosts, cityID)
	return nil
}

func (f *fakeBackend) GetPlanRealCosts(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.RealCost, error) {
	if err := f.enter("GetPlanRealCosts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.realCosts[cityID]), nil
}

func (f *fakeBackend) SaveRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error {
	if err := f.enter("SaveRealCosts"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.realCosts[cityID] == nil {
		f.realCosts[cityID] = map[domain.MonthKey]domain.RealCost{}
	}
	maps.Copy(f.realCosts[cityID], costs)
	return nil
}

func (f *fakeBackend) GetPlanDetails(ctx context.Context, cityID int64) ([]domain.Phase, error) {
	if err := f.enter("GetPlanDetails"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	phases, ok := f.details[cityID]
	if !ok {
		return nil, nil
	}
	return domain.CityPlan{Phases: phases}.Clone().Phases, nil
}

func (f *fakeBackend) SavePlanDetails(ctx context.Context, cityID int64, phases []domain.Phase) error {
	if err := f.enter("SavePlanDetails"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[cityID] = domain.CityPlan{Phases: phases}.Clone().Phases
	return nil
}

func (f *fakeBackend) ListBlocks(ctx context.Context) ([]domain.MarketBlock, error) {
	if err := f.enter("ListBlocks"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.MarketBlock, len(f.blocks))
	for i, b := range f.blocks {
		out[i] = b.Clone()
	}
	return out, nil
}

func (f *fakeBackend) SaveBlocks(ctx context.Context, blocks []domain.MarketBlock) error {
	if err := f.enter("SaveBlocks"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = make([]domain.MarketBlock, len(blocks))
	for i, b := range blocks {
		f.blocks[i] = b.Clone()
	}
	return nil
}

func (f *fakeBackend) city(id int64) domain.City {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cities[id]
}
