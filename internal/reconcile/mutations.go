package reconcile

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"expansion/infra/metrics"
	"expansion/internal/domain"
	"go.uber.org/zap"
)

// ActionUpdate describes a change to one action. Nil fields are left untouched.
type ActionUpdate struct {
	Delete      bool
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Link        *string
	Tags        []string
	Responsible *string
}

// PhaseUpdate patches phase dates. Nil fields are left untouched.
type PhaseUpdate struct {
	StartDate               *time.Time
	EstimatedCompletionDate *time.Time
	CompletionDate          *time.Time
}

func (s *Store) failed(op string, err error) error {
	metrics.WriteThroughFailures.WithLabelValues(op).Inc()
	s.log.Error("falha ao persistir alteração", zap.String("operation", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}

// CreatePlan starts the canonical plan for a city and moves it to Planning.
// It is rejected when the city already has a plan and is in Planning.
func (s *Store) CreatePlan(ctx context.Context, cityID int64) error {
	s.op.Lock()
	defer s.op.Unlock()

	city, ok := s.City(cityID)
	if !ok {
		return domain.ErrCityNotFound
	}
	if _, exists := s.Plan(cityID); exists && city.Status == domain.StatusPlanning {
		return domain.ErrPlanAlreadyActive
	}

	anchor := s.anchor(city)
	plan := domain.CityPlan{
		CityID:     cityID,
		StartMonth: domain.MonthKeyOf(anchor),
		Phases:     domain.PhaseTemplate(anchor, s.newID),
		Results:    map[domain.MonthKey]domain.MonthResult{},
		CreatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	s.plans[cityID] = plan.Clone()
	s.mu.Unlock()

	if _, err := s.backend.CreatePlan(ctx, plan.Header()); err != nil {
		return s.failed("criar plano", err)
	}
	if err := s.backend.SavePlanDetails(ctx, cityID, plan.Phases); err != nil {
		return s.failed("salvar fases do plano", err)
	}
	if err := s.setStatus(ctx, cityID, domain.StatusPlanning); err != nil {
		return err
	}
	return s.reload(ctx)
}

// DeletePlan removes the plan and its results and returns the city to NotServed.
func (s *Store) DeletePlan(ctx context.Context, cityID int64) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	delete(s.plans, cityID)
	s.mu.Unlock()

	if err := s.backend.DeletePlan(ctx, cityID); err != nil {
		return s.failed("excluir plano", err)
	}
	if err := s.backend.DeletePlanResults(ctx, cityID); err != nil {
		return s.failed("excluir resultados do plano", err)
	}
	if err := s.setStatus(ctx, cityID, domain.StatusNotServed); err != nil {
		return err
	}
	return s.reload(ctx)
}

// UpdatePlanAction deletes (update.Delete), appends (empty actionID) or patches
// an action of a phase, persists the phases and re-derives the city status.
// It returns the id of the affected action.
func (s *Store) UpdatePlanAction(ctx context.Context, cityID int64, phase domain.PhaseKey, actionID string, update ActionUpdate) (string, error) {
	s.op.Lock()
	defer s.op.Unlock()

	plan, ok := s.Plan(cityID)
	if !ok {
		return "", domain.ErrPlanNotFound
	}
	pi := plan.PhaseIndex(phase)
	if pi < 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrPhaseNotFound, phase)
	}
	ph := &plan.Phases[pi]

	switch {
	case update.Delete:
		ai := actionIndex(ph.Actions, actionID)
		if ai < 0 {
			return "", domain.ErrActionNotFound
		}
		ph.Actions = slices.Delete(ph.Actions, ai, ai+1)
	case actionID == "":
		action := domain.Action{ID: s.newID(), CreatedAt: s.now().UTC()}
		applyAction(&action, update)
		ph.Actions = append(ph.Actions, action)
		actionID = action.ID
	default:
		ai := actionIndex(ph.Actions, actionID)
		if ai < 0 {
			return "", domain.ErrActionNotFound
		}
		applyAction(&ph.Actions[ai], update)
	}

	s.storePlan(plan)
	if err := s.backend.SavePlanDetails(ctx, cityID, plan.Phases); err != nil {
		return actionID, s.failed("salvar ação", err)
	}
	return actionID, s.deriveStatus(ctx, plan)
}

// UpdatePlanPhase patches the dates of one phase.
func (s *Store) UpdatePlanPhase(ctx context.Context, cityID int64, phase domain.PhaseKey, update PhaseUpdate) error {
	s.op.Lock()
	defer s.op.Unlock()

	plan, ok := s.Plan(cityID)
	if !ok {
		return domain.ErrPlanNotFound
	}
	pi := plan.PhaseIndex(phase)
	if pi < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPhaseNotFound, phase)
	}
	ph := &plan.Phases[pi]
	if update.StartDate != nil {
		ph.StartDate = update.StartDate
	}
	if update.EstimatedCompletionDate != nil {
		ph.EstimatedCompletionDate = update.EstimatedCompletionDate
	}
	if update.CompletionDate != nil {
		ph.CompletionDate = update.CompletionDate
	}

	s.storePlan(plan)
	if err := s.backend.SavePlanDetails(ctx, cityID, plan.Phases); err != nil {
		return s.failed("salvar fase", err)
	}
	return nil
}

// UpdatePlanResultsBatch merges monthly results into the city's plan. A city
// without a plan gets a minimal one (no phases) so the results are kept.
func (s *Store) UpdatePlanResultsBatch(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error {
	s.op.Lock()
	defer s.op.Unlock()

	for key := range results {
		if _, err := domain.ParseMonthKey(string(key)); err != nil {
			return err
		}
	}

	plan, exists := s.Plan(cityID)
	if !exists {
		keys := slices.Sorted(maps.Keys(results))
		start := domain.MonthKeyOf(s.now().UTC())
		if len(keys) > 0 {
			start = keys[0]
		}
		plan = domain.CityPlan{
			CityID:     cityID,
			StartMonth: start,
			Phases:     []domain.Phase{},
			Results:    map[domain.MonthKey]domain.MonthResult{},
			CreatedAt:  s.now().UTC(),
		}
	}
	maps.Copy(plan.Results, results)
	s.storePlan(plan)

	if !exists {
		if _, err := s.backend.CreatePlan(ctx, plan.Header()); err != nil {
			return s.failed("criar plano para resultados", err)
		}
	}
	if err := s.backend.SavePlanResults(ctx, cityID, results); err != nil {
		return s.failed("salvar resultados", err)
	}
	return nil
}

// UpdatePlanRealCosts stores the actual-cost overlay and refreshes the results
// the backend computes from it.
func (s *Store) UpdatePlanRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error {
	s.op.Lock()
	defer s.op.Unlock()

	for key := range costs {
		if _, err := domain.ParseMonthKey(string(key)); err != nil {
			return err
		}
	}

	plan, ok := s.Plan(cityID)
	if !ok {
		return domain.ErrPlanNotFound
	}
	if plan.RealCosts == nil {
		plan.RealCosts = map[domain.MonthKey]domain.RealCost{}
	}
	maps.Copy(plan.RealCosts, costs)
	s.storePlan(plan)

	if err := s.backend.SaveRealCosts(ctx, cityID, costs); err != nil {
		return s.failed("salvar custos reais", err)
	}
	results, err := s.backend.GetPlanResults(ctx, cityID)
	if err != nil {
		return s.failed("recarregar resultados", err)
	}

	s.mu.Lock()
	if p, ok := s.plans[cityID]; ok {
		p.Results = results
		if p.Results == nil {
			p.Results = map[domain.MonthKey]domain.MonthResult{}
		}
		s.plans[cityID] = p
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) storePlan(plan domain.CityPlan) {
	plan.UpdatedAt = s.now().UTC()
	s.mu.Lock()
	s.plans[plan.CityID] = plan
	s.mu.Unlock()
}

// deriveStatus persists the status the plan's progress calls for, if it differs.
func (s *Store) deriveStatus(ctx context.Context, plan domain.CityPlan) error {
	city, ok := s.City(plan.CityID)
	if !ok {
		return nil
	}
	next := DeriveStatus(plan, city.Status)
	if next == city.Status {
		return nil
	}
	return s.setStatus(ctx, plan.CityID, next)
}

func (s *Store) setStatus(ctx context.Context, cityID int64, status domain.Status) error {
	s.mu.Lock()
	var from domain.Status
	if i := s.cityIndex(cityID); i >= 0 {
		from = s.cities[i].Status
		s.cities[i].Status = status
	}
	s.mu.Unlock()

	if err := s.backend.UpdateCityStatus(ctx, cityID, status); err != nil {
		return s.failed("atualizar status da cidade", err)
	}
	if from != status {
		metrics.StatusTransitions.WithLabelValues(string(from), string(status)).Inc()
		s.log.Info("status da cidade alterado",
			zap.Int64("city_id", cityID),
			zap.String("from", string(from)),
			zap.String("to", string(status)))
		if s.onStatus != nil {
			s.onStatus(StatusChange{CityID: cityID, From: from, To: status})
		}
	}
	return nil
}

func actionIndex(actions []domain.Action, id string) int {
	return slices.IndexFunc(actions, func(a domain.Action) bool { return a.ID == id })
}

func applyAction(a *domain.Action, u ActionUpdate) {
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Completed != nil {
		a.Completed = *u.Completed
	}
	if u.DueDate != nil {
		due := *u.DueDate
		a.DueDate = &due
	}
	if u.Link != nil {
		a.Link = *u.Link
	}
	if u.Tags != nil {
		a.Tags = slices.Clone(u.Tags)
	}
	if u.Responsible != nil {
		a.Responsible = *u.Responsible
	}
}
