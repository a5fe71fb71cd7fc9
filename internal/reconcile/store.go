// Package reconcile keeps one consistent in-memory view of cities, plans and
// market blocks over a backend-of-record.
//
// The backend is the single source of truth. A static fallback dataset only
// fills in cities the backend has not persisted yet and never overrides a
// backend value. Mutations update the view first and then write through; a
// failed write is returned to the caller and the view is left as it is.
package reconcile

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"expansion/infra/metrics"
	"expansion/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	loadWarning       = "Não foi possível conectar ao servidor. Os dados de cidades e planos não foram carregados."
	maxConcurrentGets = 8
)

type StatusChange struct {
	CityID int64         `json:"city_id"`
	From   domain.Status `json:"from"`
	To     domain.Status `json:"to"`
}

type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the action ID source. The Store serializes calls to
// newID, so it need not be safe for concurrent use.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithFallback(cities []domain.City) Option {
	return func(s *Store) { s.fallback = cities }
}

// WithStatusListener registers fn to be called after every city status change the Store persists.
func WithStatusListener(fn func(StatusChange)) Option {
	return func(s *Store) { s.onStatus = fn }
}

type Store struct {
	backend  Backend
	log      *zap.Logger
	now      func() time.Time
	newID    func() string
	fallback []domain.City
	onStatus func(StatusChange)

	// op serializes Load and the mutations; mu guards the view itself.
	op sync.Mutex
	mu sync.RWMutex

	cities  []domain.City
	plans   map[int64]domain.CityPlan
	blocks  []domain.MarketBlock
	warning string
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		log:      zap.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
		fallback: FallbackCities(),
		plans:    map[int64]domain.CityPlan{},
	}
	for _, opt := range opts {
		opt(s)
	}
	// Templates are synthesized from the Load goroutines.
	gen := s.newID
	var idMu sync.Mutex
	s.newID = func() string {
		idMu.Lock()
		defer idMu.Unlock()
		return gen()
	}
	return s
}

type snapshot struct {
	cities []domain.City
	plans  map[int64]domain.CityPlan
	blocks []domain.MarketBlock
}

// Load runs the initialization protocol. On failure the view is emptied, Warning
// reports the problem and the error is returned. If ctx is done by the time the
// data arrives nothing is committed.
func (s *Store) Load(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	snap, err := s.fetch(ctx, true)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		s.mu.Lock()
		s.cities, s.plans, s.blocks = nil, map[int64]domain.CityPlan{}, nil
		s.warning = loadWarning
		s.mu.Unlock()
		s.log.Warn("falha ao carregar dados do backend", zap.Error(err))
		return fmt.Errorf("carregar dados do backend: %w", err)
	}

	s.commit(snap)
	s.log.Info("dados carregados",
		zap.Int("cities", len(snap.cities)),
		zap.Int("plans", len(snap.plans)),
		zap.Int("blocks", len(snap.blocks)))
	return nil
}

func (s *Store) commit(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities, s.plans, s.blocks = snap.cities, snap.plans, snap.blocks
	s.warning = ""
}

// reload refreshes the view after a mutation, without seeding the backend.
func (s *Store) reload(ctx context.Context) error {
	snap, err := s.fetch(ctx, false)
	if err != nil {
		return fmt.Errorf("recarregar dados: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.commit(snap)
	return nil
}

func (s *Store) fetch(ctx context.Context, seed bool) (snapshot, error) {
	persisted, err := s.backend.ListCities(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("listar cidades: %w", err)
	}

	var cities []domain.City
	if len(persisted) == 0 && seed && len(s.fallback) > 0 {
		if err := s.backend.SaveCities(ctx, s.fallback); err != nil {
			return snapshot{}, fmt.Errorf("popular cidades padrão: %w", err)
		}
		cities = slices.Clone(s.fallback)
	} else {
		cities = mergeFallback(persisted, s.fallback)
	}

	plans, err := s.fetchPlans(ctx, cities)
	if err != nil {
		return snapshot{}, err
	}

	planList := make([]domain.CityPlan, 0, len(plans))
	for _, p := range plans {
		planList = append(planList, p)
	}
	corrections := ReconcileStatuses(persisted, planList)
	if len(corrections) > 0 {
		for _, c := range corrections {
			if err := s.backend.UpdateCityStatus(ctx, c.CityID, c.To); err != nil {
				return snapshot{}, fmt.Errorf("corrigir status da cidade %d: %w", c.CityID, err)
			}
			metrics.ReconcileCorrections.Inc()
			s.log.Info("status corrigido a partir do plano",
				zap.Int64("city_id", c.CityID),
				zap.String("from", string(c.From)),
				zap.String("to", string(c.To)))
		}
		persisted, err = s.backend.ListCities(ctx)
		if err != nil {
			return snapshot{}, fmt.Errorf("listar cidades após correção: %w", err)
		}
		cities = mergeFallback(persisted, s.fallback)
	}

	blocks, err := s.backend.ListBlocks(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("listar blocos: %w", err)
	}
	for i := range blocks {
		blocks[i] = blocks[i].Clone()
	}

	return snapshot{cities: cities, plans: plans, blocks: blocks}, nil
}

// fetchPlans loads every plan header and, concurrently, each plan's results,
// real costs and phase details.
func (s *Store) fetchPlans(ctx context.Context, cities []domain.City) (map[int64]domain.CityPlan, error) {
	headers, err := s.backend.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar planos: %w", err)
	}

	byID := make(map[int64]domain.City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}

	plans := make([]domain.CityPlan, len(headers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)
	for i, h := range headers {
		g.Go(func() error {
			results, err := s.backend.GetPlanResults(gctx, h.CityID)
			if err != nil {
				return fmt.Errorf("resultados do plano %d: %w", h.CityID, err)
			}
			costs, err := s.backend.GetPlanRealCosts(gctx, h.CityID)
			if err != nil {
				return fmt.Errorf("custos reais do plano %d: %w", h.CityID, err)
			}
			phases, err := s.backend.GetPlanDetails(gctx, h.CityID)
			if err != nil {
				return fmt.Errorf("detalhes do plano %d: %w", h.CityID, err)
			}
			if len(phases) == 0 {
				phases = domain.PhaseTemplate(s.anchor(byID[h.CityID]), s.newID)
			}
			if results == nil {
				results = map[domain.MonthKey]domain.MonthResult{}
			}
			plans[i] = domain.CityPlan{
				CityID:     h.CityID,
				StartMonth: h.StartMonth,
				Phases:     phases,
				Results:    results,
				RealCosts:  costs,
				CreatedAt:  h.CreatedAt,
				UpdatedAt:  h.UpdatedAt,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int64]domain.CityPlan, len(plans))
	for _, p := range plans {
		out[p.CityID] = p
	}
	return out, nil
}

// anchor is where a template plan starts: the implementation month if known, else now.
func (s *Store) anchor(city domain.City) time.Time {
	if start, ok := city.ImplementationStart(); ok {
		return start
	}
	return s.now().UTC()
}

// Warning is the user-visible message left by a failed Load, or "".
func (s *Store) Warning() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warning
}

func (s *Store) Cities() []domain.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cities)
}

func (s *Store) City(id int64) (domain.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.cityIndex(id)
	if i < 0 {
		return domain.City{}, false
	}
	return s.cities[i], true
}

// Plans returns copies of every plan ordered by city id.
func (s *Store) Plans() []domain.CityPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CityPlan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CityID < out[j].CityID })
	return out
}

func (s *Store) Plan(cityID int64) (domain.CityPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[cityID]
	if !ok {
		return domain.CityPlan{}, false
	}
	return p.Clone(), true
}

func (s *Store) Blocks() []domain.MarketBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MarketBlock, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = b.Clone()
	}
	return out
}

// BlockOf returns the block holding the city, if any.
func (s *Store) BlockOf(cityID int64) (domain.MarketBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blocks {
		if b.Contains(cityID) {
			return b.Clone(), true
		}
	}
	return domain.MarketBlock{}, false
}

// cityIndex must be called with mu held.
func (s *Store) cityIndex(id int64) int {
	return slices.IndexFunc(s.cities, func(c domain.City) bool { return c.ID == id })
}
