package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"expansion/internal/domain"
	"go.uber.org/zap"
)

type CityLister interface {
	ListCitiesService(ctx context.Context) ([]domain.City, error)
}

type PlanReader interface {
	ListPlansService(ctx context.Context) ([]domain.PlanHeader, error)
	GetResultsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error)
	GetDetailsService(ctx context.Context, cityID int64) ([]domain.Phase, error)
}

type BlockLister interface {
	ListBlocksService(ctx context.Context) ([]domain.MarketBlock, error)
}

type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type InterfaceService interface {
	ExportService(ctx context.Context) (ExportResponse, error)
}

type Service struct {
	cities   CityLister
	plans    PlanReader
	blocks   BlockLister
	uploader Uploader
	now      func() time.Time
	log      *zap.Logger
}

func NewReportService(cities CityLister, plans PlanReader, blocks BlockLister, uploader Uploader, log *zap.Logger) *Service {
	return &Service{cities: cities, plans: plans, blocks: blocks, uploader: uploader, now: time.Now, log: log}
}

// BuildSnapshot reads cities, plans with their results and phases, and blocks.
func (s *Service) BuildSnapshot(ctx context.Context) (Snapshot, error) {
	cities, err := s.cities.ListCitiesService(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listar cidades: %w", err)
	}
	headers, err := s.plans.ListPlansService(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listar planos: %w", err)
	}
	blocks, err := s.blocks.ListBlocksService(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listar blocos: %w", err)
	}

	snap := Snapshot{
		GeneratedAt: s.now().UTC(),
		ByStatus:    map[domain.Status]int{},
		Cities:      cities,
		Plans:       make([]PlanSnapshot, 0, len(headers)),
		Blocks:      blocks,
	}
	for _, c := range cities {
		snap.ByStatus[c.Status]++
	}
	for _, h := range headers {
		results, err := s.plans.GetResultsService(ctx, h.CityID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("resultados do plano %d: %w", h.CityID, err)
		}
		phases, err := s.plans.GetDetailsService(ctx, h.CityID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("detalhes do plano %d: %w", h.CityID, err)
		}
		snap.Plans = append(snap.Plans, PlanSnapshot{Header: h, Phases: phases, Results: results})
	}
	return snap, nil
}

func (s *Service) ExportService(ctx context.Context) (ExportResponse, error) {
	snap, err := s.BuildSnapshot(ctx)
	if err != nil {
		return ExportResponse{}, err
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return ExportResponse{}, err
	}

	key := fmt.Sprintf("snapshots/%s.json", snap.GeneratedAt.Format("20060102T150405Z"))
	url, err := s.uploader.Upload(ctx, key, body, "application/json")
	if err != nil {
		return ExportResponse{}, err
	}

	s.log.Info("snapshot exportado", zap.String("key", key), zap.Int("bytes", len(body)))
	return ExportResponse{
		Key:    key,
		URL:    url,
		Cities: len(snap.Cities),
		Plans:  len(snap.Plans),
		Blocks: len(snap.Blocks),
	}, nil
}
