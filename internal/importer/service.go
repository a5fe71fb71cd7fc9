// Package importer refreshes the city table from the IBGE data service.
package importer

import (
	"context"
	"fmt"
	"math"
	"sync"

	"expansion/internal/city"
	"expansion/internal/domain"
	"expansion/pkg/ibge"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTargetShare estimates the 15 to 44 age band when no value is stored yet.
	DefaultTargetShare  = 0.45
	maxConcurrentCities = 4
)

type Source interface {
	Municipalities(ctx context.Context, stateCode int) ([]ibge.Municipality, error)
	Stats(ctx context.Context, cityID int64) (ibge.Stats, error)
}

type Locator interface {
	Locate(ctx context.Context, city string) (float64, float64, error)
}

type CityStore interface {
	ListCitiesService(ctx context.Context) ([]domain.City, error)
	UpsertCitiesService(ctx context.Context, data []city.CityRequest) ([]domain.City, error)
	UpdateDemographicsService(ctx context.Context, c domain.City) error
}

type Options struct {
	StateCode     int
	MinPopulation int64
	TargetShare   float64
	// Only limits the import to these IBGE codes when non-empty.
	Only []int64
}

type Result struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Geocoded int `json:"geocoded"`
}

type Service struct {
	source  Source
	locator Locator
	cities  CityStore
	log     *zap.Logger
}

// NewImportService builds the importer. locator may be nil, in which case coordinates are left as stored.
func NewImportService(source Source, locator Locator, cities CityStore, log *zap.Logger) *Service {
	return &Service{source: source, locator: locator, cities: cities, log: log}
}

// Run fetches the state's municipalities and their indicators for the cities at or
// above the population floor. New cities, and known ones that just got coordinates,
// are upserted; other known cities only get their indicators refreshed. Status,
// implementation date and the manually maintained fields of existing cities are kept.
func (s *Service) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.TargetShare <= 0 {
		opts.TargetShare = DefaultTargetShare
	}

	existing, err := s.cities.ListCitiesService(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("listar cidades: %w", err)
	}
	known := make(map[int64]domain.City, len(existing))
	for _, c := range existing {
		known[c.ID] = c
	}

	municipalities, err := s.source.Municipalities(ctx, opts.StateCode)
	if err != nil {
		return Result{}, fmt.Errorf("listar municípios: %w", err)
	}
	municipalities = filter(municipalities, opts.Only)

	res := Result{Fetched: len(municipalities)}
	var mu sync.Mutex
	requests := make([]city.CityRequest, 0, len(municipalities))
	var refresh []domain.City

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCities)
	for _, m := range municipalities {
		g.Go(func() error {
			stats, err := s.source.Stats(gctx, m.ID)
			if err != nil {
				return err
			}
			if stats.Population < opts.MinPopulation {
				mu.Lock()
				res.Skipped++
				mu.Unlock()
				return nil
			}

			prev, isKnown := known[m.ID]
			c := merge(prev, m, stats, opts.TargetShare)
			located := false
			if s.locator != nil && c.Latitude == nil {
				lat, lng, err := s.locator.Locate(gctx, c.Name)
				if err != nil {
					s.log.Warn("falha ao geocodificar cidade", zap.Int64("city_id", c.ID), zap.Error(err))
				} else {
					c.Latitude, c.Longitude = &lat, &lng
					located = true
				}
			}

			mu.Lock()
			if isKnown && !located {
				refresh = append(refresh, c)
			} else {
				requests = append(requests, city.FromDomain(c))
			}
			if located {
				res.Geocoded++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	if len(requests) > 0 {
		saved, err := s.cities.UpsertCitiesService(ctx, requests)
		if err != nil {
			return res, fmt.Errorf("gravar cidades: %w", err)
		}
		res.Imported = len(saved)
	}
	for _, c := range refresh {
		if err := s.cities.UpdateDemographicsService(ctx, c); err != nil {
			return res, fmt.Errorf("atualizar indicadores da cidade %d: %w", c.ID, err)
		}
		res.Updated++
	}

	s.log.Info("importação concluída",
		zap.Int("fetched", res.Fetched),
		zap.Int("imported", res.Imported),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("geocoded", res.Geocoded))
	return res, nil
}

func merge(prev domain.City, m ibge.Municipality, stats ibge.Stats, share float64) domain.City {
	c := prev
	c.ID = m.ID
	c.Name = m.Nome
	if meso := m.Mesoregion(); meso != "" {
		c.Mesoregion = meso
	}
	c.Population = stats.Population
	c.FormalJobs = stats.FormalJobs
	c.AverageFormalSalary = stats.AverageFormalSalary
	c.AverageIncome = stats.AverageIncome
	if c.TargetPopulation <= 0 || c.TargetPopulation > c.Population {
		c.TargetPopulation = int64(math.Round(float64(stats.Population) * share))
	}
	if c.Status == "" {
		c.Status = domain.StatusNotServed
	}
	return c
}

func filter(ms []ibge.Municipality, only []int64) []ibge.Municipality {
	if len(only) == 0 {
		return ms
	}
	want := make(map[int64]bool, len(only))
	for _, id := range only {
		want[id] = true
	}
	out := make([]ibge.Municipality, 0, len(only))
	for _, m := range ms {
		if want[m.ID] {
			out = append(out, m)
		}
	}
	return out
}
