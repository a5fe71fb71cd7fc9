package analytics

import (
	"context"
	"strconv"
	"time"

	"expansion/internal/domain"
	"expansion/pkg"
	"go.uber.org/zap"
)

const cacheTTL = 10 * time.Minute

type CityLookup interface {
	GetCityService(ctx context.Context, id int64) (domain.City, error)
}

type InterfaceService interface {
	RidesService(ctx context.Context, cityID int64, from, to domain.MonthKey) (RidesResponse, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	cities              CityLookup
	cache               *pkg.Cache
	log                 *zap.Logger
}

func NewAnalyticsService(repo InterfaceRepository, cities CityLookup, cache *pkg.Cache, log *zap.Logger) *Service {
	return &Service{InterfaceRepository: repo, cities: cities, cache: cache, log: log}
}

// RidesService reads monthly ride aggregates for the city, matching its name
// against every alternate spelling. Months without rides are omitted.
func (s *Service) RidesService(ctx context.Context, cityID int64, from, to domain.MonthKey) (RidesResponse, error) {
	c, err := s.cities.GetCityService(ctx, cityID)
	if err != nil {
		return RidesResponse{}, err
	}

	resp := RidesResponse{CityID: cityID, Names: AlternateNames(c.Name), From: from, To: to}
	key := s.cache.Key("rides", strconv.FormatInt(cityID, 10), string(from), string(to))

	var cached []MonthlyRides
	if found, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.Warn("falha ao ler cache de corridas", zap.Error(err))
	} else if found {
		resp.Months = cached
		return resp, nil
	}

	months, err := s.InterfaceRepository.MonthlyRides(ctx, resp.Names, from, to)
	if err != nil {
		return RidesResponse{}, err
	}
	if months == nil {
		months = []MonthlyRides{}
	}
	if err := s.cache.SetJSON(ctx, key, months, cacheTTL); err != nil {
		s.log.Warn("falha ao gravar cache de corridas", zap.Error(err))
	}
	resp.Months = months
	return resp, nil
}
