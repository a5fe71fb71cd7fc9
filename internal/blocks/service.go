package blocks

import (
	"context"
	"fmt"

	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"go.uber.org/zap"
)

type InterfaceService interface {
	ListBlocksService(ctx context.Context) ([]domain.MarketBlock, error)
	ReplaceBlocksService(ctx context.Context, data []BlockRequest) error
}

type Service struct {
	InterfaceRepository InterfaceRepository
	log                 *zap.Logger
}

func NewBlockService(repo InterfaceRepository, log *zap.Logger) *Service {
	return &Service{InterfaceRepository: repo, log: log}
}

func (s *Service) ListBlocksService(ctx context.Context) ([]domain.MarketBlock, error) {
	rows, err := s.InterfaceRepository.ListMarketBlocks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MarketBlock, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDomain(row))
	}
	return out, nil
}

// ReplaceBlocksService stores the collection as sent. A city listed by more than one block is rejected.
func (s *Service) ReplaceBlocksService(ctx context.Context, data []BlockRequest) error {
	owner := map[int64]string{}
	ids := map[string]bool{}
	params := make([]db.InsertMarketBlockParams, 0, len(data))
	for i := range data {
		b := data[i]
		if ids[b.ID] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateBlock, b.ID)
		}
		ids[b.ID] = true
		for _, cityID := range b.CityIDs {
			if other, ok := owner[cityID]; ok {
				return fmt.Errorf("%w: cidade %d nos blocos %q e %q", domain.ErrCityInTwoBlocks, cityID, other, b.ID)
			}
			owner[cityID] = b.ID
		}
		params = append(params, b.ParseToInsertParams(i))
	}

	if err := s.InterfaceRepository.ReplaceMarketBlocks(ctx, params); err != nil {
		return err
	}
	s.log.Info("blocos gravados", zap.Int("count", len(params)))
	return nil
}
