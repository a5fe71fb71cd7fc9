package reconcile

import (
	"context"
	"slices"
	"strings"

	"expansion/internal/domain"
)

// MoveCityToBlock puts the city in the block with blockID, removing it from
// every other block. An empty blockID leaves the city in no block. The whole
// block collection is persisted after the change.
func (s *Store) MoveCityToBlock(ctx context.Context, cityID int64, blockID string) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	target := -1
	if blockID != "" {
		target = slices.IndexFunc(s.blocks, func(b domain.MarketBlock) bool { return b.ID == blockID })
		if target < 0 {
			s.mu.Unlock()
			return domain.ErrBlockNotFound
		}
	}
	for i := range s.blocks {
		s.blocks[i].CityIDs = slices.DeleteFunc(s.blocks[i].CityIDs, func(id int64) bool { return id == cityID })
	}
	if target >= 0 {
		s.blocks[target].CityIDs = append(s.blocks[target].CityIDs, cityID)
	}
	blocks := s.blocksCopyLocked()
	s.mu.Unlock()

	if err := s.backend.SaveBlocks(ctx, blocks); err != nil {
		return s.failed("salvar blocos", err)
	}
	return nil
}

// CreateBlock adds an empty block and persists the collection.
func (s *Store) CreateBlock(ctx context.Context, name string) (domain.MarketBlock, error) {
	s.op.Lock()
	defer s.op.Unlock()

	block := domain.MarketBlock{ID: s.newID(), Name: strings.TrimSpace(name), CityIDs: []int64{}}

	s.mu.Lock()
	s.blocks = append(s.blocks, block)
	blocks := s.blocksCopyLocked()
	s.mu.Unlock()

	if err := s.backend.SaveBlocks(ctx, blocks); err != nil {
		return block, s.failed("criar bloco", err)
	}
	return block, nil
}

// DeleteBlock removes a block; its cities end up in no block.
func (s *Store) DeleteBlock(ctx context.Context, blockID string) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	i := slices.IndexFunc(s.blocks, func(b domain.MarketBlock) bool { return b.ID == blockID })
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrBlockNotFound
	}
	s.blocks = slices.Delete(s.blocks, i, i+1)
	blocks := s.blocksCopyLocked()
	s.mu.Unlock()

	if err := s.backend.SaveBlocks(ctx, blocks); err != nil {
		return s.failed("excluir bloco", err)
	}
	return nil
}

func (s *Store) blocksCopyLocked() []domain.MarketBlock {
	out := make([]domain.MarketBlock, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = b.Clone()
	}
	return out
}
