package blocks

import (
	db "expansion/db/sqlc"
	"expansion/internal/domain"
)

type BlockRequest struct {
	ID      string  `json:"id" validate:"required,max=64"`
	Name    string  `json:"name" validate:"required,max=120"`
	CityIDs []int64 `json:"city_ids" validate:"dive,gt=0"`
}

type ReplaceBlocksRequest struct {
	Blocks []BlockRequest `json:"blocks" validate:"dive"`
}

func (p *BlockRequest) ParseToInsertParams(position int) db.InsertMarketBlockParams {
	ids := p.CityIDs
	if ids == nil {
		ids = []int64{}
	}
	return db.InsertMarketBlockParams{
		ID:       p.ID,
		Name:     p.Name,
		CityIds:  ids,
		Position: int32(position),
	}
}

func ToDomain(row db.MarketBlock) domain.MarketBlock {
	return domain.MarketBlock{ID: row.ID, Name: row.Name, CityIDs: row.CityIds}.Clone()
}
