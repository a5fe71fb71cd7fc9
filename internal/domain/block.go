package domain

import "slices"

// MarketBlock groups cities for strategic clustering. A city belongs to at most one block.
type MarketBlock struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	CityIDs []int64 `json:"city_ids"`
}

func (b MarketBlock) Contains(cityID int64) bool {
	return slices.Contains(b.CityIDs, cityID)
}

func (b MarketBlock) Clone() MarketBlock {
	b.CityIDs = slices.Clone(b.CityIDs)
	if b.CityIDs == nil {
		b.CityIDs = []int64{}
	}
	return b
}
