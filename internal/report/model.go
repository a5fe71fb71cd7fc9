package report

import (
	"time"

	"expansion/internal/domain"
)

type PlanSnapshot struct {
	Header  domain.PlanHeader                      `json:"header"`
	Phases  []domain.Phase                         `json:"phases"`
	Results map[domain.MonthKey]domain.MonthResult `json:"results"`
}

type Snapshot struct {
	GeneratedAt time.Time             `json:"generated_at"`
	ByStatus    map[domain.Status]int `json:"by_status"`
	Cities      []domain.City         `json:"cities"`
	Plans       []PlanSnapshot        `json:"plans"`
	Blocks      []domain.MarketBlock  `json:"blocks"`
}

type ExportResponse struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	Cities int    `json:"cities"`
	Plans  int    `json:"plans"`
	Blocks int    `json:"blocks"`
}
