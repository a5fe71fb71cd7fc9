package plans

import (
	"encoding/json"
	"fmt"

	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"expansion/validation"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

type CreatePlanRequest struct {
	CityID     int64  `json:"city_id" validate:"required,gt=0"`
	StartMonth string `json:"start_month" validate:"required,monthkey"`
}

type ResultsRequest struct {
	Results map[domain.MonthKey]domain.MonthResult `json:"results" validate:"required"`
}

type RealCostsRequest struct {
	RealCosts map[domain.MonthKey]domain.RealCost `json:"real_costs" validate:"required"`
}

type DetailsRequest struct {
	Phases []domain.Phase `json:"phases"`
}

// MonthSummary is one month of the financial summary; money is in reais.
type MonthSummary struct {
	Month      domain.MonthKey `json:"month"`
	Rides      int64           `json:"rides"`
	Goal       decimal.Decimal `json:"goal"`
	Attainment decimal.Decimal `json:"attainment"`
	Revenue    decimal.Decimal `json:"revenue"`
	Cost       decimal.Decimal `json:"cost"`
	Margin     decimal.Decimal `json:"margin"`
}

type SummaryResponse struct {
	CityID       int64           `json:"city_id"`
	StartMonth   domain.MonthKey `json:"start_month"`
	Months       []MonthSummary  `json:"months"`
	TotalRides   int64           `json:"total_rides"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalMargin  decimal.Decimal `json:"total_margin"`
	// CostPerRide is zero when no ride was recorded.
	CostPerRide decimal.Decimal `json:"cost_per_ride"`
}

func (p *CreatePlanRequest) ParseToUpsertParams() db.UpsertCityPlanParams {
	return db.UpsertCityPlanParams{
		CityID:     p.CityID,
		StartMonth: p.StartMonth,
	}
}

func HeaderFromRow(row db.CityPlan) domain.PlanHeader {
	return domain.PlanHeader{
		CityID:     row.CityID,
		StartMonth: domain.MonthKey(row.StartMonth),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func ResultParams(cityID int64, month domain.MonthKey, r domain.MonthResult) db.UpsertPlanResultParams {
	return db.UpsertPlanResultParams{
		CityID:                   cityID,
		Month:                    string(month),
		Rides:                    r.Rides,
		MarketingCost:            r.MarketingCost,
		OperationalCost:          r.OperationalCost,
		ProjectedMarketingCost:   validation.NullFloat(r.ProjectedMarketingCost),
		ProjectedOperationalCost: validation.NullFloat(r.ProjectedOperationalCost),
	}
}

func ResultFromRow(row db.CityPlanResult) domain.MonthResult {
	return domain.MonthResult{
		Rides:                    row.Rides,
		MarketingCost:            row.MarketingCost,
		OperationalCost:          row.OperationalCost,
		ProjectedMarketingCost:   validation.FloatPtrFromNull(row.ProjectedMarketingCost),
		ProjectedOperationalCost: validation.FloatPtrFromNull(row.ProjectedOperationalCost),
	}
}

func EncodePhases(phases []domain.Phase) (pqtype.NullRawMessage, error) {
	if phases == nil {
		phases = []domain.Phase{}
	}
	raw, err := json.Marshal(phases)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("codificar fases: %w", err)
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// DecodePhases returns nil when the column is NULL.
func DecodePhases(raw pqtype.NullRawMessage) ([]domain.Phase, error) {
	if !raw.Valid || len(raw.RawMessage) == 0 {
		return nil, nil
	}
	var phases []domain.Phase
	if err := json.Unmarshal(raw.RawMessage, &phases); err != nil {
		return nil, fmt.Errorf("decodificar fases: %w", err)
	}
	return phases, nil
}
