package city

import (
	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"expansion/internal/projection"
	"expansion/validation"
)

type CityRequest struct {
	ID                      int64    `json:"id" validate:"required,gt=0"`
	Name                    string   `json:"name" validate:"required,max=120"`
	Population              int64    `json:"population" validate:"gte=0"`
	TargetPopulation        int64    `json:"target_population" validate:"gte=0"`
	AverageIncome           float64  `json:"average_income" validate:"gte=0"`
	UrbanizationIndex       float64  `json:"urbanization_index" validate:"gte=0,lte=1"`
	AverageFormalSalary     float64  `json:"average_formal_salary" validate:"gte=0"`
	FormalJobs              int64    `json:"formal_jobs" validate:"gte=0"`
	UrbanizedArea           float64  `json:"urbanized_area" validate:"gte=0"`
	Status                  string   `json:"status" validate:"omitempty,citystatus"`
	Mesoregion              string   `json:"mesoregion" validate:"max=120"`
	ImplementationStartDate string   `json:"implementation_start_date" validate:"omitempty,monthkey"`
	Latitude                *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type BulkCityRequest struct {
	Cities []CityRequest `json:"cities" validate:"required,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,citystatus"`
}

type ProjectionsResponse struct {
	City       domain.City                    `json:"city"`
	Potentials []projection.ScenarioPotential `json:"potentials"`
	Revenue    float64                        `json:"revenue"`
	Financial  []projection.ScenarioRevenue   `json:"financial"`
	Roadmap    []projection.RoadmapPoint      `json:"roadmap"`
	Goals      []projection.MonthlyGoal       `json:"goals,omitempty"`
}

// ParseToUpsertParams leaves status and implementation date NULL when omitted:
// a new city starts NotServed and an existing one keeps what it has.
func (p *CityRequest) ParseToUpsertParams() db.UpsertCityParams {
	return db.UpsertCityParams{
		ID:                      p.ID,
		Name:                    p.Name,
		Population:              p.Population,
		TargetPopulation:        p.TargetPopulation,
		AverageIncome:           p.AverageIncome,
		UrbanizationIndex:       p.UrbanizationIndex,
		AverageFormalSalary:     p.AverageFormalSalary,
		FormalJobs:              p.FormalJobs,
		UrbanizedArea:           p.UrbanizedArea,
		Status:                  validation.NullString(p.Status),
		Mesoregion:              p.Mesoregion,
		ImplementationStartDate: validation.NullString(p.ImplementationStartDate),
		Latitude:                validation.NullFloat(p.Latitude),
		Longitude:               validation.NullFloat(p.Longitude),
	}
}

// FromDomain builds an upsert request out of a domain city, as the importer and the seeding path produce them.
func FromDomain(c domain.City) CityRequest {
	return CityRequest{
		ID:                      c.ID,
		Name:                    c.Name,
		Population:              c.Population,
		TargetPopulation:        c.TargetPopulation,
		AverageIncome:           c.AverageIncome,
		UrbanizationIndex:       c.UrbanizationIndex,
		AverageFormalSalary:     c.AverageFormalSalary,
		FormalJobs:              c.FormalJobs,
		UrbanizedArea:           c.UrbanizedArea,
		Status:                  string(c.Status),
		Mesoregion:              c.Mesoregion,
		ImplementationStartDate: c.ImplementationStartDate,
		Latitude:                c.Latitude,
		Longitude:               c.Longitude,
	}
}

func ToDomain(row db.City) domain.City {
	return domain.City{
		ID:                      row.ID,
		Name:                    row.Name,
		Population:              row.Population,
		TargetPopulation:        row.TargetPopulation,
		AverageIncome:           row.AverageIncome,
		UrbanizationIndex:       row.UrbanizationIndex,
		AverageFormalSalary:     row.AverageFormalSalary,
		FormalJobs:              row.FormalJobs,
		UrbanizedArea:           row.UrbanizedArea,
		Status:                  domain.Status(row.Status),
		Mesoregion:              row.Mesoregion,
		ImplementationStartDate: validation.GetStringFromNull(row.ImplementationStartDate),
		Latitude:                validation.FloatPtrFromNull(row.Latitude),
		Longitude:               validation.FloatPtrFromNull(row.Longitude),
		UpdatedAt:               row.UpdatedAt,
	}
}
