package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusNotServed    Status = "NotServed"
	StatusPlanning     Status = "Planning"
	StatusExpansion    Status = "Expansion"
	StatusConsolidated Status = "Consolidated"
)

var statusRank = map[Status]int{
	StatusNotServed:    0,
	StatusPlanning:     1,
	StatusExpansion:    2,
	StatusConsolidated: 3,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// AtLeast reports whether s is the given lifecycle stage or a later one.
func (s Status) AtLeast(other Status) bool {
	return statusRank[s] >= statusRank[other]
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = StatusNotServed
		return nil
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// City is a municipality identified by its IBGE code.
type City struct {
	ID                      int64     `json:"id"`
	Name                    string    `json:"name"`
	Population              int64     `json:"population"`
	TargetPopulation        int64     `json:"target_population"`
	AverageIncome           float64   `json:"average_income"`
	UrbanizationIndex       float64   `json:"urbanization_index"`
	AverageFormalSalary     float64   `json:"average_formal_salary"`
	FormalJobs              int64     `json:"formal_jobs"`
	UrbanizedArea           float64   `json:"urbanized_area"`
	Status                  Status    `json:"status"`
	Mesoregion              string    `json:"mesoregion"`
	ImplementationStartDate string    `json:"implementation_start_date,omitempty"`
	Latitude                *float64  `json:"latitude,omitempty"`
	Longitude               *float64  `json:"longitude,omitempty"`
	UpdatedAt               time.Time `json:"updated_at,omitempty"`
}

// ImplementationStart returns the first day of the implementation month, if set and well formed.
func (c City) ImplementationStart() (time.Time, bool) {
	if c.ImplementationStartDate == "" {
		return time.Time{}, false
	}
	key, err := ParseMonthKey(c.ImplementationStartDate)
	if err != nil {
		return time.Time{}, false
	}
	return key.Time(), true
}
