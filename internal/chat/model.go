package chat

import "expansion/internal/domain"

const MaxCities = 50

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	// History carries earlier turns, oldest first.
	History []Turn `json:"history" validate:"max=20,dive"`
}

type Turn struct {
	Role    string `json:"role" validate:"oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
	Cities int    `json:"cities"`
}

// CitySummary is what the model sees of each city.
type CitySummary struct {
	Name             string        `json:"nome"`
	Mesoregion       string        `json:"mesorregiao"`
	Population       int64         `json:"populacao"`
	TargetPopulation int64         `json:"populacao_alvo"`
	AverageIncome    float64       `json:"renda_media"`
	Status           domain.Status `json:"status"`
	PotentialRevenue float64       `json:"receita_potencial"`
}
