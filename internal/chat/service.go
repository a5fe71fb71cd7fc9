package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"expansion/infra/metrics"
	"expansion/internal/domain"
	"expansion/internal/projection"
	"expansion/pkg/gpt"
	"go.uber.org/zap"
)

const systemPrompt = `Você é um analista de expansão de uma empresa de mobilidade urbana.
Responda em português, de forma objetiva, usando apenas os dados das cidades abaixo.
A receita potencial considera o cenário médio (10%% da população alvo a R$ 2,50 por corrida).

Cidades (JSON):
%s`

type CityLister interface {
	ListCitiesService(ctx context.Context) ([]domain.City, error)
}

type Completer interface {
	Complete(ctx context.Context, messages []gpt.Message) (string, error)
}

type InterfaceService interface {
	ChatService(ctx context.Context, data ChatRequest) (ChatResponse, error)
}

type Service struct {
	cities CityLister
	model  Completer
	log    *zap.Logger
}

func NewChatService(cities CityLister, model Completer, log *zap.Logger) *Service {
	return &Service{cities: cities, model: model, log: log}
}

// Summarize keeps the MaxCities most populous cities, largest first.
func Summarize(cities []domain.City) []CitySummary {
	sorted := make([]domain.City, len(cities))
	copy(sorted, cities)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Population > sorted[j].Population })
	if len(sorted) > MaxCities {
		sorted = sorted[:MaxCities]
	}

	out := make([]CitySummary, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, CitySummary{
			Name:             c.Name,
			Mesoregion:       c.Mesoregion,
			Population:       c.Population,
			TargetPopulation: c.TargetPopulation,
			AverageIncome:    c.AverageIncome,
			Status:           c.Status,
			PotentialRevenue: projection.PotentialRevenue(c, projection.DefaultScenario),
		})
	}
	return out
}

func BuildMessages(summary []CitySummary, data ChatRequest) ([]gpt.Message, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	messages := []gpt.Message{{Role: "system", Content: fmt.Sprintf(systemPrompt, raw)}}
	for _, t := range data.History {
		messages = append(messages, gpt.Message{Role: t.Role, Content: t.Content})
	}
	return append(messages, gpt.Message{Role: "user", Content: data.Message}), nil
}

func (s *Service) ChatService(ctx context.Context, data ChatRequest) (ChatResponse, error) {
	cities, err := s.cities.ListCitiesService(ctx)
	if err != nil {
		return ChatResponse{}, err
	}
	summary := Summarize(cities)
	messages, err := BuildMessages(summary, data)
	if err != nil {
		return ChatResponse{}, err
	}

	answer, err := s.model.Complete(ctx, messages)
	if err != nil {
		metrics.ChatRequests.WithLabelValues("error").Inc()
		s.log.Error("falha na consulta ao modelo", zap.Error(err))
		return ChatResponse{}, err
	}
	metrics.ChatRequests.WithLabelValues("ok").Inc()
	return ChatResponse{Answer: answer, Cities: len(summary)}, nil
}
