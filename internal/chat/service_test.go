package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"expansion/internal/domain"
	"expansion/pkg/gpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCities []domain.City

func (f fakeCities) ListCitiesService(ctx context.Context) ([]domain.City, error) {
	return f, nil
}

type fakeModel struct {
	got    []gpt.Message
	answer string
	err    error
}

func (m *fakeModel) Complete(ctx context.Context, messages []gpt.Message) (string, error) {
	m.got = messages
	return m.answer, m.err
}

func manyCities(n int) []domain.City {
	out := make([]domain.City, n)
	for i := range out {
		out[i] = domain.City{ID: int64(i + 1), Name: fmt.Sprintf("Cidade %d", i+1), Population: int64(i * 1000), TargetPopulation: 100}
	}
	return out
}

func TestSummarizeCapsAndSortsByPopulation(t *testing.T) {
	got := Summarize(manyCities(60))

	require.Len(t, got, MaxCities)
	assert.Equal(t, "Cidade 60", got[0].Name)
	assert.Equal(t, "Cidade 11", got[MaxCities-1].Name)
	assert.InDelta(t, 25.0, got[0].PotentialRevenue, 1e-9)
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	in := manyCities(3)
	Summarize(in)
	assert.Equal(t, "Cidade 1", in[0].Name)
}

func TestChatServiceBuildsConversation(t *testing.T) {
	model := &fakeModel{answer: "ok"}
	svc := NewChatService(fakeCities(manyCities(3)), model, zap.NewNop())

	got, err := svc.ChatService(context.Background(), ChatRequest{
		Message: "qual a próxima cidade?",
		History: []Turn{{Role: "user", Content: "oi"}, {Role: "assistant", Content: "olá"}},
	})
	require.NoError(t, err)
	assert.Equal(t, ChatResponse{Answer: "ok", Cities: 3}, got)

	require.Len(t, model.got, 4)
	assert.Equal(t, "system", model.got[0].Role)
	assert.True(t, strings.Contains(model.got[0].Content, `"nome":"Cidade 3"`))
	assert.Contains(t, model.got[0].Content, "10% da população alvo")
	assert.Equal(t, "qual a próxima cidade?", model.got[3].Content)
}

func TestChatServiceModelError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewChatService(fakeCities(nil), &fakeModel{err: boom}, zap.NewNop())

	_, err := svc.ChatService(context.Background(), ChatRequest{Message: "x"})
	assert.ErrorIs(t, err, boom)
}
