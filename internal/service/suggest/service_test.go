package suggest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillone/skillone-backend/internal/domain"
)

type goalRepoMock struct {
	SuggestFunc func(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error)
}

func (m *goalRepoMock) Suggest(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error) {
	if m.SuggestFunc == nil {
		panic("goalRepoMock.SuggestFunc: method is nil but Suggest was just called")
	}
	return m.SuggestFunc(ctx, query, limit)
}

func newTestService(goals goalRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(logger, goals, 10)
}

func TestSuggest_ReturnsGoals(t *testing.T) {
	t.Parallel()

	goals := &goalRepoMock{
		SuggestFunc: func(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error) {
			assert.Equal(t, "eng", query)
			assert.Equal(t, 10, limit)
			return []domain.CareerGoalCount{
				{CareerGoal: "Software Engineer", Frequency: 7},
				{CareerGoal: "Data Engineer", Frequency: 3},
			}, nil
		},
	}

	got := newTestService(goals).Suggest(context.Background(), "eng")
	assert.Equal(t, []string{"Software Engineer", "Data Engineer"}, got)
}

func TestSuggest_ShortQuery(t *testing.T) {
	t.Parallel()

	// Repo must not be called at all for short queries.
	got := newTestService(&goalRepoMock{}).Suggest(context.Background(), "e")
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got = newTestService(&goalRepoMock{}).Suggest(context.Background(), "  e  ")
	assert.Empty(t, got)
}

func TestSuggest_LookupFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	goals := &goalRepoMock{
		SuggestFunc: func(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error) {
			return nil, errors.New("connection refused")
		},
	}

	got := newTestService(goals).Suggest(context.Background(), "engineer")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
