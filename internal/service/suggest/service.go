// Package suggest serves career goal autocomplete suggestions from the
// frequency log.
package suggest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/skillone/skillone-backend/internal/domain"
)

// MinQueryLength is the shortest query that triggers a lookup; anything
// shorter returns an empty list.
const MinQueryLength = 2

type goalRepo interface {
	Suggest(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error)
}

// Service provides career goal suggestions.
type Service struct {
	goals goalRepo
	limit int
	log   *slog.Logger
}

// NewService creates a suggestion service returning at most limit entries.
func NewService(log *slog.Logger, goals goalRepo, limit int) *Service {
	return &Service{
		goals: goals,
		limit: limit,
		log:   log.With("service", "suggest"),
	}
}

// Suggest returns previously logged career goals containing the query,
// most frequent first. Suggestions are a convenience feature: a failed
// lookup degrades to an empty list instead of an error.
func (s *Service) Suggest(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []string{}
	}

	counts, err := s.goals.Suggest(ctx, query, s.limit)
	if err != nil {
		s.log.WarnContext(ctx, "suggestion lookup failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	suggestions := make([]string, len(counts))
	for i, c := range counts {
		suggestions[i] = c.CareerGoal
	}
	return suggestions
}
