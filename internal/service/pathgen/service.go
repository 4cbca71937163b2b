// Package pathgen implements the learning path generation engine: relevance
// scoring of the course catalog against a learner profile, prerequisite
// ordering, and persistence of the resulting path.
package pathgen

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/config"
	"github.com/skillone/skillone-backend/internal/domain"
)

type courseRepo interface {
	List(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
}

type profileRepo interface {
	Upsert(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error)
}

type pathRepo interface {
	Create(ctx context.Context, path *domain.LearningPath) (*domain.LearningPath, error)
	DeleteByLearner(ctx context.Context, learnerID string) (int64, error)
	ListByLearner(ctx context.Context, learnerID string) ([]domain.LearningPath, error)
}

type goalRepo interface {
	Increment(ctx context.Context, goal string) error
}

// embedder is the optional semantic signal. nil disables it; a failing call
// degrades generation to lexical scoring only.
type embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides learning path generation and retrieval.
type Service struct {
	courses  courseRepo
	profiles profileRepo
	paths    pathRepo
	goals    goalRepo
	embedder embedder
	tx       txManager
	cfg      config.PathgenConfig
	log      *slog.Logger
}

// NewService creates a path generation service. embedder may be nil when no
// embedding provider is configured.
func NewService(
	log *slog.Logger,
	courses courseRepo,
	profiles profileRepo,
	paths pathRepo,
	goals goalRepo,
	emb embedder,
	tx txManager,
	cfg config.PathgenConfig,
) *Service {
	return &Service{
		courses:  courses,
		profiles: profiles,
		paths:    paths,
		goals:    goals,
		embedder: emb,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "pathgen"),
	}
}

// Result is a freshly generated path together with its resolved courses.
type Result struct {
	Path    *domain.LearningPath
	Courses []domain.PathCourse
}

// ResolvedPath is a stored path with its course sequence resolved to full
// course records.
type ResolvedPath struct {
	Path    domain.LearningPath
	Courses []domain.PathCourse
}
