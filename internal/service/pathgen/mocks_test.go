package pathgen

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

var (
	_ courseRepo  = &courseRepoMock{}
	_ profileRepo = &profileRepoMock{}
	_ pathRepo    = &pathRepoMock{}
	_ goalRepo    = &goalRepoMock{}
	_ embedder    = &embedderMock{}
	_ txManager   = &txManagerMock{}
)

type courseRepoMock struct {
	ListFunc     func(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
}

func (m *courseRepoMock) List(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	if m.ListFunc == nil {
		panic("courseRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *courseRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if m.GetByIDsFunc == nil {
		panic("courseRepoMock.GetByIDsFunc: method is nil but GetByIDs was just called")
	}
	return m.GetByIDsFunc(ctx, ids)
}

type profileRepoMock struct {
	UpsertFunc func(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error)
}

func (m *profileRepoMock) Upsert(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error) {
	if m.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but Upsert was just called")
	}
	return m.UpsertFunc(ctx, profile)
}

type pathRepoMock struct {
	CreateFunc          func(ctx context.Context, path *domain.LearningPath) (*domain.LearningPath, error)
	DeleteByLearnerFunc func(ctx context.Context, learnerID string) (int64, error)
	ListByLearnerFunc   func(ctx context.Context, learnerID string) ([]domain.LearningPath, error)
}

func (m *pathRepoMock) Create(ctx context.Context, path *domain.LearningPath) (*domain.LearningPath, error) {
	if m.CreateFunc == nil {
		panic("pathRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, path)
}

func (m *pathRepoMock) DeleteByLearner(ctx context.Context, learnerID string) (int64, error) {
	if m.DeleteByLearnerFunc == nil {
		panic("pathRepoMock.DeleteByLearnerFunc: method is nil but DeleteByLearner was just called")
	}
	return m.DeleteByLearnerFunc(ctx, learnerID)
}

func (m *pathRepoMock) ListByLearner(ctx context.Context, learnerID string) ([]domain.LearningPath, error) {
	if m.ListByLearnerFunc == nil {
		panic("pathRepoMock.ListByLearnerFunc: method is nil but ListByLearner was just called")
	}
	return m.ListByLearnerFunc(ctx, learnerID)
}

type goalRepoMock struct {
	IncrementFunc func(ctx context.Context, goal string) error
}

func (m *goalRepoMock) Increment(ctx context.Context, goal string) error {
	if m.IncrementFunc == nil {
		panic("goalRepoMock.IncrementFunc: method is nil but Increment was just called")
	}
	return m.IncrementFunc(ctx, goal)
}

type embedderMock struct {
	EmbedFunc func(ctx context.Context, texts []string) ([][]float64, error)
}

func (m *embedderMock) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if m.EmbedFunc == nil {
		panic("embedderMock.EmbedFunc: method is nil but Embed was just called")
	}
	return m.EmbedFunc(ctx, texts)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with
// the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
