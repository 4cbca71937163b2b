package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

var (
	_ courseRepo   = &courseRepoMock{}
	_ materialRepo = &materialRepoMock{}
)

type courseRepoMock struct {
	ListFunc     func(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
	CreateFunc   func(ctx context.Context, course *domain.Course) (*domain.Course, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *courseRepoMock) List(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	if m.ListFunc == nil {
		panic("courseRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *courseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if m.GetByIDFunc == nil {
		panic("courseRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *courseRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if m.GetByIDsFunc == nil {
		panic("courseRepoMock.GetByIDsFunc: method is nil but GetByIDs was just called")
	}
	return m.GetByIDsFunc(ctx, ids)
}

func (m *courseRepoMock) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if m.CreateFunc == nil {
		panic("courseRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, course)
}

func (m *courseRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error) {
	if m.UpdateFunc == nil {
		panic("courseRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, id, params)
}

func (m *courseRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("courseRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

type materialRepoMock struct {
	ListByCourseFunc func(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error)
}

func (m *materialRepoMock) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error) {
	if m.ListByCourseFunc == nil {
		panic("materialRepoMock.ListByCourseFunc: method is nil but ListByCourse was just called")
	}
	return m.ListByCourseFunc(ctx, courseID)
}
