package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillone/skillone-backend/internal/auth"
	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/internal/service/catalog"
	"github.com/skillone/skillone-backend/internal/service/interaction"
	"github.com/skillone/skillone-backend/internal/service/material"
	"github.com/skillone/skillone-backend/internal/service/pathgen"
	"github.com/skillone/skillone-backend/internal/transport/middleware"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

type pathServiceMock struct {
	GenerateFunc  func(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error)
	ListPathsFunc func(ctx context.Context, learnerID string) ([]pathgen.ResolvedPath, error)
}

func (m *pathServiceMock) Generate(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error) {
	return m.GenerateFunc(ctx, input)
}

func (m *pathServiceMock) ListPaths(ctx context.Context, learnerID string) ([]pathgen.ResolvedPath, error) {
	return m.ListPathsFunc(ctx, learnerID)
}

type suggestServiceMock struct {
	SuggestFunc func(ctx context.Context, query string) []string
}

func (m *suggestServiceMock) Suggest(ctx context.Context, query string) []string {
	return m.SuggestFunc(ctx, query)
}

type catalogServiceMock struct {
	ListCoursesFunc  func(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetCourseFunc    func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	CreateCourseFunc func(ctx context.Context, input catalog.CreateCourseInput) (*domain.Course, error)
	UpdateCourseFunc func(ctx context.Context, input catalog.UpdateCourseInput) (*domain.Course, error)
	DeleteCourseFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *catalogServiceMock) ListCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	return m.ListCoursesFunc(ctx, filter)
}

func (m *catalogServiceMock) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return m.GetCourseFunc(ctx, id)
}

func (m *catalogServiceMock) CreateCourse(ctx context.Context, input catalog.CreateCourseInput) (*domain.Course, error) {
	return m.CreateCourseFunc(ctx, input)
}

func (m *catalogServiceMock) UpdateCourse(ctx context.Context, input catalog.UpdateCourseInput) (*domain.Course, error) {
	return m.UpdateCourseFunc(ctx, input)
}

func (m *catalogServiceMock) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return m.DeleteCourseFunc(ctx, id)
}

type materialServiceMock struct {
	ListMaterialsFunc  func(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error)
	AddMaterialFunc    func(ctx context.Context, input material.AddMaterialInput) (*domain.Material, error)
	UpdateMaterialFunc func(ctx context.Context, input material.UpdateMaterialInput) (*domain.Material, error)
	DeleteMaterialFunc func(ctx context.Context, id uuid.UUID) error
	UploadMaterialFunc func(ctx context.Context, input material.UploadMaterialInput, content io.Reader) (*domain.Material, error)
}

func (m *materialServiceMock) ListMaterials(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error) {
	return m.ListMaterialsFunc(ctx, courseID)
}

func (m *materialServiceMock) AddMaterial(ctx context.Context, input material.AddMaterialInput) (*domain.Material, error) {
	return m.AddMaterialFunc(ctx, input)
}

func (m *materialServiceMock) UpdateMaterial(ctx context.Context, input material.UpdateMaterialInput) (*domain.Material, error) {
	return m.UpdateMaterialFunc(ctx, input)
}

func (m *materialServiceMock) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return m.DeleteMaterialFunc(ctx, id)
}

func (m *materialServiceMock) UploadMaterial(ctx context.Context, input material.UploadMaterialInput, content io.Reader) (*domain.Material, error) {
	return m.UploadMaterialFunc(ctx, input, content)
}

type interactionServiceMock struct {
	TrackFunc   func(ctx context.Context, input interaction.TrackInput) (*domain.Interaction, error)
	HistoryFunc func(ctx context.Context, learnerID string) ([]domain.Interaction, error)
}

func (m *interactionServiceMock) Track(ctx context.Context, input interaction.TrackInput) (*domain.Interaction, error) {
	return m.TrackFunc(ctx, input)
}

func (m *interactionServiceMock) History(ctx context.Context, learnerID string) ([]domain.Interaction, error) {
	return m.HistoryFunc(ctx, learnerID)
}

type routerMocks struct {
	paths        *pathServiceMock
	suggest      *suggestServiceMock
	catalog      *catalogServiceMock
	materials    *materialServiceMock
	interactions *interactionServiceMock
}

const (
	testAdminUser     = "admin"
	testAdminPassword = "s3cret"
)

func newTestRouter(t *testing.T, mocks routerMocks) (http.Handler, *auth.JWTManager) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	manager := auth.NewJWTManager("router-test-secret", "skillone-test", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	verifier := auth.NewCredentialVerifier(testAdminUser, string(hash))

	handlers := Handlers{
		Health:      NewHealthHandler(&dbPingerMock{}, "test"),
		Auth:        NewAuthHandler(verifier, manager, logger),
		Path:        NewPathHandler(mocks.paths, mocks.suggest, logger),
		Course:      NewCourseHandler(mocks.catalog, logger),
		Material:    NewMaterialHandler(mocks.materials, logger),
		Interaction: NewInteractionHandler(mocks.interactions, logger),
	}

	return NewRouter(handlers, middleware.AdminAuth(manager)), manager
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func adminHeaders(t *testing.T, manager *auth.JWTManager) map[string]string {
	t.Helper()
	token, err := manager.GenerateAccessToken(testAdminUser, auth.RoleAdmin)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// ---------------------------------------------------------------------------
// Path generation endpoints
// ---------------------------------------------------------------------------

func TestGenerateEndpoint_Success(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	relevance := 87
	paths := &pathServiceMock{
		GenerateFunc: func(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error) {
			assert.Equal(t, "learner-1", input.LearnerID)
			assert.Equal(t, "Data Engineer", input.CareerGoal)
			return &pathgen.Result{
				Path: &domain.LearningPath{
					ID:              uuid.New(),
					LearnerID:       input.LearnerID,
					CourseSequence:  []uuid.UUID{courseID},
					RelevanceScores: map[uuid.UUID]float64{courseID: 0.87},
					Reasoning:       "matched python",
				},
				Courses: []domain.PathCourse{{
					Course:           domain.Course{ID: courseID, Title: "Intro to SQL"},
					RelevancePercent: &relevance,
				}},
			}, nil
		},
	}
	router, _ := newTestRouter(t, routerMocks{paths: paths})

	rec := doJSON(t, router, http.MethodPost, "/api/generate-learning-path", map[string]any{
		"learner_id":     "learner-1",
		"career_goal":    "Data Engineer",
		"desired_skills": []string{"sql"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{courseID.String()}, resp.LearningPath)
	assert.Equal(t, 1, resp.TotalCourses)
	assert.InDelta(t, 0.87, resp.Scores[courseID.String()], 1e-9)
	require.Len(t, resp.PathwayDetails, 1)
	assert.Equal(t, "Intro to SQL", resp.PathwayDetails[0].Title)
	require.NotNil(t, resp.PathwayDetails[0].RelevancePercent)
	assert.Equal(t, 87, *resp.PathwayDetails[0].RelevancePercent)
}

func TestGenerateEndpoint_ValidationError(t *testing.T) {
	t.Parallel()

	paths := &pathServiceMock{
		GenerateFunc: func(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error) {
			return nil, domain.NewValidationError("career_goal", "required")
		},
	}
	router, _ := newTestRouter(t, routerMocks{paths: paths})

	rec := doJSON(t, router, http.MethodPost, "/api/generate-learning-path", map[string]any{
		"learner_id": "learner-1",
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "career_goal")
}

func TestGenerateEndpoint_EmptyCatalog(t *testing.T) {
	t.Parallel()

	paths := &pathServiceMock{
		GenerateFunc: func(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error) {
			return nil, fmt.Errorf("course catalog is empty: %w", domain.ErrNotFound)
		},
	}
	router, _ := newTestRouter(t, routerMocks{paths: paths})

	rec := doJSON(t, router, http.MethodPost, "/api/generate-learning-path", map[string]any{
		"learner_id":  "learner-1",
		"career_goal": "Data Engineer",
	}, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateEndpoint_MalformedBody(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, routerMocks{paths: &pathServiceMock{}})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-learning-path", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPathsEndpoint(t *testing.T) {
	t.Parallel()

	paths := &pathServiceMock{
		ListPathsFunc: func(ctx context.Context, learnerID string) ([]pathgen.ResolvedPath, error) {
			assert.Equal(t, "learner-1", learnerID)
			return []pathgen.ResolvedPath{{
				Path: domain.LearningPath{ID: uuid.New(), LearnerID: learnerID},
			}}, nil
		},
	}
	router, _ := newTestRouter(t, routerMocks{paths: paths})

	rec := doJSON(t, router, http.MethodGet, "/api/learning-paths/learner-1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Paths []pathResponse `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Paths, 1)
	assert.Equal(t, "learner-1", resp.Paths[0].LearnerID)
}

func TestSuggestionsEndpoint_NeverFails(t *testing.T) {
	t.Parallel()

	suggest := &suggestServiceMock{
		SuggestFunc: func(ctx context.Context, query string) []string {
			assert.Equal(t, "eng", query)
			return []string{}
		},
	}
	router, _ := newTestRouter(t, routerMocks{suggest: suggest})

	rec := doJSON(t, router, http.MethodGet, "/api/career-goals/suggestions?query=eng", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp["suggestions"])
	assert.Empty(t, resp["suggestions"])
}

// ---------------------------------------------------------------------------
// Catalog endpoints
// ---------------------------------------------------------------------------

func TestListCoursesEndpoint_PassesFilter(t *testing.T) {
	t.Parallel()

	cat := &catalogServiceMock{
		ListCoursesFunc: func(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
			assert.Equal(t, "python", filter.Search)
			assert.Equal(t, "Beginner", filter.Difficulty)
			return []domain.Course{{ID: uuid.New(), Title: "Python Basics"}}, nil
		},
	}
	router, _ := newTestRouter(t, routerMocks{catalog: cat})

	rec := doJSON(t, router, http.MethodGet, "/api/courses?search=python&difficulty=Beginner", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCourseEndpoint_InvalidID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, routerMocks{catalog: &catalogServiceMock{}})

	rec := doJSON(t, router, http.MethodGet, "/api/courses/not-a-uuid", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCourseEndpoint_NotFound(t *testing.T) {
	t.Parallel()

	cat := &catalogServiceMock{
		GetCourseFunc: func(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
			return nil, fmt.Errorf("get course: %w", domain.ErrNotFound)
		},
	}
	router, _ := newTestRouter(t, routerMocks{catalog: cat})

	rec := doJSON(t, router, http.MethodGet, "/api/courses/"+uuid.NewString(), nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCourseEndpoint_RequiresToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, routerMocks{catalog: &catalogServiceMock{}})

	rec := doJSON(t, router, http.MethodPost, "/api/courses", map[string]any{"title": "X"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCourseEndpoint_Success(t *testing.T) {
	t.Parallel()

	cat := &catalogServiceMock{
		CreateCourseFunc: func(ctx context.Context, input catalog.CreateCourseInput) (*domain.Course, error) {
			assert.True(t, ctxutil.IsAdminCtx(ctx))
			assert.Equal(t, "Python Basics", input.Title)
			return &domain.Course{ID: uuid.New(), Title: input.Title, Tags: input.Tags}, nil
		},
	}
	router, manager := newTestRouter(t, routerMocks{catalog: cat})

	rec := doJSON(t, router, http.MethodPost, "/api/courses", map[string]any{
		"title":            "Python Basics",
		"description":      "Start here",
		"difficulty_level": "Beginner",
		"education_level":  "Undergraduate",
		"tags":             []string{"python"},
	}, adminHeaders(t, manager))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp courseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Python Basics", resp.Title)
}

func TestDeleteCourseEndpoint(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	cat := &catalogServiceMock{
		DeleteCourseFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, courseID, id)
			return nil
		},
	}
	router, manager := newTestRouter(t, routerMocks{catalog: cat})

	rec := doJSON(t, router, http.MethodDelete, "/api/courses/"+courseID.String(), nil, adminHeaders(t, manager))
	require.Equal(t, http.StatusOK, rec.Code)
}

// ---------------------------------------------------------------------------
// Material endpoints
// ---------------------------------------------------------------------------

func TestListMaterialsEndpoint(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	mats := &materialServiceMock{
		ListMaterialsFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Material, error) {
			return []domain.Material{{ID: uuid.New(), CourseID: id, MaterialType: domain.MaterialLink}}, nil
		},
	}
	router, _ := newTestRouter(t, routerMocks{materials: mats})

	rec := doJSON(t, router, http.MethodGet, "/api/courses/"+courseID.String()+"/materials", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Materials []materialResponse `json:"materials"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, "link", resp.Materials[0].MaterialType)
}

func TestUploadMaterialEndpoint(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	mats := &materialServiceMock{
		UploadMaterialFunc: func(ctx context.Context, input material.UploadMaterialInput, content io.Reader) (*domain.Material, error) {
			assert.Equal(t, courseID, input.CourseID)
			assert.Equal(t, "notes.pdf", input.FileName)
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(data))
			return &domain.Material{ID: uuid.New(), CourseID: input.CourseID, MaterialType: domain.MaterialDocument}, nil
		},
	}
	router, manager := newTestRouter(t, routerMocks{materials: mats})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/courses/"+courseID.String()+"/materials/upload", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	for k, v := range adminHeaders(t, manager) {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadMaterialEndpoint_StorageUnavailable(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	mats := &materialServiceMock{
		UploadMaterialFunc: func(ctx context.Context, input material.UploadMaterialInput, content io.Reader) (*domain.Material, error) {
			return nil, fmt.Errorf("file storage is not configured: %w", domain.ErrUnavailable)
		},
	}
	router, manager := newTestRouter(t, routerMocks{materials: mats})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/courses/"+courseID.String()+"/materials/upload", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	for k, v := range adminHeaders(t, manager) {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// zeroReader yields an endless stream without allocating the payload.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) { return len(p), nil }

func TestUploadMaterialEndpoint_BodyTooLarge(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	// No UploadMaterialFunc: reaching the service would panic the handler
	// and fail the status assertion below.
	router, manager := newTestRouter(t, routerMocks{materials: &materialServiceMock{}})

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile("file", "huge.bin")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		io.Copy(part, io.LimitReader(zeroReader{}, material.MaxUploadBytes+uploadFormOverhead+1)) //nolint:errcheck
		form.Close()                                                                              //nolint:errcheck
		pw.Close()
	}()
	defer pr.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/courses/"+courseID.String()+"/materials/upload", pr)
	req.Header.Set("Content-Type", form.FormDataContentType())
	for k, v := range adminHeaders(t, manager) {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "file too large")
}

// ---------------------------------------------------------------------------
// Interaction endpoints
// ---------------------------------------------------------------------------

func TestTrackEndpoint(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	interactions := &interactionServiceMock{
		TrackFunc: func(ctx context.Context, input interaction.TrackInput) (*domain.Interaction, error) {
			assert.Equal(t, courseID, input.CourseID)
			assert.Equal(t, "enroll", input.InteractionType)
			return &domain.Interaction{
				ID:              uuid.New(),
				LearnerID:       input.LearnerID,
				CourseID:        input.CourseID,
				InteractionType: domain.InteractionEnroll,
			}, nil
		},
	}
	router, _ := newTestRouter(t, routerMocks{interactions: interactions})

	rec := doJSON(t, router, http.MethodPost, "/api/track-interaction", map[string]any{
		"learner_id":       "learner-1",
		"course_id":        courseID.String(),
		"interaction_type": "enroll",
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestTrackEndpoint_InvalidCourseID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, routerMocks{interactions: &interactionServiceMock{}})

	rec := doJSON(t, router, http.MethodPost, "/api/track-interaction", map[string]any{
		"learner_id":       "learner-1",
		"course_id":        "garbage",
		"interaction_type": "view",
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// Admin login
// ---------------------------------------------------------------------------

func TestAdminLogin(t *testing.T) {
	t.Parallel()

	router, manager := newTestRouter(t, routerMocks{})

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp["token"])

	subject, role, err := manager.ValidateAccessToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, testAdminUser, subject)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, routerMocks{})

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid credentials", resp["error"])
}
