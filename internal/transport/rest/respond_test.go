package rest

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillone/skillone-backend/internal/service/pathgen"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

func TestHandleError_LogsLearnerIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/learning-paths/learner-42", nil)
	req = req.WithContext(ctxutil.WithLearnerID(req.Context(), "learner-42"))
	rec := httptest.NewRecorder()

	handleError(rec, req, logger, errors.New("connection reset"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"learner_id":"learner-42"`)
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGenerate_FailureLogCarriesLearnerID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	paths := &pathServiceMock{
		GenerateFunc: func(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error) {
			id, ok := ctxutil.LearnerIDFromCtx(ctx)
			require.True(t, ok)
			require.Equal(t, "learner-7", id)
			return nil, errors.New("engine exploded")
		},
	}
	handler := NewPathHandler(paths, &suggestServiceMock{}, logger)

	body := strings.NewReader(`{"learner_id": "learner-7", "career_goal": "Data Scientist"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-learning-path", body)
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"learner_id":"learner-7"`)
}
