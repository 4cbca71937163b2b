package pathgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

// Generate scores the full catalog against the learner profile, orders the
// best matches by prerequisites, and atomically replaces the learner's
// stored path. The profile upsert and career goal log ride the same
// transaction.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	profile := input.toProfile()

	courses, err := s.courses.List(ctx, domain.CourseFilter{})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("course catalog is empty: %w", domain.ErrNotFound)
	}

	scores := s.scoreCourses(ctx, courses, profile)
	applyLevelBoosts(scores, courses, profile.EducationLevel)

	order := orderByPrerequisites(courses, scores)

	sequence := make([]uuid.UUID, 0, s.cfg.MaxPathLength)
	relevance := make(map[uuid.UUID]float64)
	for _, i := range order {
		if scores[i] <= 0 {
			continue
		}
		relevance[courses[i].ID] = scores[i]
		if len(sequence) < s.cfg.MaxPathLength {
			sequence = append(sequence, courses[i].ID)
		}
	}

	path := &domain.LearningPath{
		LearnerID:       profile.LearnerID,
		CourseSequence:  sequence,
		RelevanceScores: relevance,
		Reasoning:       buildReasoning(profile),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.profiles.Upsert(txCtx, profile); err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		if _, err := s.paths.DeleteByLearner(txCtx, profile.LearnerID); err != nil {
			return fmt.Errorf("delete previous paths: %w", err)
		}
		saved, err := s.paths.Create(txCtx, path)
		if err != nil {
			return fmt.Errorf("save path: %w", err)
		}
		path = saved
		if err := s.goals.Increment(txCtx, profile.CareerGoal); err != nil {
			return fmt.Errorf("log career goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "learning path generated",
		slog.String("learner_id", profile.LearnerID),
		slog.String("career_goal", profile.CareerGoal),
		slog.Int("catalog_size", len(courses)),
		slog.Int("path_length", len(sequence)),
	)

	return &Result{
		Path:    path,
		Courses: path.ResolveSequence(courses),
	}, nil
}

// scoreCourses returns the combined similarity score per course. The lexical
// TF-IDF signal always contributes; the semantic embedding signal is blended
// in when a provider is configured and reachable.
func (s *Service) scoreCourses(ctx context.Context, courses []domain.Course, profile *domain.LearnerProfile) []float64 {
	texts := make([]string, len(courses)+1)
	for i := range courses {
		texts[i] = courses[i].SearchText()
	}
	texts[len(courses)] = profile.ProfileText()

	vectors := tfidfVectorizer{maxFeatures: s.cfg.MaxFeatures}.fitTransform(texts)
	learnerVec := vectors[len(courses)]

	scores := make([]float64, len(courses))
	for i := range courses {
		scores[i] = cosineSimilarity(learnerVec, vectors[i])
	}

	if s.embedder == nil {
		return scores
	}

	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		s.log.WarnContext(ctx, "embedding provider unavailable, using lexical scores only",
			slog.String("error", err.Error()),
		)
		return scores
	}

	learnerEmb := embeddings[len(courses)]
	for i := range courses {
		semantic := cosineSimilarity(learnerEmb, embeddings[i])
		scores[i] = s.cfg.TFIDFWeight*scores[i] + s.cfg.SemanticWeight*semantic
	}

	return scores
}

func buildReasoning(profile *domain.LearnerProfile) string {
	topSkills := profile.DesiredSkills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	return fmt.Sprintf(
		"Path generated using semantic analysis (TF-IDF + embeddings), education matching, and prerequisite ordering. Top skills matched: %s",
		strings.Join(topSkills, ", "),
	)
}
