package pathgen

import "github.com/skillone/skillone-backend/internal/domain"

// Boost factors applied on top of the combined similarity score.
const (
	educationMatchBoost     = 1.3
	beginnerAlignmentBoost  = 1.2
	advancedAlignmentBoost  = 1.1
	educationMatchTolerance = 1
)

// applyLevelBoosts adjusts scores in place for education level proximity and
// progressive difficulty: a course within one education level of the learner
// gets a strong boost; beginners are nudged toward beginner courses and
// everyone else toward non-beginner ones.
func applyLevelBoosts(scores []float64, courses []domain.Course, learnerLevel domain.EducationLevel) {
	learnerRank := learnerLevel.Rank()

	for i, course := range courses {
		levelDiff := course.EducationLevel.Rank() - learnerRank
		if levelDiff < 0 {
			levelDiff = -levelDiff
		}
		if levelDiff <= educationMatchTolerance {
			scores[i] *= educationMatchBoost
		}

		difficultyRank := course.DifficultyLevel.Rank()
		switch {
		case learnerRank == 1 && difficultyRank == 1:
			scores[i] *= beginnerAlignmentBoost
		case learnerRank >= 2 && difficultyRank >= 2:
			scores[i] *= advancedAlignmentBoost
		}
	}
}
