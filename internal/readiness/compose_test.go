package readiness

import (
	"math"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/spacedrep"
)

// coveredInput returns stats strong enough to cover the first n category
// IDs, padded with extra uncovered IDs so TotalCategories stays fixed.
func coveredInput(n int) ([]CategoryStats, []string) {
	ids := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11"}
	var stats []CategoryStats
	for i := 0; i < n; i++ {
		stats = append(stats, CategoryStats{CategoryID: ids[i], RecentAnswered: 10, RecentCorrect: 9})
	}
	return stats, ids
}

// strongInput builds an input whose every component scores the given value
// when all events share the timestamp now.
func strongInput(score float64, covered int, now time.Time) Input {
	stats, ids := coveredInput(covered)
	in := Input{Stats: stats, CategoryIDs: ids}

	// Constant-accuracy attempts give a weighted mean equal to that accuracy.
	in.TestAttempts = []TestAttempt{
		{Accuracy: score / 100, AttemptedAt: now},
		{Accuracy: score / 100, AttemptedAt: now.AddDate(0, 0, -7)},
	}

	// Same-timestamp answers share one weight, so accuracy is the plain
	// correct fraction.
	total := 100
	correct := int(score)
	for i := 0; i < total; i++ {
		in.GameAnswers = append(in.GameAnswers, Answer{Correct: i < correct, AnsweredAt: now})
	}

	// Max ease score (3.0 → 100) times the correct rate above.
	in.Schedules = []spacedrep.Schedule{
		{QuestionID: "q1", EaseFactor: 3.0},
		{QuestionID: "q2", EaseFactor: 3.0},
	}
	return in
}

func TestCompose_FullBreadthNinety(t *testing.T) {
	now := time.Now()
	score := Compose(strongInput(90, 10, now), now)

	if math.Abs(score.OverallScore-90.0) > 1e-9 {
		t.Errorf("OverallScore = %f, want 90.0", score.OverallScore)
	}
	if score.LetterGrade != GradeA {
		t.Errorf("LetterGrade = %s, want A", score.LetterGrade)
	}
	if score.Breadth.BreadthFactor != 1.0 {
		t.Errorf("BreadthFactor = %f, want 1.0", score.Breadth.BreadthFactor)
	}
	if !score.TestReady {
		t.Error("90%% recent attempt with overall 90 should be test-ready")
	}
}

func TestCompose_NarrowPracticeCap(t *testing.T) {
	now := time.Now()
	// All components maxed but only 5 categories covered.
	score := Compose(strongInput(100, 5, now), now)

	if score.OverallScore > NarrowPracticeCap {
		t.Errorf("OverallScore = %f, must not exceed %f with 5 covered categories",
			score.OverallScore, NarrowPracticeCap)
	}
	if score.OverallScore != NarrowPracticeCap {
		// base 100 scaled by 0.7+0.3*0.5 = 85, so the cap binds exactly.
		t.Errorf("OverallScore = %f, want cap %f to bind", score.OverallScore, NarrowPracticeCap)
	}
	if score.TestReady {
		t.Error("capped score must not be test-ready")
	}
}

func TestCompose_CapNotAppliedToLowScores(t *testing.T) {
	now := time.Now()
	score := Compose(strongInput(40, 3, now), now)
	// base 40 scaled by 0.79 = 31.6, already under the cap.
	if score.OverallScore >= NarrowPracticeCap {
		t.Fatalf("OverallScore = %f, expected well under the cap", score.OverallScore)
	}
	want := 40 * (0.7 + 0.3*0.3)
	if math.Abs(score.OverallScore-want) > 1e-9 {
		t.Errorf("OverallScore = %f, want %f", score.OverallScore, want)
	}
}

func TestCompose_SixCoveredLiftsCap(t *testing.T) {
	now := time.Now()
	score := Compose(strongInput(100, 6, now), now)
	want := 100 * (0.7 + 0.3*0.6)
	if math.Abs(score.OverallScore-want) > 1e-9 {
		t.Errorf("OverallScore = %f, want %f (no cap at 6 covered)", score.OverallScore, want)
	}
}

func TestCompose_EmptyInput(t *testing.T) {
	now := time.Now()
	score := Compose(Input{CategoryIDs: []string{"a", "b"}}, now)

	if score.OverallScore != 0 {
		t.Errorf("OverallScore = %f, want 0 for new user", score.OverallScore)
	}
	if score.LetterGrade != GradeF {
		t.Errorf("LetterGrade = %s, want F", score.LetterGrade)
	}
	if score.TestReady {
		t.Error("new user must not be test-ready")
	}
	for _, c := range score.Components {
		if c.Score != 0 {
			t.Errorf("component %s = %f, want 0", c.Name, c.Score)
		}
	}
}

func TestCompose_ComponentWeights(t *testing.T) {
	now := time.Now()
	score := Compose(Input{}, now)
	var sum float64
	for _, c := range score.Components {
		sum += c.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("component weights sum to %f, want 1.0", sum)
	}
	if len(score.Components) != 3 {
		t.Errorf("got %d components, want 3", len(score.Components))
	}
}

func TestCompose_TestReadyNeedsRecentStrongAttempt(t *testing.T) {
	now := time.Now()

	// Strong everywhere except the one recent attempt is 65%.
	in := strongInput(100, 10, now)
	in.TestAttempts = []TestAttempt{
		{Accuracy: 0.90, AttemptedAt: now.AddDate(0, 0, -40)}, // outside window
		{Accuracy: 0.65, AttemptedAt: now},
	}
	score := Compose(in, now)
	if score.OverallScore < testReadyMinScore {
		t.Fatalf("OverallScore = %f, test precondition broken", score.OverallScore)
	}
	if score.TestReady {
		t.Error("65%% recent attempt must not be test-ready even with a high overall score")
	}

	in.TestAttempts = append(in.TestAttempts, TestAttempt{Accuracy: 0.72, AttemptedAt: now.AddDate(0, 0, -5)})
	score = Compose(in, now)
	if !score.TestReady {
		t.Error("72%% recent attempt with a high overall score should be test-ready")
	}
}

func TestTestScore_RecencyWeighting(t *testing.T) {
	now := time.Now()
	attempts := []TestAttempt{
		{Accuracy: 1.0, AttemptedAt: now},
		{Accuracy: 0.0, AttemptedAt: now.AddDate(0, 0, -42)}, // two half-lives
	}
	got := testScore(attempts, now)
	// Weights 1.0 and 0.25: mean = 1/1.25 = 0.8.
	if math.Abs(got-80.0) > 0.5 {
		t.Errorf("testScore = %f, want ≈80 (recent attempt dominates)", got)
	}
}

func TestGameScore_HalfLife(t *testing.T) {
	now := time.Now()
	answers := []Answer{
		{Correct: true, AnsweredAt: now},
		{Correct: false, AnsweredAt: now.AddDate(0, 0, -28)},
	}
	got := gameScore(answers, now)
	// Weights 1.0 and 0.5: accuracy = 1/1.5.
	want := 100.0 / 1.5
	if math.Abs(got-want) > 0.5 {
		t.Errorf("gameScore = %f, want ≈%f", got, want)
	}
}

func TestRetentionScore_SuppressedByColdRecall(t *testing.T) {
	now := time.Now()
	schedules := []spacedrep.Schedule{{QuestionID: "q", EaseFactor: 3.0}}

	// High ease but no answers in the last 30 days.
	old := []Answer{{Correct: true, AnsweredAt: now.AddDate(0, 0, -45)}}
	if got := retentionScore(schedules, old, now); got != 0 {
		t.Errorf("retentionScore with stale recall = %f, want 0", got)
	}

	// Half the recent answers correct halves the ease-derived score.
	recent := []Answer{
		{Correct: true, AnsweredAt: now},
		{Correct: false, AnsweredAt: now},
	}
	if got := retentionScore(schedules, recent, now); math.Abs(got-50.0) > 1e-9 {
		t.Errorf("retentionScore = %f, want 50", got)
	}
}

func TestRetentionScore_NoSchedules(t *testing.T) {
	now := time.Now()
	answers := []Answer{{Correct: true, AnsweredAt: now}}
	if got := retentionScore(nil, answers, now); got != 0 {
		t.Errorf("retentionScore with no schedules = %f, want 0", got)
	}
}

func TestRetentionScore_EaseNormalization(t *testing.T) {
	now := time.Now()
	answers := []Answer{{Correct: true, AnsweredAt: now}}
	tests := []struct {
		ease float64
		want float64
	}{
		{1.3, 0.0},   // floor maps to zero
		{2.15, 50.0}, // midpoint
		{3.0, 100.0}, // ceiling
		{3.5, 100.0}, // clamped above
	}
	for _, tt := range tests {
		schedules := []spacedrep.Schedule{{QuestionID: "q", EaseFactor: tt.ease}}
		got := retentionScore(schedules, answers, now)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ease %.2f: retentionScore = %f, want %f", tt.ease, got, tt.want)
		}
	}
}

func TestGradeForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradeA}, {90, GradeA}, {89.99, GradeB}, {80, GradeB},
		{79.99, GradeC}, {70, GradeC}, {69.99, GradeD}, {60, GradeD},
		{59.99, GradeF}, {0, GradeF},
	}
	for _, tt := range tests {
		if got := GradeForScore(tt.score); got != tt.want {
			t.Errorf("GradeForScore(%.2f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
