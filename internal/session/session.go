package session

import (
	"context"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/questiongen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
)

// noteRequestThreshold is how many misses in one category trigger a
// study-note request.
const noteRequestThreshold = 2

// HandleAnswer processes the player's answer to the current question,
// updating session state and recording the event through the progress
// service. Feedback fields (LastAnswerCorrect, LevelUp, PendingAward) are
// reset and repopulated on every call.
func HandleAnswer(state *State, selected string) {
	q := state.CurrentQuestion()
	if q == nil {
		return
	}

	correct := questiongen.CheckAnswer(selected, q.Answer)
	state.LastAnswerCorrect = correct
	state.LastExplanation = q.Explanation
	state.LevelUp = nil
	state.PendingAward = nil
	state.LastMastery = nil
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}

	if cr := state.PerCategory[q.CategoryID]; cr != nil {
		cr.Attempted++
		if correct {
			cr.Correct++
		}
		if cr.CategoryName == "" {
			cr.CategoryName = catalog.CategoryName(q.CategoryID)
		}
	}

	if state.Progress != nil {
		res, err := state.Progress.RecordAnswer(context.Background(), progress.Answer{
			SessionID:     state.SessionID,
			QuestionID:    q.QuestionID,
			CategoryID:    q.CategoryID,
			Mode:          string(state.Plan.Mode),
			Correct:       correct,
			TimeSpentSecs: time.Since(state.QuestionStartTime).Seconds(),
		})
		state.RecordErr = err
		if err == nil {
			state.LastMastery = &res.Mastery
			if res.LeveledUp {
				state.LevelUp = &LevelUp{
					CategoryID:   q.CategoryID,
					CategoryName: catalog.CategoryName(q.CategoryID),
					Level:        res.Mastery.Level,
				}
				state.PendingAward = res.Award
			}
		}
	}

	if correct {
		state.ConsecutiveCorrect++
		if state.ConsecutiveCorrect > state.BestStreak {
			state.BestStreak = state.ConsecutiveCorrect
		}
		if state.Awards != nil && state.ConsecutiveCorrect >= state.NextStreakThreshold {
			award := state.Awards.AwardStreak(context.Background(), state.ConsecutiveCorrect, state.SessionID)
			// A level-up award keeps display priority over the streak.
			if state.PendingAward == nil {
				state.PendingAward = award
			}
			state.NextStreakThreshold = achievements.NextStreakThreshold(state.ConsecutiveCorrect)
		}
	} else {
		state.ConsecutiveCorrect = 0
		state.NextStreakThreshold = achievements.BaseStreakThreshold
		trackMiss(state, q)
	}
}

// HandleTimeout records a timed-out question as a miss.
func HandleTimeout(state *State) {
	HandleAnswer(state, "")
}

// trackMiss remembers the missed prompt and requests a study note once a
// category has been missed enough times this session.
func trackMiss(state *State, q *store.QuestionData) {
	misses := append(state.RecentMisses[q.CategoryID], q.Prompt)
	if len(misses) > MaxRecentMisses {
		misses = misses[len(misses)-MaxRecentMisses:]
	}
	state.RecentMisses[q.CategoryID] = misses
	state.WrongCountByCategory[q.CategoryID]++

	if state.WrongCountByCategory[q.CategoryID] < noteRequestThreshold || state.Notes == nil {
		return
	}
	cat, err := catalog.GetCategory(q.CategoryID)
	if err != nil {
		return
	}

	input := studynotes.NoteInput{
		Category:     cat,
		RecentMisses: misses,
	}
	if cr := state.PerCategory[q.CategoryID]; cr != nil && cr.Attempted > 0 {
		input.Accuracy = float64(cr.Correct) / float64(cr.Attempted)
	}
	if state.LastMastery != nil {
		input.MasteryLevel = string(state.LastMastery.Level)
	}
	state.Notes.RequestNote(context.Background(), input)
	state.PendingNote = true
}

// Advance moves to the next question. Returns false when the plan is
// exhausted, at which point the session should finish.
func Advance(state *State) bool {
	state.Index++
	if state.Index >= len(state.Plan.Slots) {
		return false
	}
	state.QuestionStartTime = time.Now()
	return true
}

// Finish closes out the session: the session event is logged, the
// completion achievement fires, and for the anytime test the attempt is
// recorded so readiness scoring can see it. action is "completed" or
// "abandoned". Persistence failures land in state.RecordErr; the summary is
// still returned so the player sees their results.
func Finish(state *State, events store.EventRepo, action string) *Summary {
	state.Elapsed = time.Since(state.StartTime)
	state.Phase = PhaseSummary
	ctx := context.Background()

	if events != nil {
		err := events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			Mode:            string(state.Plan.Mode),
			Action:          action,
			QuestionsServed: state.TotalQuestions,
			CorrectAnswers:  state.TotalCorrect,
			DurationSecs:    int(state.Elapsed.Seconds()),
		})
		if err != nil {
			state.RecordErr = err
		}
	}

	if state.Plan.Mode == ModeAnytimeTest && state.Progress != nil && state.TotalQuestions > 0 {
		err := state.Progress.RecordTestAttempt(ctx, store.TestAttemptData{
			SessionID:      state.SessionID,
			TotalQuestions: state.TotalQuestions,
			CorrectCount:   state.TotalCorrect,
			Accuracy:       state.Accuracy(),
			DurationSecs:   int(state.Elapsed.Seconds()),
		})
		if err != nil {
			state.RecordErr = err
		}
	}

	if state.Awards != nil && action == "completed" && state.TotalQuestions > 0 {
		state.Awards.AwardSession(ctx, state.Accuracy(), state.SessionID)
	}

	return BuildSummary(state)
}
