// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/ent/achievementevent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/answerevent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/categorymastery"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/llmrequestevent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/question"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/reviewschedule"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/schema"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/sessionevent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/snapshot"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/testattemptevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementType is the schema descriptor for achievement_type field.
	achievementeventDescAchievementType := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	achievementevent.AchievementTypeValidator = achievementeventDescAchievementType.Validators[0].(func(string) error)
	// achievementeventDescTier is the schema descriptor for tier field.
	achievementeventDescTier := achievementeventFields[1].Descriptor()
	// achievementevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	achievementevent.TierValidator = achievementeventDescTier.Validators[0].(func(string) error)
	// achievementeventDescSessionID is the schema descriptor for session_id field.
	achievementeventDescSessionID := achievementeventFields[3].Descriptor()
	// achievementevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	achievementevent.SessionIDValidator = achievementeventDescSessionID.Validators[0].(func(string) error)
	// achievementeventDescReason is the schema descriptor for reason field.
	achievementeventDescReason := achievementeventFields[4].Descriptor()
	// achievementevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	achievementevent.ReasonValidator = achievementeventDescReason.Validators[0].(func(string) error)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescCategoryID is the schema descriptor for category_id field.
	answereventDescCategoryID := answereventFields[2].Descriptor()
	// answerevent.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	answerevent.CategoryIDValidator = answereventDescCategoryID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[3].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	answereventDescTimeSpentSecs := answereventFields[5].Descriptor()
	// answerevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	answerevent.DefaultTimeSpentSecs = answereventDescTimeSpentSecs.Default.(float64)
	categorymasteryFields := schema.CategoryMastery{}.Fields()
	_ = categorymasteryFields
	// categorymasteryDescCategoryID is the schema descriptor for category_id field.
	categorymasteryDescCategoryID := categorymasteryFields[0].Descriptor()
	// categorymastery.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	categorymastery.CategoryIDValidator = categorymasteryDescCategoryID.Validators[0].(func(string) error)
	// categorymasteryDescTotalCorrect is the schema descriptor for total_correct field.
	categorymasteryDescTotalCorrect := categorymasteryFields[1].Descriptor()
	// categorymastery.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	categorymastery.DefaultTotalCorrect = categorymasteryDescTotalCorrect.Default.(int)
	// categorymastery.TotalCorrectValidator is a validator for the "total_correct" field. It is called by the builders before save.
	categorymastery.TotalCorrectValidator = categorymasteryDescTotalCorrect.Validators[0].(func(int) error)
	// categorymasteryDescTotalAnswered is the schema descriptor for total_answered field.
	categorymasteryDescTotalAnswered := categorymasteryFields[2].Descriptor()
	// categorymastery.DefaultTotalAnswered holds the default value on creation for the total_answered field.
	categorymastery.DefaultTotalAnswered = categorymasteryDescTotalAnswered.Default.(int)
	// categorymastery.TotalAnsweredValidator is a validator for the "total_answered" field. It is called by the builders before save.
	categorymastery.TotalAnsweredValidator = categorymasteryDescTotalAnswered.Validators[0].(func(int) error)
	// categorymasteryDescWeightedCorrectScore is the schema descriptor for weighted_correct_score field.
	categorymasteryDescWeightedCorrectScore := categorymasteryFields[3].Descriptor()
	// categorymastery.DefaultWeightedCorrectScore holds the default value on creation for the weighted_correct_score field.
	categorymastery.DefaultWeightedCorrectScore = categorymasteryDescWeightedCorrectScore.Default.(float64)
	// categorymasteryDescMasteryLevel is the schema descriptor for mastery_level field.
	categorymasteryDescMasteryLevel := categorymasteryFields[4].Descriptor()
	// categorymastery.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	categorymastery.DefaultMasteryLevel = categorymasteryDescMasteryLevel.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescCategoryID is the schema descriptor for category_id field.
	questionDescCategoryID := questionFields[1].Descriptor()
	// question.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	question.CategoryIDValidator = questionDescCategoryID.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[2].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[3].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescSource is the schema descriptor for source field.
	questionDescSource := questionFields[7].Descriptor()
	// question.DefaultSource holds the default value on creation for the source field.
	question.DefaultSource = questionDescSource.Default.(string)
	reviewscheduleFields := schema.ReviewSchedule{}.Fields()
	_ = reviewscheduleFields
	// reviewscheduleDescQuestionID is the schema descriptor for question_id field.
	reviewscheduleDescQuestionID := reviewscheduleFields[0].Descriptor()
	// reviewschedule.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	reviewschedule.QuestionIDValidator = reviewscheduleDescQuestionID.Validators[0].(func(string) error)
	// reviewscheduleDescCategoryID is the schema descriptor for category_id field.
	reviewscheduleDescCategoryID := reviewscheduleFields[1].Descriptor()
	// reviewschedule.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	reviewschedule.CategoryIDValidator = reviewscheduleDescCategoryID.Validators[0].(func(string) error)
	// reviewscheduleDescEaseFactor is the schema descriptor for ease_factor field.
	reviewscheduleDescEaseFactor := reviewscheduleFields[2].Descriptor()
	// reviewschedule.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewschedule.DefaultEaseFactor = reviewscheduleDescEaseFactor.Default.(float64)
	// reviewscheduleDescIntervalDays is the schema descriptor for interval_days field.
	reviewscheduleDescIntervalDays := reviewscheduleFields[3].Descriptor()
	// reviewschedule.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewschedule.DefaultIntervalDays = reviewscheduleDescIntervalDays.Default.(int)
	// reviewschedule.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewschedule.IntervalDaysValidator = reviewscheduleDescIntervalDays.Validators[0].(func(int) error)
	// reviewscheduleDescRepetitions is the schema descriptor for repetitions field.
	reviewscheduleDescRepetitions := reviewscheduleFields[4].Descriptor()
	// reviewschedule.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewschedule.DefaultRepetitions = reviewscheduleDescRepetitions.Default.(int)
	// reviewschedule.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewschedule.RepetitionsValidator = reviewscheduleDescRepetitions.Validators[0].(func(int) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	testattempteventMixin := schema.TestAttemptEvent{}.Mixin()
	testattempteventMixinFields0 := testattempteventMixin[0].Fields()
	_ = testattempteventMixinFields0
	testattempteventFields := schema.TestAttemptEvent{}.Fields()
	_ = testattempteventFields
	// testattempteventDescTimestamp is the schema descriptor for timestamp field.
	testattempteventDescTimestamp := testattempteventMixinFields0[1].Descriptor()
	// testattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	testattemptevent.DefaultTimestamp = testattempteventDescTimestamp.Default.(func() time.Time)
	// testattempteventDescSessionID is the schema descriptor for session_id field.
	testattempteventDescSessionID := testattempteventFields[0].Descriptor()
	// testattemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	testattemptevent.SessionIDValidator = testattempteventDescSessionID.Validators[0].(func(string) error)
	// testattempteventDescTotalQuestions is the schema descriptor for total_questions field.
	testattempteventDescTotalQuestions := testattempteventFields[1].Descriptor()
	// testattemptevent.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	testattemptevent.TotalQuestionsValidator = testattempteventDescTotalQuestions.Validators[0].(func(int) error)
	// testattempteventDescCorrectCount is the schema descriptor for correct_count field.
	testattempteventDescCorrectCount := testattempteventFields[2].Descriptor()
	// testattemptevent.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	testattemptevent.CorrectCountValidator = testattempteventDescCorrectCount.Validators[0].(func(int) error)
	// testattempteventDescDurationSecs is the schema descriptor for duration_secs field.
	testattempteventDescDurationSecs := testattempteventFields[4].Descriptor()
	// testattemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	testattemptevent.DefaultDurationSecs = testattempteventDescDurationSecs.Default.(int)
}
