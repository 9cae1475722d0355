// Code generated by ent, DO NOT EDIT.

package reviewschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldQuestionID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldCategoryID, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldRepetitions, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldNextReview, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewed, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContainsFold(FieldQuestionID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContainsFold(FieldCategoryID, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldRepetitions, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldNextReview, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotNull(FieldLastReviewed))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.NotPredicates(p))
}
