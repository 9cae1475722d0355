// Code generated by ent, DO NOT EDIT.

package categorymastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldCategoryID, v))
}

// TotalCorrect applies equality check predicate on the "total_correct" field. It's identical to TotalCorrectEQ.
func TotalCorrect(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalAnswered applies equality check predicate on the "total_answered" field. It's identical to TotalAnsweredEQ.
func TotalAnswered(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldTotalAnswered, v))
}

// WeightedCorrectScore applies equality check predicate on the "weighted_correct_score" field. It's identical to WeightedCorrectScoreEQ.
func WeightedCorrectScore(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldWeightedCorrectScore, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// LastAnswered applies equality check predicate on the "last_answered" field. It's identical to LastAnsweredEQ.
func LastAnswered(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldLastAnswered, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldContainsFold(FieldCategoryID, v))
}

// TotalCorrectEQ applies the EQ predicate on the "total_correct" field.
func TotalCorrectEQ(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalCorrectNEQ applies the NEQ predicate on the "total_correct" field.
func TotalCorrectNEQ(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldTotalCorrect, v))
}

// TotalCorrectIn applies the In predicate on the "total_correct" field.
func TotalCorrectIn(vs ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldTotalCorrect, vs...))
}

// TotalCorrectNotIn applies the NotIn predicate on the "total_correct" field.
func TotalCorrectNotIn(vs ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldTotalCorrect, vs...))
}

// TotalCorrectGT applies the GT predicate on the "total_correct" field.
func TotalCorrectGT(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldTotalCorrect, v))
}

// TotalCorrectGTE applies the GTE predicate on the "total_correct" field.
func TotalCorrectGTE(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldTotalCorrect, v))
}

// TotalCorrectLT applies the LT predicate on the "total_correct" field.
func TotalCorrectLT(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldTotalCorrect, v))
}

// TotalCorrectLTE applies the LTE predicate on the "total_correct" field.
func TotalCorrectLTE(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldTotalCorrect, v))
}

// TotalAnsweredEQ applies the EQ predicate on the "total_answered" field.
func TotalAnsweredEQ(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldTotalAnswered, v))
}

// TotalAnsweredNEQ applies the NEQ predicate on the "total_answered" field.
func TotalAnsweredNEQ(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldTotalAnswered, v))
}

// TotalAnsweredIn applies the In predicate on the "total_answered" field.
func TotalAnsweredIn(vs ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldTotalAnswered, vs...))
}

// TotalAnsweredNotIn applies the NotIn predicate on the "total_answered" field.
func TotalAnsweredNotIn(vs ...int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldTotalAnswered, vs...))
}

// TotalAnsweredGT applies the GT predicate on the "total_answered" field.
func TotalAnsweredGT(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldTotalAnswered, v))
}

// TotalAnsweredGTE applies the GTE predicate on the "total_answered" field.
func TotalAnsweredGTE(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldTotalAnswered, v))
}

// TotalAnsweredLT applies the LT predicate on the "total_answered" field.
func TotalAnsweredLT(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldTotalAnswered, v))
}

// TotalAnsweredLTE applies the LTE predicate on the "total_answered" field.
func TotalAnsweredLTE(v int) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldTotalAnswered, v))
}

// WeightedCorrectScoreEQ applies the EQ predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreEQ(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldWeightedCorrectScore, v))
}

// WeightedCorrectScoreNEQ applies the NEQ predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreNEQ(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldWeightedCorrectScore, v))
}

// WeightedCorrectScoreIn applies the In predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreIn(vs ...float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldWeightedCorrectScore, vs...))
}

// WeightedCorrectScoreNotIn applies the NotIn predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreNotIn(vs ...float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldWeightedCorrectScore, vs...))
}

// WeightedCorrectScoreGT applies the GT predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreGT(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldWeightedCorrectScore, v))
}

// WeightedCorrectScoreGTE applies the GTE predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreGTE(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldWeightedCorrectScore, v))
}

// WeightedCorrectScoreLT applies the LT predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreLT(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldWeightedCorrectScore, v))
}

// WeightedCorrectScoreLTE applies the LTE predicate on the "weighted_correct_score" field.
func WeightedCorrectScoreLTE(v float64) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldWeightedCorrectScore, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// LastAnsweredEQ applies the EQ predicate on the "last_answered" field.
func LastAnsweredEQ(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldEQ(FieldLastAnswered, v))
}

// LastAnsweredNEQ applies the NEQ predicate on the "last_answered" field.
func LastAnsweredNEQ(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNEQ(FieldLastAnswered, v))
}

// LastAnsweredIn applies the In predicate on the "last_answered" field.
func LastAnsweredIn(vs ...time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIn(FieldLastAnswered, vs...))
}

// LastAnsweredNotIn applies the NotIn predicate on the "last_answered" field.
func LastAnsweredNotIn(vs ...time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotIn(FieldLastAnswered, vs...))
}

// LastAnsweredGT applies the GT predicate on the "last_answered" field.
func LastAnsweredGT(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGT(FieldLastAnswered, v))
}

// LastAnsweredGTE applies the GTE predicate on the "last_answered" field.
func LastAnsweredGTE(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldGTE(FieldLastAnswered, v))
}

// LastAnsweredLT applies the LT predicate on the "last_answered" field.
func LastAnsweredLT(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLT(FieldLastAnswered, v))
}

// LastAnsweredLTE applies the LTE predicate on the "last_answered" field.
func LastAnsweredLTE(v time.Time) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldLTE(FieldLastAnswered, v))
}

// LastAnsweredIsNil applies the IsNil predicate on the "last_answered" field.
func LastAnsweredIsNil() predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldIsNull(FieldLastAnswered))
}

// LastAnsweredNotNil applies the NotNil predicate on the "last_answered" field.
func LastAnsweredNotNil() predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.FieldNotNull(FieldLastAnswered))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryMastery) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryMastery) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryMastery) predicate.CategoryMastery {
	return predicate.CategoryMastery(sql.NotPredicates(p))
}
