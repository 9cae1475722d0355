// Code generated by ent, DO NOT EDIT.

package achievementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AchievementType applies equality check predicate on the "achievement_type" field. It's identical to AchievementTypeEQ.
func AchievementType(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementType, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTier, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldCategoryID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSessionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AchievementTypeEQ applies the EQ predicate on the "achievement_type" field.
func AchievementTypeEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementType, v))
}

// AchievementTypeNEQ applies the NEQ predicate on the "achievement_type" field.
func AchievementTypeNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldAchievementType, v))
}

// AchievementTypeIn applies the In predicate on the "achievement_type" field.
func AchievementTypeIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldAchievementType, vs...))
}

// AchievementTypeNotIn applies the NotIn predicate on the "achievement_type" field.
func AchievementTypeNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldAchievementType, vs...))
}

// AchievementTypeGT applies the GT predicate on the "achievement_type" field.
func AchievementTypeGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldAchievementType, v))
}

// AchievementTypeGTE applies the GTE predicate on the "achievement_type" field.
func AchievementTypeGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldAchievementType, v))
}

// AchievementTypeLT applies the LT predicate on the "achievement_type" field.
func AchievementTypeLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldAchievementType, v))
}

// AchievementTypeLTE applies the LTE predicate on the "achievement_type" field.
func AchievementTypeLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldAchievementType, v))
}

// AchievementTypeContains applies the Contains predicate on the "achievement_type" field.
func AchievementTypeContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldAchievementType, v))
}

// AchievementTypeHasPrefix applies the HasPrefix predicate on the "achievement_type" field.
func AchievementTypeHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldAchievementType, v))
}

// AchievementTypeHasSuffix applies the HasSuffix predicate on the "achievement_type" field.
func AchievementTypeHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldAchievementType, v))
}

// AchievementTypeEqualFold applies the EqualFold predicate on the "achievement_type" field.
func AchievementTypeEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldAchievementType, v))
}

// AchievementTypeContainsFold applies the ContainsFold predicate on the "achievement_type" field.
func AchievementTypeContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldAchievementType, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldTier, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotNull(FieldCategoryID))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldCategoryID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.NotPredicates(p))
}
