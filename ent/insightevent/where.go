// Code generated by ent, DO NOT EDIT.

package insightevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyali/arithma/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldRunID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSkillID, v))
}

// PKnown applies equality check predicate on the "p_known" field. It's identical to PKnownEQ.
func PKnown(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldPKnown, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldConfidence, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldClassification, v))
}

// Opportunities applies equality check predicate on the "opportunities" field. It's identical to OpportunitiesEQ.
func Opportunities(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldOpportunities, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSuccessCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// PKnownEQ applies the EQ predicate on the "p_known" field.
func PKnownEQ(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldPKnown, v))
}

// PKnownNEQ applies the NEQ predicate on the "p_known" field.
func PKnownNEQ(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldPKnown, v))
}

// PKnownIn applies the In predicate on the "p_known" field.
func PKnownIn(vs ...float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldPKnown, vs...))
}

// PKnownNotIn applies the NotIn predicate on the "p_known" field.
func PKnownNotIn(vs ...float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldPKnown, vs...))
}

// PKnownGT applies the GT predicate on the "p_known" field.
func PKnownGT(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldPKnown, v))
}

// PKnownGTE applies the GTE predicate on the "p_known" field.
func PKnownGTE(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldPKnown, v))
}

// PKnownLT applies the LT predicate on the "p_known" field.
func PKnownLT(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldPKnown, v))
}

// PKnownLTE applies the LTE predicate on the "p_known" field.
func PKnownLTE(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldPKnown, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldConfidence, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldContainsFold(FieldClassification, v))
}

// OpportunitiesEQ applies the EQ predicate on the "opportunities" field.
func OpportunitiesEQ(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldOpportunities, v))
}

// OpportunitiesNEQ applies the NEQ predicate on the "opportunities" field.
func OpportunitiesNEQ(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldOpportunities, v))
}

// OpportunitiesIn applies the In predicate on the "opportunities" field.
func OpportunitiesIn(vs ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldOpportunities, vs...))
}

// OpportunitiesNotIn applies the NotIn predicate on the "opportunities" field.
func OpportunitiesNotIn(vs ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldOpportunities, vs...))
}

// OpportunitiesGT applies the GT predicate on the "opportunities" field.
func OpportunitiesGT(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldOpportunities, v))
}

// OpportunitiesGTE applies the GTE predicate on the "opportunities" field.
func OpportunitiesGTE(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldOpportunities, v))
}

// OpportunitiesLT applies the LT predicate on the "opportunities" field.
func OpportunitiesLT(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldOpportunities, v))
}

// OpportunitiesLTE applies the LTE predicate on the "opportunities" field.
func OpportunitiesLTE(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldOpportunities, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.InsightEvent {
	return predicate.InsightEvent(sql.FieldLTE(FieldSuccessCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsightEvent) predicate.InsightEvent {
	return predicate.InsightEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsightEvent) predicate.InsightEvent {
	return predicate.InsightEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsightEvent) predicate.InsightEvent {
	return predicate.InsightEvent(sql.NotPredicates(p))
}
