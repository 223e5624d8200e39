// Code generated by ent, DO NOT EDIT.

package storyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devika/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSessionID, v))
}

// Hero applies equality check predicate on the "hero" field. It's identical to HeroEQ.
func Hero(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldHero, v))
}

// Problem applies equality check predicate on the "problem" field. It's identical to ProblemEQ.
func Problem(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldProblem, v))
}

// ProblemType applies equality check predicate on the "problem_type" field. It's identical to ProblemTypeEQ.
func ProblemType(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldProblemType, v))
}

// AgeGroup applies equality check predicate on the "age_group" field. It's identical to AgeGroupEQ.
func AgeGroup(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldAgeGroup, v))
}

// SolvedLocally applies equality check predicate on the "solved_locally" field. It's identical to SolvedLocallyEQ.
func SolvedLocally(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSolvedLocally, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldAnswer, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// HeroEQ applies the EQ predicate on the "hero" field.
func HeroEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldHero, v))
}

// HeroNEQ applies the NEQ predicate on the "hero" field.
func HeroNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldHero, v))
}

// HeroIn applies the In predicate on the "hero" field.
func HeroIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldHero, vs...))
}

// HeroNotIn applies the NotIn predicate on the "hero" field.
func HeroNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldHero, vs...))
}

// HeroGT applies the GT predicate on the "hero" field.
func HeroGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldHero, v))
}

// HeroGTE applies the GTE predicate on the "hero" field.
func HeroGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldHero, v))
}

// HeroLT applies the LT predicate on the "hero" field.
func HeroLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldHero, v))
}

// HeroLTE applies the LTE predicate on the "hero" field.
func HeroLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldHero, v))
}

// HeroContains applies the Contains predicate on the "hero" field.
func HeroContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldHero, v))
}

// HeroHasPrefix applies the HasPrefix predicate on the "hero" field.
func HeroHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldHero, v))
}

// HeroHasSuffix applies the HasSuffix predicate on the "hero" field.
func HeroHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldHero, v))
}

// HeroEqualFold applies the EqualFold predicate on the "hero" field.
func HeroEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldHero, v))
}

// HeroContainsFold applies the ContainsFold predicate on the "hero" field.
func HeroContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldHero, v))
}

// ProblemEQ applies the EQ predicate on the "problem" field.
func ProblemEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldProblem, v))
}

// ProblemNEQ applies the NEQ predicate on the "problem" field.
func ProblemNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldProblem, v))
}

// ProblemIn applies the In predicate on the "problem" field.
func ProblemIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldProblem, vs...))
}

// ProblemNotIn applies the NotIn predicate on the "problem" field.
func ProblemNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldProblem, vs...))
}

// ProblemGT applies the GT predicate on the "problem" field.
func ProblemGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldProblem, v))
}

// ProblemGTE applies the GTE predicate on the "problem" field.
func ProblemGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldProblem, v))
}

// ProblemLT applies the LT predicate on the "problem" field.
func ProblemLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldProblem, v))
}

// ProblemLTE applies the LTE predicate on the "problem" field.
func ProblemLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldProblem, v))
}

// ProblemContains applies the Contains predicate on the "problem" field.
func ProblemContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldProblem, v))
}

// ProblemHasPrefix applies the HasPrefix predicate on the "problem" field.
func ProblemHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldProblem, v))
}

// ProblemHasSuffix applies the HasSuffix predicate on the "problem" field.
func ProblemHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldProblem, v))
}

// ProblemEqualFold applies the EqualFold predicate on the "problem" field.
func ProblemEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldProblem, v))
}

// ProblemContainsFold applies the ContainsFold predicate on the "problem" field.
func ProblemContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldProblem, v))
}

// ProblemTypeEQ applies the EQ predicate on the "problem_type" field.
func ProblemTypeEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldProblemType, v))
}

// ProblemTypeNEQ applies the NEQ predicate on the "problem_type" field.
func ProblemTypeNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldProblemType, v))
}

// ProblemTypeIn applies the In predicate on the "problem_type" field.
func ProblemTypeIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldProblemType, vs...))
}

// ProblemTypeNotIn applies the NotIn predicate on the "problem_type" field.
func ProblemTypeNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldProblemType, vs...))
}

// ProblemTypeGT applies the GT predicate on the "problem_type" field.
func ProblemTypeGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldProblemType, v))
}

// ProblemTypeGTE applies the GTE predicate on the "problem_type" field.
func ProblemTypeGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldProblemType, v))
}

// ProblemTypeLT applies the LT predicate on the "problem_type" field.
func ProblemTypeLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldProblemType, v))
}

// ProblemTypeLTE applies the LTE predicate on the "problem_type" field.
func ProblemTypeLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldProblemType, v))
}

// ProblemTypeContains applies the Contains predicate on the "problem_type" field.
func ProblemTypeContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldProblemType, v))
}

// ProblemTypeHasPrefix applies the HasPrefix predicate on the "problem_type" field.
func ProblemTypeHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldProblemType, v))
}

// ProblemTypeHasSuffix applies the HasSuffix predicate on the "problem_type" field.
func ProblemTypeHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldProblemType, v))
}

// ProblemTypeEqualFold applies the EqualFold predicate on the "problem_type" field.
func ProblemTypeEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldProblemType, v))
}

// ProblemTypeContainsFold applies the ContainsFold predicate on the "problem_type" field.
func ProblemTypeContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldProblemType, v))
}

// AgeGroupEQ applies the EQ predicate on the "age_group" field.
func AgeGroupEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldAgeGroup, v))
}

// AgeGroupNEQ applies the NEQ predicate on the "age_group" field.
func AgeGroupNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldAgeGroup, v))
}

// AgeGroupIn applies the In predicate on the "age_group" field.
func AgeGroupIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldAgeGroup, vs...))
}

// AgeGroupNotIn applies the NotIn predicate on the "age_group" field.
func AgeGroupNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldAgeGroup, vs...))
}

// AgeGroupGT applies the GT predicate on the "age_group" field.
func AgeGroupGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldAgeGroup, v))
}

// AgeGroupGTE applies the GTE predicate on the "age_group" field.
func AgeGroupGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldAgeGroup, v))
}

// AgeGroupLT applies the LT predicate on the "age_group" field.
func AgeGroupLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldAgeGroup, v))
}

// AgeGroupLTE applies the LTE predicate on the "age_group" field.
func AgeGroupLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldAgeGroup, v))
}

// AgeGroupContains applies the Contains predicate on the "age_group" field.
func AgeGroupContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldAgeGroup, v))
}

// AgeGroupHasPrefix applies the HasPrefix predicate on the "age_group" field.
func AgeGroupHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldAgeGroup, v))
}

// AgeGroupHasSuffix applies the HasSuffix predicate on the "age_group" field.
func AgeGroupHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldAgeGroup, v))
}

// AgeGroupEqualFold applies the EqualFold predicate on the "age_group" field.
func AgeGroupEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldAgeGroup, v))
}

// AgeGroupContainsFold applies the ContainsFold predicate on the "age_group" field.
func AgeGroupContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldAgeGroup, v))
}

// SolvedLocallyEQ applies the EQ predicate on the "solved_locally" field.
func SolvedLocallyEQ(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSolvedLocally, v))
}

// SolvedLocallyNEQ applies the NEQ predicate on the "solved_locally" field.
func SolvedLocallyNEQ(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSolvedLocally, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.NotPredicates(p))
}
