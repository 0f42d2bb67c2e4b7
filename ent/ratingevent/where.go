// Code generated by ent, DO NOT EDIT.

package ratingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ksander/retain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSessionID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldUnitID, v))
}

// OldRating applies equality check predicate on the "old_rating" field. It's identical to OldRatingEQ.
func OldRating(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldOldRating, v))
}

// NewRating applies equality check predicate on the "new_rating" field. It's identical to NewRatingEQ.
func NewRating(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldNewRating, v))
}

// Expected applies equality check predicate on the "expected" field. It's identical to ExpectedEQ.
func Expected(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldExpected, v))
}

// Observed applies equality check predicate on the "observed" field. It's identical to ObservedEQ.
func Observed(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldObserved, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// OldRatingEQ applies the EQ predicate on the "old_rating" field.
func OldRatingEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldOldRating, v))
}

// OldRatingNEQ applies the NEQ predicate on the "old_rating" field.
func OldRatingNEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldOldRating, v))
}

// OldRatingIn applies the In predicate on the "old_rating" field.
func OldRatingIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldOldRating, vs...))
}

// OldRatingNotIn applies the NotIn predicate on the "old_rating" field.
func OldRatingNotIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldOldRating, vs...))
}

// OldRatingGT applies the GT predicate on the "old_rating" field.
func OldRatingGT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldOldRating, v))
}

// OldRatingGTE applies the GTE predicate on the "old_rating" field.
func OldRatingGTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldOldRating, v))
}

// OldRatingLT applies the LT predicate on the "old_rating" field.
func OldRatingLT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldOldRating, v))
}

// OldRatingLTE applies the LTE predicate on the "old_rating" field.
func OldRatingLTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldOldRating, v))
}

// NewRatingEQ applies the EQ predicate on the "new_rating" field.
func NewRatingEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldNewRating, v))
}

// NewRatingNEQ applies the NEQ predicate on the "new_rating" field.
func NewRatingNEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldNewRating, v))
}

// NewRatingIn applies the In predicate on the "new_rating" field.
func NewRatingIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldNewRating, vs...))
}

// NewRatingNotIn applies the NotIn predicate on the "new_rating" field.
func NewRatingNotIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldNewRating, vs...))
}

// NewRatingGT applies the GT predicate on the "new_rating" field.
func NewRatingGT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldNewRating, v))
}

// NewRatingGTE applies the GTE predicate on the "new_rating" field.
func NewRatingGTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldNewRating, v))
}

// NewRatingLT applies the LT predicate on the "new_rating" field.
func NewRatingLT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldNewRating, v))
}

// NewRatingLTE applies the LTE predicate on the "new_rating" field.
func NewRatingLTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldNewRating, v))
}

// ExpectedEQ applies the EQ predicate on the "expected" field.
func ExpectedEQ(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldExpected, v))
}

// ExpectedNEQ applies the NEQ predicate on the "expected" field.
func ExpectedNEQ(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldExpected, v))
}

// ExpectedIn applies the In predicate on the "expected" field.
func ExpectedIn(vs ...float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldExpected, vs...))
}

// ExpectedNotIn applies the NotIn predicate on the "expected" field.
func ExpectedNotIn(vs ...float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldExpected, vs...))
}

// ExpectedGT applies the GT predicate on the "expected" field.
func ExpectedGT(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldExpected, v))
}

// ExpectedGTE applies the GTE predicate on the "expected" field.
func ExpectedGTE(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldExpected, v))
}

// ExpectedLT applies the LT predicate on the "expected" field.
func ExpectedLT(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldExpected, v))
}

// ExpectedLTE applies the LTE predicate on the "expected" field.
func ExpectedLTE(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldExpected, v))
}

// ObservedEQ applies the EQ predicate on the "observed" field.
func ObservedEQ(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldObserved, v))
}

// ObservedNEQ applies the NEQ predicate on the "observed" field.
func ObservedNEQ(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldObserved, v))
}

// ObservedIn applies the In predicate on the "observed" field.
func ObservedIn(vs ...float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldObserved, vs...))
}

// ObservedNotIn applies the NotIn predicate on the "observed" field.
func ObservedNotIn(vs ...float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldObserved, vs...))
}

// ObservedGT applies the GT predicate on the "observed" field.
func ObservedGT(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldObserved, v))
}

// ObservedGTE applies the GTE predicate on the "observed" field.
func ObservedGTE(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldObserved, v))
}

// ObservedLT applies the LT predicate on the "observed" field.
func ObservedLT(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldObserved, v))
}

// ObservedLTE applies the LTE predicate on the "observed" field.
func ObservedLTE(v float64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldObserved, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.NotPredicates(p))
}
