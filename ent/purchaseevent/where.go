// Code generated by ent, DO NOT EDIT.

package purchaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devika/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldItemID, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPrice, v))
}

// CoinsAfter applies equality check predicate on the "coins_after" field. It's identical to CoinsAfterEQ.
func CoinsAfter(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCoinsAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldItemID, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldPrice, v))
}

// CoinsAfterEQ applies the EQ predicate on the "coins_after" field.
func CoinsAfterEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCoinsAfter, v))
}

// CoinsAfterNEQ applies the NEQ predicate on the "coins_after" field.
func CoinsAfterNEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldCoinsAfter, v))
}

// CoinsAfterIn applies the In predicate on the "coins_after" field.
func CoinsAfterIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldCoinsAfter, vs...))
}

// CoinsAfterNotIn applies the NotIn predicate on the "coins_after" field.
func CoinsAfterNotIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldCoinsAfter, vs...))
}

// CoinsAfterGT applies the GT predicate on the "coins_after" field.
func CoinsAfterGT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldCoinsAfter, v))
}

// CoinsAfterGTE applies the GTE predicate on the "coins_after" field.
func CoinsAfterGTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldCoinsAfter, v))
}

// CoinsAfterLT applies the LT predicate on the "coins_after" field.
func CoinsAfterLT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldCoinsAfter, v))
}

// CoinsAfterLTE applies the LTE predicate on the "coins_after" field.
func CoinsAfterLTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldCoinsAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.NotPredicates(p))
}
