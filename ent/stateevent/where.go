// Code generated by ent, DO NOT EDIT.

package stateevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cognify/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldSessionID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldState, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldScore, v))
}

// Facial applies equality check predicate on the "facial" field. It's identical to FacialEQ.
func Facial(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldFacial, v))
}

// Vocal applies equality check predicate on the "vocal" field. It's identical to VocalEQ.
func Vocal(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldVocal, v))
}

// RephraseCount applies equality check predicate on the "rephrase_count" field. It's identical to RephraseCountEQ.
func RephraseCount(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldRephraseCount, v))
}

// BackspaceCount applies equality check predicate on the "backspace_count" field. It's identical to BackspaceCountEQ.
func BackspaceCount(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldBackspaceCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContainsFold(FieldState, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldScore, v))
}

// FacialEQ applies the EQ predicate on the "facial" field.
func FacialEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldFacial, v))
}

// FacialNEQ applies the NEQ predicate on the "facial" field.
func FacialNEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldFacial, v))
}

// FacialIn applies the In predicate on the "facial" field.
func FacialIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldFacial, vs...))
}

// FacialNotIn applies the NotIn predicate on the "facial" field.
func FacialNotIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldFacial, vs...))
}

// FacialGT applies the GT predicate on the "facial" field.
func FacialGT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldFacial, v))
}

// FacialGTE applies the GTE predicate on the "facial" field.
func FacialGTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldFacial, v))
}

// FacialLT applies the LT predicate on the "facial" field.
func FacialLT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldFacial, v))
}

// FacialLTE applies the LTE predicate on the "facial" field.
func FacialLTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldFacial, v))
}

// FacialContains applies the Contains predicate on the "facial" field.
func FacialContains(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContains(FieldFacial, v))
}

// FacialHasPrefix applies the HasPrefix predicate on the "facial" field.
func FacialHasPrefix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasPrefix(FieldFacial, v))
}

// FacialHasSuffix applies the HasSuffix predicate on the "facial" field.
func FacialHasSuffix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasSuffix(FieldFacial, v))
}

// FacialIsNil applies the IsNil predicate on the "facial" field.
func FacialIsNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIsNull(FieldFacial))
}

// FacialNotNil applies the NotNil predicate on the "facial" field.
func FacialNotNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotNull(FieldFacial))
}

// FacialEqualFold applies the EqualFold predicate on the "facial" field.
func FacialEqualFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEqualFold(FieldFacial, v))
}

// FacialContainsFold applies the ContainsFold predicate on the "facial" field.
func FacialContainsFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContainsFold(FieldFacial, v))
}

// VocalEQ applies the EQ predicate on the "vocal" field.
func VocalEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldVocal, v))
}

// VocalNEQ applies the NEQ predicate on the "vocal" field.
func VocalNEQ(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldVocal, v))
}

// VocalIn applies the In predicate on the "vocal" field.
func VocalIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldVocal, vs...))
}

// VocalNotIn applies the NotIn predicate on the "vocal" field.
func VocalNotIn(vs ...string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldVocal, vs...))
}

// VocalGT applies the GT predicate on the "vocal" field.
func VocalGT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldVocal, v))
}

// VocalGTE applies the GTE predicate on the "vocal" field.
func VocalGTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldVocal, v))
}

// VocalLT applies the LT predicate on the "vocal" field.
func VocalLT(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldVocal, v))
}

// VocalLTE applies the LTE predicate on the "vocal" field.
func VocalLTE(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldVocal, v))
}

// VocalContains applies the Contains predicate on the "vocal" field.
func VocalContains(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContains(FieldVocal, v))
}

// VocalHasPrefix applies the HasPrefix predicate on the "vocal" field.
func VocalHasPrefix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasPrefix(FieldVocal, v))
}

// VocalHasSuffix applies the HasSuffix predicate on the "vocal" field.
func VocalHasSuffix(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldHasSuffix(FieldVocal, v))
}

// VocalIsNil applies the IsNil predicate on the "vocal" field.
func VocalIsNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIsNull(FieldVocal))
}

// VocalNotNil applies the NotNil predicate on the "vocal" field.
func VocalNotNil() predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotNull(FieldVocal))
}

// VocalEqualFold applies the EqualFold predicate on the "vocal" field.
func VocalEqualFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEqualFold(FieldVocal, v))
}

// VocalContainsFold applies the ContainsFold predicate on the "vocal" field.
func VocalContainsFold(v string) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldContainsFold(FieldVocal, v))
}

// RephraseCountEQ applies the EQ predicate on the "rephrase_count" field.
func RephraseCountEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldRephraseCount, v))
}

// RephraseCountNEQ applies the NEQ predicate on the "rephrase_count" field.
func RephraseCountNEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldRephraseCount, v))
}

// RephraseCountIn applies the In predicate on the "rephrase_count" field.
func RephraseCountIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldRephraseCount, vs...))
}

// RephraseCountNotIn applies the NotIn predicate on the "rephrase_count" field.
func RephraseCountNotIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldRephraseCount, vs...))
}

// RephraseCountGT applies the GT predicate on the "rephrase_count" field.
func RephraseCountGT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldRephraseCount, v))
}

// RephraseCountGTE applies the GTE predicate on the "rephrase_count" field.
func RephraseCountGTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldRephraseCount, v))
}

// RephraseCountLT applies the LT predicate on the "rephrase_count" field.
func RephraseCountLT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldRephraseCount, v))
}

// RephraseCountLTE applies the LTE predicate on the "rephrase_count" field.
func RephraseCountLTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldRephraseCount, v))
}

// BackspaceCountEQ applies the EQ predicate on the "backspace_count" field.
func BackspaceCountEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldEQ(FieldBackspaceCount, v))
}

// BackspaceCountNEQ applies the NEQ predicate on the "backspace_count" field.
func BackspaceCountNEQ(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNEQ(FieldBackspaceCount, v))
}

// BackspaceCountIn applies the In predicate on the "backspace_count" field.
func BackspaceCountIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldIn(FieldBackspaceCount, vs...))
}

// BackspaceCountNotIn applies the NotIn predicate on the "backspace_count" field.
func BackspaceCountNotIn(vs ...int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldNotIn(FieldBackspaceCount, vs...))
}

// BackspaceCountGT applies the GT predicate on the "backspace_count" field.
func BackspaceCountGT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGT(FieldBackspaceCount, v))
}

// BackspaceCountGTE applies the GTE predicate on the "backspace_count" field.
func BackspaceCountGTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldGTE(FieldBackspaceCount, v))
}

// BackspaceCountLT applies the LT predicate on the "backspace_count" field.
func BackspaceCountLT(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLT(FieldBackspaceCount, v))
}

// BackspaceCountLTE applies the LTE predicate on the "backspace_count" field.
func BackspaceCountLTE(v int) predicate.StateEvent {
	return predicate.StateEvent(sql.FieldLTE(FieldBackspaceCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StateEvent) predicate.StateEvent {
	return predicate.StateEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StateEvent) predicate.StateEvent {
	return predicate.StateEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StateEvent) predicate.StateEvent {
	return predicate.StateEvent(sql.NotPredicates(p))
}
