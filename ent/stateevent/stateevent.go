// Code generated by ent, DO NOT EDIT.

package stateevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stateevent type in the database.
	Label = "state_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldFacial holds the string denoting the facial field in the database.
	FieldFacial = "facial"
	// FieldVocal holds the string denoting the vocal field in the database.
	FieldVocal = "vocal"
	// FieldRephraseCount holds the string denoting the rephrase_count field in the database.
	FieldRephraseCount = "rephrase_count"
	// FieldBackspaceCount holds the string denoting the backspace_count field in the database.
	FieldBackspaceCount = "backspace_count"
	// Table holds the table name of the stateevent in the database.
	Table = "state_events"
)

// Columns holds all SQL columns for stateevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldState,
	FieldScore,
	FieldFacial,
	FieldVocal,
	FieldRephraseCount,
	FieldBackspaceCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
)

// OrderOption defines the ordering options for the StateEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByFacial orders the results by the facial field.
func ByFacial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacial, opts...).ToFunc()
}

// ByVocal orders the results by the vocal field.
func ByVocal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVocal, opts...).ToFunc()
}

// ByRephraseCount orders the results by the rephrase_count field.
func ByRephraseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRephraseCount, opts...).ToFunc()
}

// ByBackspaceCount orders the results by the backspace_count field.
func ByBackspaceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackspaceCount, opts...).ToFunc()
}
