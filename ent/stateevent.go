// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cognify/ent/stateevent"
)

// StateEvent is the model entity for the StateEvent schema.
type StateEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Tutoring session the state belongs to
	SessionID string `json:"session_id,omitempty"`
	// focused, confused, or frustrated
	State string `json:"state,omitempty"`
	// Accumulated rule score (0 when a hard override fired)
	Score int `json:"score,omitempty"`
	// Facial-expression label at classification time
	Facial string `json:"facial,omitempty"`
	// Vocal-state label at classification time
	Vocal string `json:"vocal,omitempty"`
	// RephraseCount holds the value of the "rephrase_count" field.
	RephraseCount int `json:"rephrase_count,omitempty"`
	// BackspaceCount holds the value of the "backspace_count" field.
	BackspaceCount int `json:"backspace_count,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StateEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stateevent.FieldID, stateevent.FieldSequence, stateevent.FieldScore, stateevent.FieldRephraseCount, stateevent.FieldBackspaceCount:
			values[i] = new(sql.NullInt64)
		case stateevent.FieldSessionID, stateevent.FieldState, stateevent.FieldFacial, stateevent.FieldVocal:
			values[i] = new(sql.NullString)
		case stateevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StateEvent fields.
func (_m *StateEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stateevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stateevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case stateevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case stateevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case stateevent.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case stateevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case stateevent.FieldFacial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facial", values[i])
			} else if value.Valid {
				_m.Facial = value.String
			}
		case stateevent.FieldVocal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vocal", values[i])
			} else if value.Valid {
				_m.Vocal = value.String
			}
		case stateevent.FieldRephraseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rephrase_count", values[i])
			} else if value.Valid {
				_m.RephraseCount = int(value.Int64)
			}
		case stateevent.FieldBackspaceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backspace_count", values[i])
			} else if value.Valid {
				_m.BackspaceCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StateEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StateEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StateEvent.
// Note that you need to call StateEvent.Unwrap() before calling this method if this StateEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StateEvent) Update() *StateEventUpdateOne {
	return NewStateEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StateEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StateEvent) Unwrap() *StateEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StateEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StateEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StateEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("facial=")
	builder.WriteString(_m.Facial)
	builder.WriteString(", ")
	builder.WriteString("vocal=")
	builder.WriteString(_m.Vocal)
	builder.WriteString(", ")
	builder.WriteString("rephrase_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RephraseCount))
	builder.WriteString(", ")
	builder.WriteString("backspace_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackspaceCount))
	builder.WriteByte(')')
	return builder.String()
}

// StateEvents is a parsable slice of StateEvent.
type StateEvents []*StateEvent
