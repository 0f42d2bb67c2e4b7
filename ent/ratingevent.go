// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ksander/retain/ent/ratingevent"
)

// RatingEvent is the model entity for the RatingEvent schema.
type RatingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Engine session that produced the event
	SessionID string `json:"session_id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// OldRating holds the value of the "old_rating" field.
	OldRating int `json:"old_rating,omitempty"`
	// NewRating holds the value of the "new_rating" field.
	NewRating int `json:"new_rating,omitempty"`
	// Expected success probability before the attempt
	Expected float64 `json:"expected,omitempty"`
	// Observed outcome score: 0, 0.5, or 1
	Observed     float64 `json:"observed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RatingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratingevent.FieldExpected, ratingevent.FieldObserved:
			values[i] = new(sql.NullFloat64)
		case ratingevent.FieldID, ratingevent.FieldSequence, ratingevent.FieldOldRating, ratingevent.FieldNewRating:
			values[i] = new(sql.NullInt64)
		case ratingevent.FieldSessionID, ratingevent.FieldUnitID:
			values[i] = new(sql.NullString)
		case ratingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RatingEvent fields.
func (_m *RatingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ratingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case ratingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case ratingevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case ratingevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case ratingevent.FieldOldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field old_rating", values[i])
			} else if value.Valid {
				_m.OldRating = int(value.Int64)
			}
		case ratingevent.FieldNewRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_rating", values[i])
			} else if value.Valid {
				_m.NewRating = int(value.Int64)
			}
		case ratingevent.FieldExpected:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected", values[i])
			} else if value.Valid {
				_m.Expected = value.Float64
			}
		case ratingevent.FieldObserved:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed", values[i])
			} else if value.Valid {
				_m.Observed = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RatingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RatingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RatingEvent.
// Note that you need to call RatingEvent.Unwrap() before calling this method if this RatingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RatingEvent) Update() *RatingEventUpdateOne {
	return NewRatingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RatingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RatingEvent) Unwrap() *RatingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RatingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RatingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RatingEvent(")
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
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("old_rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldRating))
	builder.WriteString(", ")
	builder.WriteString("new_rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewRating))
	builder.WriteString(", ")
	builder.WriteString("expected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Expected))
	builder.WriteString(", ")
	builder.WriteString("observed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observed))
	builder.WriteByte(')')
	return builder.String()
}

// RatingEvents is a parsable slice of RatingEvent.
type RatingEvents []*RatingEvent
