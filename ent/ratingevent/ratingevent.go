// Code generated by ent, DO NOT EDIT.

package ratingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratingevent type in the database.
	Label = "rating_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldOldRating holds the string denoting the old_rating field in the database.
	FieldOldRating = "old_rating"
	// FieldNewRating holds the string denoting the new_rating field in the database.
	FieldNewRating = "new_rating"
	// FieldExpected holds the string denoting the expected field in the database.
	FieldExpected = "expected"
	// FieldObserved holds the string denoting the observed field in the database.
	FieldObserved = "observed"
	// Table holds the table name of the ratingevent in the database.
	Table = "rating_events"
)

// Columns holds all SQL columns for ratingevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUnitID,
	FieldOldRating,
	FieldNewRating,
	FieldExpected,
	FieldObserved,
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
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
)

// OrderOption defines the ordering options for the RatingEvent queries.
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

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByOldRating orders the results by the old_rating field.
func ByOldRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldRating, opts...).ToFunc()
}

// ByNewRating orders the results by the new_rating field.
func ByNewRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewRating, opts...).ToFunc()
}

// ByExpected orders the results by the expected field.
func ByExpected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpected, opts...).ToFunc()
}

// ByObserved orders the results by the observed field.
func ByObserved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObserved, opts...).ToFunc()
}
