// Code generated by ent, DO NOT EDIT.

package storyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the storyevent type in the database.
	Label = "story_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldHero holds the string denoting the hero field in the database.
	FieldHero = "hero"
	// FieldProblem holds the string denoting the problem field in the database.
	FieldProblem = "problem"
	// FieldProblemType holds the string denoting the problem_type field in the database.
	FieldProblemType = "problem_type"
	// FieldAgeGroup holds the string denoting the age_group field in the database.
	FieldAgeGroup = "age_group"
	// FieldSolvedLocally holds the string denoting the solved_locally field in the database.
	FieldSolvedLocally = "solved_locally"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// Table holds the table name of the storyevent in the database.
	Table = "story_events"
)

// Columns holds all SQL columns for storyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldHero,
	FieldProblem,
	FieldProblemType,
	FieldAgeGroup,
	FieldSolvedLocally,
	FieldAnswer,
	FieldSource,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultHero holds the default value on creation for the "hero" field.
	DefaultHero string
	// ProblemValidator is a validator for the "problem" field. It is called by the builders before save.
	ProblemValidator func(string) error
	// DefaultProblemType holds the default value on creation for the "problem_type" field.
	DefaultProblemType string
	// DefaultAgeGroup holds the default value on creation for the "age_group" field.
	DefaultAgeGroup string
	// DefaultSolvedLocally holds the default value on creation for the "solved_locally" field.
	DefaultSolvedLocally bool
	// DefaultAnswer holds the default value on creation for the "answer" field.
	DefaultAnswer string
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
)

// OrderOption defines the ordering options for the StoryEvent queries.
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

// ByHero orders the results by the hero field.
func ByHero(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHero, opts...).ToFunc()
}

// ByProblem orders the results by the problem field.
func ByProblem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblem, opts...).ToFunc()
}

// ByProblemType orders the results by the problem_type field.
func ByProblemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemType, opts...).ToFunc()
}

// ByAgeGroup orders the results by the age_group field.
func ByAgeGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeGroup, opts...).ToFunc()
}

// BySolvedLocally orders the results by the solved_locally field.
func BySolvedLocally(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolvedLocally, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}
