// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devika/mathquest/ent/storyevent"
)

// StoryEvent is the model entity for the StoryEvent schema.
type StoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the requesting session
	SessionID string `json:"session_id,omitempty"`
	// Hero the story was told with
	Hero string `json:"hero,omitempty"`
	// The submitted math problem text
	Problem string `json:"problem,omitempty"`
	// Classified kind: addition, division, equations, ...
	ProblemType string `json:"problem_type,omitempty"`
	// Age bracket the content was tuned for
	AgeGroup string `json:"age_group,omitempty"`
	// Whether the deterministic solver produced the answer
	SolvedLocally bool `json:"solved_locally,omitempty"`
	// Verified answer when one exists
	Answer string `json:"answer,omitempty"`
	// Where the story came from: ai or fallback
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldSolvedLocally:
			values[i] = new(sql.NullBool)
		case storyevent.FieldID, storyevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case storyevent.FieldSessionID, storyevent.FieldHero, storyevent.FieldProblem, storyevent.FieldProblemType, storyevent.FieldAgeGroup, storyevent.FieldAnswer, storyevent.FieldSource:
			values[i] = new(sql.NullString)
		case storyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryEvent fields.
func (_m *StoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case storyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case storyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case storyevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case storyevent.FieldHero:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hero", values[i])
			} else if value.Valid {
				_m.Hero = value.String
			}
		case storyevent.FieldProblem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem", values[i])
			} else if value.Valid {
				_m.Problem = value.String
			}
		case storyevent.FieldProblemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_type", values[i])
			} else if value.Valid {
				_m.ProblemType = value.String
			}
		case storyevent.FieldAgeGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field age_group", values[i])
			} else if value.Valid {
				_m.AgeGroup = value.String
			}
		case storyevent.FieldSolvedLocally:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field solved_locally", values[i])
			} else if value.Valid {
				_m.SolvedLocally = value.Bool
			}
		case storyevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case storyevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StoryEvent.
// Note that you need to call StoryEvent.Unwrap() before calling this method if this StoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryEvent) Update() *StoryEventUpdateOne {
	return NewStoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryEvent) Unwrap() *StoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StoryEvent(")
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
	builder.WriteString("hero=")
	builder.WriteString(_m.Hero)
	builder.WriteString(", ")
	builder.WriteString("problem=")
	builder.WriteString(_m.Problem)
	builder.WriteString(", ")
	builder.WriteString("problem_type=")
	builder.WriteString(_m.ProblemType)
	builder.WriteString(", ")
	builder.WriteString("age_group=")
	builder.WriteString(_m.AgeGroup)
	builder.WriteString(", ")
	builder.WriteString("solved_locally=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolvedLocally))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// StoryEvents is a parsable slice of StoryEvent.
type StoryEvents []*StoryEvent
