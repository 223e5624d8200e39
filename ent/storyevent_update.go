// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devika/mathquest/ent/predicate"
	"github.com/devika/mathquest/ent/storyevent"
)

// StoryEventUpdate is the builder for updating StoryEvent entities.
type StoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *StoryEventMutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdate) Where(ps ...predicate.StoryEvent) *StoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StoryEventUpdate) SetSessionID(v string) *StoryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableSessionID(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetHero sets the "hero" field.
func (_u *StoryEventUpdate) SetHero(v string) *StoryEventUpdate {
	_u.mutation.SetHero(v)
	return _u
}

// SetNillableHero sets the "hero" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableHero(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetHero(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *StoryEventUpdate) SetProblem(v string) *StoryEventUpdate {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableProblem(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// SetProblemType sets the "problem_type" field.
func (_u *StoryEventUpdate) SetProblemType(v string) *StoryEventUpdate {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableProblemType(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *StoryEventUpdate) SetAgeGroup(v string) *StoryEventUpdate {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableAgeGroup(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetSolvedLocally sets the "solved_locally" field.
func (_u *StoryEventUpdate) SetSolvedLocally(v bool) *StoryEventUpdate {
	_u.mutation.SetSolvedLocally(v)
	return _u
}

// SetNillableSolvedLocally sets the "solved_locally" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableSolvedLocally(v *bool) *StoryEventUpdate {
	if v != nil {
		_u.SetSolvedLocally(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *StoryEventUpdate) SetAnswer(v string) *StoryEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableAnswer(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StoryEventUpdate) SetSource(v string) *StoryEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableSource(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdate) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := storyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Problem(); ok {
		if err := storyevent.ProblemValidator(v); err != nil {
			return &ValidationError{Name: "problem", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.problem": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(storyevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hero(); ok {
		_spec.SetField(storyevent.FieldHero, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(storyevent.FieldProblem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(storyevent.FieldProblemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(storyevent.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolvedLocally(); ok {
		_spec.SetField(storyevent.FieldSolvedLocally, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(storyevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(storyevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryEventUpdateOne is the builder for updating a single StoryEvent entity.
type StoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StoryEventUpdateOne) SetSessionID(v string) *StoryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableSessionID(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetHero sets the "hero" field.
func (_u *StoryEventUpdateOne) SetHero(v string) *StoryEventUpdateOne {
	_u.mutation.SetHero(v)
	return _u
}

// SetNillableHero sets the "hero" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableHero(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetHero(*v)
	}
	return _u
}

// SetProblem sets the "problem" field.
func (_u *StoryEventUpdateOne) SetProblem(v string) *StoryEventUpdateOne {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableProblem(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// SetProblemType sets the "problem_type" field.
func (_u *StoryEventUpdateOne) SetProblemType(v string) *StoryEventUpdateOne {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableProblemType(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *StoryEventUpdateOne) SetAgeGroup(v string) *StoryEventUpdateOne {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableAgeGroup(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetSolvedLocally sets the "solved_locally" field.
func (_u *StoryEventUpdateOne) SetSolvedLocally(v bool) *StoryEventUpdateOne {
	_u.mutation.SetSolvedLocally(v)
	return _u
}

// SetNillableSolvedLocally sets the "solved_locally" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableSolvedLocally(v *bool) *StoryEventUpdateOne {
	if v != nil {
		_u.SetSolvedLocally(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *StoryEventUpdateOne) SetAnswer(v string) *StoryEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableAnswer(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StoryEventUpdateOne) SetSource(v string) *StoryEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableSource(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdateOne) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdateOne) Where(ps ...predicate.StoryEvent) *StoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryEventUpdateOne) Select(field string, fields ...string) *StoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryEvent entity.
func (_u *StoryEventUpdateOne) Save(ctx context.Context) (*StoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdateOne) SaveX(ctx context.Context) *StoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := storyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Problem(); ok {
		if err := storyevent.ProblemValidator(v); err != nil {
			return &ValidationError{Name: "problem", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.problem": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryEventUpdateOne) sqlSave(ctx context.Context) (_node *StoryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyevent.FieldID)
		for _, f := range fields {
			if !storyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(storyevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hero(); ok {
		_spec.SetField(storyevent.FieldHero, field.TypeString, value)
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(storyevent.FieldProblem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(storyevent.FieldProblemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(storyevent.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolvedLocally(); ok {
		_spec.SetField(storyevent.FieldSolvedLocally, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(storyevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(storyevent.FieldSource, field.TypeString, value)
	}
	_node = &StoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
