// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devika/mathquest/ent/storyevent"
)

// StoryEventCreate is the builder for creating a StoryEvent entity.
type StoryEventCreate struct {
	config
	mutation *StoryEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *StoryEventCreate) SetSequence(v int64) *StoryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StoryEventCreate) SetTimestamp(v time.Time) *StoryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableTimestamp(v *time.Time) *StoryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StoryEventCreate) SetSessionID(v string) *StoryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetHero sets the "hero" field.
func (_c *StoryEventCreate) SetHero(v string) *StoryEventCreate {
	_c.mutation.SetHero(v)
	return _c
}

// SetNillableHero sets the "hero" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableHero(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetHero(*v)
	}
	return _c
}

// SetProblem sets the "problem" field.
func (_c *StoryEventCreate) SetProblem(v string) *StoryEventCreate {
	_c.mutation.SetProblem(v)
	return _c
}

// SetProblemType sets the "problem_type" field.
func (_c *StoryEventCreate) SetProblemType(v string) *StoryEventCreate {
	_c.mutation.SetProblemType(v)
	return _c
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableProblemType(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetProblemType(*v)
	}
	return _c
}

// SetAgeGroup sets the "age_group" field.
func (_c *StoryEventCreate) SetAgeGroup(v string) *StoryEventCreate {
	_c.mutation.SetAgeGroup(v)
	return _c
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableAgeGroup(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetAgeGroup(*v)
	}
	return _c
}

// SetSolvedLocally sets the "solved_locally" field.
func (_c *StoryEventCreate) SetSolvedLocally(v bool) *StoryEventCreate {
	_c.mutation.SetSolvedLocally(v)
	return _c
}

// SetNillableSolvedLocally sets the "solved_locally" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableSolvedLocally(v *bool) *StoryEventCreate {
	if v != nil {
		_c.SetSolvedLocally(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *StoryEventCreate) SetAnswer(v string) *StoryEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableAnswer(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *StoryEventCreate) SetSource(v string) *StoryEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableSource(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// Mutation returns the StoryEventMutation object of the builder.
func (_c *StoryEventCreate) Mutation() *StoryEventMutation {
	return _c.mutation
}

// Save creates the StoryEvent in the database.
func (_c *StoryEventCreate) Save(ctx context.Context) (*StoryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryEventCreate) SaveX(ctx context.Context) *StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := storyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Hero(); !ok {
		v := storyevent.DefaultHero
		_c.mutation.SetHero(v)
	}
	if _, ok := _c.mutation.ProblemType(); !ok {
		v := storyevent.DefaultProblemType
		_c.mutation.SetProblemType(v)
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		v := storyevent.DefaultAgeGroup
		_c.mutation.SetAgeGroup(v)
	}
	if _, ok := _c.mutation.SolvedLocally(); !ok {
		v := storyevent.DefaultSolvedLocally
		_c.mutation.SetSolvedLocally(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := storyevent.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := storyevent.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StoryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StoryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StoryEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := storyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hero(); !ok {
		return &ValidationError{Name: "hero", err: errors.New(`ent: missing required field "StoryEvent.hero"`)}
	}
	if _, ok := _c.mutation.Problem(); !ok {
		return &ValidationError{Name: "problem", err: errors.New(`ent: missing required field "StoryEvent.problem"`)}
	}
	if v, ok := _c.mutation.Problem(); ok {
		if err := storyevent.ProblemValidator(v); err != nil {
			return &ValidationError{Name: "problem", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.problem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemType(); !ok {
		return &ValidationError{Name: "problem_type", err: errors.New(`ent: missing required field "StoryEvent.problem_type"`)}
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		return &ValidationError{Name: "age_group", err: errors.New(`ent: missing required field "StoryEvent.age_group"`)}
	}
	if _, ok := _c.mutation.SolvedLocally(); !ok {
		return &ValidationError{Name: "solved_locally", err: errors.New(`ent: missing required field "StoryEvent.solved_locally"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "StoryEvent.answer"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "StoryEvent.source"`)}
	}
	return nil
}

func (_c *StoryEventCreate) sqlSave(ctx context.Context) (*StoryEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryEventCreate) createSpec() (*StoryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyevent.Table, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(storyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(storyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(storyevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Hero(); ok {
		_spec.SetField(storyevent.FieldHero, field.TypeString, value)
		_node.Hero = value
	}
	if value, ok := _c.mutation.Problem(); ok {
		_spec.SetField(storyevent.FieldProblem, field.TypeString, value)
		_node.Problem = value
	}
	if value, ok := _c.mutation.ProblemType(); ok {
		_spec.SetField(storyevent.FieldProblemType, field.TypeString, value)
		_node.ProblemType = value
	}
	if value, ok := _c.mutation.AgeGroup(); ok {
		_spec.SetField(storyevent.FieldAgeGroup, field.TypeString, value)
		_node.AgeGroup = value
	}
	if value, ok := _c.mutation.SolvedLocally(); ok {
		_spec.SetField(storyevent.FieldSolvedLocally, field.TypeBool, value)
		_node.SolvedLocally = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(storyevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(storyevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StoryEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryEventCreate) OnConflict(opts ...sql.ConflictOption) *StoryEventUpsertOne {
	_c.conflict = opts
	return &StoryEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryEventCreate) OnConflictColumns(columns ...string) *StoryEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryEventUpsertOne{
		create: _c,
	}
}

type (
	// StoryEventUpsertOne is the builder for "upsert"-ing
	//  one StoryEvent node.
	StoryEventUpsertOne struct {
		create *StoryEventCreate
	}

	// StoryEventUpsert is the "OnConflict" setter.
	StoryEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *StoryEventUpsert) SetSessionID(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateSessionID() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldSessionID)
	return u
}

// SetHero sets the "hero" field.
func (u *StoryEventUpsert) SetHero(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldHero, v)
	return u
}

// UpdateHero sets the "hero" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateHero() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldHero)
	return u
}

// SetProblem sets the "problem" field.
func (u *StoryEventUpsert) SetProblem(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldProblem, v)
	return u
}

// UpdateProblem sets the "problem" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateProblem() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldProblem)
	return u
}

// SetProblemType sets the "problem_type" field.
func (u *StoryEventUpsert) SetProblemType(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldProblemType, v)
	return u
}

// UpdateProblemType sets the "problem_type" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateProblemType() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldProblemType)
	return u
}

// SetAgeGroup sets the "age_group" field.
func (u *StoryEventUpsert) SetAgeGroup(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldAgeGroup, v)
	return u
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateAgeGroup() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldAgeGroup)
	return u
}

// SetSolvedLocally sets the "solved_locally" field.
func (u *StoryEventUpsert) SetSolvedLocally(v bool) *StoryEventUpsert {
	u.Set(storyevent.FieldSolvedLocally, v)
	return u
}

// UpdateSolvedLocally sets the "solved_locally" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateSolvedLocally() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldSolvedLocally)
	return u
}

// SetAnswer sets the "answer" field.
func (u *StoryEventUpsert) SetAnswer(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateAnswer() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldAnswer)
	return u
}

// SetSource sets the "source" field.
func (u *StoryEventUpsert) SetSource(v string) *StoryEventUpsert {
	u.Set(storyevent.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StoryEventUpsert) UpdateSource() *StoryEventUpsert {
	u.SetExcluded(storyevent.FieldSource)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StoryEventUpsertOne) UpdateNewValues() *StoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(storyevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(storyevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StoryEventUpsertOne) Ignore() *StoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryEventUpsertOne) DoNothing() *StoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryEventCreate.OnConflict
// documentation for more info.
func (u *StoryEventUpsertOne) Update(set func(*StoryEventUpsert)) *StoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *StoryEventUpsertOne) SetSessionID(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateSessionID() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetHero sets the "hero" field.
func (u *StoryEventUpsertOne) SetHero(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetHero(v)
	})
}

// UpdateHero sets the "hero" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateHero() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateHero()
	})
}

// SetProblem sets the "problem" field.
func (u *StoryEventUpsertOne) SetProblem(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetProblem(v)
	})
}

// UpdateProblem sets the "problem" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateProblem() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateProblem()
	})
}

// SetProblemType sets the "problem_type" field.
func (u *StoryEventUpsertOne) SetProblemType(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetProblemType(v)
	})
}

// UpdateProblemType sets the "problem_type" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateProblemType() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateProblemType()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *StoryEventUpsertOne) SetAgeGroup(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateAgeGroup() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetSolvedLocally sets the "solved_locally" field.
func (u *StoryEventUpsertOne) SetSolvedLocally(v bool) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSolvedLocally(v)
	})
}

// UpdateSolvedLocally sets the "solved_locally" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateSolvedLocally() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSolvedLocally()
	})
}

// SetAnswer sets the "answer" field.
func (u *StoryEventUpsertOne) SetAnswer(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateAnswer() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateAnswer()
	})
}

// SetSource sets the "source" field.
func (u *StoryEventUpsertOne) SetSource(v string) *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StoryEventUpsertOne) UpdateSource() *StoryEventUpsertOne {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *StoryEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StoryEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StoryEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StoryEventCreateBulk is the builder for creating many StoryEvent entities in bulk.
type StoryEventCreateBulk struct {
	config
	err      error
	builders []*StoryEventCreate
	conflict []sql.ConflictOption
}

// Save creates the StoryEvent entities in the database.
func (_c *StoryEventCreateBulk) Save(ctx context.Context) ([]*StoryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StoryEventCreateBulk) SaveX(ctx context.Context) []*StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StoryEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *StoryEventUpsertBulk {
	_c.conflict = opts
	return &StoryEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryEventCreateBulk) OnConflictColumns(columns ...string) *StoryEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryEventUpsertBulk{
		create: _c,
	}
}

// StoryEventUpsertBulk is the builder for "upsert"-ing
// a bulk of StoryEvent nodes.
type StoryEventUpsertBulk struct {
	create *StoryEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StoryEventUpsertBulk) UpdateNewValues() *StoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(storyevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(storyevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoryEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StoryEventUpsertBulk) Ignore() *StoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryEventUpsertBulk) DoNothing() *StoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryEventCreateBulk.OnConflict
// documentation for more info.
func (u *StoryEventUpsertBulk) Update(set func(*StoryEventUpsert)) *StoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *StoryEventUpsertBulk) SetSessionID(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateSessionID() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetHero sets the "hero" field.
func (u *StoryEventUpsertBulk) SetHero(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetHero(v)
	})
}

// UpdateHero sets the "hero" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateHero() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateHero()
	})
}

// SetProblem sets the "problem" field.
func (u *StoryEventUpsertBulk) SetProblem(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetProblem(v)
	})
}

// UpdateProblem sets the "problem" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateProblem() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateProblem()
	})
}

// SetProblemType sets the "problem_type" field.
func (u *StoryEventUpsertBulk) SetProblemType(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetProblemType(v)
	})
}

// UpdateProblemType sets the "problem_type" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateProblemType() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateProblemType()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *StoryEventUpsertBulk) SetAgeGroup(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateAgeGroup() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetSolvedLocally sets the "solved_locally" field.
func (u *StoryEventUpsertBulk) SetSolvedLocally(v bool) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSolvedLocally(v)
	})
}

// UpdateSolvedLocally sets the "solved_locally" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateSolvedLocally() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSolvedLocally()
	})
}

// SetAnswer sets the "answer" field.
func (u *StoryEventUpsertBulk) SetAnswer(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateAnswer() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateAnswer()
	})
}

// SetSource sets the "source" field.
func (u *StoryEventUpsertBulk) SetSource(v string) *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StoryEventUpsertBulk) UpdateSource() *StoryEventUpsertBulk {
	return u.Update(func(s *StoryEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *StoryEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StoryEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
