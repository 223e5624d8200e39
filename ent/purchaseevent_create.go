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
	"github.com/devika/mathquest/ent/purchaseevent"
)

// PurchaseEventCreate is the builder for creating a PurchaseEvent entity.
type PurchaseEventCreate struct {
	config
	mutation *PurchaseEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *PurchaseEventCreate) SetSequence(v int64) *PurchaseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PurchaseEventCreate) SetTimestamp(v time.Time) *PurchaseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableTimestamp(v *time.Time) *PurchaseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PurchaseEventCreate) SetSessionID(v string) *PurchaseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *PurchaseEventCreate) SetItemID(v string) *PurchaseEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PurchaseEventCreate) SetPrice(v int) *PurchaseEventCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetCoinsAfter sets the "coins_after" field.
func (_c *PurchaseEventCreate) SetCoinsAfter(v int) *PurchaseEventCreate {
	_c.mutation.SetCoinsAfter(v)
	return _c
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_c *PurchaseEventCreate) Mutation() *PurchaseEventMutation {
	return _c.mutation
}

// Save creates the PurchaseEvent in the database.
func (_c *PurchaseEventCreate) Save(ctx context.Context) (*PurchaseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseEventCreate) SaveX(ctx context.Context) *PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := purchaseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PurchaseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PurchaseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PurchaseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := purchaseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "PurchaseEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := purchaseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "PurchaseEvent.price"`)}
	}
	if _, ok := _c.mutation.CoinsAfter(); !ok {
		return &ValidationError{Name: "coins_after", err: errors.New(`ent: missing required field "PurchaseEvent.coins_after"`)}
	}
	return nil
}

func (_c *PurchaseEventCreate) sqlSave(ctx context.Context) (*PurchaseEvent, error) {
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

func (_c *PurchaseEventCreate) createSpec() (*PurchaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaseevent.Table, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(purchaseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(purchaseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(purchaseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(purchaseevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(purchaseevent.FieldPrice, field.TypeInt, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.CoinsAfter(); ok {
		_spec.SetField(purchaseevent.FieldCoinsAfter, field.TypeInt, value)
		_node.CoinsAfter = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PurchaseEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PurchaseEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PurchaseEventCreate) OnConflict(opts ...sql.ConflictOption) *PurchaseEventUpsertOne {
	_c.conflict = opts
	return &PurchaseEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PurchaseEventCreate) OnConflictColumns(columns ...string) *PurchaseEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PurchaseEventUpsertOne{
		create: _c,
	}
}

type (
	// PurchaseEventUpsertOne is the builder for "upsert"-ing
	//  one PurchaseEvent node.
	PurchaseEventUpsertOne struct {
		create *PurchaseEventCreate
	}

	// PurchaseEventUpsert is the "OnConflict" setter.
	PurchaseEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *PurchaseEventUpsert) SetSessionID(v string) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateSessionID() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldSessionID)
	return u
}

// SetItemID sets the "item_id" field.
func (u *PurchaseEventUpsert) SetItemID(v string) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateItemID() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldItemID)
	return u
}

// SetPrice sets the "price" field.
func (u *PurchaseEventUpsert) SetPrice(v int) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdatePrice() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *PurchaseEventUpsert) AddPrice(v int) *PurchaseEventUpsert {
	u.Add(purchaseevent.FieldPrice, v)
	return u
}

// SetCoinsAfter sets the "coins_after" field.
func (u *PurchaseEventUpsert) SetCoinsAfter(v int) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldCoinsAfter, v)
	return u
}

// UpdateCoinsAfter sets the "coins_after" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateCoinsAfter() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldCoinsAfter)
	return u
}

// AddCoinsAfter adds v to the "coins_after" field.
func (u *PurchaseEventUpsert) AddCoinsAfter(v int) *PurchaseEventUpsert {
	u.Add(purchaseevent.FieldCoinsAfter, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PurchaseEventUpsertOne) UpdateNewValues() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(purchaseevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(purchaseevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PurchaseEventUpsertOne) Ignore() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PurchaseEventUpsertOne) DoNothing() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PurchaseEventCreate.OnConflict
// documentation for more info.
func (u *PurchaseEventUpsertOne) Update(set func(*PurchaseEventUpsert)) *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PurchaseEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PurchaseEventUpsertOne) SetSessionID(v string) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateSessionID() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetItemID sets the "item_id" field.
func (u *PurchaseEventUpsertOne) SetItemID(v string) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateItemID() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateItemID()
	})
}

// SetPrice sets the "price" field.
func (u *PurchaseEventUpsertOne) SetPrice(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PurchaseEventUpsertOne) AddPrice(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdatePrice() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdatePrice()
	})
}

// SetCoinsAfter sets the "coins_after" field.
func (u *PurchaseEventUpsertOne) SetCoinsAfter(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetCoinsAfter(v)
	})
}

// AddCoinsAfter adds v to the "coins_after" field.
func (u *PurchaseEventUpsertOne) AddCoinsAfter(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddCoinsAfter(v)
	})
}

// UpdateCoinsAfter sets the "coins_after" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateCoinsAfter() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateCoinsAfter()
	})
}

// Exec executes the query.
func (u *PurchaseEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PurchaseEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PurchaseEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PurchaseEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PurchaseEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PurchaseEventCreateBulk is the builder for creating many PurchaseEvent entities in bulk.
type PurchaseEventCreateBulk struct {
	config
	err      error
	builders []*PurchaseEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PurchaseEvent entities in the database.
func (_c *PurchaseEventCreateBulk) Save(ctx context.Context) ([]*PurchaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseEventMutation)
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
func (_c *PurchaseEventCreateBulk) SaveX(ctx context.Context) []*PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PurchaseEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PurchaseEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PurchaseEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PurchaseEventUpsertBulk {
	_c.conflict = opts
	return &PurchaseEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PurchaseEventCreateBulk) OnConflictColumns(columns ...string) *PurchaseEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PurchaseEventUpsertBulk{
		create: _c,
	}
}

// PurchaseEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PurchaseEvent nodes.
type PurchaseEventUpsertBulk struct {
	create *PurchaseEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PurchaseEventUpsertBulk) UpdateNewValues() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(purchaseevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(purchaseevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PurchaseEventUpsertBulk) Ignore() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PurchaseEventUpsertBulk) DoNothing() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PurchaseEventCreateBulk.OnConflict
// documentation for more info.
func (u *PurchaseEventUpsertBulk) Update(set func(*PurchaseEventUpsert)) *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PurchaseEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PurchaseEventUpsertBulk) SetSessionID(v string) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateSessionID() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetItemID sets the "item_id" field.
func (u *PurchaseEventUpsertBulk) SetItemID(v string) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateItemID() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateItemID()
	})
}

// SetPrice sets the "price" field.
func (u *PurchaseEventUpsertBulk) SetPrice(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PurchaseEventUpsertBulk) AddPrice(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdatePrice() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdatePrice()
	})
}

// SetCoinsAfter sets the "coins_after" field.
func (u *PurchaseEventUpsertBulk) SetCoinsAfter(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetCoinsAfter(v)
	})
}

// AddCoinsAfter adds v to the "coins_after" field.
func (u *PurchaseEventUpsertBulk) AddCoinsAfter(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddCoinsAfter(v)
	})
}

// UpdateCoinsAfter sets the "coins_after" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateCoinsAfter() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateCoinsAfter()
	})
}

// Exec executes the query.
func (u *PurchaseEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PurchaseEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PurchaseEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PurchaseEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
