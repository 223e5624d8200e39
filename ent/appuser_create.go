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
	"github.com/devika/mathquest/ent/appuser"
)

// AppUserCreate is the builder for creating a AppUser entity.
type AppUserCreate struct {
	config
	mutation *AppUserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AppUserCreate) SetSessionID(v string) *AppUserCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_c *AppUserCreate) SetStripeCustomerID(v string) *AppUserCreate {
	_c.mutation.SetStripeCustomerID(v)
	return _c
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_c *AppUserCreate) SetNillableStripeCustomerID(v *string) *AppUserCreate {
	if v != nil {
		_c.SetStripeCustomerID(*v)
	}
	return _c
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_c *AppUserCreate) SetStripeSubscriptionID(v string) *AppUserCreate {
	_c.mutation.SetStripeSubscriptionID(v)
	return _c
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_c *AppUserCreate) SetNillableStripeSubscriptionID(v *string) *AppUserCreate {
	if v != nil {
		_c.SetStripeSubscriptionID(*v)
	}
	return _c
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_c *AppUserCreate) SetSubscriptionStatus(v string) *AppUserCreate {
	_c.mutation.SetSubscriptionStatus(v)
	return _c
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_c *AppUserCreate) SetNillableSubscriptionStatus(v *string) *AppUserCreate {
	if v != nil {
		_c.SetSubscriptionStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppUserCreate) SetCreatedAt(v time.Time) *AppUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppUserCreate) SetNillableCreatedAt(v *time.Time) *AppUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppUserCreate) SetUpdatedAt(v time.Time) *AppUserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppUserCreate) SetNillableUpdatedAt(v *time.Time) *AppUserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AppUserMutation object of the builder.
func (_c *AppUserCreate) Mutation() *AppUserMutation {
	return _c.mutation
}

// Save creates the AppUser in the database.
func (_c *AppUserCreate) Save(ctx context.Context) (*AppUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppUserCreate) SaveX(ctx context.Context) *AppUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppUserCreate) defaults() {
	if _, ok := _c.mutation.StripeCustomerID(); !ok {
		v := appuser.DefaultStripeCustomerID
		_c.mutation.SetStripeCustomerID(v)
	}
	if _, ok := _c.mutation.StripeSubscriptionID(); !ok {
		v := appuser.DefaultStripeSubscriptionID
		_c.mutation.SetStripeSubscriptionID(v)
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		v := appuser.DefaultSubscriptionStatus
		_c.mutation.SetSubscriptionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appuser.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appuser.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppUserCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AppUser.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := appuser.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AppUser.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StripeCustomerID(); !ok {
		return &ValidationError{Name: "stripe_customer_id", err: errors.New(`ent: missing required field "AppUser.stripe_customer_id"`)}
	}
	if _, ok := _c.mutation.StripeSubscriptionID(); !ok {
		return &ValidationError{Name: "stripe_subscription_id", err: errors.New(`ent: missing required field "AppUser.stripe_subscription_id"`)}
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		return &ValidationError{Name: "subscription_status", err: errors.New(`ent: missing required field "AppUser.subscription_status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AppUser.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AppUser.updated_at"`)}
	}
	return nil
}

func (_c *AppUserCreate) sqlSave(ctx context.Context) (*AppUser, error) {
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

func (_c *AppUserCreate) createSpec() (*AppUser, *sqlgraph.CreateSpec) {
	var (
		_node = &AppUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appuser.Table, sqlgraph.NewFieldSpec(appuser.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(appuser.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StripeCustomerID(); ok {
		_spec.SetField(appuser.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = value
	}
	if value, ok := _c.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(appuser.FieldStripeSubscriptionID, field.TypeString, value)
		_node.StripeSubscriptionID = value
	}
	if value, ok := _c.mutation.SubscriptionStatus(); ok {
		_spec.SetField(appuser.FieldSubscriptionStatus, field.TypeString, value)
		_node.SubscriptionStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appuser.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appuser.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppUser.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppUserUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AppUserCreate) OnConflict(opts ...sql.ConflictOption) *AppUserUpsertOne {
	_c.conflict = opts
	return &AppUserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppUserCreate) OnConflictColumns(columns ...string) *AppUserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppUserUpsertOne{
		create: _c,
	}
}

type (
	// AppUserUpsertOne is the builder for "upsert"-ing
	//  one AppUser node.
	AppUserUpsertOne struct {
		create *AppUserCreate
	}

	// AppUserUpsert is the "OnConflict" setter.
	AppUserUpsert struct {
		*sql.UpdateSet
	}
)

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *AppUserUpsert) SetStripeCustomerID(v string) *AppUserUpsert {
	u.Set(appuser.FieldStripeCustomerID, v)
	return u
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *AppUserUpsert) UpdateStripeCustomerID() *AppUserUpsert {
	u.SetExcluded(appuser.FieldStripeCustomerID)
	return u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (u *AppUserUpsert) SetStripeSubscriptionID(v string) *AppUserUpsert {
	u.Set(appuser.FieldStripeSubscriptionID, v)
	return u
}

// UpdateStripeSubscriptionID sets the "stripe_subscription_id" field to the value that was provided on create.
func (u *AppUserUpsert) UpdateStripeSubscriptionID() *AppUserUpsert {
	u.SetExcluded(appuser.FieldStripeSubscriptionID)
	return u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AppUserUpsert) SetSubscriptionStatus(v string) *AppUserUpsert {
	u.Set(appuser.FieldSubscriptionStatus, v)
	return u
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AppUserUpsert) UpdateSubscriptionStatus() *AppUserUpsert {
	u.SetExcluded(appuser.FieldSubscriptionStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppUserUpsert) SetUpdatedAt(v time.Time) *AppUserUpsert {
	u.Set(appuser.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppUserUpsert) UpdateUpdatedAt() *AppUserUpsert {
	u.SetExcluded(appuser.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AppUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AppUserUpsertOne) UpdateNewValues() *AppUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(appuser.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appuser.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppUser.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppUserUpsertOne) Ignore() *AppUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppUserUpsertOne) DoNothing() *AppUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppUserCreate.OnConflict
// documentation for more info.
func (u *AppUserUpsertOne) Update(set func(*AppUserUpsert)) *AppUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *AppUserUpsertOne) SetStripeCustomerID(v string) *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.SetStripeCustomerID(v)
	})
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *AppUserUpsertOne) UpdateStripeCustomerID() *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateStripeCustomerID()
	})
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (u *AppUserUpsertOne) SetStripeSubscriptionID(v string) *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.SetStripeSubscriptionID(v)
	})
}

// UpdateStripeSubscriptionID sets the "stripe_subscription_id" field to the value that was provided on create.
func (u *AppUserUpsertOne) UpdateStripeSubscriptionID() *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateStripeSubscriptionID()
	})
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AppUserUpsertOne) SetSubscriptionStatus(v string) *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.SetSubscriptionStatus(v)
	})
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AppUserUpsertOne) UpdateSubscriptionStatus() *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateSubscriptionStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppUserUpsertOne) SetUpdatedAt(v time.Time) *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppUserUpsertOne) UpdateUpdatedAt() *AppUserUpsertOne {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AppUserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AppUserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppUserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppUserUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppUserUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppUserCreateBulk is the builder for creating many AppUser entities in bulk.
type AppUserCreateBulk struct {
	config
	err      error
	builders []*AppUserCreate
	conflict []sql.ConflictOption
}

// Save creates the AppUser entities in the database.
func (_c *AppUserCreateBulk) Save(ctx context.Context) ([]*AppUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppUserMutation)
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
func (_c *AppUserCreateBulk) SaveX(ctx context.Context) []*AppUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppUser.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppUserUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AppUserCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppUserUpsertBulk {
	_c.conflict = opts
	return &AppUserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppUserCreateBulk) OnConflictColumns(columns ...string) *AppUserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppUserUpsertBulk{
		create: _c,
	}
}

// AppUserUpsertBulk is the builder for "upsert"-ing
// a bulk of AppUser nodes.
type AppUserUpsertBulk struct {
	create *AppUserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AppUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AppUserUpsertBulk) UpdateNewValues() *AppUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(appuser.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appuser.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppUser.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppUserUpsertBulk) Ignore() *AppUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppUserUpsertBulk) DoNothing() *AppUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppUserCreateBulk.OnConflict
// documentation for more info.
func (u *AppUserUpsertBulk) Update(set func(*AppUserUpsert)) *AppUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (u *AppUserUpsertBulk) SetStripeCustomerID(v string) *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.SetStripeCustomerID(v)
	})
}

// UpdateStripeCustomerID sets the "stripe_customer_id" field to the value that was provided on create.
func (u *AppUserUpsertBulk) UpdateStripeCustomerID() *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateStripeCustomerID()
	})
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (u *AppUserUpsertBulk) SetStripeSubscriptionID(v string) *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.SetStripeSubscriptionID(v)
	})
}

// UpdateStripeSubscriptionID sets the "stripe_subscription_id" field to the value that was provided on create.
func (u *AppUserUpsertBulk) UpdateStripeSubscriptionID() *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateStripeSubscriptionID()
	})
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AppUserUpsertBulk) SetSubscriptionStatus(v string) *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.SetSubscriptionStatus(v)
	})
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AppUserUpsertBulk) UpdateSubscriptionStatus() *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateSubscriptionStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppUserUpsertBulk) SetUpdatedAt(v time.Time) *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppUserUpsertBulk) UpdateUpdatedAt() *AppUserUpsertBulk {
	return u.Update(func(s *AppUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AppUserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AppUserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AppUserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppUserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
