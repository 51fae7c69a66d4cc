// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pm-runner/pmrunner/ent/predicate"
	"github.com/pm-runner/pmrunner/ent/queueevent"
)

// QueueEventUpdate is the builder for updating QueueEvent entities.
type QueueEventUpdate struct {
	config
	hooks    []Hook
	mutation *QueueEventMutation
}

// Where appends a list predicates to the QueueEventUpdate builder.
func (_u *QueueEventUpdate) Where(ps ...predicate.QueueEvent) *QueueEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *QueueEventUpdate) SetNamespace(v string) *QueueEventUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *QueueEventUpdate) SetNillableNamespace(v *string) *QueueEventUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *QueueEventUpdate) SetTaskID(v string) *QueueEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *QueueEventUpdate) SetNillableTaskID(v *string) *QueueEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *QueueEventUpdate) SetChannel(v string) *QueueEventUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *QueueEventUpdate) SetNillableChannel(v *string) *QueueEventUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueEventUpdate) SetPayload(v map[string]interface{}) *QueueEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the QueueEventMutation object of the builder.
func (_u *QueueEventUpdate) Mutation() *QueueEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queueevent.Table, queueevent.Columns, sqlgraph.NewFieldSpec(queueevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(queueevent.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(queueevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(queueevent.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queueevent.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueEventUpdateOne is the builder for updating a single QueueEvent entity.
type QueueEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueEventMutation
}

// SetNamespace sets the "namespace" field.
func (_u *QueueEventUpdateOne) SetNamespace(v string) *QueueEventUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *QueueEventUpdateOne) SetNillableNamespace(v *string) *QueueEventUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *QueueEventUpdateOne) SetTaskID(v string) *QueueEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *QueueEventUpdateOne) SetNillableTaskID(v *string) *QueueEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *QueueEventUpdateOne) SetChannel(v string) *QueueEventUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *QueueEventUpdateOne) SetNillableChannel(v *string) *QueueEventUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueEventUpdateOne) SetPayload(v map[string]interface{}) *QueueEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the QueueEventMutation object of the builder.
func (_u *QueueEventUpdateOne) Mutation() *QueueEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueEventUpdate builder.
func (_u *QueueEventUpdateOne) Where(ps ...predicate.QueueEvent) *QueueEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueEventUpdateOne) Select(field string, fields ...string) *QueueEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueEvent entity.
func (_u *QueueEventUpdateOne) Save(ctx context.Context) (*QueueEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueEventUpdateOne) SaveX(ctx context.Context) *QueueEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueEventUpdateOne) sqlSave(ctx context.Context) (_node *QueueEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(queueevent.Table, queueevent.Columns, sqlgraph.NewFieldSpec(queueevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queueevent.FieldID)
		for _, f := range fields {
			if !queueevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queueevent.FieldID {
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
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(queueevent.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(queueevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(queueevent.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queueevent.FieldPayload, field.TypeJSON, value)
	}
	_node = &QueueEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
