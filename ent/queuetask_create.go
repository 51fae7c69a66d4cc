// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// QueueTaskCreate is the builder for creating a QueueTask entity.
type QueueTaskCreate struct {
	config
	mutation *QueueTaskMutation
	hooks    []Hook
}

// SetNamespace sets the "namespace" field.
func (_c *QueueTaskCreate) SetNamespace(v string) *QueueTaskCreate {
	_c.mutation.SetNamespace(v)
	return _c
}

// SetTaskGroupID sets the "task_group_id" field.
func (_c *QueueTaskCreate) SetTaskGroupID(v string) *QueueTaskCreate {
	_c.mutation.SetTaskGroupID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QueueTaskCreate) SetSessionID(v string) *QueueTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueTaskCreate) SetStatus(v queuetask.Status) *QueueTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableStatus(v *queuetask.Status) *QueueTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QueueTaskCreate) SetPrompt(v string) *QueueTaskCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *QueueTaskCreate) SetTaskType(v queuetask.TaskType) *QueueTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableTaskType(v *queuetask.TaskType) *QueueTaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueTaskCreate) SetCreatedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableCreatedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueTaskCreate) SetUpdatedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableUpdatedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *QueueTaskCreate) SetOutput(v string) *QueueTaskCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableOutput(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueueTaskCreate) SetErrorMessage(v string) *QueueTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableErrorMessage(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetClarification sets the "clarification" field.
func (_c *QueueTaskCreate) SetClarification(v *models.Clarification) *QueueTaskCreate {
	_c.mutation.SetClarification(v)
	return _c
}

// SetEvents sets the "events" field.
func (_c *QueueTaskCreate) SetEvents(v []models.TaskEvent) *QueueTaskCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *QueueTaskCreate) SetAttempt(v int) *QueueTaskCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableAttempt(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueTaskCreate) SetID(v string) *QueueTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_c *QueueTaskCreate) Mutation() *QueueTaskMutation {
	return _c.mutation
}

// Save creates the QueueTask in the database.
func (_c *QueueTaskCreate) Save(ctx context.Context) (*QueueTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueTaskCreate) SaveX(ctx context.Context) *QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queuetask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		v := queuetask.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuetask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuetask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := queuetask.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueTaskCreate) check() error {
	if _, ok := _c.mutation.Namespace(); !ok {
		return &ValidationError{Name: "namespace", err: errors.New(`ent: missing required field "QueueTask.namespace"`)}
	}
	if _, ok := _c.mutation.TaskGroupID(); !ok {
		return &ValidationError{Name: "task_group_id", err: errors.New(`ent: missing required field "QueueTask.task_group_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QueueTask.session_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "QueueTask.prompt"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "QueueTask.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := queuetask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "QueueTask.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueTask.updated_at"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "QueueTask.attempt"`)}
	}
	return nil
}

func (_c *QueueTaskCreate) sqlSave(ctx context.Context) (*QueueTask, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QueueTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueTaskCreate) createSpec() (*QueueTask, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuetask.Table, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Namespace(); ok {
		_spec.SetField(queuetask.FieldNamespace, field.TypeString, value)
		_node.Namespace = value
	}
	if value, ok := _c.mutation.TaskGroupID(); ok {
		_spec.SetField(queuetask.FieldTaskGroupID, field.TypeString, value)
		_node.TaskGroupID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(queuetask.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuetask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(queuetask.FieldOutput, field.TypeString, value)
		_node.Output = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Clarification(); ok {
		_spec.SetField(queuetask.FieldClarification, field.TypeJSON, value)
		_node.Clarification = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(queuetask.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(queuetask.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	return _node, _spec
}

// QueueTaskCreateBulk is the builder for creating many QueueTask entities in bulk.
type QueueTaskCreateBulk struct {
	config
	err      error
	builders []*QueueTaskCreate
}

// Save creates the QueueTask entities in the database.
func (_c *QueueTaskCreateBulk) Save(ctx context.Context) ([]*QueueTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueTaskMutation)
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
func (_c *QueueTaskCreateBulk) SaveX(ctx context.Context) []*QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
