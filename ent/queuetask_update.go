// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/pm-runner/pmrunner/ent/predicate"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// QueueTaskUpdate is the builder for updating QueueTask entities.
type QueueTaskUpdate struct {
	config
	hooks    []Hook
	mutation *QueueTaskMutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdate) Where(ps ...predicate.QueueTask) *QueueTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskGroupID sets the "task_group_id" field.
func (_u *QueueTaskUpdate) SetTaskGroupID(v string) *QueueTaskUpdate {
	_u.mutation.SetTaskGroupID(v)
	return _u
}

// SetNillableTaskGroupID sets the "task_group_id" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableTaskGroupID(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetTaskGroupID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QueueTaskUpdate) SetSessionID(v string) *QueueTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableSessionID(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueTaskUpdate) SetStatus(v queuetask.Status) *QueueTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableStatus(v *queuetask.Status) *QueueTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QueueTaskUpdate) SetPrompt(v string) *QueueTaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillablePrompt(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *QueueTaskUpdate) SetTaskType(v queuetask.TaskType) *QueueTaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableTaskType(v *queuetask.TaskType) *QueueTaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueTaskUpdate) SetUpdatedAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableUpdatedAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *QueueTaskUpdate) SetOutput(v string) *QueueTaskUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableOutput(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *QueueTaskUpdate) ClearOutput() *QueueTaskUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueTaskUpdate) SetErrorMessage(v string) *QueueTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableErrorMessage(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueTaskUpdate) ClearErrorMessage() *QueueTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *QueueTaskUpdate) SetClarification(v *models.Clarification) *QueueTaskUpdate {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *QueueTaskUpdate) ClearClarification() *QueueTaskUpdate {
	_u.mutation.ClearClarification()
	return _u
}

// SetEvents sets the "events" field.
func (_u *QueueTaskUpdate) SetEvents(v []models.TaskEvent) *QueueTaskUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *QueueTaskUpdate) AppendEvents(v []models.TaskEvent) *QueueTaskUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *QueueTaskUpdate) ClearEvents() *QueueTaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *QueueTaskUpdate) SetAttempt(v int) *QueueTaskUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableAttempt(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *QueueTaskUpdate) AddAttempt(v int) *QueueTaskUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdate) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := queuetask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "QueueTask.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskGroupID(); ok {
		_spec.SetField(queuetask.FieldTaskGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(queuetask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(queuetask.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(queuetask.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(queuetask.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(queuetask.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(queuetask.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queuetask.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(queuetask.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(queuetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(queuetask.FieldAttempt, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueTaskUpdateOne is the builder for updating a single QueueTask entity.
type QueueTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueTaskMutation
}

// SetTaskGroupID sets the "task_group_id" field.
func (_u *QueueTaskUpdateOne) SetTaskGroupID(v string) *QueueTaskUpdateOne {
	_u.mutation.SetTaskGroupID(v)
	return _u
}

// SetNillableTaskGroupID sets the "task_group_id" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableTaskGroupID(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetTaskGroupID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QueueTaskUpdateOne) SetSessionID(v string) *QueueTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableSessionID(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueTaskUpdateOne) SetStatus(v queuetask.Status) *QueueTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableStatus(v *queuetask.Status) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QueueTaskUpdateOne) SetPrompt(v string) *QueueTaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillablePrompt(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *QueueTaskUpdateOne) SetTaskType(v queuetask.TaskType) *QueueTaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableTaskType(v *queuetask.TaskType) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueTaskUpdateOne) SetUpdatedAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableUpdatedAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *QueueTaskUpdateOne) SetOutput(v string) *QueueTaskUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableOutput(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *QueueTaskUpdateOne) ClearOutput() *QueueTaskUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueTaskUpdateOne) SetErrorMessage(v string) *QueueTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableErrorMessage(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueTaskUpdateOne) ClearErrorMessage() *QueueTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *QueueTaskUpdateOne) SetClarification(v *models.Clarification) *QueueTaskUpdateOne {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *QueueTaskUpdateOne) ClearClarification() *QueueTaskUpdateOne {
	_u.mutation.ClearClarification()
	return _u
}

// SetEvents sets the "events" field.
func (_u *QueueTaskUpdateOne) SetEvents(v []models.TaskEvent) *QueueTaskUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *QueueTaskUpdateOne) AppendEvents(v []models.TaskEvent) *QueueTaskUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *QueueTaskUpdateOne) ClearEvents() *QueueTaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *QueueTaskUpdateOne) SetAttempt(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableAttempt(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *QueueTaskUpdateOne) AddAttempt(v int) *QueueTaskUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdateOne) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdateOne) Where(ps ...predicate.QueueTask) *QueueTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueTaskUpdateOne) Select(field string, fields ...string) *QueueTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueTask entity.
func (_u *QueueTaskUpdateOne) Save(ctx context.Context) (*QueueTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) SaveX(ctx context.Context) *QueueTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := queuetask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "QueueTask.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdateOne) sqlSave(ctx context.Context) (_node *QueueTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuetask.FieldID)
		for _, f := range fields {
			if !queuetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuetask.FieldID {
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
	if value, ok := _u.mutation.TaskGroupID(); ok {
		_spec.SetField(queuetask.FieldTaskGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(queuetask.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(queuetask.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(queuetask.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(queuetask.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(queuetask.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(queuetask.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queuetask.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(queuetask.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(queuetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(queuetask.FieldAttempt, field.TypeInt, value)
	}
	_node = &QueueTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
