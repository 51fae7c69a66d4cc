// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/ent/predicate"
	"github.com/pm-runner/pmrunner/ent/queueevent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQueueEvent = "QueueEvent"
	TypeQueueTask  = "QueueTask"
)

// QueueEventMutation represents an operation that mutates the QueueEvent nodes in the graph.
type QueueEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	namespace     *string
	task_id       *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueEvent, error)
	predicates    []predicate.QueueEvent
}

var _ ent.Mutation = (*QueueEventMutation)(nil)

// queueeventOption allows management of the mutation configuration using functional options.
type queueeventOption func(*QueueEventMutation)

// newQueueEventMutation creates new mutation for the QueueEvent entity.
func newQueueEventMutation(c config, op Op, opts ...queueeventOption) *QueueEventMutation {
	m := &QueueEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueEventID sets the ID field of the mutation.
func withQueueEventID(id int) queueeventOption {
	return func(m *QueueEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueEvent
		)
		m.oldValue = func(ctx context.Context) (*QueueEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueEvent sets the old QueueEvent of the mutation.
func withQueueEvent(node *QueueEvent) queueeventOption {
	return func(m *QueueEventMutation) {
		m.oldValue = func(context.Context) (*QueueEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNamespace sets the "namespace" field.
func (m *QueueEventMutation) SetNamespace(s string) {
	m.namespace = &s
}

// Namespace returns the value of the "namespace" field in the mutation.
func (m *QueueEventMutation) Namespace() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespace returns the old "namespace" field's value of the QueueEvent entity.
// If the QueueEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEventMutation) OldNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespace: %w", err)
	}
	return oldValue.Namespace, nil
}

// ResetNamespace resets all changes to the "namespace" field.
func (m *QueueEventMutation) ResetNamespace() {
	m.namespace = nil
}

// SetTaskID sets the "task_id" field.
func (m *QueueEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *QueueEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the QueueEvent entity.
// If the QueueEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *QueueEventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetChannel sets the "channel" field.
func (m *QueueEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *QueueEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the QueueEvent entity.
// If the QueueEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *QueueEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *QueueEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueEvent entity.
// If the QueueEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueEvent entity.
// If the QueueEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueueEventMutation builder.
func (m *QueueEventMutation) Where(ps ...predicate.QueueEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueEvent).
func (m *QueueEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.namespace != nil {
		fields = append(fields, queueevent.FieldNamespace)
	}
	if m.task_id != nil {
		fields = append(fields, queueevent.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, queueevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, queueevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, queueevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queueevent.FieldNamespace:
		return m.Namespace()
	case queueevent.FieldTaskID:
		return m.TaskID()
	case queueevent.FieldChannel:
		return m.Channel()
	case queueevent.FieldPayload:
		return m.Payload()
	case queueevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queueevent.FieldNamespace:
		return m.OldNamespace(ctx)
	case queueevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case queueevent.FieldChannel:
		return m.OldChannel(ctx)
	case queueevent.FieldPayload:
		return m.OldPayload(ctx)
	case queueevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queueevent.FieldNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespace(v)
		return nil
	case queueevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case queueevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case queueevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queueevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QueueEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QueueEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueEventMutation) ResetField(name string) error {
	switch name {
	case queueevent.FieldNamespace:
		m.ResetNamespace()
		return nil
	case queueevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case queueevent.FieldChannel:
		m.ResetChannel()
		return nil
	case queueevent.FieldPayload:
		m.ResetPayload()
		return nil
	case queueevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueEvent edge %s", name)
}

// QueueTaskMutation represents an operation that mutates the QueueTask nodes in the graph.
type QueueTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	namespace     *string
	task_group_id *string
	session_id    *string
	status        *queuetask.Status
	prompt        *string
	task_type     *queuetask.TaskType
	created_at    *time.Time
	updated_at    *time.Time
	output        *string
	error_message *string
	clarification **models.Clarification
	events        *[]models.TaskEvent
	appendevents  []models.TaskEvent
	attempt       *int
	addattempt    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueTask, error)
	predicates    []predicate.QueueTask
}

var _ ent.Mutation = (*QueueTaskMutation)(nil)

// queuetaskOption allows management of the mutation configuration using functional options.
type queuetaskOption func(*QueueTaskMutation)

// newQueueTaskMutation creates new mutation for the QueueTask entity.
func newQueueTaskMutation(c config, op Op, opts ...queuetaskOption) *QueueTaskMutation {
	m := &QueueTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueTaskID sets the ID field of the mutation.
func withQueueTaskID(id string) queuetaskOption {
	return func(m *QueueTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueTask
		)
		m.oldValue = func(ctx context.Context) (*QueueTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueTask sets the old QueueTask of the mutation.
func withQueueTask(node *QueueTask) queuetaskOption {
	return func(m *QueueTaskMutation) {
		m.oldValue = func(context.Context) (*QueueTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueTask entities.
func (m *QueueTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNamespace sets the "namespace" field.
func (m *QueueTaskMutation) SetNamespace(s string) {
	m.namespace = &s
}

// Namespace returns the value of the "namespace" field in the mutation.
func (m *QueueTaskMutation) Namespace() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespace returns the old "namespace" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespace: %w", err)
	}
	return oldValue.Namespace, nil
}

// ResetNamespace resets all changes to the "namespace" field.
func (m *QueueTaskMutation) ResetNamespace() {
	m.namespace = nil
}

// SetTaskGroupID sets the "task_group_id" field.
func (m *QueueTaskMutation) SetTaskGroupID(s string) {
	m.task_group_id = &s
}

// TaskGroupID returns the value of the "task_group_id" field in the mutation.
func (m *QueueTaskMutation) TaskGroupID() (r string, exists bool) {
	v := m.task_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskGroupID returns the old "task_group_id" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldTaskGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskGroupID: %w", err)
	}
	return oldValue.TaskGroupID, nil
}

// ResetTaskGroupID resets all changes to the "task_group_id" field.
func (m *QueueTaskMutation) ResetTaskGroupID() {
	m.task_group_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *QueueTaskMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QueueTaskMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QueueTaskMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStatus sets the "status" field.
func (m *QueueTaskMutation) SetStatus(q queuetask.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueTaskMutation) Status() (r queuetask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldStatus(ctx context.Context) (v queuetask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueTaskMutation) ResetStatus() {
	m.status = nil
}

// SetPrompt sets the "prompt" field.
func (m *QueueTaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *QueueTaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *QueueTaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetTaskType sets the "task_type" field.
func (m *QueueTaskMutation) SetTaskType(qt queuetask.TaskType) {
	m.task_type = &qt
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *QueueTaskMutation) TaskType() (r queuetask.TaskType, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldTaskType(ctx context.Context) (v queuetask.TaskType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *QueueTaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOutput sets the "output" field.
func (m *QueueTaskMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *QueueTaskMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *QueueTaskMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[queuetask.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *QueueTaskMutation) OutputCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *QueueTaskMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, queuetask.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *QueueTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QueueTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QueueTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[queuetask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QueueTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QueueTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, queuetask.FieldErrorMessage)
}

// SetClarification sets the "clarification" field.
func (m *QueueTaskMutation) SetClarification(value *models.Clarification) {
	m.clarification = &value
}

// Clarification returns the value of the "clarification" field in the mutation.
func (m *QueueTaskMutation) Clarification() (r *models.Clarification, exists bool) {
	v := m.clarification
	if v == nil {
		return
	}
	return *v, true
}

// OldClarification returns the old "clarification" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldClarification(ctx context.Context) (v *models.Clarification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarification: %w", err)
	}
	return oldValue.Clarification, nil
}

// ClearClarification clears the value of the "clarification" field.
func (m *QueueTaskMutation) ClearClarification() {
	m.clarification = nil
	m.clearedFields[queuetask.FieldClarification] = struct{}{}
}

// ClarificationCleared returns if the "clarification" field was cleared in this mutation.
func (m *QueueTaskMutation) ClarificationCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldClarification]
	return ok
}

// ResetClarification resets all changes to the "clarification" field.
func (m *QueueTaskMutation) ResetClarification() {
	m.clarification = nil
	delete(m.clearedFields, queuetask.FieldClarification)
}

// SetEvents sets the "events" field.
func (m *QueueTaskMutation) SetEvents(me []models.TaskEvent) {
	m.events = &me
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *QueueTaskMutation) Events() (r []models.TaskEvent, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldEvents(ctx context.Context) (v []models.TaskEvent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds me to the "events" field.
func (m *QueueTaskMutation) AppendEvents(me []models.TaskEvent) {
	m.appendevents = append(m.appendevents, me...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *QueueTaskMutation) AppendedEvents() ([]models.TaskEvent, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ClearEvents clears the value of the "events" field.
func (m *QueueTaskMutation) ClearEvents() {
	m.events = nil
	m.appendevents = nil
	m.clearedFields[queuetask.FieldEvents] = struct{}{}
}

// EventsCleared returns if the "events" field was cleared in this mutation.
func (m *QueueTaskMutation) EventsCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldEvents]
	return ok
}

// ResetEvents resets all changes to the "events" field.
func (m *QueueTaskMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
	delete(m.clearedFields, queuetask.FieldEvents)
}

// SetAttempt sets the "attempt" field.
func (m *QueueTaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *QueueTaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *QueueTaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *QueueTaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *QueueTaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// Where appends a list predicates to the QueueTaskMutation builder.
func (m *QueueTaskMutation) Where(ps ...predicate.QueueTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueTask).
func (m *QueueTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueTaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.namespace != nil {
		fields = append(fields, queuetask.FieldNamespace)
	}
	if m.task_group_id != nil {
		fields = append(fields, queuetask.FieldTaskGroupID)
	}
	if m.session_id != nil {
		fields = append(fields, queuetask.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, queuetask.FieldStatus)
	}
	if m.prompt != nil {
		fields = append(fields, queuetask.FieldPrompt)
	}
	if m.task_type != nil {
		fields = append(fields, queuetask.FieldTaskType)
	}
	if m.created_at != nil {
		fields = append(fields, queuetask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queuetask.FieldUpdatedAt)
	}
	if m.output != nil {
		fields = append(fields, queuetask.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, queuetask.FieldErrorMessage)
	}
	if m.clarification != nil {
		fields = append(fields, queuetask.FieldClarification)
	}
	if m.events != nil {
		fields = append(fields, queuetask.FieldEvents)
	}
	if m.attempt != nil {
		fields = append(fields, queuetask.FieldAttempt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldNamespace:
		return m.Namespace()
	case queuetask.FieldTaskGroupID:
		return m.TaskGroupID()
	case queuetask.FieldSessionID:
		return m.SessionID()
	case queuetask.FieldStatus:
		return m.Status()
	case queuetask.FieldPrompt:
		return m.Prompt()
	case queuetask.FieldTaskType:
		return m.TaskType()
	case queuetask.FieldCreatedAt:
		return m.CreatedAt()
	case queuetask.FieldUpdatedAt:
		return m.UpdatedAt()
	case queuetask.FieldOutput:
		return m.Output()
	case queuetask.FieldErrorMessage:
		return m.ErrorMessage()
	case queuetask.FieldClarification:
		return m.Clarification()
	case queuetask.FieldEvents:
		return m.Events()
	case queuetask.FieldAttempt:
		return m.Attempt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuetask.FieldNamespace:
		return m.OldNamespace(ctx)
	case queuetask.FieldTaskGroupID:
		return m.OldTaskGroupID(ctx)
	case queuetask.FieldSessionID:
		return m.OldSessionID(ctx)
	case queuetask.FieldStatus:
		return m.OldStatus(ctx)
	case queuetask.FieldPrompt:
		return m.OldPrompt(ctx)
	case queuetask.FieldTaskType:
		return m.OldTaskType(ctx)
	case queuetask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queuetask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case queuetask.FieldOutput:
		return m.OldOutput(ctx)
	case queuetask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case queuetask.FieldClarification:
		return m.OldClarification(ctx)
	case queuetask.FieldEvents:
		return m.OldEvents(ctx)
	case queuetask.FieldAttempt:
		return m.OldAttempt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespace(v)
		return nil
	case queuetask.FieldTaskGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskGroupID(v)
		return nil
	case queuetask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case queuetask.FieldStatus:
		v, ok := value.(queuetask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuetask.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case queuetask.FieldTaskType:
		v, ok := value.(queuetask.TaskType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case queuetask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queuetask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case queuetask.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case queuetask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case queuetask.FieldClarification:
		v, ok := value.(*models.Clarification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarification(v)
		return nil
	case queuetask.FieldEvents:
		v, ok := value.([]models.TaskEvent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case queuetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueTaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, queuetask.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuetask.FieldOutput) {
		fields = append(fields, queuetask.FieldOutput)
	}
	if m.FieldCleared(queuetask.FieldErrorMessage) {
		fields = append(fields, queuetask.FieldErrorMessage)
	}
	if m.FieldCleared(queuetask.FieldClarification) {
		fields = append(fields, queuetask.FieldClarification)
	}
	if m.FieldCleared(queuetask.FieldEvents) {
		fields = append(fields, queuetask.FieldEvents)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueTaskMutation) ClearField(name string) error {
	switch name {
	case queuetask.FieldOutput:
		m.ClearOutput()
		return nil
	case queuetask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case queuetask.FieldClarification:
		m.ClearClarification()
		return nil
	case queuetask.FieldEvents:
		m.ClearEvents()
		return nil
	}
	return fmt.Errorf("unknown QueueTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueTaskMutation) ResetField(name string) error {
	switch name {
	case queuetask.FieldNamespace:
		m.ResetNamespace()
		return nil
	case queuetask.FieldTaskGroupID:
		m.ResetTaskGroupID()
		return nil
	case queuetask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case queuetask.FieldStatus:
		m.ResetStatus()
		return nil
	case queuetask.FieldPrompt:
		m.ResetPrompt()
		return nil
	case queuetask.FieldTaskType:
		m.ResetTaskType()
		return nil
	case queuetask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queuetask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case queuetask.FieldOutput:
		m.ResetOutput()
		return nil
	case queuetask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case queuetask.FieldClarification:
		m.ResetClarification()
		return nil
	case queuetask.FieldEvents:
		m.ResetEvents()
		return nil
	case queuetask.FieldAttempt:
		m.ResetAttempt()
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueTask edge %s", name)
}
