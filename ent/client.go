// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pm-runner/pmrunner/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/ent/queueevent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// QueueEvent is the client for interacting with the QueueEvent builders.
	QueueEvent *QueueEventClient
	// QueueTask is the client for interacting with the QueueTask builders.
	QueueTask *QueueTaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.QueueEvent = NewQueueEventClient(c.config)
	c.QueueTask = NewQueueTaskClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		QueueEvent: NewQueueEventClient(cfg),
		QueueTask:  NewQueueTaskClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		QueueEvent: NewQueueEventClient(cfg),
		QueueTask:  NewQueueTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		QueueEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.QueueEvent.Use(hooks...)
	c.QueueTask.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.QueueEvent.Intercept(interceptors...)
	c.QueueTask.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QueueEventMutation:
		return c.QueueEvent.mutate(ctx, m)
	case *QueueTaskMutation:
		return c.QueueTask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QueueEventClient is a client for the QueueEvent schema.
type QueueEventClient struct {
	config
}

// NewQueueEventClient returns a client for the QueueEvent from the given config.
func NewQueueEventClient(c config) *QueueEventClient {
	return &QueueEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queueevent.Hooks(f(g(h())))`.
func (c *QueueEventClient) Use(hooks ...Hook) {
	c.hooks.QueueEvent = append(c.hooks.QueueEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queueevent.Intercept(f(g(h())))`.
func (c *QueueEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueEvent = append(c.inters.QueueEvent, interceptors...)
}

// Create returns a builder for creating a QueueEvent entity.
func (c *QueueEventClient) Create() *QueueEventCreate {
	mutation := newQueueEventMutation(c.config, OpCreate)
	return &QueueEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueEvent entities.
func (c *QueueEventClient) CreateBulk(builders ...*QueueEventCreate) *QueueEventCreateBulk {
	return &QueueEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueEventClient) MapCreateBulk(slice any, setFunc func(*QueueEventCreate, int)) *QueueEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueEventCreateBulk{err: fmt.Errorf("calling to QueueEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueEvent.
func (c *QueueEventClient) Update() *QueueEventUpdate {
	mutation := newQueueEventMutation(c.config, OpUpdate)
	return &QueueEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueEventClient) UpdateOne(_m *QueueEvent) *QueueEventUpdateOne {
	mutation := newQueueEventMutation(c.config, OpUpdateOne, withQueueEvent(_m))
	return &QueueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueEventClient) UpdateOneID(id int) *QueueEventUpdateOne {
	mutation := newQueueEventMutation(c.config, OpUpdateOne, withQueueEventID(id))
	return &QueueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueEvent.
func (c *QueueEventClient) Delete() *QueueEventDelete {
	mutation := newQueueEventMutation(c.config, OpDelete)
	return &QueueEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueEventClient) DeleteOne(_m *QueueEvent) *QueueEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueEventClient) DeleteOneID(id int) *QueueEventDeleteOne {
	builder := c.Delete().Where(queueevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueEventDeleteOne{builder}
}

// Query returns a query builder for QueueEvent.
func (c *QueueEventClient) Query() *QueueEventQuery {
	return &QueueEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueEvent entity by its id.
func (c *QueueEventClient) Get(ctx context.Context, id int) (*QueueEvent, error) {
	return c.Query().Where(queueevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueEventClient) GetX(ctx context.Context, id int) *QueueEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueEventClient) Hooks() []Hook {
	return c.hooks.QueueEvent
}

// Interceptors returns the client interceptors.
func (c *QueueEventClient) Interceptors() []Interceptor {
	return c.inters.QueueEvent
}

func (c *QueueEventClient) mutate(ctx context.Context, m *QueueEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueEvent mutation op: %q", m.Op())
	}
}

// QueueTaskClient is a client for the QueueTask schema.
type QueueTaskClient struct {
	config
}

// NewQueueTaskClient returns a client for the QueueTask from the given config.
func NewQueueTaskClient(c config) *QueueTaskClient {
	return &QueueTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuetask.Hooks(f(g(h())))`.
func (c *QueueTaskClient) Use(hooks ...Hook) {
	c.hooks.QueueTask = append(c.hooks.QueueTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuetask.Intercept(f(g(h())))`.
func (c *QueueTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueTask = append(c.inters.QueueTask, interceptors...)
}

// Create returns a builder for creating a QueueTask entity.
func (c *QueueTaskClient) Create() *QueueTaskCreate {
	mutation := newQueueTaskMutation(c.config, OpCreate)
	return &QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueTask entities.
func (c *QueueTaskClient) CreateBulk(builders ...*QueueTaskCreate) *QueueTaskCreateBulk {
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueTaskClient) MapCreateBulk(slice any, setFunc func(*QueueTaskCreate, int)) *QueueTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueTaskCreateBulk{err: fmt.Errorf("calling to QueueTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueTask.
func (c *QueueTaskClient) Update() *QueueTaskUpdate {
	mutation := newQueueTaskMutation(c.config, OpUpdate)
	return &QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueTaskClient) UpdateOne(_m *QueueTask) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTask(_m))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueTaskClient) UpdateOneID(id string) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTaskID(id))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueTask.
func (c *QueueTaskClient) Delete() *QueueTaskDelete {
	mutation := newQueueTaskMutation(c.config, OpDelete)
	return &QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueTaskClient) DeleteOne(_m *QueueTask) *QueueTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueTaskClient) DeleteOneID(id string) *QueueTaskDeleteOne {
	builder := c.Delete().Where(queuetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueTaskDeleteOne{builder}
}

// Query returns a query builder for QueueTask.
func (c *QueueTaskClient) Query() *QueueTaskQuery {
	return &QueueTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueTask},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueTask entity by its id.
func (c *QueueTaskClient) Get(ctx context.Context, id string) (*QueueTask, error) {
	return c.Query().Where(queuetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueTaskClient) GetX(ctx context.Context, id string) *QueueTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueTaskClient) Hooks() []Hook {
	return c.hooks.QueueTask
}

// Interceptors returns the client interceptors.
func (c *QueueTaskClient) Interceptors() []Interceptor {
	return c.inters.QueueTask
}

func (c *QueueTaskClient) mutate(ctx context.Context, m *QueueTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueTask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		QueueEvent, QueueTask []ent.Hook
	}
	inters struct {
		QueueEvent, QueueTask []ent.Interceptor
	}
)
