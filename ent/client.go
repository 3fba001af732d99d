// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/lectio/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/llmrequestevent"
	"github.com/abhisek/lectio/ent/playbackevent"
	"github.com/abhisek/lectio/ent/remediationrecord"
	"github.com/abhisek/lectio/ent/reviewrecord"
	"github.com/abhisek/lectio/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LectureProgress is the client for interacting with the LectureProgress builders.
	LectureProgress *LectureProgressClient
	// PlaybackEvent is the client for interacting with the PlaybackEvent builders.
	PlaybackEvent *PlaybackEventClient
	// RemediationRecord is the client for interacting with the RemediationRecord builders.
	RemediationRecord *RemediationRecordClient
	// ReviewRecord is the client for interacting with the ReviewRecord builders.
	ReviewRecord *ReviewRecordClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LectureProgress = NewLectureProgressClient(c.config)
	c.PlaybackEvent = NewPlaybackEventClient(c.config)
	c.RemediationRecord = NewRemediationRecordClient(c.config)
	c.ReviewRecord = NewReviewRecordClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AttemptEvent:      NewAttemptEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		LectureProgress:   NewLectureProgressClient(cfg),
		PlaybackEvent:     NewPlaybackEventClient(cfg),
		RemediationRecord: NewRemediationRecordClient(cfg),
		ReviewRecord:      NewReviewRecordClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AttemptEvent:      NewAttemptEventClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		LectureProgress:   NewLectureProgressClient(cfg),
		PlaybackEvent:     NewPlaybackEventClient(cfg),
		RemediationRecord: NewRemediationRecordClient(cfg),
		ReviewRecord:      NewReviewRecordClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AttemptEvent, c.LLMRequestEvent, c.LectureProgress, c.PlaybackEvent,
		c.RemediationRecord, c.ReviewRecord, c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AttemptEvent, c.LLMRequestEvent, c.LectureProgress, c.PlaybackEvent,
		c.RemediationRecord, c.ReviewRecord, c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LectureProgressMutation:
		return c.LectureProgress.mutate(ctx, m)
	case *PlaybackEventMutation:
		return c.PlaybackEvent.mutate(ctx, m)
	case *RemediationRecordMutation:
		return c.RemediationRecord.mutate(ctx, m)
	case *ReviewRecordMutation:
		return c.ReviewRecord.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LectureProgressClient is a client for the LectureProgress schema.
type LectureProgressClient struct {
	config
}

// NewLectureProgressClient returns a client for the LectureProgress from the given config.
func NewLectureProgressClient(c config) *LectureProgressClient {
	return &LectureProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lectureprogress.Hooks(f(g(h())))`.
func (c *LectureProgressClient) Use(hooks ...Hook) {
	c.hooks.LectureProgress = append(c.hooks.LectureProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lectureprogress.Intercept(f(g(h())))`.
func (c *LectureProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LectureProgress = append(c.inters.LectureProgress, interceptors...)
}

// Create returns a builder for creating a LectureProgress entity.
func (c *LectureProgressClient) Create() *LectureProgressCreate {
	mutation := newLectureProgressMutation(c.config, OpCreate)
	return &LectureProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LectureProgress entities.
func (c *LectureProgressClient) CreateBulk(builders ...*LectureProgressCreate) *LectureProgressCreateBulk {
	return &LectureProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LectureProgressClient) MapCreateBulk(slice any, setFunc func(*LectureProgressCreate, int)) *LectureProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LectureProgressCreateBulk{err: fmt.Errorf("calling to LectureProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LectureProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LectureProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LectureProgress.
func (c *LectureProgressClient) Update() *LectureProgressUpdate {
	mutation := newLectureProgressMutation(c.config, OpUpdate)
	return &LectureProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LectureProgressClient) UpdateOne(_m *LectureProgress) *LectureProgressUpdateOne {
	mutation := newLectureProgressMutation(c.config, OpUpdateOne, withLectureProgress(_m))
	return &LectureProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LectureProgressClient) UpdateOneID(id int) *LectureProgressUpdateOne {
	mutation := newLectureProgressMutation(c.config, OpUpdateOne, withLectureProgressID(id))
	return &LectureProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LectureProgress.
func (c *LectureProgressClient) Delete() *LectureProgressDelete {
	mutation := newLectureProgressMutation(c.config, OpDelete)
	return &LectureProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LectureProgressClient) DeleteOne(_m *LectureProgress) *LectureProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LectureProgressClient) DeleteOneID(id int) *LectureProgressDeleteOne {
	builder := c.Delete().Where(lectureprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LectureProgressDeleteOne{builder}
}

// Query returns a query builder for LectureProgress.
func (c *LectureProgressClient) Query() *LectureProgressQuery {
	return &LectureProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLectureProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LectureProgress entity by its id.
func (c *LectureProgressClient) Get(ctx context.Context, id int) (*LectureProgress, error) {
	return c.Query().Where(lectureprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LectureProgressClient) GetX(ctx context.Context, id int) *LectureProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LectureProgressClient) Hooks() []Hook {
	return c.hooks.LectureProgress
}

// Interceptors returns the client interceptors.
func (c *LectureProgressClient) Interceptors() []Interceptor {
	return c.inters.LectureProgress
}

func (c *LectureProgressClient) mutate(ctx context.Context, m *LectureProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LectureProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LectureProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LectureProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LectureProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LectureProgress mutation op: %q", m.Op())
	}
}

// PlaybackEventClient is a client for the PlaybackEvent schema.
type PlaybackEventClient struct {
	config
}

// NewPlaybackEventClient returns a client for the PlaybackEvent from the given config.
func NewPlaybackEventClient(c config) *PlaybackEventClient {
	return &PlaybackEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playbackevent.Hooks(f(g(h())))`.
func (c *PlaybackEventClient) Use(hooks ...Hook) {
	c.hooks.PlaybackEvent = append(c.hooks.PlaybackEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playbackevent.Intercept(f(g(h())))`.
func (c *PlaybackEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlaybackEvent = append(c.inters.PlaybackEvent, interceptors...)
}

// Create returns a builder for creating a PlaybackEvent entity.
func (c *PlaybackEventClient) Create() *PlaybackEventCreate {
	mutation := newPlaybackEventMutation(c.config, OpCreate)
	return &PlaybackEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlaybackEvent entities.
func (c *PlaybackEventClient) CreateBulk(builders ...*PlaybackEventCreate) *PlaybackEventCreateBulk {
	return &PlaybackEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlaybackEventClient) MapCreateBulk(slice any, setFunc func(*PlaybackEventCreate, int)) *PlaybackEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlaybackEventCreateBulk{err: fmt.Errorf("calling to PlaybackEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlaybackEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlaybackEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlaybackEvent.
func (c *PlaybackEventClient) Update() *PlaybackEventUpdate {
	mutation := newPlaybackEventMutation(c.config, OpUpdate)
	return &PlaybackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlaybackEventClient) UpdateOne(_m *PlaybackEvent) *PlaybackEventUpdateOne {
	mutation := newPlaybackEventMutation(c.config, OpUpdateOne, withPlaybackEvent(_m))
	return &PlaybackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlaybackEventClient) UpdateOneID(id int) *PlaybackEventUpdateOne {
	mutation := newPlaybackEventMutation(c.config, OpUpdateOne, withPlaybackEventID(id))
	return &PlaybackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlaybackEvent.
func (c *PlaybackEventClient) Delete() *PlaybackEventDelete {
	mutation := newPlaybackEventMutation(c.config, OpDelete)
	return &PlaybackEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlaybackEventClient) DeleteOne(_m *PlaybackEvent) *PlaybackEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlaybackEventClient) DeleteOneID(id int) *PlaybackEventDeleteOne {
	builder := c.Delete().Where(playbackevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlaybackEventDeleteOne{builder}
}

// Query returns a query builder for PlaybackEvent.
func (c *PlaybackEventClient) Query() *PlaybackEventQuery {
	return &PlaybackEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlaybackEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PlaybackEvent entity by its id.
func (c *PlaybackEventClient) Get(ctx context.Context, id int) (*PlaybackEvent, error) {
	return c.Query().Where(playbackevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlaybackEventClient) GetX(ctx context.Context, id int) *PlaybackEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlaybackEventClient) Hooks() []Hook {
	return c.hooks.PlaybackEvent
}

// Interceptors returns the client interceptors.
func (c *PlaybackEventClient) Interceptors() []Interceptor {
	return c.inters.PlaybackEvent
}

func (c *PlaybackEventClient) mutate(ctx context.Context, m *PlaybackEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlaybackEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlaybackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlaybackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlaybackEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlaybackEvent mutation op: %q", m.Op())
	}
}

// RemediationRecordClient is a client for the RemediationRecord schema.
type RemediationRecordClient struct {
	config
}

// NewRemediationRecordClient returns a client for the RemediationRecord from the given config.
func NewRemediationRecordClient(c config) *RemediationRecordClient {
	return &RemediationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `remediationrecord.Hooks(f(g(h())))`.
func (c *RemediationRecordClient) Use(hooks ...Hook) {
	c.hooks.RemediationRecord = append(c.hooks.RemediationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `remediationrecord.Intercept(f(g(h())))`.
func (c *RemediationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.RemediationRecord = append(c.inters.RemediationRecord, interceptors...)
}

// Create returns a builder for creating a RemediationRecord entity.
func (c *RemediationRecordClient) Create() *RemediationRecordCreate {
	mutation := newRemediationRecordMutation(c.config, OpCreate)
	return &RemediationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RemediationRecord entities.
func (c *RemediationRecordClient) CreateBulk(builders ...*RemediationRecordCreate) *RemediationRecordCreateBulk {
	return &RemediationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RemediationRecordClient) MapCreateBulk(slice any, setFunc func(*RemediationRecordCreate, int)) *RemediationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RemediationRecordCreateBulk{err: fmt.Errorf("calling to RemediationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RemediationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RemediationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RemediationRecord.
func (c *RemediationRecordClient) Update() *RemediationRecordUpdate {
	mutation := newRemediationRecordMutation(c.config, OpUpdate)
	return &RemediationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RemediationRecordClient) UpdateOne(_m *RemediationRecord) *RemediationRecordUpdateOne {
	mutation := newRemediationRecordMutation(c.config, OpUpdateOne, withRemediationRecord(_m))
	return &RemediationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RemediationRecordClient) UpdateOneID(id int) *RemediationRecordUpdateOne {
	mutation := newRemediationRecordMutation(c.config, OpUpdateOne, withRemediationRecordID(id))
	return &RemediationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RemediationRecord.
func (c *RemediationRecordClient) Delete() *RemediationRecordDelete {
	mutation := newRemediationRecordMutation(c.config, OpDelete)
	return &RemediationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RemediationRecordClient) DeleteOne(_m *RemediationRecord) *RemediationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RemediationRecordClient) DeleteOneID(id int) *RemediationRecordDeleteOne {
	builder := c.Delete().Where(remediationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RemediationRecordDeleteOne{builder}
}

// Query returns a query builder for RemediationRecord.
func (c *RemediationRecordClient) Query() *RemediationRecordQuery {
	return &RemediationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRemediationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a RemediationRecord entity by its id.
func (c *RemediationRecordClient) Get(ctx context.Context, id int) (*RemediationRecord, error) {
	return c.Query().Where(remediationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RemediationRecordClient) GetX(ctx context.Context, id int) *RemediationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RemediationRecordClient) Hooks() []Hook {
	return c.hooks.RemediationRecord
}

// Interceptors returns the client interceptors.
func (c *RemediationRecordClient) Interceptors() []Interceptor {
	return c.inters.RemediationRecord
}

func (c *RemediationRecordClient) mutate(ctx context.Context, m *RemediationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RemediationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RemediationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RemediationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RemediationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RemediationRecord mutation op: %q", m.Op())
	}
}

// ReviewRecordClient is a client for the ReviewRecord schema.
type ReviewRecordClient struct {
	config
}

// NewReviewRecordClient returns a client for the ReviewRecord from the given config.
func NewReviewRecordClient(c config) *ReviewRecordClient {
	return &ReviewRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewrecord.Hooks(f(g(h())))`.
func (c *ReviewRecordClient) Use(hooks ...Hook) {
	c.hooks.ReviewRecord = append(c.hooks.ReviewRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewrecord.Intercept(f(g(h())))`.
func (c *ReviewRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewRecord = append(c.inters.ReviewRecord, interceptors...)
}

// Create returns a builder for creating a ReviewRecord entity.
func (c *ReviewRecordClient) Create() *ReviewRecordCreate {
	mutation := newReviewRecordMutation(c.config, OpCreate)
	return &ReviewRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewRecord entities.
func (c *ReviewRecordClient) CreateBulk(builders ...*ReviewRecordCreate) *ReviewRecordCreateBulk {
	return &ReviewRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewRecordClient) MapCreateBulk(slice any, setFunc func(*ReviewRecordCreate, int)) *ReviewRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewRecordCreateBulk{err: fmt.Errorf("calling to ReviewRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewRecord.
func (c *ReviewRecordClient) Update() *ReviewRecordUpdate {
	mutation := newReviewRecordMutation(c.config, OpUpdate)
	return &ReviewRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewRecordClient) UpdateOne(_m *ReviewRecord) *ReviewRecordUpdateOne {
	mutation := newReviewRecordMutation(c.config, OpUpdateOne, withReviewRecord(_m))
	return &ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewRecordClient) UpdateOneID(id int) *ReviewRecordUpdateOne {
	mutation := newReviewRecordMutation(c.config, OpUpdateOne, withReviewRecordID(id))
	return &ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewRecord.
func (c *ReviewRecordClient) Delete() *ReviewRecordDelete {
	mutation := newReviewRecordMutation(c.config, OpDelete)
	return &ReviewRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewRecordClient) DeleteOne(_m *ReviewRecord) *ReviewRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewRecordClient) DeleteOneID(id int) *ReviewRecordDeleteOne {
	builder := c.Delete().Where(reviewrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewRecordDeleteOne{builder}
}

// Query returns a query builder for ReviewRecord.
func (c *ReviewRecordClient) Query() *ReviewRecordQuery {
	return &ReviewRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewRecord entity by its id.
func (c *ReviewRecordClient) Get(ctx context.Context, id int) (*ReviewRecord, error) {
	return c.Query().Where(reviewrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewRecordClient) GetX(ctx context.Context, id int) *ReviewRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewRecordClient) Hooks() []Hook {
	return c.hooks.ReviewRecord
}

// Interceptors returns the client interceptors.
func (c *ReviewRecordClient) Interceptors() []Interceptor {
	return c.inters.ReviewRecord
}

func (c *ReviewRecordClient) mutate(ctx context.Context, m *ReviewRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewRecord mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, LLMRequestEvent, LectureProgress, PlaybackEvent,
		RemediationRecord, ReviewRecord, SessionEvent []ent.Hook
	}
	inters struct {
		AttemptEvent, LLMRequestEvent, LectureProgress, PlaybackEvent,
		RemediationRecord, ReviewRecord, SessionEvent []ent.Interceptor
	}
)
