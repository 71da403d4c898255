// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/lumenlabs/lumen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lumenlabs/lumen/ent/article"
	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/ent/generationrun"
	"github.com/lumenlabs/lumen/ent/intent"
	"github.com/lumenlabs/lumen/ent/lease"
	"github.com/lumenlabs/lumen/ent/llmfailure"
	"github.com/lumenlabs/lumen/ent/mailattachment"
	"github.com/lumenlabs/lumen/ent/mailreply"
	"github.com/lumenlabs/lumen/ent/mailthread"
	"github.com/lumenlabs/lumen/ent/orderevent"
	"github.com/lumenlabs/lumen/ent/orderlog"
	"github.com/lumenlabs/lumen/ent/runtimesetting"
	"github.com/lumenlabs/lumen/ent/searchquery"
	"github.com/lumenlabs/lumen/ent/spellentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Article is the client for interacting with the Article builders.
	Article *ArticleClient
	// GenerationOrder is the client for interacting with the GenerationOrder builders.
	GenerationOrder *GenerationOrderClient
	// GenerationRun is the client for interacting with the GenerationRun builders.
	GenerationRun *GenerationRunClient
	// Intent is the client for interacting with the Intent builders.
	Intent *IntentClient
	// LLMFailure is the client for interacting with the LLMFailure builders.
	LLMFailure *LLMFailureClient
	// Lease is the client for interacting with the Lease builders.
	Lease *LeaseClient
	// MailAttachment is the client for interacting with the MailAttachment builders.
	MailAttachment *MailAttachmentClient
	// MailReply is the client for interacting with the MailReply builders.
	MailReply *MailReplyClient
	// MailThread is the client for interacting with the MailThread builders.
	MailThread *MailThreadClient
	// OrderEvent is the client for interacting with the OrderEvent builders.
	OrderEvent *OrderEventClient
	// OrderLog is the client for interacting with the OrderLog builders.
	OrderLog *OrderLogClient
	// RuntimeSetting is the client for interacting with the RuntimeSetting builders.
	RuntimeSetting *RuntimeSettingClient
	// SearchQuery is the client for interacting with the SearchQuery builders.
	SearchQuery *SearchQueryClient
	// SpellEntry is the client for interacting with the SpellEntry builders.
	SpellEntry *SpellEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Article = NewArticleClient(c.config)
	c.GenerationOrder = NewGenerationOrderClient(c.config)
	c.GenerationRun = NewGenerationRunClient(c.config)
	c.Intent = NewIntentClient(c.config)
	c.LLMFailure = NewLLMFailureClient(c.config)
	c.Lease = NewLeaseClient(c.config)
	c.MailAttachment = NewMailAttachmentClient(c.config)
	c.MailReply = NewMailReplyClient(c.config)
	c.MailThread = NewMailThreadClient(c.config)
	c.OrderEvent = NewOrderEventClient(c.config)
	c.OrderLog = NewOrderLogClient(c.config)
	c.RuntimeSetting = NewRuntimeSettingClient(c.config)
	c.SearchQuery = NewSearchQueryClient(c.config)
	c.SpellEntry = NewSpellEntryClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Article:         NewArticleClient(cfg),
		GenerationOrder: NewGenerationOrderClient(cfg),
		GenerationRun:   NewGenerationRunClient(cfg),
		Intent:          NewIntentClient(cfg),
		LLMFailure:      NewLLMFailureClient(cfg),
		Lease:           NewLeaseClient(cfg),
		MailAttachment:  NewMailAttachmentClient(cfg),
		MailReply:       NewMailReplyClient(cfg),
		MailThread:      NewMailThreadClient(cfg),
		OrderEvent:      NewOrderEventClient(cfg),
		OrderLog:        NewOrderLogClient(cfg),
		RuntimeSetting:  NewRuntimeSettingClient(cfg),
		SearchQuery:     NewSearchQueryClient(cfg),
		SpellEntry:      NewSpellEntryClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Article:         NewArticleClient(cfg),
		GenerationOrder: NewGenerationOrderClient(cfg),
		GenerationRun:   NewGenerationRunClient(cfg),
		Intent:          NewIntentClient(cfg),
		LLMFailure:      NewLLMFailureClient(cfg),
		Lease:           NewLeaseClient(cfg),
		MailAttachment:  NewMailAttachmentClient(cfg),
		MailReply:       NewMailReplyClient(cfg),
		MailThread:      NewMailThreadClient(cfg),
		OrderEvent:      NewOrderEventClient(cfg),
		OrderLog:        NewOrderLogClient(cfg),
		RuntimeSetting:  NewRuntimeSettingClient(cfg),
		SearchQuery:     NewSearchQueryClient(cfg),
		SpellEntry:      NewSpellEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Article.
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
		c.Article, c.GenerationOrder, c.GenerationRun, c.Intent, c.LLMFailure, c.Lease,
		c.MailAttachment, c.MailReply, c.MailThread, c.OrderEvent, c.OrderLog,
		c.RuntimeSetting, c.SearchQuery, c.SpellEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Article, c.GenerationOrder, c.GenerationRun, c.Intent, c.LLMFailure, c.Lease,
		c.MailAttachment, c.MailReply, c.MailThread, c.OrderEvent, c.OrderLog,
		c.RuntimeSetting, c.SearchQuery, c.SpellEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleMutation:
		return c.Article.mutate(ctx, m)
	case *GenerationOrderMutation:
		return c.GenerationOrder.mutate(ctx, m)
	case *GenerationRunMutation:
		return c.GenerationRun.mutate(ctx, m)
	case *IntentMutation:
		return c.Intent.mutate(ctx, m)
	case *LLMFailureMutation:
		return c.LLMFailure.mutate(ctx, m)
	case *LeaseMutation:
		return c.Lease.mutate(ctx, m)
	case *MailAttachmentMutation:
		return c.MailAttachment.mutate(ctx, m)
	case *MailReplyMutation:
		return c.MailReply.mutate(ctx, m)
	case *MailThreadMutation:
		return c.MailThread.mutate(ctx, m)
	case *OrderEventMutation:
		return c.OrderEvent.mutate(ctx, m)
	case *OrderLogMutation:
		return c.OrderLog.mutate(ctx, m)
	case *RuntimeSettingMutation:
		return c.RuntimeSetting.mutate(ctx, m)
	case *SearchQueryMutation:
		return c.SearchQuery.mutate(ctx, m)
	case *SpellEntryMutation:
		return c.SpellEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleClient is a client for the Article schema.
type ArticleClient struct {
	config
}

// NewArticleClient returns a client for the Article from the given config.
func NewArticleClient(c config) *ArticleClient {
	return &ArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `article.Hooks(f(g(h())))`.
func (c *ArticleClient) Use(hooks ...Hook) {
	c.hooks.Article = append(c.hooks.Article, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `article.Intercept(f(g(h())))`.
func (c *ArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Article = append(c.inters.Article, interceptors...)
}

// Create returns a builder for creating a Article entity.
func (c *ArticleClient) Create() *ArticleCreate {
	mutation := newArticleMutation(c.config, OpCreate)
	return &ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Article entities.
func (c *ArticleClient) CreateBulk(builders ...*ArticleCreate) *ArticleCreateBulk {
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleClient) MapCreateBulk(slice any, setFunc func(*ArticleCreate, int)) *ArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleCreateBulk{err: fmt.Errorf("calling to ArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Article.
func (c *ArticleClient) Update() *ArticleUpdate {
	mutation := newArticleMutation(c.config, OpUpdate)
	return &ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleClient) UpdateOne(_m *Article) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticle(_m))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleClient) UpdateOneID(id int) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticleID(id))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Article.
func (c *ArticleClient) Delete() *ArticleDelete {
	mutation := newArticleMutation(c.config, OpDelete)
	return &ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleClient) DeleteOne(_m *Article) *ArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleClient) DeleteOneID(id int) *ArticleDeleteOne {
	builder := c.Delete().Where(article.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleDeleteOne{builder}
}

// Query returns a query builder for Article.
func (c *ArticleClient) Query() *ArticleQuery {
	return &ArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a Article entity by its id.
func (c *ArticleClient) Get(ctx context.Context, id int) (*Article, error) {
	return c.Query().Where(article.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleClient) GetX(ctx context.Context, id int) *Article {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a Article.
func (c *ArticleClient) QueryIntent(_m *Article) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(article.Table, article.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, article.IntentTable, article.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleClient) Hooks() []Hook {
	return c.hooks.Article
}

// Interceptors returns the client interceptors.
func (c *ArticleClient) Interceptors() []Interceptor {
	return c.inters.Article
}

func (c *ArticleClient) mutate(ctx context.Context, m *ArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Article mutation op: %q", m.Op())
	}
}

// GenerationOrderClient is a client for the GenerationOrder schema.
type GenerationOrderClient struct {
	config
}

// NewGenerationOrderClient returns a client for the GenerationOrder from the given config.
func NewGenerationOrderClient(c config) *GenerationOrderClient {
	return &GenerationOrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationorder.Hooks(f(g(h())))`.
func (c *GenerationOrderClient) Use(hooks ...Hook) {
	c.hooks.GenerationOrder = append(c.hooks.GenerationOrder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationorder.Intercept(f(g(h())))`.
func (c *GenerationOrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationOrder = append(c.inters.GenerationOrder, interceptors...)
}

// Create returns a builder for creating a GenerationOrder entity.
func (c *GenerationOrderClient) Create() *GenerationOrderCreate {
	mutation := newGenerationOrderMutation(c.config, OpCreate)
	return &GenerationOrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationOrder entities.
func (c *GenerationOrderClient) CreateBulk(builders ...*GenerationOrderCreate) *GenerationOrderCreateBulk {
	return &GenerationOrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationOrderClient) MapCreateBulk(slice any, setFunc func(*GenerationOrderCreate, int)) *GenerationOrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationOrderCreateBulk{err: fmt.Errorf("calling to GenerationOrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationOrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationOrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationOrder.
func (c *GenerationOrderClient) Update() *GenerationOrderUpdate {
	mutation := newGenerationOrderMutation(c.config, OpUpdate)
	return &GenerationOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationOrderClient) UpdateOne(_m *GenerationOrder) *GenerationOrderUpdateOne {
	mutation := newGenerationOrderMutation(c.config, OpUpdateOne, withGenerationOrder(_m))
	return &GenerationOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationOrderClient) UpdateOneID(id int) *GenerationOrderUpdateOne {
	mutation := newGenerationOrderMutation(c.config, OpUpdateOne, withGenerationOrderID(id))
	return &GenerationOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationOrder.
func (c *GenerationOrderClient) Delete() *GenerationOrderDelete {
	mutation := newGenerationOrderMutation(c.config, OpDelete)
	return &GenerationOrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationOrderClient) DeleteOne(_m *GenerationOrder) *GenerationOrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationOrderClient) DeleteOneID(id int) *GenerationOrderDeleteOne {
	builder := c.Delete().Where(generationorder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationOrderDeleteOne{builder}
}

// Query returns a query builder for GenerationOrder.
func (c *GenerationOrderClient) Query() *GenerationOrderQuery {
	return &GenerationOrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationOrder entity by its id.
func (c *GenerationOrderClient) Get(ctx context.Context, id int) (*GenerationOrder, error) {
	return c.Query().Where(generationorder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationOrderClient) GetX(ctx context.Context, id int) *GenerationOrder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationOrderClient) Hooks() []Hook {
	return c.hooks.GenerationOrder
}

// Interceptors returns the client interceptors.
func (c *GenerationOrderClient) Interceptors() []Interceptor {
	return c.inters.GenerationOrder
}

func (c *GenerationOrderClient) mutate(ctx context.Context, m *GenerationOrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationOrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationOrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationOrder mutation op: %q", m.Op())
	}
}

// GenerationRunClient is a client for the GenerationRun schema.
type GenerationRunClient struct {
	config
}

// NewGenerationRunClient returns a client for the GenerationRun from the given config.
func NewGenerationRunClient(c config) *GenerationRunClient {
	return &GenerationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationrun.Hooks(f(g(h())))`.
func (c *GenerationRunClient) Use(hooks ...Hook) {
	c.hooks.GenerationRun = append(c.hooks.GenerationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationrun.Intercept(f(g(h())))`.
func (c *GenerationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationRun = append(c.inters.GenerationRun, interceptors...)
}

// Create returns a builder for creating a GenerationRun entity.
func (c *GenerationRunClient) Create() *GenerationRunCreate {
	mutation := newGenerationRunMutation(c.config, OpCreate)
	return &GenerationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationRun entities.
func (c *GenerationRunClient) CreateBulk(builders ...*GenerationRunCreate) *GenerationRunCreateBulk {
	return &GenerationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationRunClient) MapCreateBulk(slice any, setFunc func(*GenerationRunCreate, int)) *GenerationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationRunCreateBulk{err: fmt.Errorf("calling to GenerationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationRun.
func (c *GenerationRunClient) Update() *GenerationRunUpdate {
	mutation := newGenerationRunMutation(c.config, OpUpdate)
	return &GenerationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationRunClient) UpdateOne(_m *GenerationRun) *GenerationRunUpdateOne {
	mutation := newGenerationRunMutation(c.config, OpUpdateOne, withGenerationRun(_m))
	return &GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationRunClient) UpdateOneID(id int) *GenerationRunUpdateOne {
	mutation := newGenerationRunMutation(c.config, OpUpdateOne, withGenerationRunID(id))
	return &GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationRun.
func (c *GenerationRunClient) Delete() *GenerationRunDelete {
	mutation := newGenerationRunMutation(c.config, OpDelete)
	return &GenerationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationRunClient) DeleteOne(_m *GenerationRun) *GenerationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationRunClient) DeleteOneID(id int) *GenerationRunDeleteOne {
	builder := c.Delete().Where(generationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationRunDeleteOne{builder}
}

// Query returns a query builder for GenerationRun.
func (c *GenerationRunClient) Query() *GenerationRunQuery {
	return &GenerationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationRun entity by its id.
func (c *GenerationRunClient) Get(ctx context.Context, id int) (*GenerationRun, error) {
	return c.Query().Where(generationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationRunClient) GetX(ctx context.Context, id int) *GenerationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationRunClient) Hooks() []Hook {
	return c.hooks.GenerationRun
}

// Interceptors returns the client interceptors.
func (c *GenerationRunClient) Interceptors() []Interceptor {
	return c.inters.GenerationRun
}

func (c *GenerationRunClient) mutate(ctx context.Context, m *GenerationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationRun mutation op: %q", m.Op())
	}
}

// IntentClient is a client for the Intent schema.
type IntentClient struct {
	config
}

// NewIntentClient returns a client for the Intent from the given config.
func NewIntentClient(c config) *IntentClient {
	return &IntentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intent.Hooks(f(g(h())))`.
func (c *IntentClient) Use(hooks ...Hook) {
	c.hooks.Intent = append(c.hooks.Intent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intent.Intercept(f(g(h())))`.
func (c *IntentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Intent = append(c.inters.Intent, interceptors...)
}

// Create returns a builder for creating a Intent entity.
func (c *IntentClient) Create() *IntentCreate {
	mutation := newIntentMutation(c.config, OpCreate)
	return &IntentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Intent entities.
func (c *IntentClient) CreateBulk(builders ...*IntentCreate) *IntentCreateBulk {
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntentClient) MapCreateBulk(slice any, setFunc func(*IntentCreate, int)) *IntentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntentCreateBulk{err: fmt.Errorf("calling to IntentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Intent.
func (c *IntentClient) Update() *IntentUpdate {
	mutation := newIntentMutation(c.config, OpUpdate)
	return &IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntentClient) UpdateOne(_m *Intent) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntent(_m))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntentClient) UpdateOneID(id int) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntentID(id))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Intent.
func (c *IntentClient) Delete() *IntentDelete {
	mutation := newIntentMutation(c.config, OpDelete)
	return &IntentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntentClient) DeleteOne(_m *Intent) *IntentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntentClient) DeleteOneID(id int) *IntentDeleteOne {
	builder := c.Delete().Where(intent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntentDeleteOne{builder}
}

// Query returns a query builder for Intent.
func (c *IntentClient) Query() *IntentQuery {
	return &IntentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntent},
		inters: c.Interceptors(),
	}
}

// Get returns a Intent entity by its id.
func (c *IntentClient) Get(ctx context.Context, id int) (*Intent, error) {
	return c.Query().Where(intent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntentClient) GetX(ctx context.Context, id int) *Intent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQueries queries the queries edge of a Intent.
func (c *IntentClient) QueryQueries(_m *Intent) *SearchQueryQuery {
	query := (&SearchQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(searchquery.Table, searchquery.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, intent.QueriesTable, intent.QueriesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArticles queries the articles edge of a Intent.
func (c *IntentClient) QueryArticles(_m *Intent) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.ArticlesTable, intent.ArticlesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IntentClient) Hooks() []Hook {
	return c.hooks.Intent
}

// Interceptors returns the client interceptors.
func (c *IntentClient) Interceptors() []Interceptor {
	return c.inters.Intent
}

func (c *IntentClient) mutate(ctx context.Context, m *IntentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Intent mutation op: %q", m.Op())
	}
}

// LLMFailureClient is a client for the LLMFailure schema.
type LLMFailureClient struct {
	config
}

// NewLLMFailureClient returns a client for the LLMFailure from the given config.
func NewLLMFailureClient(c config) *LLMFailureClient {
	return &LLMFailureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmfailure.Hooks(f(g(h())))`.
func (c *LLMFailureClient) Use(hooks ...Hook) {
	c.hooks.LLMFailure = append(c.hooks.LLMFailure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmfailure.Intercept(f(g(h())))`.
func (c *LLMFailureClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMFailure = append(c.inters.LLMFailure, interceptors...)
}

// Create returns a builder for creating a LLMFailure entity.
func (c *LLMFailureClient) Create() *LLMFailureCreate {
	mutation := newLLMFailureMutation(c.config, OpCreate)
	return &LLMFailureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMFailure entities.
func (c *LLMFailureClient) CreateBulk(builders ...*LLMFailureCreate) *LLMFailureCreateBulk {
	return &LLMFailureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMFailureClient) MapCreateBulk(slice any, setFunc func(*LLMFailureCreate, int)) *LLMFailureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMFailureCreateBulk{err: fmt.Errorf("calling to LLMFailureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMFailureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMFailureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMFailure.
func (c *LLMFailureClient) Update() *LLMFailureUpdate {
	mutation := newLLMFailureMutation(c.config, OpUpdate)
	return &LLMFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMFailureClient) UpdateOne(_m *LLMFailure) *LLMFailureUpdateOne {
	mutation := newLLMFailureMutation(c.config, OpUpdateOne, withLLMFailure(_m))
	return &LLMFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMFailureClient) UpdateOneID(id int) *LLMFailureUpdateOne {
	mutation := newLLMFailureMutation(c.config, OpUpdateOne, withLLMFailureID(id))
	return &LLMFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMFailure.
func (c *LLMFailureClient) Delete() *LLMFailureDelete {
	mutation := newLLMFailureMutation(c.config, OpDelete)
	return &LLMFailureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMFailureClient) DeleteOne(_m *LLMFailure) *LLMFailureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMFailureClient) DeleteOneID(id int) *LLMFailureDeleteOne {
	builder := c.Delete().Where(llmfailure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMFailureDeleteOne{builder}
}

// Query returns a query builder for LLMFailure.
func (c *LLMFailureClient) Query() *LLMFailureQuery {
	return &LLMFailureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMFailure},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMFailure entity by its id.
func (c *LLMFailureClient) Get(ctx context.Context, id int) (*LLMFailure, error) {
	return c.Query().Where(llmfailure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMFailureClient) GetX(ctx context.Context, id int) *LLMFailure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMFailureClient) Hooks() []Hook {
	return c.hooks.LLMFailure
}

// Interceptors returns the client interceptors.
func (c *LLMFailureClient) Interceptors() []Interceptor {
	return c.inters.LLMFailure
}

func (c *LLMFailureClient) mutate(ctx context.Context, m *LLMFailureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMFailureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMFailureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMFailure mutation op: %q", m.Op())
	}
}

// LeaseClient is a client for the Lease schema.
type LeaseClient struct {
	config
}

// NewLeaseClient returns a client for the Lease from the given config.
func NewLeaseClient(c config) *LeaseClient {
	return &LeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lease.Hooks(f(g(h())))`.
func (c *LeaseClient) Use(hooks ...Hook) {
	c.hooks.Lease = append(c.hooks.Lease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lease.Intercept(f(g(h())))`.
func (c *LeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lease = append(c.inters.Lease, interceptors...)
}

// Create returns a builder for creating a Lease entity.
func (c *LeaseClient) Create() *LeaseCreate {
	mutation := newLeaseMutation(c.config, OpCreate)
	return &LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lease entities.
func (c *LeaseClient) CreateBulk(builders ...*LeaseCreate) *LeaseCreateBulk {
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseClient) MapCreateBulk(slice any, setFunc func(*LeaseCreate, int)) *LeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseCreateBulk{err: fmt.Errorf("calling to LeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lease.
func (c *LeaseClient) Update() *LeaseUpdate {
	mutation := newLeaseMutation(c.config, OpUpdate)
	return &LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseClient) UpdateOne(_m *Lease) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLease(_m))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseClient) UpdateOneID(id int) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLeaseID(id))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lease.
func (c *LeaseClient) Delete() *LeaseDelete {
	mutation := newLeaseMutation(c.config, OpDelete)
	return &LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseClient) DeleteOne(_m *Lease) *LeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseClient) DeleteOneID(id int) *LeaseDeleteOne {
	builder := c.Delete().Where(lease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseDeleteOne{builder}
}

// Query returns a query builder for Lease.
func (c *LeaseClient) Query() *LeaseQuery {
	return &LeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLease},
		inters: c.Interceptors(),
	}
}

// Get returns a Lease entity by its id.
func (c *LeaseClient) Get(ctx context.Context, id int) (*Lease, error) {
	return c.Query().Where(lease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseClient) GetX(ctx context.Context, id int) *Lease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaseClient) Hooks() []Hook {
	return c.hooks.Lease
}

// Interceptors returns the client interceptors.
func (c *LeaseClient) Interceptors() []Interceptor {
	return c.inters.Lease
}

func (c *LeaseClient) mutate(ctx context.Context, m *LeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lease mutation op: %q", m.Op())
	}
}

// MailAttachmentClient is a client for the MailAttachment schema.
type MailAttachmentClient struct {
	config
}

// NewMailAttachmentClient returns a client for the MailAttachment from the given config.
func NewMailAttachmentClient(c config) *MailAttachmentClient {
	return &MailAttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mailattachment.Hooks(f(g(h())))`.
func (c *MailAttachmentClient) Use(hooks ...Hook) {
	c.hooks.MailAttachment = append(c.hooks.MailAttachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mailattachment.Intercept(f(g(h())))`.
func (c *MailAttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.MailAttachment = append(c.inters.MailAttachment, interceptors...)
}

// Create returns a builder for creating a MailAttachment entity.
func (c *MailAttachmentClient) Create() *MailAttachmentCreate {
	mutation := newMailAttachmentMutation(c.config, OpCreate)
	return &MailAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MailAttachment entities.
func (c *MailAttachmentClient) CreateBulk(builders ...*MailAttachmentCreate) *MailAttachmentCreateBulk {
	return &MailAttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MailAttachmentClient) MapCreateBulk(slice any, setFunc func(*MailAttachmentCreate, int)) *MailAttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MailAttachmentCreateBulk{err: fmt.Errorf("calling to MailAttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MailAttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MailAttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MailAttachment.
func (c *MailAttachmentClient) Update() *MailAttachmentUpdate {
	mutation := newMailAttachmentMutation(c.config, OpUpdate)
	return &MailAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MailAttachmentClient) UpdateOne(_m *MailAttachment) *MailAttachmentUpdateOne {
	mutation := newMailAttachmentMutation(c.config, OpUpdateOne, withMailAttachment(_m))
	return &MailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MailAttachmentClient) UpdateOneID(id int) *MailAttachmentUpdateOne {
	mutation := newMailAttachmentMutation(c.config, OpUpdateOne, withMailAttachmentID(id))
	return &MailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MailAttachment.
func (c *MailAttachmentClient) Delete() *MailAttachmentDelete {
	mutation := newMailAttachmentMutation(c.config, OpDelete)
	return &MailAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MailAttachmentClient) DeleteOne(_m *MailAttachment) *MailAttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MailAttachmentClient) DeleteOneID(id int) *MailAttachmentDeleteOne {
	builder := c.Delete().Where(mailattachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MailAttachmentDeleteOne{builder}
}

// Query returns a query builder for MailAttachment.
func (c *MailAttachmentClient) Query() *MailAttachmentQuery {
	return &MailAttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMailAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a MailAttachment entity by its id.
func (c *MailAttachmentClient) Get(ctx context.Context, id int) (*MailAttachment, error) {
	return c.Query().Where(mailattachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MailAttachmentClient) GetX(ctx context.Context, id int) *MailAttachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReply queries the reply edge of a MailAttachment.
func (c *MailAttachmentClient) QueryReply(_m *MailAttachment) *MailReplyQuery {
	query := (&MailReplyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mailattachment.Table, mailattachment.FieldID, id),
			sqlgraph.To(mailreply.Table, mailreply.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mailattachment.ReplyTable, mailattachment.ReplyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MailAttachmentClient) Hooks() []Hook {
	return c.hooks.MailAttachment
}

// Interceptors returns the client interceptors.
func (c *MailAttachmentClient) Interceptors() []Interceptor {
	return c.inters.MailAttachment
}

func (c *MailAttachmentClient) mutate(ctx context.Context, m *MailAttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MailAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MailAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MailAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MailAttachment mutation op: %q", m.Op())
	}
}

// MailReplyClient is a client for the MailReply schema.
type MailReplyClient struct {
	config
}

// NewMailReplyClient returns a client for the MailReply from the given config.
func NewMailReplyClient(c config) *MailReplyClient {
	return &MailReplyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mailreply.Hooks(f(g(h())))`.
func (c *MailReplyClient) Use(hooks ...Hook) {
	c.hooks.MailReply = append(c.hooks.MailReply, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mailreply.Intercept(f(g(h())))`.
func (c *MailReplyClient) Intercept(interceptors ...Interceptor) {
	c.inters.MailReply = append(c.inters.MailReply, interceptors...)
}

// Create returns a builder for creating a MailReply entity.
func (c *MailReplyClient) Create() *MailReplyCreate {
	mutation := newMailReplyMutation(c.config, OpCreate)
	return &MailReplyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MailReply entities.
func (c *MailReplyClient) CreateBulk(builders ...*MailReplyCreate) *MailReplyCreateBulk {
	return &MailReplyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MailReplyClient) MapCreateBulk(slice any, setFunc func(*MailReplyCreate, int)) *MailReplyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MailReplyCreateBulk{err: fmt.Errorf("calling to MailReplyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MailReplyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MailReplyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MailReply.
func (c *MailReplyClient) Update() *MailReplyUpdate {
	mutation := newMailReplyMutation(c.config, OpUpdate)
	return &MailReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MailReplyClient) UpdateOne(_m *MailReply) *MailReplyUpdateOne {
	mutation := newMailReplyMutation(c.config, OpUpdateOne, withMailReply(_m))
	return &MailReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MailReplyClient) UpdateOneID(id int) *MailReplyUpdateOne {
	mutation := newMailReplyMutation(c.config, OpUpdateOne, withMailReplyID(id))
	return &MailReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MailReply.
func (c *MailReplyClient) Delete() *MailReplyDelete {
	mutation := newMailReplyMutation(c.config, OpDelete)
	return &MailReplyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MailReplyClient) DeleteOne(_m *MailReply) *MailReplyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MailReplyClient) DeleteOneID(id int) *MailReplyDeleteOne {
	builder := c.Delete().Where(mailreply.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MailReplyDeleteOne{builder}
}

// Query returns a query builder for MailReply.
func (c *MailReplyClient) Query() *MailReplyQuery {
	return &MailReplyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMailReply},
		inters: c.Interceptors(),
	}
}

// Get returns a MailReply entity by its id.
func (c *MailReplyClient) Get(ctx context.Context, id int) (*MailReply, error) {
	return c.Query().Where(mailreply.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MailReplyClient) GetX(ctx context.Context, id int) *MailReply {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a MailReply.
func (c *MailReplyClient) QueryThread(_m *MailReply) *MailThreadQuery {
	query := (&MailThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mailreply.Table, mailreply.FieldID, id),
			sqlgraph.To(mailthread.Table, mailthread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mailreply.ThreadTable, mailreply.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a MailReply.
func (c *MailReplyClient) QueryAttachments(_m *MailReply) *MailAttachmentQuery {
	query := (&MailAttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mailreply.Table, mailreply.FieldID, id),
			sqlgraph.To(mailattachment.Table, mailattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mailreply.AttachmentsTable, mailreply.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MailReplyClient) Hooks() []Hook {
	return c.hooks.MailReply
}

// Interceptors returns the client interceptors.
func (c *MailReplyClient) Interceptors() []Interceptor {
	return c.inters.MailReply
}

func (c *MailReplyClient) mutate(ctx context.Context, m *MailReplyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MailReplyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MailReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MailReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MailReplyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MailReply mutation op: %q", m.Op())
	}
}

// MailThreadClient is a client for the MailThread schema.
type MailThreadClient struct {
	config
}

// NewMailThreadClient returns a client for the MailThread from the given config.
func NewMailThreadClient(c config) *MailThreadClient {
	return &MailThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mailthread.Hooks(f(g(h())))`.
func (c *MailThreadClient) Use(hooks ...Hook) {
	c.hooks.MailThread = append(c.hooks.MailThread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mailthread.Intercept(f(g(h())))`.
func (c *MailThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.MailThread = append(c.inters.MailThread, interceptors...)
}

// Create returns a builder for creating a MailThread entity.
func (c *MailThreadClient) Create() *MailThreadCreate {
	mutation := newMailThreadMutation(c.config, OpCreate)
	return &MailThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MailThread entities.
func (c *MailThreadClient) CreateBulk(builders ...*MailThreadCreate) *MailThreadCreateBulk {
	return &MailThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MailThreadClient) MapCreateBulk(slice any, setFunc func(*MailThreadCreate, int)) *MailThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MailThreadCreateBulk{err: fmt.Errorf("calling to MailThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MailThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MailThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MailThread.
func (c *MailThreadClient) Update() *MailThreadUpdate {
	mutation := newMailThreadMutation(c.config, OpUpdate)
	return &MailThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MailThreadClient) UpdateOne(_m *MailThread) *MailThreadUpdateOne {
	mutation := newMailThreadMutation(c.config, OpUpdateOne, withMailThread(_m))
	return &MailThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MailThreadClient) UpdateOneID(id int) *MailThreadUpdateOne {
	mutation := newMailThreadMutation(c.config, OpUpdateOne, withMailThreadID(id))
	return &MailThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MailThread.
func (c *MailThreadClient) Delete() *MailThreadDelete {
	mutation := newMailThreadMutation(c.config, OpDelete)
	return &MailThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MailThreadClient) DeleteOne(_m *MailThread) *MailThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MailThreadClient) DeleteOneID(id int) *MailThreadDeleteOne {
	builder := c.Delete().Where(mailthread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MailThreadDeleteOne{builder}
}

// Query returns a query builder for MailThread.
func (c *MailThreadClient) Query() *MailThreadQuery {
	return &MailThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMailThread},
		inters: c.Interceptors(),
	}
}

// Get returns a MailThread entity by its id.
func (c *MailThreadClient) Get(ctx context.Context, id int) (*MailThread, error) {
	return c.Query().Where(mailthread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MailThreadClient) GetX(ctx context.Context, id int) *MailThread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReplies queries the replies edge of a MailThread.
func (c *MailThreadClient) QueryReplies(_m *MailThread) *MailReplyQuery {
	query := (&MailReplyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mailthread.Table, mailthread.FieldID, id),
			sqlgraph.To(mailreply.Table, mailreply.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mailthread.RepliesTable, mailthread.RepliesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MailThreadClient) Hooks() []Hook {
	return c.hooks.MailThread
}

// Interceptors returns the client interceptors.
func (c *MailThreadClient) Interceptors() []Interceptor {
	return c.inters.MailThread
}

func (c *MailThreadClient) mutate(ctx context.Context, m *MailThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MailThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MailThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MailThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MailThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MailThread mutation op: %q", m.Op())
	}
}

// OrderEventClient is a client for the OrderEvent schema.
type OrderEventClient struct {
	config
}

// NewOrderEventClient returns a client for the OrderEvent from the given config.
func NewOrderEventClient(c config) *OrderEventClient {
	return &OrderEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderevent.Hooks(f(g(h())))`.
func (c *OrderEventClient) Use(hooks ...Hook) {
	c.hooks.OrderEvent = append(c.hooks.OrderEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderevent.Intercept(f(g(h())))`.
func (c *OrderEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderEvent = append(c.inters.OrderEvent, interceptors...)
}

// Create returns a builder for creating a OrderEvent entity.
func (c *OrderEventClient) Create() *OrderEventCreate {
	mutation := newOrderEventMutation(c.config, OpCreate)
	return &OrderEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderEvent entities.
func (c *OrderEventClient) CreateBulk(builders ...*OrderEventCreate) *OrderEventCreateBulk {
	return &OrderEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderEventClient) MapCreateBulk(slice any, setFunc func(*OrderEventCreate, int)) *OrderEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderEventCreateBulk{err: fmt.Errorf("calling to OrderEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderEvent.
func (c *OrderEventClient) Update() *OrderEventUpdate {
	mutation := newOrderEventMutation(c.config, OpUpdate)
	return &OrderEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderEventClient) UpdateOne(_m *OrderEvent) *OrderEventUpdateOne {
	mutation := newOrderEventMutation(c.config, OpUpdateOne, withOrderEvent(_m))
	return &OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderEventClient) UpdateOneID(id int) *OrderEventUpdateOne {
	mutation := newOrderEventMutation(c.config, OpUpdateOne, withOrderEventID(id))
	return &OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderEvent.
func (c *OrderEventClient) Delete() *OrderEventDelete {
	mutation := newOrderEventMutation(c.config, OpDelete)
	return &OrderEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderEventClient) DeleteOne(_m *OrderEvent) *OrderEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderEventClient) DeleteOneID(id int) *OrderEventDeleteOne {
	builder := c.Delete().Where(orderevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderEventDeleteOne{builder}
}

// Query returns a query builder for OrderEvent.
func (c *OrderEventClient) Query() *OrderEventQuery {
	return &OrderEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderEvent entity by its id.
func (c *OrderEventClient) Get(ctx context.Context, id int) (*OrderEvent, error) {
	return c.Query().Where(orderevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderEventClient) GetX(ctx context.Context, id int) *OrderEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrderEventClient) Hooks() []Hook {
	return c.hooks.OrderEvent
}

// Interceptors returns the client interceptors.
func (c *OrderEventClient) Interceptors() []Interceptor {
	return c.inters.OrderEvent
}

func (c *OrderEventClient) mutate(ctx context.Context, m *OrderEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderEvent mutation op: %q", m.Op())
	}
}

// OrderLogClient is a client for the OrderLog schema.
type OrderLogClient struct {
	config
}

// NewOrderLogClient returns a client for the OrderLog from the given config.
func NewOrderLogClient(c config) *OrderLogClient {
	return &OrderLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderlog.Hooks(f(g(h())))`.
func (c *OrderLogClient) Use(hooks ...Hook) {
	c.hooks.OrderLog = append(c.hooks.OrderLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderlog.Intercept(f(g(h())))`.
func (c *OrderLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderLog = append(c.inters.OrderLog, interceptors...)
}

// Create returns a builder for creating a OrderLog entity.
func (c *OrderLogClient) Create() *OrderLogCreate {
	mutation := newOrderLogMutation(c.config, OpCreate)
	return &OrderLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderLog entities.
func (c *OrderLogClient) CreateBulk(builders ...*OrderLogCreate) *OrderLogCreateBulk {
	return &OrderLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderLogClient) MapCreateBulk(slice any, setFunc func(*OrderLogCreate, int)) *OrderLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderLogCreateBulk{err: fmt.Errorf("calling to OrderLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderLog.
func (c *OrderLogClient) Update() *OrderLogUpdate {
	mutation := newOrderLogMutation(c.config, OpUpdate)
	return &OrderLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderLogClient) UpdateOne(_m *OrderLog) *OrderLogUpdateOne {
	mutation := newOrderLogMutation(c.config, OpUpdateOne, withOrderLog(_m))
	return &OrderLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderLogClient) UpdateOneID(id int) *OrderLogUpdateOne {
	mutation := newOrderLogMutation(c.config, OpUpdateOne, withOrderLogID(id))
	return &OrderLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderLog.
func (c *OrderLogClient) Delete() *OrderLogDelete {
	mutation := newOrderLogMutation(c.config, OpDelete)
	return &OrderLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderLogClient) DeleteOne(_m *OrderLog) *OrderLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderLogClient) DeleteOneID(id int) *OrderLogDeleteOne {
	builder := c.Delete().Where(orderlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderLogDeleteOne{builder}
}

// Query returns a query builder for OrderLog.
func (c *OrderLogClient) Query() *OrderLogQuery {
	return &OrderLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderLog},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderLog entity by its id.
func (c *OrderLogClient) Get(ctx context.Context, id int) (*OrderLog, error) {
	return c.Query().Where(orderlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderLogClient) GetX(ctx context.Context, id int) *OrderLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrderLogClient) Hooks() []Hook {
	return c.hooks.OrderLog
}

// Interceptors returns the client interceptors.
func (c *OrderLogClient) Interceptors() []Interceptor {
	return c.inters.OrderLog
}

func (c *OrderLogClient) mutate(ctx context.Context, m *OrderLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderLog mutation op: %q", m.Op())
	}
}

// RuntimeSettingClient is a client for the RuntimeSetting schema.
type RuntimeSettingClient struct {
	config
}

// NewRuntimeSettingClient returns a client for the RuntimeSetting from the given config.
func NewRuntimeSettingClient(c config) *RuntimeSettingClient {
	return &RuntimeSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runtimesetting.Hooks(f(g(h())))`.
func (c *RuntimeSettingClient) Use(hooks ...Hook) {
	c.hooks.RuntimeSetting = append(c.hooks.RuntimeSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runtimesetting.Intercept(f(g(h())))`.
func (c *RuntimeSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuntimeSetting = append(c.inters.RuntimeSetting, interceptors...)
}

// Create returns a builder for creating a RuntimeSetting entity.
func (c *RuntimeSettingClient) Create() *RuntimeSettingCreate {
	mutation := newRuntimeSettingMutation(c.config, OpCreate)
	return &RuntimeSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuntimeSetting entities.
func (c *RuntimeSettingClient) CreateBulk(builders ...*RuntimeSettingCreate) *RuntimeSettingCreateBulk {
	return &RuntimeSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuntimeSettingClient) MapCreateBulk(slice any, setFunc func(*RuntimeSettingCreate, int)) *RuntimeSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuntimeSettingCreateBulk{err: fmt.Errorf("calling to RuntimeSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuntimeSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuntimeSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuntimeSetting.
func (c *RuntimeSettingClient) Update() *RuntimeSettingUpdate {
	mutation := newRuntimeSettingMutation(c.config, OpUpdate)
	return &RuntimeSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuntimeSettingClient) UpdateOne(_m *RuntimeSetting) *RuntimeSettingUpdateOne {
	mutation := newRuntimeSettingMutation(c.config, OpUpdateOne, withRuntimeSetting(_m))
	return &RuntimeSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuntimeSettingClient) UpdateOneID(id int) *RuntimeSettingUpdateOne {
	mutation := newRuntimeSettingMutation(c.config, OpUpdateOne, withRuntimeSettingID(id))
	return &RuntimeSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuntimeSetting.
func (c *RuntimeSettingClient) Delete() *RuntimeSettingDelete {
	mutation := newRuntimeSettingMutation(c.config, OpDelete)
	return &RuntimeSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuntimeSettingClient) DeleteOne(_m *RuntimeSetting) *RuntimeSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuntimeSettingClient) DeleteOneID(id int) *RuntimeSettingDeleteOne {
	builder := c.Delete().Where(runtimesetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuntimeSettingDeleteOne{builder}
}

// Query returns a query builder for RuntimeSetting.
func (c *RuntimeSettingClient) Query() *RuntimeSettingQuery {
	return &RuntimeSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuntimeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a RuntimeSetting entity by its id.
func (c *RuntimeSettingClient) Get(ctx context.Context, id int) (*RuntimeSetting, error) {
	return c.Query().Where(runtimesetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuntimeSettingClient) GetX(ctx context.Context, id int) *RuntimeSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RuntimeSettingClient) Hooks() []Hook {
	return c.hooks.RuntimeSetting
}

// Interceptors returns the client interceptors.
func (c *RuntimeSettingClient) Interceptors() []Interceptor {
	return c.inters.RuntimeSetting
}

func (c *RuntimeSettingClient) mutate(ctx context.Context, m *RuntimeSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuntimeSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuntimeSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuntimeSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuntimeSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuntimeSetting mutation op: %q", m.Op())
	}
}

// SearchQueryClient is a client for the SearchQuery schema.
type SearchQueryClient struct {
	config
}

// NewSearchQueryClient returns a client for the SearchQuery from the given config.
func NewSearchQueryClient(c config) *SearchQueryClient {
	return &SearchQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchquery.Hooks(f(g(h())))`.
func (c *SearchQueryClient) Use(hooks ...Hook) {
	c.hooks.SearchQuery = append(c.hooks.SearchQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchquery.Intercept(f(g(h())))`.
func (c *SearchQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchQuery = append(c.inters.SearchQuery, interceptors...)
}

// Create returns a builder for creating a SearchQuery entity.
func (c *SearchQueryClient) Create() *SearchQueryCreate {
	mutation := newSearchQueryMutation(c.config, OpCreate)
	return &SearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchQuery entities.
func (c *SearchQueryClient) CreateBulk(builders ...*SearchQueryCreate) *SearchQueryCreateBulk {
	return &SearchQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchQueryClient) MapCreateBulk(slice any, setFunc func(*SearchQueryCreate, int)) *SearchQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchQueryCreateBulk{err: fmt.Errorf("calling to SearchQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchQuery.
func (c *SearchQueryClient) Update() *SearchQueryUpdate {
	mutation := newSearchQueryMutation(c.config, OpUpdate)
	return &SearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchQueryClient) UpdateOne(_m *SearchQuery) *SearchQueryUpdateOne {
	mutation := newSearchQueryMutation(c.config, OpUpdateOne, withSearchQuery(_m))
	return &SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchQueryClient) UpdateOneID(id int) *SearchQueryUpdateOne {
	mutation := newSearchQueryMutation(c.config, OpUpdateOne, withSearchQueryID(id))
	return &SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchQuery.
func (c *SearchQueryClient) Delete() *SearchQueryDelete {
	mutation := newSearchQueryMutation(c.config, OpDelete)
	return &SearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchQueryClient) DeleteOne(_m *SearchQuery) *SearchQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchQueryClient) DeleteOneID(id int) *SearchQueryDeleteOne {
	builder := c.Delete().Where(searchquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchQueryDeleteOne{builder}
}

// Query returns a query builder for SearchQuery.
func (c *SearchQueryClient) Query() *SearchQueryQuery {
	return &SearchQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchQuery entity by its id.
func (c *SearchQueryClient) Get(ctx context.Context, id int) (*SearchQuery, error) {
	return c.Query().Where(searchquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchQueryClient) GetX(ctx context.Context, id int) *SearchQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntents queries the intents edge of a SearchQuery.
func (c *SearchQueryClient) QueryIntents(_m *SearchQuery) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(searchquery.Table, searchquery.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, searchquery.IntentsTable, searchquery.IntentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SearchQueryClient) Hooks() []Hook {
	return c.hooks.SearchQuery
}

// Interceptors returns the client interceptors.
func (c *SearchQueryClient) Interceptors() []Interceptor {
	return c.inters.SearchQuery
}

func (c *SearchQueryClient) mutate(ctx context.Context, m *SearchQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchQuery mutation op: %q", m.Op())
	}
}

// SpellEntryClient is a client for the SpellEntry schema.
type SpellEntryClient struct {
	config
}

// NewSpellEntryClient returns a client for the SpellEntry from the given config.
func NewSpellEntryClient(c config) *SpellEntryClient {
	return &SpellEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `spellentry.Hooks(f(g(h())))`.
func (c *SpellEntryClient) Use(hooks ...Hook) {
	c.hooks.SpellEntry = append(c.hooks.SpellEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `spellentry.Intercept(f(g(h())))`.
func (c *SpellEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpellEntry = append(c.inters.SpellEntry, interceptors...)
}

// Create returns a builder for creating a SpellEntry entity.
func (c *SpellEntryClient) Create() *SpellEntryCreate {
	mutation := newSpellEntryMutation(c.config, OpCreate)
	return &SpellEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpellEntry entities.
func (c *SpellEntryClient) CreateBulk(builders ...*SpellEntryCreate) *SpellEntryCreateBulk {
	return &SpellEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpellEntryClient) MapCreateBulk(slice any, setFunc func(*SpellEntryCreate, int)) *SpellEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpellEntryCreateBulk{err: fmt.Errorf("calling to SpellEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpellEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpellEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpellEntry.
func (c *SpellEntryClient) Update() *SpellEntryUpdate {
	mutation := newSpellEntryMutation(c.config, OpUpdate)
	return &SpellEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpellEntryClient) UpdateOne(_m *SpellEntry) *SpellEntryUpdateOne {
	mutation := newSpellEntryMutation(c.config, OpUpdateOne, withSpellEntry(_m))
	return &SpellEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpellEntryClient) UpdateOneID(id int) *SpellEntryUpdateOne {
	mutation := newSpellEntryMutation(c.config, OpUpdateOne, withSpellEntryID(id))
	return &SpellEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpellEntry.
func (c *SpellEntryClient) Delete() *SpellEntryDelete {
	mutation := newSpellEntryMutation(c.config, OpDelete)
	return &SpellEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpellEntryClient) DeleteOne(_m *SpellEntry) *SpellEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpellEntryClient) DeleteOneID(id int) *SpellEntryDeleteOne {
	builder := c.Delete().Where(spellentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpellEntryDeleteOne{builder}
}

// Query returns a query builder for SpellEntry.
func (c *SpellEntryClient) Query() *SpellEntryQuery {
	return &SpellEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpellEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SpellEntry entity by its id.
func (c *SpellEntryClient) Get(ctx context.Context, id int) (*SpellEntry, error) {
	return c.Query().Where(spellentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpellEntryClient) GetX(ctx context.Context, id int) *SpellEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SpellEntryClient) Hooks() []Hook {
	return c.hooks.SpellEntry
}

// Interceptors returns the client interceptors.
func (c *SpellEntryClient) Interceptors() []Interceptor {
	return c.inters.SpellEntry
}

func (c *SpellEntryClient) mutate(ctx context.Context, m *SpellEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpellEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpellEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpellEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpellEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpellEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Article, GenerationOrder, GenerationRun, Intent, LLMFailure, Lease,
		MailAttachment, MailReply, MailThread, OrderEvent, OrderLog, RuntimeSetting,
		SearchQuery, SpellEntry []ent.Hook
	}
	inters struct {
		Article, GenerationOrder, GenerationRun, Intent, LLMFailure, Lease,
		MailAttachment, MailReply, MailThread, OrderEvent, OrderLog, RuntimeSetting,
		SearchQuery, SpellEntry []ent.Interceptor
	}
)
