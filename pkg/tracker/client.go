package tracker

import (
	"log/slog"
	"time"

	"github.com/issuekit/issuekit/pkg/resource"
	"github.com/issuekit/issuekit/pkg/transport"
)

// Client is a connection to one tracker instance. It hands out managers for
// the registered resource types; all managers share the connection settings
// and transport.
type Client struct {
	transport *transport.Client
	settings  resource.Settings
	log       *slog.Logger
}

type clientConfig struct {
	apiKey   string
	timeout  time.Duration
	log      *slog.Logger
	settings resource.Settings
}

// Option configures a Client.
type Option func(*clientConfig)

// WithAPIKey sets the API key used for authentication.
func WithAPIKey(key string) Option {
	return func(cfg *clientConfig) { cfg.apiKey = key }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = timeout }
}

// WithLogger sets the logger for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.log = log }
}

// WithDateFormat overrides the wire date layout.
func WithDateFormat(layout string) Option {
	return func(cfg *clientConfig) { cfg.settings.DateFormat = layout }
}

// WithDateTimeFormat overrides the wire date-time layout.
func WithDateTimeFormat(layout string) Option {
	return func(cfg *clientConfig) { cfg.settings.DateTimeFormat = layout }
}

// WithServerVersion declares the connected server's version, enabling the
// version gates of helpers that need newer endpoints.
func WithServerVersion(version string) Option {
	return func(cfg *clientConfig) { cfg.settings.ServerVersion = version }
}

// WithAttrErrors sets the attribute-error policy.
func WithAttrErrors(policy resource.AttrErrorPolicy) Option {
	return func(cfg *clientConfig) { cfg.settings.AttrErrors = policy }
}

// New creates a client for the tracker at baseURL (no trailing slash).
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.settings.BaseURL = baseURL

	topts := []transport.Option{transport.WithLogger(cfg.log)}
	if cfg.apiKey != "" {
		topts = append(topts, transport.WithAPIKey(cfg.apiKey))
	}
	if cfg.timeout > 0 {
		topts = append(topts, transport.WithTimeout(cfg.timeout))
	}

	return &Client{
		transport: transport.New(baseURL, topts...),
		settings:  cfg.settings,
		log:       cfg.log,
	}
}

// Transport exposes the underlying HTTP client, used by helpers that stream
// attachment content.
func (c *Client) Transport() *transport.Client { return c.transport }

// Manager returns a manager for a registered resource type, optionally
// carrying scope parameters for project- or issue-scoped endpoints.
func (c *Client) Manager(typeName string, scope map[string]any) (resource.Manager, error) {
	t, err := resource.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return &manager{c: c, typ: t, scope: scope}, nil
}

// mustManager is the unchecked variant for the per-type accessors below; the
// named types are registered by this package's own init functions.
func (c *Client) mustManager(typeName string, scope map[string]any) resource.Manager {
	m, err := c.Manager(typeName, scope)
	if err != nil {
		panic(err)
	}
	return m
}

// Issues returns the manager for issues.
func (c *Client) Issues() resource.Manager { return c.mustManager("Issue", nil) }

// Projects returns the manager for projects.
func (c *Client) Projects() resource.Manager { return c.mustManager("Project", nil) }

// Users returns the manager for users.
func (c *Client) Users() resource.Manager { return c.mustManager("User", nil) }

// Groups returns the manager for groups.
func (c *Client) Groups() resource.Manager { return c.mustManager("Group", nil) }

// Roles returns the manager for roles.
func (c *Client) Roles() resource.Manager { return c.mustManager("Role", nil) }

// News returns the manager for news entries.
func (c *Client) News() resource.Manager { return c.mustManager("News", nil) }

// Queries returns the manager for saved queries.
func (c *Client) Queries() resource.Manager { return c.mustManager("Query", nil) }

// Trackers returns the manager for issue trackers.
func (c *Client) Trackers() resource.Manager { return c.mustManager("Tracker", nil) }

// IssueStatuses returns the manager for issue statuses.
func (c *Client) IssueStatuses() resource.Manager { return c.mustManager("IssueStatus", nil) }

// CustomFields returns the manager for custom field definitions.
func (c *Client) CustomFields() resource.Manager { return c.mustManager("CustomField", nil) }

// TimeEntries returns the manager for time entries.
func (c *Client) TimeEntries() resource.Manager { return c.mustManager("TimeEntry", nil) }

// Attachments returns the manager for attachments.
func (c *Client) Attachments() resource.Manager { return c.mustManager("Attachment", nil) }

// Enumerations returns the manager for the named enumeration collection
// (issue_priorities, time_entry_activities, document_categories).
func (c *Client) Enumerations(name string) resource.Manager {
	return c.mustManager("Enumeration", map[string]any{"resource": name})
}

// WikiPages returns the manager for a project's wiki pages.
func (c *Client) WikiPages(projectID any) resource.Manager {
	return c.mustManager("WikiPage", map[string]any{"project_id": projectID})
}

// Memberships returns the manager for a project's memberships.
func (c *Client) Memberships(projectID any) resource.Manager {
	return c.mustManager("ProjectMembership", map[string]any{"project_id": projectID})
}

// IssueCategories returns the manager for a project's issue categories.
func (c *Client) IssueCategories(projectID any) resource.Manager {
	return c.mustManager("IssueCategory", map[string]any{"project_id": projectID})
}

// Versions returns the manager for a project's versions.
func (c *Client) Versions(projectID any) resource.Manager {
	return c.mustManager("Version", map[string]any{"project_id": projectID})
}

// IssueRelations returns the manager for an issue's relations.
func (c *Client) IssueRelations(issueID any) resource.Manager {
	return c.mustManager("IssueRelation", map[string]any{"issue_id": issueID})
}
