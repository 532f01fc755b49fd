// Package tracker binds the generic resource engine to a concrete
// Redmine-compatible issue tracker: the connection type, the manager
// implementation with endpoint templating and pagination, the catalog of
// resource type definitions and the bound helper objects for out-of-band
// relationship mutations (issue watchers, group members, attachment
// downloads).
package tracker
