// Package postgres provides the PostgreSQL implementation of store.TaskStore,
// the mapping from driver errors to store errors, and the embedded bootstrap
// schema for the tasks table.
package postgres
