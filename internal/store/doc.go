// Package store defines interfaces for task persistence and the errors
// shared by every implementation. It keeps the service layer independent of
// the concrete database.
package store
