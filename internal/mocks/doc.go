// Package mocks provides hand-written test doubles for the task store,
// transaction runner, cache and task service.
//
// Each mock exposes function fields (e.g. GetByIDFn) that tests set to control
// behavior; unset fields fall back to a default. InMemoryTaskStore is a
// working store backed by a map, for tests that exercise real service logic.
package mocks
