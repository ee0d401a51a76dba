// Package service implements the task use cases on top of the persistent
// store and the optional cache.
//
// Reads are cache-aside: the cache is consulted first and populated from the
// store on a miss. Writes go to the store and then invalidate the affected
// cache entries, so the store stays the only source of truth.
//
// Service methods return sentinel errors for expected conditions
// (ErrTaskNotFound, domain.ErrValidation) and wrap everything else in
// *TaskServiceError. The API layer maps these to HTTP status codes.
package service
