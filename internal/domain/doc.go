// Package domain contains the task entity, its partial-update structure and
// the validation rules shared by the store, service and API layers. It has no
// dependencies on infrastructure.
package domain
