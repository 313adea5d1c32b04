// Package repository defines the interfaces for the data access layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/errors"
)

// ErrSessionNotFound is returned when a session id does not resolve, either
// because it never existed or because it expired.
var ErrSessionNotFound = errors.New("order session not found")

// SessionRepository stores in-flight order sessions. Sessions live in
// memory only, bounded by a TTL; nothing is ever persisted across restarts.
type SessionRepository interface {
	// Create stores a fresh session state and returns its id.
	Create(ctx context.Context, state entity.OrderState) (uuid.UUID, error)

	// Get retrieves the current state of a session.
	Get(ctx context.Context, id uuid.UUID) (entity.OrderState, error)

	// Update applies a transition to a session atomically: the stored state
	// is replaced with the function's result, or left untouched when the
	// function returns an error.
	Update(ctx context.Context, id uuid.UUID, apply func(entity.OrderState) (entity.OrderState, error)) (entity.OrderState, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error
}
