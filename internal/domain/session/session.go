// internal/domain/session/session.go
package session

import (
	"context"
	"errors"
	"time"

	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/navigation"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is everything one shopper's browser owns: where they are, what
// is in their cart and how far through checkout they got.
type Session struct {
	ID        string            `json:"id"`
	Nav       *navigation.State `json:"nav"`
	Cart      *cart.Cart        `json:"cart"`
	Checkout  checkout.Progress `json:"checkout"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// New creates a session with default state
func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Nav:       navigation.NewState(),
		Cart:      cart.New(),
		Checkout:  checkout.NewProgress(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// normalize fills parts missing from older or partial stored data
func (s *Session) normalize() {
	if s.Nav == nil {
		s.Nav = navigation.NewState()
	}
	if s.Cart == nil {
		s.Cart = cart.New()
	}
	if s.Checkout.Step == 0 {
		s.Checkout = checkout.NewProgress()
	}
}

// Store persists sessions
type Store interface {
	// Get returns ErrSessionNotFound for unknown or expired ids
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
