package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
)

// ErrNotFound is returned when a lookup by id finds nothing.
var ErrNotFound = errors.New("not found")

// ShiftRepo is the shift ledger. At most one record is open at a time.
type ShiftRepo interface {
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]*domain.ShiftRecord, error)
	// Append adds a record, rejecting it with domain.ErrActiveShiftExists
	// while another record is open.
	Append(ctx context.Context, rec *domain.ShiftRecord) error
	// CloseActive ends the open record at the given instant. Returns
	// domain.ErrNoActiveShift when nothing is open.
	CloseActive(ctx context.Context, at time.Time) (*domain.ShiftRecord, error)
	// FindActive returns the open record or nil.
	FindActive(ctx context.Context) (*domain.ShiftRecord, error)
}

type UserRepo interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
	// Seed stores p only when no preferences were saved yet.
	Seed(ctx context.Context, p *domain.Preferences) (bool, error)
}
