package service

import (
	"context"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
)

// StartOutcome says what a clock-in request did.
type StartOutcome int

const (
	// OutcomeStarted opened a new shift on an idle ledger.
	OutcomeStarted StartOutcome = iota
	// OutcomeAlreadyOnDuty left the ledger alone; the user is already clocked in.
	OutcomeAlreadyOnDuty
	// OutcomeTakeoverRequired left the ledger alone; someone else is on duty
	// and the caller must confirm or cancel.
	OutcomeTakeoverRequired
	// OutcomeTookOver closed the other user's shift and opened this one at
	// the same instant.
	OutcomeTookOver
)

func (o StartOutcome) String() string {
	switch o {
	case OutcomeStarted:
		return "started"
	case OutcomeAlreadyOnDuty:
		return "already_on_duty"
	case OutcomeTakeoverRequired:
		return "takeover_required"
	case OutcomeTookOver:
		return "took_over"
	default:
		return "unknown"
	}
}

// StartResult is returned by RequestStart and ConfirmTakeover.
type StartResult struct {
	Outcome StartOutcome
	// Shift is the requesting user's open shift, nil for OutcomeTakeoverRequired.
	Shift *domain.ShiftRecord
	// Previous is the other user's shift: still open for
	// OutcomeTakeoverRequired, just closed for OutcomeTookOver.
	Previous *domain.ShiftRecord
}

// ShiftService is the clock-in/clock-out controller.
type ShiftService interface {
	RequestStart(ctx context.Context, user *domain.User) (*StartResult, error)
	ConfirmTakeover(ctx context.Context, user *domain.User) (*StartResult, error)
	CancelTakeover()
	RequestEnd(ctx context.Context, user *domain.User) (*domain.ShiftRecord, error)
	Active(ctx context.Context) (*domain.ShiftRecord, error)
	ListAll(ctx context.Context) ([]*domain.ShiftRecord, error)
}

type RosterService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, name string) (*domain.User, error)
	RenameUser(ctx context.Context, id, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserTotal is one row of the admin totals table.
type UserTotal struct {
	UserID string
	Name   string
	Avatar string
	Total  time.Duration
	OnDuty bool
}

// HistoryEntry is one row of the admin history table.
type HistoryEntry struct {
	Shift  *domain.ShiftRecord
	Avatar string
}

type AdminService interface {
	UserTotals(ctx context.Context) ([]UserTotal, error)
	History(ctx context.Context) ([]HistoryEntry, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	ToggleTheme(ctx context.Context) (*domain.Preferences, error)
	// SeedTheme sets the starting theme unless one was already saved.
	SeedTheme(ctx context.Context, theme string) error
}
