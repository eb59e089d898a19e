package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type shiftService struct {
	shifts repository.ShiftRepo
	uow    kvstore.UnitOfWork
	opts   options

	mu      sync.Mutex
	pending string // user id awaiting takeover confirmation
}

// NewShiftService builds the controller. shifts serves plain reads; every
// decision is made against a ledger scoped to a uow transaction.
func NewShiftService(shifts repository.ShiftRepo, uow kvstore.UnitOfWork, opts ...Option) ShiftService {
	return &shiftService{shifts: shifts, uow: uow, opts: buildOptions(opts)}
}

func (s *shiftService) now() time.Time {
	return domain.Instant(s.opts.clock())
}

func (s *shiftService) ledger(store kvstore.Store) repository.ShiftRepo {
	return repository.NewKVShiftRepo(store, s.opts.logger)
}

func (s *shiftService) RequestStart(ctx context.Context, user *domain.User) (result *StartResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if result != nil {
			fields["outcome"] = result.Outcome.String()
		}
		observe(ctx, s.opts.observer, "request-start", startedAt, fields, &err)
	}()

	if err = validUser(user); err != nil {
		return nil, err
	}
	fields["user_id"] = user.ID

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		ledger := s.ledger(store)
		active, err := ledger.FindActive(ctx)
		if err != nil {
			return err
		}
		switch {
		case active == nil:
			rec := newShift(user, now)
			if err := ledger.Append(ctx, rec); err != nil {
				return err
			}
			result = &StartResult{Outcome: OutcomeStarted, Shift: rec}
		case active.UserID == user.ID:
			result = &StartResult{Outcome: OutcomeAlreadyOnDuty, Shift: active}
		default:
			result = &StartResult{Outcome: OutcomeTakeoverRequired, Previous: active}
		}
		return nil
	})
	if err != nil {
		s.logInvariant(err)
		return nil, err
	}

	s.mu.Lock()
	if result.Outcome == OutcomeTakeoverRequired {
		s.pending = user.ID
	} else if s.pending == user.ID {
		s.pending = ""
	}
	s.mu.Unlock()
	return result, nil
}

func (s *shiftService) ConfirmTakeover(ctx context.Context, user *domain.User) (result *StartResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if result != nil {
			fields["outcome"] = result.Outcome.String()
		}
		observe(ctx, s.opts.observer, "confirm-takeover", startedAt, fields, &err)
	}()

	if err = validUser(user); err != nil {
		return nil, err
	}
	fields["user_id"] = user.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != user.ID {
		return nil, domain.ErrNoPendingTakeover
	}

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		ledger := s.ledger(store)
		active, err := ledger.FindActive(ctx)
		if err != nil {
			return err
		}
		if active != nil && active.UserID == user.ID {
			result = &StartResult{Outcome: OutcomeAlreadyOnDuty, Shift: active}
			return nil
		}

		result = &StartResult{Outcome: OutcomeStarted}
		if active != nil {
			closed, err := ledger.CloseActive(ctx, now)
			if err != nil {
				return err
			}
			result.Outcome = OutcomeTookOver
			result.Previous = closed
			fields["previous_user_id"] = closed.UserID
		}
		rec := newShift(user, now)
		if err := ledger.Append(ctx, rec); err != nil {
			return err
		}
		result.Shift = rec
		return nil
	})
	if err != nil {
		s.logInvariant(err)
		return nil, err
	}
	s.pending = ""
	return result, nil
}

func (s *shiftService) CancelTakeover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = ""
}

func (s *shiftService) RequestEnd(ctx context.Context, user *domain.User) (closed *domain.ShiftRecord, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "request-end", startedAt, fields, &err)

	if err = validUser(user); err != nil {
		return nil, err
	}
	fields["user_id"] = user.ID

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		ledger := s.ledger(store)
		active, err := ledger.FindActive(ctx)
		if err != nil {
			return err
		}
		if active == nil {
			return domain.ErrNoActiveShift
		}
		if active.UserID != user.ID {
			return domain.ErrNotOnDuty
		}
		closed, err = ledger.CloseActive(ctx, now)
		return err
	})
	if err != nil {
		s.logInvariant(err)
		return nil, err
	}
	return closed, nil
}

func (s *shiftService) Active(ctx context.Context) (*domain.ShiftRecord, error) {
	return s.shifts.FindActive(ctx)
}

func (s *shiftService) ListAll(ctx context.Context) ([]*domain.ShiftRecord, error) {
	return s.shifts.ListAll(ctx)
}

// logInvariant records validation failures, which on this path mean the
// ledger or a caller broke an invariant. Benign rejections are not logged.
func (s *shiftService) logInvariant(err error) {
	if errors.Is(err, domain.ErrValidation) {
		s.opts.logger.Error("shift ledger rejected a write", zap.Error(err))
	}
}

func newShift(user *domain.User, start time.Time) *domain.ShiftRecord {
	return &domain.ShiftRecord{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.Name,
		StartTime: start,
	}
}

func validUser(user *domain.User) error {
	if user == nil || user.ID == "" {
		return domain.NewValidationError("a user is required")
	}
	return nil
}
