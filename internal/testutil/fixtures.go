package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithAvatar(a string) UserOption {
	return func(u *domain.User) {
		u.Avatar = a
	}
}

func WithColor(c string) UserOption {
	return func(u *domain.User) {
		u.Color = c
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:     uuid.New().String(),
		Name:   name,
		Avatar: domain.Avatars[0],
		Color:  domain.Colors[0],
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Shift options
type ShiftOption func(*domain.ShiftRecord)

func WithEnd(end time.Time) ShiftOption {
	return func(r *domain.ShiftRecord) {
		e := domain.Instant(end)
		r.EndTime = &e
	}
}

func WithShiftID(id string) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.ID = id
	}
}

// NewTestShift builds an open shift for u starting at start.
func NewTestShift(u *domain.User, start time.Time, opts ...ShiftOption) *domain.ShiftRecord {
	r := &domain.ShiftRecord{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		UserName:  u.Name,
		StartTime: domain.Instant(start),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FakeClock is a settable clock for services that take a now func.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
