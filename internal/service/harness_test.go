package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/repository"
	"github.com/alexanderramin/joyshift/internal/testutil"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

type harness struct {
	backend kvstore.Backend
	clock   *testutil.FakeClock
	ledger  repository.ShiftRepo
	users   repository.UserRepo
	shifts  ShiftService
	roster  RosterService
	admin   AdminService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessOn(t, testutil.NewTestBackend(t))
}

func newHarnessOn(t *testing.T, backend kvstore.Backend) *harness {
	t.Helper()
	clock := testutil.NewFakeClock(t0)
	ledger := repository.NewKVShiftRepo(backend, nil)
	users := repository.NewKVUserRepo(backend, nil)
	return &harness{
		backend: backend,
		clock:   clock,
		ledger:  ledger,
		users:   users,
		shifts:  NewShiftService(ledger, backend, WithClock(clock.Now)),
		roster:  NewRosterService(users, backend, WithClock(clock.Now)),
		admin:   NewAdminService(ledger, users, WithClock(clock.Now)),
	}
}

func (h *harness) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u, err := h.roster.CreateUser(context.Background(), name)
	require.NoError(t, err)
	return u
}

func (h *harness) records(t *testing.T) []*domain.ShiftRecord {
	t.Helper()
	records, err := h.ledger.ListAll(context.Background())
	require.NoError(t, err)
	return records
}

func (h *harness) rawLedger(t *testing.T) string {
	t.Helper()
	raw, _, err := h.backend.Get(context.Background(), kvstore.KeyShiftLogs)
	require.NoError(t, err)
	return raw
}

func openCount(records []*domain.ShiftRecord) int {
	n := 0
	for _, r := range records {
		if r.IsOpen() {
			n++
		}
	}
	return n
}
