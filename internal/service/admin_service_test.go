package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestUserTotals_SumsClosedShifts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")

	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(alice, t0, testutil.WithEnd(t0.Add(30*time.Minute)))))
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(alice, t0.Add(time.Hour), testutil.WithEnd(t0.Add(105*time.Minute)))))

	totals, err := h.admin.UserTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Alice", totals[0].Name)
	assert.Equal(t, "1h 15m", domain.FormatSpan(totals[0].Total))
	assert.False(t, totals[0].OnDuty)
}

func TestUserTotals_OpenShiftCountsUpToNow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")

	_, err := h.shifts.RequestStart(ctx, alice)
	require.NoError(t, err)

	h.clock.Advance(20 * time.Minute)
	totals, err := h.admin.UserTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 20*time.Minute, totals[0].Total)
	assert.True(t, totals[0].OnDuty)

	h.clock.Advance(40 * time.Minute)
	totals, err = h.admin.UserTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1h 0m", domain.FormatSpan(totals[0].Total), "totals are recomputed on every call")
}

func TestUserTotals_OrderAndUnknownUsers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")
	bob := h.user(t, "Bob")
	ghost := testutil.NewTestUser("Ghost")

	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(bob, t0, testutil.WithEnd(t0.Add(time.Hour)))))
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(ghost, t0.Add(time.Hour), testutil.WithEnd(t0.Add(2*time.Hour)))))
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(alice, t0.Add(2*time.Hour), testutil.WithEnd(t0.Add(3*time.Hour)))))
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(bob, t0.Add(3*time.Hour), testutil.WithEnd(t0.Add(4*time.Hour)))))

	totals, err := h.admin.UserTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, bob.ID, totals[0].UserID)
	assert.Equal(t, 2*time.Hour, totals[0].Total)
	assert.Equal(t, "Unknown", totals[1].Name)
	assert.Equal(t, domain.UnknownAvatar, totals[1].Avatar)
	assert.Equal(t, alice.ID, totals[2].UserID)
}

func TestUserTotals_UsesLiveName(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")
	_, err := h.shifts.RequestStart(ctx, alice)
	require.NoError(t, err)

	_, err = h.roster.RenameUser(ctx, alice.ID, "Alicia")
	require.NoError(t, err)

	totals, err := h.admin.UserTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Alicia", totals[0].Name)
}

func TestHistory_NewestFirst(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")
	ghost := testutil.NewTestUser("Ghost")

	older := testutil.NewTestShift(alice, t0, testutil.WithEnd(t0.Add(time.Hour)))
	newer := testutil.NewTestShift(ghost, t0.Add(2*time.Hour))
	require.NoError(t, h.ledger.Append(ctx, older))
	require.NoError(t, h.ledger.Append(ctx, newer))

	history, err := h.admin.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].Shift.ID)
	assert.Equal(t, domain.UnknownAvatar, history[0].Avatar)
	assert.Equal(t, "Ghost", history[0].Shift.UserName)
	assert.Equal(t, older.ID, history[1].Shift.ID)
	assert.Equal(t, alice.Avatar, history[1].Avatar)
}

func TestAdmin_EmptyLedger(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	totals, err := h.admin.UserTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, totals)

	history, err := h.admin.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAdminService_ObservesUseCases(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	h := newHarness(t)
	ctx := context.Background()
	alice := h.user(t, "Alice")
	ghost := testutil.NewTestUser("Ghost")
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(alice, t0, testutil.WithEnd(t0.Add(time.Hour)))))
	require.NoError(t, h.ledger.Append(ctx, testutil.NewTestShift(ghost, t0.Add(time.Hour), testutil.WithEnd(t0.Add(2*time.Hour)))))

	admin := NewAdminService(h.ledger, h.users,
		WithClock(h.clock.Now),
		WithLogger(logger),
		WithObserver(NewLogUseCaseObserver(logger)),
	)
	_, err := admin.UserTotals(ctx)
	require.NoError(t, err)
	_, err = admin.History(ctx)
	require.NoError(t, err)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "user-totals", entries[0].ContextMap()["use_case"])
	assert.Equal(t, "history", entries[1].ContextMap()["use_case"])
	assert.Equal(t, true, entries[1].ContextMap()["success"])

	assert.Equal(t, 1, logs.FilterMessage("shift_user_not_on_roster").Len())
}
