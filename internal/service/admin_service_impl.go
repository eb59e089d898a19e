package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/repository"
	"go.uber.org/zap"
)

type adminService struct {
	shifts repository.ShiftRepo
	users  repository.UserRepo
	opts   options
}

func NewAdminService(shifts repository.ShiftRepo, users repository.UserRepo, opts ...Option) AdminService {
	return &adminService{shifts: shifts, users: users, opts: buildOptions(opts)}
}

// UserTotals sums every shift per user, counting open shifts up to now.
// Rows follow each user's first appearance in the ledger.
func (s *adminService) UserTotals(ctx context.Context) (totals []UserTotal, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "user-totals", startedAt, fields, &err)

	records, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.rosterByID(ctx)
	if err != nil {
		return nil, err
	}

	now := domain.Instant(s.opts.clock())
	index := make(map[string]int)
	for _, rec := range records {
		i, ok := index[rec.UserID]
		if !ok {
			row := UserTotal{UserID: rec.UserID, Name: "Unknown", Avatar: domain.UnknownAvatar}
			if u, found := roster[rec.UserID]; found {
				row.Name = u.Name
				row.Avatar = u.Avatar
			} else {
				s.opts.logger.Debug("shift_user_not_on_roster", zap.String("user_id", rec.UserID))
			}
			i = len(totals)
			index[rec.UserID] = i
			totals = append(totals, row)
		}
		totals[i].Total += rec.Elapsed(now)
		if rec.IsOpen() {
			totals[i].OnDuty = true
		}
	}
	fields["users"] = len(totals)
	return totals, nil
}

// History lists every shift newest first.
func (s *adminService) History(ctx context.Context) (entries []HistoryEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "history", startedAt, fields, &err)

	records, err := s.shifts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.rosterByID(ctx)
	if err != nil {
		return nil, err
	}

	entries = make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		avatar := domain.UnknownAvatar
		if u, ok := roster[rec.UserID]; ok {
			avatar = u.Avatar
		}
		entries = append(entries, HistoryEntry{Shift: rec, Avatar: avatar})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Shift.StartTime.After(entries[j].Shift.StartTime)
	})
	fields["shifts"] = len(entries)
	return entries, nil
}

func (s *adminService) rosterByID(ctx context.Context) (map[string]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}
