package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"go.uber.org/zap"
)

// shiftRow is the persisted shape of a ShiftRecord. Instants are
// milliseconds since the epoch; a null endTime marks the open shift.
type shiftRow struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	StartTime int64  `json:"startTime"`
	EndTime   *int64 `json:"endTime"`
}

func toShiftRow(r *domain.ShiftRecord) shiftRow {
	row := shiftRow{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		StartTime: r.StartTime.UnixMilli(),
	}
	if r.EndTime != nil {
		end := r.EndTime.UnixMilli()
		row.EndTime = &end
	}
	return row
}

func (row shiftRow) toDomain() *domain.ShiftRecord {
	r := &domain.ShiftRecord{
		ID:        row.ID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		StartTime: time.UnixMilli(row.StartTime),
	}
	if row.EndTime != nil {
		end := time.UnixMilli(*row.EndTime)
		r.EndTime = &end
	}
	return r
}

// KVShiftRepo implements ShiftRepo as one JSON list in a kv store. Every
// write rewrites the whole list, so callers that read and then write
// should share a transaction-scoped store.
type KVShiftRepo struct {
	store kvstore.Store
	log   *zap.Logger
}

// NewKVShiftRepo creates a ledger over store. A nil logger discards warnings.
func NewKVShiftRepo(store kvstore.Store, log *zap.Logger) *KVShiftRepo {
	return &KVShiftRepo{store: store, log: loggerOrNop(log)}
}

func (r *KVShiftRepo) load(ctx context.Context) ([]shiftRow, error) {
	rows, err := loadList[shiftRow](ctx, r.store, r.log, kvstore.KeyShiftLogs)
	if err != nil {
		return nil, fmt.Errorf("loading shift logs: %w", err)
	}
	return rows, nil
}

func (r *KVShiftRepo) save(ctx context.Context, rows []shiftRow) error {
	if err := saveList(ctx, r.store, kvstore.KeyShiftLogs, rows); err != nil {
		return fmt.Errorf("saving shift logs: %w", err)
	}
	return nil
}

func (r *KVShiftRepo) ListAll(ctx context.Context) ([]*domain.ShiftRecord, error) {
	rows, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]*domain.ShiftRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *KVShiftRepo) Append(ctx context.Context, rec *domain.ShiftRecord) error {
	if rec.ID == "" {
		return domain.NewValidationError("shift id is required")
	}
	if rec.UserID == "" {
		return domain.NewValidationError("shift %s has no user", rec.ID)
	}

	rows, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.EndTime == nil {
			return domain.ErrActiveShiftExists
		}
		if row.ID == rec.ID {
			return domain.NewValidationError("shift %s already exists", rec.ID)
		}
	}
	return r.save(ctx, append(rows, toShiftRow(rec)))
}

func (r *KVShiftRepo) CloseActive(ctx context.Context, at time.Time) (*domain.ShiftRecord, error) {
	rows, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].EndTime != nil {
			continue
		}
		rec := rows[i].toDomain()
		if err := rec.Close(domain.Instant(at)); err != nil {
			return nil, err
		}
		rows[i] = toShiftRow(rec)
		if err := r.save(ctx, rows); err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, domain.ErrNoActiveShift
}

func (r *KVShiftRepo) FindActive(ctx context.Context) (*domain.ShiftRecord, error) {
	rows, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.EndTime == nil {
			return row.toDomain(), nil
		}
	}
	return nil, nil
}
