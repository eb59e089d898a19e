package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"go.uber.org/zap"
)

type userRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}

func toUserRow(u *domain.User) userRow {
	return userRow{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Color: u.Color}
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{ID: row.ID, Name: row.Name, Avatar: row.Avatar, Color: row.Color}
}

// KVUserRepo implements UserRepo as one JSON list in a kv store.
type KVUserRepo struct {
	store kvstore.Store
	log   *zap.Logger
}

// NewKVUserRepo creates a roster over store. A nil logger discards warnings.
func NewKVUserRepo(store kvstore.Store, log *zap.Logger) *KVUserRepo {
	return &KVUserRepo{store: store, log: loggerOrNop(log)}
}

func (r *KVUserRepo) load(ctx context.Context) ([]userRow, error) {
	rows, err := loadList[userRow](ctx, r.store, r.log, kvstore.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return rows, nil
}

func (r *KVUserRepo) save(ctx context.Context, rows []userRow) error {
	if err := saveList(ctx, r.store, kvstore.KeyUsers, rows); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

func (r *KVUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *KVUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	rows, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.ID == id {
			return row.toDomain(), nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
}

func (r *KVUserRepo) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		return domain.NewValidationError("user id is required")
	}
	rows, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.ID == u.ID {
			return domain.NewValidationError("user %s already exists", u.ID)
		}
	}
	return r.save(ctx, append(rows, toUserRow(u)))
}

func (r *KVUserRepo) Update(ctx context.Context, u *domain.User) error {
	rows, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range rows {
		if rows[i].ID == u.ID {
			rows[i] = toUserRow(u)
			return r.save(ctx, rows)
		}
	}
	return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
}

func (r *KVUserRepo) Delete(ctx context.Context, id string) error {
	rows, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range rows {
		if rows[i].ID == id {
			return r.save(ctx, append(rows[:i], rows[i+1:]...))
		}
	}
	return fmt.Errorf("user %s: %w", id, ErrNotFound)
}
