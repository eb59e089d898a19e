package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
)

// KVPreferencesRepo keeps the theme as a bare string under its own key.
type KVPreferencesRepo struct {
	store kvstore.Store
}

func NewKVPreferencesRepo(store kvstore.Store) *KVPreferencesRepo {
	return &KVPreferencesRepo{store: store}
}

// Get returns stored preferences, defaulting to the light theme.
func (r *KVPreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	theme, _, err := r.store.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	return &domain.Preferences{Theme: domain.NormalizeTheme(theme)}, nil
}

func (r *KVPreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	if err := r.store.Set(ctx, kvstore.KeyTheme, domain.NormalizeTheme(p.Theme)); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

func (r *KVPreferencesRepo) Seed(ctx context.Context, p *domain.Preferences) (bool, error) {
	_, found, err := r.store.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		return false, fmt.Errorf("loading preferences: %w", err)
	}
	if found {
		return false, nil
	}
	return true, r.Upsert(ctx, p)
}
