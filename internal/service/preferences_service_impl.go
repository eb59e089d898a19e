package service

import (
	"context"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/repository"
)

type preferencesService struct {
	prefs repository.PreferencesRepo
	uow   kvstore.UnitOfWork
}

func NewPreferencesService(prefs repository.PreferencesRepo, uow kvstore.UnitOfWork) PreferencesService {
	return &preferencesService{prefs: prefs, uow: uow}
}

func (s *preferencesService) Get(ctx context.Context) (*domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

func (s *preferencesService) ToggleTheme(ctx context.Context) (*domain.Preferences, error) {
	var prefs *domain.Preferences
	err := s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		repo := repository.NewKVPreferencesRepo(store)
		p, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		p.ToggleTheme()
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}
		prefs = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *preferencesService) SeedTheme(ctx context.Context, theme string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		_, err := repository.NewKVPreferencesRepo(store).Seed(ctx, &domain.Preferences{Theme: theme})
		return err
	})
}
