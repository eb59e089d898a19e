package service

import (
	"context"
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/repository"
	"github.com/google/uuid"
)

type rosterService struct {
	users repository.UserRepo
	uow   kvstore.UnitOfWork
	opts  options
}

func NewRosterService(users repository.UserRepo, uow kvstore.UnitOfWork, opts ...Option) RosterService {
	return &rosterService{users: users, uow: uow, opts: buildOptions(opts)}
}

func (s *rosterService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *rosterService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *rosterService) CreateUser(ctx context.Context, name string) (user *domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "create-user", startedAt, fields, &err)

	name, err = domain.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		users := repository.NewKVUserRepo(store, s.opts.logger)
		existing, err := users.List(ctx)
		if err != nil {
			return err
		}
		avatar, color := domain.PaletteFor(len(existing))
		user = &domain.User{
			ID:     uuid.New().String(),
			Name:   name,
			Avatar: avatar,
			Color:  color,
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	fields["user_id"] = user.ID
	return user, nil
}

// RenameUser changes the display name only. Shift records keep the name
// they were opened under.
func (s *rosterService) RenameUser(ctx context.Context, id, name string) (user *domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": id}
	defer observe(ctx, s.opts.observer, "rename-user", startedAt, fields, &err)

	name, err = domain.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		users := repository.NewKVUserRepo(store, s.opts.logger)
		u, err := users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		u.Name = name
		if err := users.Update(ctx, u); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *rosterService) DeleteUser(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.opts.observer, "delete-user", startedAt, map[string]any{"user_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, store kvstore.Store) error {
		return repository.NewKVUserRepo(store, s.opts.logger).Delete(ctx, id)
	})
}
