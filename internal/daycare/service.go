package daycare

import (
	"context"
	"errors"
)

var ErrDaycareNotFound = errors.New("daycare not found")

type Service interface {
	ListDaycares(ctx context.Context) (int, []Daycare, error)
	GetDaycareByID(ctx context.Context, id int) (*Daycare, error)
	UpdateDaycare(ctx context.Context, daycare *Daycare) (*Daycare, error)
	DeleteDaycare(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListDaycares(ctx context.Context) (int, []Daycare, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	daycares, err := s.repo.GetAll(ctx)
	return count, daycares, err
}

func (s *service) GetDaycareByID(ctx context.Context, id int) (*Daycare, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateDaycare(ctx context.Context, daycare *Daycare) (*Daycare, error) {
	return s.repo.Update(ctx, daycare)
}

func (s *service) DeleteDaycare(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
