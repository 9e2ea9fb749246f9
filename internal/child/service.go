package child

import (
	"context"
	"errors"
)

var ErrChildNotFound = errors.New("child not found")

type Service interface {
	ListChildren(ctx context.Context) (int, []Child, error)
	GetChildByID(ctx context.Context, id int) (*Child, error)
	UpdateChild(ctx context.Context, child *Child) (*Child, error)
	DeleteChild(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListChildren(ctx context.Context) (int, []Child, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	children, err := s.repo.GetAll(ctx)
	return count, children, err
}

func (s *service) GetChildByID(ctx context.Context, id int) (*Child, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateChild(ctx context.Context, child *Child) (*Child, error) {
	return s.repo.Update(ctx, child)
}

func (s *service) DeleteChild(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
