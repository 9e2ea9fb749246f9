package parent

import (
	"context"
	"errors"
)

var ErrParentNotFound = errors.New("parent not found")

type Service interface {
	ListParents(ctx context.Context) (int, []Parent, error)
	GetParentByID(ctx context.Context, id int) (*Parent, error)
	UpdateParent(ctx context.Context, parent *Parent) (*Parent, error)
	DeleteParent(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListParents(ctx context.Context) (int, []Parent, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	parents, err := s.repo.GetAll(ctx)
	return count, parents, err
}

func (s *service) GetParentByID(ctx context.Context, id int) (*Parent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateParent(ctx context.Context, parent *Parent) (*Parent, error) {
	return s.repo.Update(ctx, parent)
}

func (s *service) DeleteParent(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
