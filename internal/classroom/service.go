package classroom

import (
	"context"
	"errors"
)

var ErrClassroomNotFound = errors.New("classroom not found")

type Service interface {
	ListClassrooms(ctx context.Context) (int, []Classroom, error)
	GetClassroomByID(ctx context.Context, id int) (*Classroom, error)
	UpdateClassroom(ctx context.Context, classroom *Classroom) (*Classroom, error)
	DeleteClassroom(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListClassrooms(ctx context.Context) (int, []Classroom, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	classrooms, err := s.repo.GetAll(ctx)
	return count, classrooms, err
}

func (s *service) GetClassroomByID(ctx context.Context, id int) (*Classroom, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateClassroom(ctx context.Context, classroom *Classroom) (*Classroom, error) {
	return s.repo.Update(ctx, classroom)
}

func (s *service) DeleteClassroom(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
