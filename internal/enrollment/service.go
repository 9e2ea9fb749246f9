package enrollment

import (
	"context"
	"errors"
)

var ErrEnrollmentNotFound = errors.New("enrollment not found")

type Service interface {
	ListEnrollments(ctx context.Context) (int, []Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int) (*Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListEnrollments(ctx context.Context) (int, []Enrollment, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	enrollments, err := s.repo.GetAll(ctx)
	return count, enrollments, err
}

func (s *service) GetEnrollmentByID(ctx context.Context, id int) (*Enrollment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateEnrollment(ctx context.Context, enrollment *Enrollment) (*Enrollment, error) {
	return s.repo.Update(ctx, enrollment)
}

func (s *service) DeleteEnrollment(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
