package enrollment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Enrollment, error)
	GetByID(ctx context.Context, id int) (*Enrollment, error)
	Update(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, enrollment *Enrollment) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*Enrollment)(nil)).Count(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]Enrollment, error) {
	var enrollments []Enrollment
	err := r.db.NewSelect().Model(&enrollments).Order("id ASC").Scan(ctx)
	return enrollments, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Enrollment, error) {
	enrollment := new(Enrollment)
	err := r.db.NewSelect().Model(enrollment).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEnrollmentNotFound
	}
	return enrollment, err
}

func (r *repository) Update(ctx context.Context, enrollment *Enrollment) (*Enrollment, error) {
	res, err := r.db.NewUpdate().
		Model(enrollment).
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEnrollmentNotFound
	}
	return enrollment, nil
}

// Delete verifies the affected row count, so deleting a missing enrollment
// reports not-found like every other entity.
func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().Model(&Enrollment{ID: id}).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func (r *repository) Insert(ctx context.Context, enrollment *Enrollment) error {
	_, err := r.db.NewInsert().Model(enrollment).Exec(ctx)
	return err
}
