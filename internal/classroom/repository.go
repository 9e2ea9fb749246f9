package classroom

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Classroom, error)
	GetByID(ctx context.Context, id int) (*Classroom, error)
	Update(ctx context.Context, classroom *Classroom) (*Classroom, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, classroom *Classroom) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*Classroom)(nil)).Count(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]Classroom, error) {
	var classrooms []Classroom
	err := r.db.NewSelect().Model(&classrooms).Order("id ASC").Scan(ctx)
	return classrooms, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Classroom, error) {
	classroom := new(Classroom)
	err := r.db.NewSelect().Model(classroom).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassroomNotFound
	}
	return classroom, err
}

func (r *repository) Update(ctx context.Context, classroom *Classroom) (*Classroom, error) {
	res, err := r.db.NewUpdate().
		Model(classroom).
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
		return nil, ErrClassroomNotFound
	}
	return classroom, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().Model(&Classroom{ID: id}).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrClassroomNotFound
	}
	return nil
}

func (r *repository) Insert(ctx context.Context, classroom *Classroom) error {
	_, err := r.db.NewInsert().Model(classroom).Exec(ctx)
	return err
}
