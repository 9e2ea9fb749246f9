package parent

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Parent, error)
	GetByID(ctx context.Context, id int) (*Parent, error)
	Update(ctx context.Context, parent *Parent) (*Parent, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, parent *Parent) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*Parent)(nil)).Count(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]Parent, error) {
	var parents []Parent
	err := r.db.NewSelect().Model(&parents).Order("id ASC").Scan(ctx)
	return parents, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Parent, error) {
	parent := new(Parent)
	err := r.db.NewSelect().Model(parent).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrParentNotFound
	}
	return parent, err
}

func (r *repository) Update(ctx context.Context, parent *Parent) (*Parent, error) {
	res, err := r.db.NewUpdate().
		Model(parent).
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
		return nil, ErrParentNotFound
	}
	return parent, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().Model(&Parent{ID: id}).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrParentNotFound
	}
	return nil
}

func (r *repository) Insert(ctx context.Context, parent *Parent) error {
	_, err := r.db.NewInsert().Model(parent).Exec(ctx)
	return err
}
