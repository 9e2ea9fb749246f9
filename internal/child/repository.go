package child

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Child, error)
	GetByID(ctx context.Context, id int) (*Child, error)
	Update(ctx context.Context, child *Child) (*Child, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, child *Child) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*Child)(nil)).Count(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]Child, error) {
	var children []Child
	err := r.db.NewSelect().Model(&children).Order("id ASC").Scan(ctx)
	return children, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Child, error) {
	child := new(Child)
	err := r.db.NewSelect().Model(child).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChildNotFound
	}
	return child, err
}

func (r *repository) Update(ctx context.Context, child *Child) (*Child, error) {
	res, err := r.db.NewUpdate().
		Model(child).
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
		return nil, ErrChildNotFound
	}
	return child, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().Model(&Child{ID: id}).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrChildNotFound
	}
	return nil
}

func (r *repository) Insert(ctx context.Context, child *Child) error {
	_, err := r.db.NewInsert().Model(child).Exec(ctx)
	return err
}
