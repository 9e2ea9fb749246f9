package daycare

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Daycare, error)
	GetByID(ctx context.Context, id int) (*Daycare, error)
	Update(ctx context.Context, daycare *Daycare) (*Daycare, error)
	Delete(ctx context.Context, id int) error
	Insert(ctx context.Context, daycare *Daycare) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*Daycare)(nil)).Count(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]Daycare, error) {
	var daycares []Daycare
	err := r.db.NewSelect().Model(&daycares).Order("id ASC").Scan(ctx)
	return daycares, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Daycare, error) {
	daycare := new(Daycare)
	err := r.db.NewSelect().Model(daycare).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDaycareNotFound
	}
	return daycare, err
}

func (r *repository) Update(ctx context.Context, daycare *Daycare) (*Daycare, error) {
	res, err := r.db.NewUpdate().
		Model(daycare).
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
		return nil, ErrDaycareNotFound
	}
	return daycare, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.NewDelete().Model(&Daycare{ID: id}).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDaycareNotFound
	}
	return nil
}

func (r *repository) Insert(ctx context.Context, daycare *Daycare) error {
	_, err := r.db.NewInsert().Model(daycare).Exec(ctx)
	return err
}
