package department

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id int64) (department Entity, err error) {
	err = r.db.GetContext(ctx, &department, "SELECT id, name, created_at FROM department WHERE id = $1", id)
	return department, err
}

// FindByName ищет отдел по названию без учёта регистра; при совпадении нескольких берётся первый по id
func (r *Repository) FindByName(ctx context.Context, name string) (department Entity, err error) {
	err = r.db.GetContext(ctx, &department,
		"SELECT id, name, created_at FROM department WHERE lower(name) = lower($1) ORDER BY id LIMIT 1", name)
	return department, err
}

func (r *Repository) FindAll(ctx context.Context) (departments []Entity, err error) {
	err = r.db.SelectContext(ctx, &departments, "SELECT id, name, created_at FROM department ORDER BY id")
	return departments, err
}

func (r *Repository) Add(ctx context.Context, department *Entity) error {
	return r.db.QueryRowxContext(ctx,
		"INSERT INTO department (name) VALUES ($1) RETURNING id, created_at",
		department.Name,
	).Scan(&department.Id, &department.CreatedAt)
}
