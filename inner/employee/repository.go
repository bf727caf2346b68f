package employee

import (
	"context"
	"fmt"

	"github.com/NZpatelK/keyhook-test/inner/query"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	employeeTable  = "employee"
	employeeAlias  = "employee e"
	departmentJoin = "department d ON d.id = e.department_id"
)

// колонки выборки сотрудника вместе с названием отдела; без отдела название пустое
var employeeColumns = []string{
	query.ColumnId,
	query.ColumnFirstName,
	query.ColumnLastName,
	query.ColumnAge,
	query.ColumnPosition,
	query.ColumnDepartmentId,
	"COALESCE(d.name, '') AS department_name",
	"e.created_at",
	"e.updated_at",
}

type Repository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{
		db:   database,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *Repository) selectEmployees(predicate query.Predicate) sq.SelectBuilder {
	builder := r.psql.Select(employeeColumns...).From(employeeAlias).LeftJoin(departmentJoin)
	if !predicate.IsEmpty() {
		builder = builder.Where(predicate)
	}
	return builder
}

// Count число сотрудников, удовлетворяющих предикату; тот же предикат используется для выборки страницы
func (r *Repository) Count(ctx context.Context, predicate query.Predicate) (count int64, err error) {
	builder := r.psql.Select("COUNT(*)").From(employeeAlias).LeftJoin(departmentJoin)
	if !predicate.IsEmpty() {
		builder = builder.Where(predicate)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building count query: %w", err)
	}
	err = r.db.GetContext(ctx, &count, sql, args...)
	return count, err
}

func (r *Repository) FindPage(
	ctx context.Context,
	predicate query.Predicate,
	order query.OrderSpec,
	offset, limit int64,
) (employees []Entity, err error) {
	sql, args, err := r.selectEmployees(predicate).
		OrderBy(order.Clauses()...).
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building page query: %w", err)
	}
	err = r.db.SelectContext(ctx, &employees, sql, args...)
	return employees, err
}

func (r *Repository) FindById(ctx context.Context, id int64) (employee Entity, err error) {
	sql, args, err := r.selectEmployees(query.Predicate{}).Where(sq.Eq{query.ColumnId: id}).ToSql()
	if err != nil {
		return Entity{}, fmt.Errorf("error building find query: %w", err)
	}
	err = r.db.GetContext(ctx, &employee, sql, args...)
	return employee, err
}

func (r *Repository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

// ExistsTx проверяет в рамках транзакции, есть ли в отделе сотрудник с тем же именем
func (r *Repository) ExistsTx(ctx context.Context, tx *sqlx.Tx, candidate Candidate) (exists bool, err error) {
	sql, args, err := r.psql.Select("1").
		From(employeeAlias).
		Where(duplicatePredicate(candidate)).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building exists query: %w", err)
	}
	err = tx.GetContext(ctx, &exists, sql, args...)
	return exists, err
}

func (r *Repository) SaveTx(ctx context.Context, tx *sqlx.Tx, employee Entity) (id int64, err error) {
	sql, args, err := r.psql.Insert(employeeTable).
		Columns("first_name", "last_name", "age", "position", "department_id").
		Values(employee.FirstName, employee.LastName, employee.Age, employee.Position, employee.DepartmentId).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building insert query: %w", err)
	}
	err = tx.QueryRowxContext(ctx, sql, args...).Scan(&id)
	return id, err
}
