package department

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, created_at FROM department WHERE lower(name) = lower($1) ORDER BY id LIMIT 1")).
		WithArgs("engineering").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(1, "Engineering", now))

	department, err := repo.FindByName(context.Background(), "engineering")

	require.NoError(t, err)
	assert.Equal(t, Entity{Id: 1, Name: "Engineering", CreatedAt: now}, department)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindById_NoRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM department WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	_, err := repo.FindById(context.Background(), 5)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM department ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(1, "Engineering", now).
			AddRow(2, "Product", now))

	departments, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Product", departments[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Add(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO department (name) VALUES ($1) RETURNING id, created_at")).
		WithArgs("Finance").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, now))

	department := Entity{Name: "Finance"}
	err := repo.Add(context.Background(), &department)

	require.NoError(t, err)
	assert.Equal(t, int64(8), department.Id)
	assert.Equal(t, now, department.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
