package employee

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"strings"
	"testing"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// memoryStore хранит сотрудников в памяти и исполняет query.Predicate и query.OrderSpec
// так же, как их исполняет SQL репозитория
type memoryStore struct {
	employees   []Entity
	nextId      int64
	inserts     int
	pageQueries int
	db          *sqlx.DB
	sqlMock     sqlmock.Sqlmock
}

func newMemoryStore(t *testing.T, employees ...Entity) *memoryStore {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := &memoryStore{
		db:      sqlx.NewDb(db, "postgres"),
		sqlMock: mock,
		nextId:  int64(len(employees)) + 1,
	}
	store.employees = append(store.employees, employees...)
	return store
}

func (s *memoryStore) Count(_ context.Context, predicate query.Predicate) (int64, error) {
	return int64(len(s.filter(predicate))), nil
}

func (s *memoryStore) FindPage(
	_ context.Context,
	predicate query.Predicate,
	order query.OrderSpec,
	offset, limit int64,
) ([]Entity, error) {
	s.pageQueries++
	matched := s.filter(predicate)
	slices.SortStableFunc(matched, func(a, b Entity) int {
		for _, term := range order {
			result := compareColumn(a, b, term.Column)
			if term.Direction == query.Desc {
				result = -result
			}
			if result != 0 {
				return result
			}
		}
		return cmp.Compare(a.Id, b.Id)
	})
	if offset >= int64(len(matched)) {
		return nil, nil
	}
	end := min(offset+limit, int64(len(matched)))
	return matched[offset:end], nil
}

func (s *memoryStore) FindById(_ context.Context, id int64) (Entity, error) {
	for _, employee := range s.employees {
		if employee.Id == id {
			return employee, nil
		}
	}
	return Entity{}, sql.ErrNoRows
}

func (s *memoryStore) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return s.db.BeginTxx(ctx, nil)
}

func (s *memoryStore) ExistsTx(_ context.Context, _ *sqlx.Tx, candidate Candidate) (bool, error) {
	return slices.ContainsFunc(s.employees, candidate.Matches), nil
}

func (s *memoryStore) SaveTx(_ context.Context, _ *sqlx.Tx, employee Entity) (int64, error) {
	s.inserts++
	employee.Id = s.nextId
	s.nextId++
	s.employees = append(s.employees, employee)
	return employee.Id, nil
}

func (s *memoryStore) filter(predicate query.Predicate) []Entity {
	var matched []Entity
	for _, employee := range s.employees {
		if matchesPredicate(employee, predicate) {
			matched = append(matched, employee)
		}
	}
	return matched
}

func matchesPredicate(employee Entity, predicate query.Predicate) bool {
	for _, condition := range predicate.Conditions {
		hit := false
		for _, term := range condition.Terms {
			for _, column := range condition.Columns {
				if strings.Contains(strings.ToLower(columnValue(employee, column)), term) {
					hit = true
				}
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func columnValue(employee Entity, column string) string {
	switch column {
	case query.ColumnFirstName:
		return employee.FirstName
	case query.ColumnLastName:
		return employee.LastName
	case query.ColumnPosition:
		return employee.Position
	case query.ColumnDepartmentName:
		return employee.DepartmentName
	default:
		return ""
	}
}

func compareColumn(a, b Entity, column string) int {
	switch column {
	case query.ColumnAge:
		return cmp.Compare(a.Age, b.Age)
	case query.ColumnId:
		return cmp.Compare(a.Id, b.Id)
	default:
		return strings.Compare(columnValue(a, column), columnValue(b, column))
	}
}

// stubDepartments разрешает название отдела без учёта регистра
type stubDepartments struct {
	departments []department.Entity
}

func (s stubDepartments) FindByName(_ context.Context, name string) (department.Entity, error) {
	for _, dep := range s.departments {
		if strings.EqualFold(dep.Name, name) {
			return dep, nil
		}
	}
	return department.Entity{}, common.DepartmentNotFoundError{Name: name}
}

var (
	engineering = department.Entity{Id: 1, Name: "Engineering"}
	product     = department.Entity{Id: 2, Name: "Product"}
	legal       = department.Entity{Id: 3, Name: "Legal"}
)

func testDepartments() stubDepartments {
	return stubDepartments{departments: []department.Entity{engineering, product, legal}}
}

func newEmployee(id int64, firstName, lastName string, age int64, position string, dep department.Entity) Entity {
	return Entity{
		Id:             id,
		FirstName:      firstName,
		LastName:       lastName,
		Age:            age,
		Position:       position,
		DepartmentId:   dep.Id,
		DepartmentName: dep.Name,
	}
}

func testEmployees() []Entity {
	return []Entity{
		newEmployee(1, "Ann", "Smith", 30, "Engineer", engineering),
		newEmployee(2, "Bob", "Annis", 45, "Manager", product),
		newEmployee(3, "Carl", "Jones", 30, "Lawyer", legal),
		newEmployee(4, "Diana", "Brown", 25, "Engineer", engineering),
		newEmployee(5, "Evan", "Smith", 52, "Director", product),
		newEmployee(6, "Joanna", "Black", 30, "Counsel", legal),
	}
}

func ids(responses []Response) []int64 {
	result := make([]int64, len(responses))
	for i, response := range responses {
		result[i] = response.Id
	}
	return result
}
