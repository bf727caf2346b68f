package employee

import (
	"errors"
	"testing"

	"github.com/NZpatelK/keyhook-test/inner/database"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicatePredicate(t *testing.T) {
	sql, args, err := duplicatePredicate(Candidate{FirstName: "Ann", LastName: "O'Neil", DepartmentId: 4}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "(e.department_id = ? AND LOWER(e.first_name) = ? AND LOWER(e.last_name) = ?)", sql)
	assert.Equal(t, []any{int64(4), "ann", "o'neil"}, args)
}

func TestCandidate_Matches(t *testing.T) {
	candidate := Candidate{FirstName: "ann", LastName: "SMITH", DepartmentId: 1}

	assert.True(t, candidate.Matches(Entity{FirstName: "Ann", LastName: "Smith", DepartmentId: 1}))
	assert.False(t, candidate.Matches(Entity{FirstName: "Ann", LastName: "Smith", DepartmentId: 2}))
	assert.False(t, candidate.Matches(Entity{FirstName: "Anna", LastName: "Smith", DepartmentId: 1}))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"full name index", &pq.Error{Code: "23505", Constraint: database.EmployeeFullNameIndex}, true},
		{"other unique index", &pq.Error{Code: "23505", Constraint: "employee_pkey"}, false},
		{"foreign key", &pq.Error{Code: "23503", Constraint: database.EmployeeFullNameIndex}, false},
		{"plain error", errors.New("unique"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueViolation(tt.err))
		})
	}
}
