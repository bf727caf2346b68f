package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/database"
	"github.com/NZpatelK/keyhook-test/inner/query"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Candidate составной ключ уникальности сотрудника: отдел и имя без учёта регистра
type Candidate struct {
	FirstName      string
	LastName       string
	DepartmentId   int64
	DepartmentName string
}

func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Matches сравнивает сотрудника с кандидатом так же, как duplicatePredicate
func (c Candidate) Matches(e Entity) bool {
	return e.DepartmentId == c.DepartmentId &&
		strings.ToLower(e.FirstName) == strings.ToLower(c.FirstName) &&
		strings.ToLower(e.LastName) == strings.ToLower(c.LastName)
}

func duplicatePredicate(c Candidate) sq.And {
	return sq.And{
		sq.Eq{query.ColumnDepartmentId: c.DepartmentId},
		sq.Expr("LOWER(e.first_name) = ?", strings.ToLower(c.FirstName)),
		sq.Expr("LOWER(e.last_name) = ?", strings.ToLower(c.LastName)),
	}
}

// validateUnique отклоняет кандидата, если в его отделе уже есть сотрудник с тем же именем
func (svc *Service) validateUnique(ctx context.Context, tx *sqlx.Tx, candidate Candidate) error {
	exists, err := svc.repo.ExistsTx(ctx, tx, candidate)
	if err != nil {
		svc.logger.Error("Failed to check if employee exists",
			zap.String("name", candidate.FullName()),
			zap.Int64("department_id", candidate.DepartmentId),
			zap.Error(err))
		return fmt.Errorf("error checking employee %s for duplicates: %w", candidate.FullName(), err)
	}
	if exists {
		svc.logger.Warn("Employee with this name already exists in department",
			zap.String("name", candidate.FullName()),
			zap.String("department", candidate.DepartmentName))
		return common.NewDuplicateEmployeeError(candidate.FullName(), candidate.DepartmentName)
	}
	return nil
}

// isUniqueViolation конкурентная вставка того же сотрудника упёрлась в уникальный индекс
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == database.EmployeeFullNameIndex
}
