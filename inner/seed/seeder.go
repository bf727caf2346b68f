// Package seed наполняет пустую базу отделами и сгенерированными сотрудниками.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/employee"

	"github.com/icrowley/fake"
	"go.uber.org/zap"
)

const (
	minAge = 18
	maxAge = 65
	// сколько попыток на одного сотрудника допускается при совпадении имён
	attemptsPerEmployee = 3
)

// Departments отделы, которые создаются при наполнении
var Departments = []string{
	"Engineering",
	"Product",
	"Legal",
	"Marketing",
	"Sales",
	"Support",
	"HR",
	"Finance",
	"Operations",
	"IT",
}

type DepartmentCreator interface {
	EnsureExists(ctx context.Context, name string) (department.Entity, error)
}

type EmployeeCreator interface {
	List(ctx context.Context, request employee.ListRequest) (employee.ListResponse, error)
	Create(ctx context.Context, request employee.CreateRequest) (employee.Response, error)
}

type Seeder struct {
	departments DepartmentCreator
	employees   EmployeeCreator
	logger      *common.Logger
}

type Result struct {
	Skipped    bool
	Employees  int
	Duplicates int
}

func NewSeeder(departments DepartmentCreator, employees EmployeeCreator, logger *common.Logger) *Seeder {
	return &Seeder{
		departments: departments,
		employees:   employees,
		logger:      logger,
	}
}

// Seed создаёт отделы и count сотрудников через обычный сервис создания,
// поэтому совпадающие имена внутри отдела отбрасываются. Непустая база не трогается.
func (s *Seeder) Seed(ctx context.Context, count int) (Result, error) {
	existing, err := s.employees.List(ctx, employee.ListRequest{PageSize: 1})
	if err != nil {
		return Result{}, fmt.Errorf("error checking existing employees: %w", err)
	}
	if existing.Meta.TotalCount > 0 {
		s.logger.Info("Database already seeded", zap.Int64("employees", existing.Meta.TotalCount))
		return Result{Skipped: true}, nil
	}

	departments := make([]department.Entity, 0, len(Departments))
	for _, name := range Departments {
		dep, err := s.departments.EnsureExists(ctx, name)
		if err != nil {
			return Result{}, fmt.Errorf("error seeding department %s: %w", name, err)
		}
		departments = append(departments, dep)
	}

	var result Result
	for attempt := 0; result.Employees < count && attempt < count*attemptsPerEmployee; attempt++ {
		_, err := s.employees.Create(ctx, randomEmployee(departments))
		if errors.As(err, &common.AlreadyExistsError{}) {
			result.Duplicates++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("error seeding employee: %w", err)
		}
		result.Employees++
	}

	s.logger.Info("Seeding finished",
		zap.Int("departments", len(departments)),
		zap.Int("employees", result.Employees),
		zap.Int("duplicates", result.Duplicates))
	return result, nil
}

func randomEmployee(departments []department.Entity) employee.CreateRequest {
	return employee.CreateRequest{
		FirstName:      fake.FirstName(),
		LastName:       fake.LastName(),
		Age:            int64(minAge + rand.IntN(maxAge-minAge+1)),
		Position:       fake.JobTitle(),
		DepartmentName: departments[rand.IntN(len(departments))].Name,
	}
}
