package employee

import (
	"strings"
	"time"

	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/query"
)

type Entity struct {
	Id             int64     `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Age            int64     `db:"age"`
	Position       string    `db:"position"`
	DepartmentId   int64     `db:"department_id"`
	DepartmentName string    `db:"department_name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:             e.Id,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Age:            e.Age,
		Position:       e.Position,
		DepartmentName: e.DepartmentName,
	}
}

// FullName имя и фамилия через пробел
func (e *Entity) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Response struct {
	Id             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Age            int64  `json:"age"`
	Position       string `json:"position"`
	DepartmentName string `json:"department_name"`
} // @name Employee

// CreateRequest атрибуты нового сотрудника; возраст не проверяется
type CreateRequest struct {
	FirstName      string `json:"first_name" validate:"notblank,max=255"`
	LastName       string `json:"last_name" validate:"notblank,max=255"`
	Age            int64  `json:"age"`
	Position       string `json:"position" validate:"max=255"`
	DepartmentName string `json:"department_name" validate:"notblank"`
} // @name CreateEmployeeRequest

func (req *CreateRequest) ToEntity(dep department.Entity) Entity {
	return Entity{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Age:            req.Age,
		Position:       strings.TrimSpace(req.Position),
		DepartmentId:   dep.Id,
		DepartmentName: dep.Name,
	}
}

// createDocument JSON:API форма запроса на создание: {"data": {"type": "employees", "attributes": {...}}}
type createDocument struct {
	Data *struct {
		Type       string        `json:"type"`
		Attributes CreateRequest `json:"attributes"`
	} `json:"data"`
}

// ListRequest параметры списка сотрудников после разбора query string
type ListRequest struct {
	Name           query.Terms
	DepartmentName query.Terms
	// значения параметра sort как пришли, каждое может содержать несколько полей через запятую
	Sort       []string
	PageNumber int64
	PageSize   int64
}

type ListResponse struct {
	Data []Response     `json:"data"`
	Meta query.PageMeta `json:"meta"`
} // @name EmployeePage
