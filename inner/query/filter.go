package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// колонки выборки: e - таблица employee, d - присоединённая таблица department
const (
	ColumnId             = "e.id"
	ColumnFirstName      = "e.first_name"
	ColumnLastName       = "e.last_name"
	ColumnAge            = "e.age"
	ColumnPosition       = "e.position"
	ColumnDepartmentId   = "e.department_id"
	ColumnDepartmentName = "d.name"
)

// измерения фильтрации
const (
	FilterName           = "name"
	FilterDepartmentName = "department_name"
)

// filterDimensions измерение фильтра -> колонки, в которых ищется подстрока
var filterDimensions = map[string][]string{
	FilterName:           {ColumnFirstName, ColumnLastName},
	FilterDepartmentName: {ColumnDepartmentName},
}

// Condition выполняется, если хотя бы один терм входит подстрокой хотя бы в одну из колонок.
// Термы хранятся в нижнем регистре.
type Condition struct {
	Dimension string
	Columns   []string
	Terms     []string
}

// Predicate конъюнкция условий; пустой предикат пропускает все записи
type Predicate struct {
	Conditions []Condition
}

// CompileFilter строит предикат из фильтра по имени и фильтра по названию отдела
func CompileFilter(name, departmentName Terms) Predicate {
	var predicate Predicate
	predicate.add(FilterName, name)
	predicate.add(FilterDepartmentName, departmentName)
	return predicate
}

func (p *Predicate) add(dimension string, terms Terms) {
	effective := terms.Effective()
	if len(effective) == 0 {
		return
	}
	lowered := make([]string, len(effective))
	for i, term := range effective {
		lowered[i] = strings.ToLower(term)
	}
	p.Conditions = append(p.Conditions, Condition{
		Dimension: dimension,
		Columns:   filterDimensions[dimension],
		Terms:     lowered,
	})
}

func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// ToSql реализует squirrel.Sqlizer
func (p Predicate) ToSql() (string, []any, error) {
	and := sq.And{}
	for _, condition := range p.Conditions {
		or := sq.Or{}
		for _, term := range condition.Terms {
			pattern := "%" + escapeLike(term) + "%"
			for _, column := range condition.Columns {
				or = append(or, sq.Expr(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern))
			}
		}
		and = append(and, or)
	}
	return and.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы терм искался буквально
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
