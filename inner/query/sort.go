package query

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// префикс поля, означающий сортировку по убыванию
const descPrefix = "-"

// sortableFields поле сортировки -> колонка
var sortableFields = map[string]string{
	"first_name": ColumnFirstName,
	"last_name":  ColumnLastName,
	"age":        ColumnAge,
	"position":   ColumnPosition,
}

type OrderTerm struct {
	Field     string
	Column    string
	Direction Direction
}

// OrderSpec упорядоченный список ключей сортировки, первый - главный
type OrderSpec []OrderTerm

// UnknownSortFieldError поле сортировки не входит в список разрешённых
type UnknownSortFieldError struct {
	Field string
}

func (err UnknownSortFieldError) Error() string {
	return fmt.Sprintf("unsupported sort field %q", err.Field)
}

// SplitDirectives разворачивает значения параметра sort, каждое из которых может быть списком через запятую
func SplitDirectives(raw []string) []string {
	var directives []string
	for _, value := range raw {
		directives = append(directives, strings.Split(value, ",")...)
	}
	return directives
}

// CompileSort превращает директивы вида "last_name", "-age" в OrderSpec.
// Пустые директивы отбрасываются, повтор поля не меняет порядок, неизвестное поле - ошибка.
func CompileSort(directives []string) (OrderSpec, error) {
	spec := OrderSpec{}
	seen := make(map[string]bool)
	for _, raw := range directives {
		field := strings.TrimSpace(raw)
		direction := Asc
		if strings.HasPrefix(field, descPrefix) {
			direction = Desc
			field = strings.TrimSpace(strings.TrimPrefix(field, descPrefix))
		}
		if field == "" {
			continue
		}
		column, ok := sortableFields[field]
		if !ok {
			return nil, UnknownSortFieldError{Field: field}
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		spec = append(spec, OrderTerm{Field: field, Column: column, Direction: direction})
	}
	return spec, nil
}

// Clauses возвращает выражения ORDER BY. Последним всегда идёт id,
// поэтому порядок полный и страницы не пересекаются между запросами.
func (s OrderSpec) Clauses() []string {
	clauses := make([]string, 0, len(s)+1)
	for _, term := range s {
		clauses = append(clauses, term.Column+" "+string(term.Direction))
	}
	return append(clauses, ColumnId+" "+string(Asc))
}
