// Package query содержит чистые функции сборки выборки сотрудников:
// компиляцию фильтров и сортировки и расчёт пагинации.
package query

import "strings"

// TermsKind вид значения параметра фильтра
type TermsKind int

const (
	TermsAbsent TermsKind = iota
	TermsOne
	TermsMany
)

// Terms значение параметра, пришедшего строкой или списком строк
type Terms struct {
	kind   TermsKind
	values []string
}

func One(term string) Terms {
	return Terms{kind: TermsOne, values: []string{term}}
}

func Many(terms ...string) Terms {
	return Terms{kind: TermsMany, values: append([]string(nil), terms...)}
}

// ParseTerms собирает Terms из сырых значений параметра запроса:
// ни одного значения - параметр отсутствует, одно - One, несколько - Many
func ParseTerms(raw []string) Terms {
	switch len(raw) {
	case 0:
		return Terms{}
	case 1:
		return One(raw[0])
	default:
		return Many(raw...)
	}
}

func (t Terms) Kind() TermsKind {
	return t.kind
}

// Effective возвращает непустые термы; пустая строка равносильна отсутствию фильтра
func (t Terms) Effective() []string {
	var effective []string
	for _, term := range t.values {
		if strings.TrimSpace(term) != "" {
			effective = append(effective, term)
		}
	}
	return effective
}

// IsEmpty true, когда фильтр не накладывает ограничений
func (t Terms) IsEmpty() bool {
	return len(t.Effective()) == 0
}
