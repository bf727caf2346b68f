package query

import "math"

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
)

// PageMeta блок meta ответа со списком
type PageMeta struct {
	TotalCount  int64  `json:"total_count"`
	TotalPages  int64  `json:"total_pages"`
	CurrentPage int64  `json:"current_page"`
	NextPage    *int64 `json:"next_page"`
	PrevPage    *int64 `json:"prev_page"`
} // @name PageMeta

type Page struct {
	Offset int64
	Limit  int64
	Meta   PageMeta
}

// Paginate считает offset/limit и метаданные страницы.
// totalCount должен быть посчитан с тем же предикатом, что и выбираемые данные.
func Paginate(pageNumber, pageSize, totalCount int64) Page {
	if pageNumber <= 0 {
		pageNumber = DefaultPageNumber
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}

	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}

	meta := PageMeta{
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: pageNumber,
	}
	if pageNumber < totalPages {
		next := pageNumber + 1
		meta.NextPage = &next
	}
	if pageNumber > 1 {
		prev := pageNumber - 1
		meta.PrevPage = &prev
	}

	return Page{
		Offset: offset(pageNumber, pageSize),
		Limit:  pageSize,
		Meta:   meta,
	}
}

// offset без переполнения для очень больших номеров страниц
func offset(pageNumber, pageSize int64) int64 {
	if pageNumber-1 > math.MaxInt64/pageSize {
		return math.MaxInt64
	}
	return (pageNumber - 1) * pageSize
}

// Beyond true, когда страница начинается за последней подходящей записью
func (p Page) Beyond() bool {
	return p.Offset >= p.Meta.TotalCount
}
