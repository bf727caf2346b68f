package department

import "time"

type Entity struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:   e.Id,
		Name: e.Name,
	}
}

type Response struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
} // @name Department
