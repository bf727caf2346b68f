package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// тип содержимого JSON:API ответов
const ContentTypeJsonApi = "application/vnd.api+json"

// Document конверт успешного ответа: данные и (для списков) метаданные пагинации
type Document[T any] struct {
	Data T   `json:"data"`
	Meta any `json:"meta,omitempty"`
} // @name Document

// ErrorDocument конверт ответа с ошибками
type ErrorDocument struct {
	Errors  []string `json:"errors"`
	Details any      `json:"details,omitempty"`
} // @name ErrorDocument

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	details ...any,
) error {
	response := ErrorDocument{
		Errors: []string{message},
	}
	if len(details) > 0 {
		response.Details = details[0]
	}
	return c.Status(code).JSON(response, ContentTypeJsonApi)
}

func OkResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.JSON(&Document[T]{Data: data}, ContentTypeJsonApi)
}

// PageResponse ответ со страницей данных и блоком meta
func PageResponse[T any](
	c *fiber.Ctx,
	data T,
	meta any,
) error {
	return c.JSON(&Document[T]{Data: data, Meta: meta}, ContentTypeJsonApi)
}

// CreatedResponse ответ 201 с созданной сущностью
func CreatedResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.Status(fiber.StatusCreated).JSON(&Document[T]{Data: data}, ContentTypeJsonApi)
}

// ErrorStatus сопоставляет доменную ошибку с HTTP статусом
func ErrorStatus(err error) int {
	switch {
	case errors.As(err, &MalformedRequestError{}):
		return fiber.StatusBadRequest
	case errors.As(err, &RequestValidationError{}),
		errors.As(err, &AlreadyExistsError{}),
		errors.As(err, &DepartmentNotFoundError{}):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &NotFoundError{}):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorFromService формирует ответ с ошибкой сервиса; детали валидации идут в details
func ErrorFromService(c *fiber.Ctx, err error) error {
	var validationErr RequestValidationError
	if errors.As(err, &validationErr) && validationErr.Data != nil {
		return ErrResponse(c, fiber.StatusUnprocessableEntity, validationErr.Message, validationErr.Data)
	}
	return ErrResponse(c, ErrorStatus(err), err.Error())
}
