package common

import "fmt"

// RequestValidationError ошибка валидации входных данных (отсутствующие поля, неизвестное поле сортировки)
type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

// MalformedRequestError тело или параметры запроса не удалось разобрать
type MalformedRequestError struct {
	Message string `json:"message"`
}

func (err MalformedRequestError) Error() string {
	return err.Message
}

// AlreadyExistsError сотрудник с таким же именем уже есть в отделе
type AlreadyExistsError struct {
	Message    string `json:"message"`
	FullName   string `json:"full_name,omitempty"`
	Department string `json:"department,omitempty"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NewDuplicateEmployeeError создаёт ошибку дубликата с полным именем и отделом
func NewDuplicateEmployeeError(fullName, department string) error {
	return AlreadyExistsError{
		Message:    fmt.Sprintf("employee %s already exists in department %s", fullName, department),
		FullName:   fullName,
		Department: department,
	}
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}

// DepartmentNotFoundError отдел с указанным названием не найден при создании сотрудника
type DepartmentNotFoundError struct {
	Name string `json:"name"`
}

func (err DepartmentNotFoundError) Error() string {
	return fmt.Sprintf("department %s not found", err.Name)
}
