package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/query"
	"github.com/NZpatelK/keyhook-test/inner/validator"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ExportLimit максимальное число строк в выгрузке
const ExportLimit = 10000

type Service struct {
	repo        Repo
	departments DepartmentResolver
	validator   Validator
	logger      *common.Logger
}

type Repo interface {
	Count(ctx context.Context, predicate query.Predicate) (int64, error)
	FindPage(ctx context.Context, predicate query.Predicate, order query.OrderSpec, offset, limit int64) ([]Entity, error)
	FindById(ctx context.Context, id int64) (Entity, error)
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)
	ExistsTx(ctx context.Context, tx *sqlx.Tx, candidate Candidate) (bool, error)
	SaveTx(ctx context.Context, tx *sqlx.Tx, employee Entity) (int64, error)
}

// DepartmentResolver находит отдел по названию (department.Service)
type DepartmentResolver interface {
	FindByName(ctx context.Context, name string) (department.Entity, error)
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, departments DepartmentResolver, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		validator:   validator,
		logger:      logger,
	}
}

// List возвращает страницу сотрудников с метаданными пагинации.
// Количество и страница считаются по одному и тому же предикату.
func (svc *Service) List(ctx context.Context, request ListRequest) (ListResponse, error) {
	predicate := query.CompileFilter(request.Name, request.DepartmentName)
	order, err := svc.compileSort(request.Sort)
	if err != nil {
		return ListResponse{}, err
	}

	svc.logger.Debug("Listing employees",
		zap.Int("conditions", len(predicate.Conditions)),
		zap.Strings("order", order.Clauses()),
		zap.Int64("page_number", request.PageNumber),
		zap.Int64("page_size", request.PageSize))

	total, err := svc.repo.Count(ctx, predicate)
	if err != nil {
		svc.logger.Error("Failed to count employees", zap.Error(err))
		return ListResponse{}, fmt.Errorf("error counting employees: %w", err)
	}

	page := query.Paginate(request.PageNumber, request.PageSize, total)
	response := ListResponse{Data: []Response{}, Meta: page.Meta}
	if page.Beyond() {
		svc.logger.Debug("Requested page is past the last record",
			zap.Int64("page_number", page.Meta.CurrentPage),
			zap.Int64("total_count", total))
		return response, nil
	}

	entities, err := svc.repo.FindPage(ctx, predicate, order, page.Offset, page.Limit)
	if err != nil {
		svc.logger.Error("Failed to find employees page",
			zap.Int64("offset", page.Offset),
			zap.Int64("limit", page.Limit),
			zap.Error(err))
		return ListResponse{}, fmt.Errorf("error finding employees page: %w", err)
	}
	for _, entity := range entities {
		response.Data = append(response.Data, entity.toResponse())
	}
	return response, nil
}

// Export возвращает отфильтрованный и отсортированный список без пагинации, не больше ExportLimit строк
func (svc *Service) Export(ctx context.Context, request ListRequest) ([]Response, error) {
	predicate := query.CompileFilter(request.Name, request.DepartmentName)
	order, err := svc.compileSort(request.Sort)
	if err != nil {
		return nil, err
	}

	entities, err := svc.repo.FindPage(ctx, predicate, order, 0, ExportLimit)
	if err != nil {
		svc.logger.Error("Failed to find employees for export", zap.Error(err))
		return nil, fmt.Errorf("error exporting employees: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	svc.logger.Info("Employees exported", zap.Int("count", len(responses)))
	return responses, nil
}

func (svc *Service) compileSort(raw []string) (query.OrderSpec, error) {
	order, err := query.CompileSort(query.SplitDirectives(raw))
	if err != nil {
		svc.logger.Warn("Invalid sort directive", zap.Strings("sort", raw), zap.Error(err))
		return nil, common.RequestValidationError{Message: err.Error()}
	}
	return order, nil
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.Int64("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to find employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

// Create создаёт сотрудника в отделе с указанным названием.
// Проверка дубликата и вставка выполняются в одной транзакции; при любой ошибке вставки нет.
func (svc *Service) Create(ctx context.Context, request CreateRequest) (response Response, err error) {
	svc.logger.Info("Creating new employee",
		zap.String("first_name", request.FirstName),
		zap.String("last_name", request.LastName),
		zap.String("department", request.DepartmentName))

	if err = svc.validateCreateRequest(request); err != nil {
		return Response{}, err
	}

	dep, err := svc.departments.FindByName(ctx, strings.TrimSpace(request.DepartmentName))
	if err != nil {
		return Response{}, err
	}

	entity := request.ToEntity(dep)
	candidate := Candidate{
		FirstName:      entity.FirstName,
		LastName:       entity.LastName,
		DepartmentId:   dep.Id,
		DepartmentName: dep.Name,
	}

	// запрашиваем у репозитория новую транзакцию
	tx, err := svc.repo.BeginTransaction(ctx)
	if err != nil {
		svc.logger.Error("Failed to begin transaction for employee creation",
			zap.String("name", candidate.FullName()),
			zap.Error(err))
		return Response{}, fmt.Errorf("error create employee: error creating transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				svc.logger.Error("Failed to rollback transaction",
					zap.String("name", candidate.FullName()),
					zap.Error(rollbackErr))
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			svc.logger.Error("Failed to commit transaction",
				zap.String("name", candidate.FullName()),
				zap.Error(commitErr))
			response = Response{}
			err = svc.insertError(candidate, commitErr)
		}
	}()

	if err = svc.validateUnique(ctx, tx, candidate); err != nil {
		return Response{}, err
	}

	entity.Id, err = svc.repo.SaveTx(ctx, tx, entity)
	if err != nil {
		svc.logger.Error("Failed to save new employee",
			zap.String("name", candidate.FullName()),
			zap.Error(err))
		return Response{}, svc.insertError(candidate, err)
	}

	svc.logger.Info("Employee created successfully",
		zap.String("name", entity.FullName()),
		zap.Int64("id", entity.Id),
		zap.Int64("department_id", entity.DepartmentId))
	return entity.toResponse(), nil
}

// insertError переводит нарушение уникального индекса в ошибку дубликата
func (svc *Service) insertError(candidate Candidate, err error) error {
	if isUniqueViolation(err) {
		return common.NewDuplicateEmployeeError(candidate.FullName(), candidate.DepartmentName)
	}
	return fmt.Errorf("error creating employee with name: %s: %w", candidate.FullName(), err)
}

// валидация запроса на создание сотрудника
func (svc *Service) validateCreateRequest(request CreateRequest) error {
	svc.logger.Debug("Validating create employee request", zap.Any("request", request))

	err := svc.validator.Validate(request)
	if err == nil {
		return nil
	}

	svc.logger.Warn("Employee creation request validation failed", zap.Error(err))

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return common.RequestValidationError{
			Message: validationErr.Error(),
			Data:    validationErr.Messages(),
		}
	}
	// Если это другая ошибка валидации, возвращаем её как есть
	return common.RequestValidationError{Message: err.Error()}
}
