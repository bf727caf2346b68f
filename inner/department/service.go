package department

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/NZpatelK/keyhook-test/inner/common"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repo
	logger *common.Logger
}

type Repo interface {
	FindById(ctx context.Context, id int64) (Entity, error)
	FindByName(ctx context.Context, name string) (Entity, error)
	FindAll(ctx context.Context) ([]Entity, error)
	Add(ctx context.Context, department *Entity) error
}

// функция-конструктор
func NewService(repo Repo, logger *common.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	svc.logger.Debug("Finding department by ID", zap.Int64("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to find department by ID", zap.Int64("id", id), zap.Error(err))
		return Response{}, fmt.Errorf("error finding department with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

// FindByName разрешает название отдела в сущность; отсутствие отдела - DepartmentNotFoundError
func (svc *Service) FindByName(ctx context.Context, name string) (Entity, error) {
	svc.logger.Debug("Resolving department by name", zap.String("name", name))

	entity, err := svc.repo.FindByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		svc.logger.Warn("Department not found", zap.String("name", name))
		return Entity{}, common.DepartmentNotFoundError{Name: name}
	}
	if err != nil {
		svc.logger.Error("Failed to find department by name", zap.String("name", name), zap.Error(err))
		return Entity{}, fmt.Errorf("error finding department with name %s: %w", name, err)
	}
	return entity, nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	svc.logger.Debug("Finding all departments")

	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all departments", zap.Error(err))
		return nil, fmt.Errorf("error finding all departments: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	return responses, nil
}

// EnsureExists возвращает отдел с таким названием, создавая его при отсутствии
func (svc *Service) EnsureExists(ctx context.Context, name string) (Entity, error) {
	entity, err := svc.FindByName(ctx, name)
	if err == nil {
		return entity, nil
	}
	if !errors.As(err, &common.DepartmentNotFoundError{}) {
		return Entity{}, err
	}

	entity = Entity{Name: name}
	if err := svc.repo.Add(ctx, &entity); err != nil {
		svc.logger.Error("Failed to add department", zap.String("name", name), zap.Error(err))
		return Entity{}, fmt.Errorf("error adding department %s: %w", name, err)
	}
	svc.logger.Info("Department created", zap.String("name", name), zap.Int64("id", entity.Id))
	return entity, nil
}
