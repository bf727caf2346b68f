package department

import (
	"context"
	"strconv"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server            *web.Server
	departmentService Svc
	logger            *common.Logger
}

// интерфейс сервиса department.Service
type Svc interface {
	FindById(ctx context.Context, id int64) (Response, error)
	FindAll(ctx context.Context) ([]Response, error)
}

func NewController(server *web.Server, departmentService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:            server,
		departmentService: departmentService,
		logger:            logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/departments"
	api := c.server.GroupApiV1
	api.Get("/departments", c.FindAllDepartments)
	api.Get("/departments/:id", c.FindDepartmentById)
}

// FindAllDepartments godoc
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {object}  common.Document[[]Response]
// @Failure      500  {object}  common.ErrorDocument
// @Router       /departments [get]
func (c *Controller) FindAllDepartments(ctx *fiber.Ctx) error {
	departments, err := c.departmentService.FindAll(ctx.UserContext())
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to list departments", zap.Error(err))
		return common.ErrorFromService(ctx, err)
	}
	return common.OkResponse(ctx, departments)
}

// FindDepartmentById godoc
// @Summary      Get department by id
// @Tags         departments
// @Produce      json
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  common.Document[Response]
// @Failure      400  {object}  common.ErrorDocument
// @Failure      404  {object}  common.ErrorDocument
// @Router       /departments/{id} [get]
func (c *Controller) FindDepartmentById(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid department ID")
	}

	department, err := c.departmentService.FindById(ctx.UserContext(), id)
	if err != nil {
		c.logger.WarnCtx(ctx, "Failed to get department", zap.Int64("id", id), zap.Error(err))
		return common.ErrorFromService(ctx, err)
	}
	return common.OkResponse(ctx, department)
}
