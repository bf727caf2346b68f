package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/query"
	"github.com/NZpatelK/keyhook-test/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// параметры query string списка сотрудников
const (
	paramPageNumber           = "page[number]"
	paramPageSize             = "page[size]"
	paramFilterName           = "filter[name]"
	paramFilterDepartmentName = "filter[department_name]"
	paramSort                 = "sort"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	List(ctx context.Context, request ListRequest) (ListResponse, error)
	Export(ctx context.Context, request ListRequest) ([]Response, error)
	FindById(ctx context.Context, id int64) (Response, error)
	Create(ctx context.Context, request CreateRequest) (Response, error)
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Get("/employees", c.ListEmployees)
	api.Get("/employees/export", c.ExportEmployees)
	api.Get("/employees/:id", c.GetEmployee)
	api.Post("/employees", c.server.Protected(c.CreateEmployee)...)
}

// ListEmployees godoc
// @Summary      List employees
// @Description  Paginated list filtered by name and department name substrings
// @Tags         employees
// @Produce      json
// @Param        page[number]             query     int     false  "Page number (default 1)"
// @Param        page[size]               query     int     false  "Page size (default 20)"
// @Param        filter[name]             query     string  false  "Substring of first or last name, may repeat"
// @Param        filter[department_name]  query     string  false  "Substring of department name, may repeat"
// @Param        sort                     query     string  false  "Comma separated fields, '-' prefix for descending"
// @Success      200  {object}  ListResponse
// @Failure      422  {object}  common.ErrorDocument
// @Failure      500  {object}  common.ErrorDocument
// @Router       /employees [get]
func (c *Controller) ListEmployees(ctx *fiber.Ctx) error {
	request := parseListRequest(ctx.Context().QueryArgs())

	response, err := c.employeeService.List(ctx.UserContext(), request)
	if err != nil {
		return common.ErrorFromService(ctx, err)
	}
	return common.PageResponse(ctx, response.Data, response.Meta)
}

// ExportEmployees godoc
// @Summary      Export employees to xlsx
// @Tags         employees
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        filter[name]             query     string  false  "Substring of first or last name, may repeat"
// @Param        filter[department_name]  query     string  false  "Substring of department name, may repeat"
// @Param        sort                     query     string  false  "Comma separated fields, '-' prefix for descending"
// @Success      200  {file}    file
// @Failure      422  {object}  common.ErrorDocument
// @Router       /employees/export [get]
func (c *Controller) ExportEmployees(ctx *fiber.Ctx) error {
	request := parseListRequest(ctx.Context().QueryArgs())

	employees, err := c.employeeService.Export(ctx.UserContext(), request)
	if err != nil {
		return common.ErrorFromService(ctx, err)
	}

	workbook, err := WriteWorkbook(employees)
	if err != nil {
		c.logger.ErrorCtx(ctx, "Failed to build workbook", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format(exportFileTimeFmt))
	ctx.Set(fiber.HeaderContentType, ContentTypeXlsx)
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Send(workbook.Bytes())
}

// GetEmployee godoc
// @Summary      Get employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  common.Document[Response]
// @Failure      400  {object}  common.ErrorDocument
// @Failure      404  {object}  common.ErrorDocument
// @Router       /employees/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := c.employeeService.FindById(ctx.UserContext(), id)
	if err != nil {
		return common.ErrorFromService(ctx, err)
	}
	return common.OkResponse(ctx, employee)
}

// CreateEmployee godoc
// @Summary      Create employee
// @Description  Accepts a JSON:API document or a flat attributes object
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Employee attributes"
// @Success      201  {object}  common.Document[Response]
// @Failure      400  {object}  common.ErrorDocument
// @Failure      401  {object}  common.ErrorDocument
// @Failure      403  {object}  common.ErrorDocument
// @Failure      422  {object}  common.ErrorDocument
// @Security     OAuth2
// @Router       /employees [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {
	request, err := parseCreateRequest(ctx.Body())
	if err != nil {
		c.logger.WarnCtx(ctx, "Malformed create employee payload", zap.Error(err))
		return common.ErrorFromService(ctx, err)
	}

	employee, err := c.employeeService.Create(ctx.UserContext(), request)
	if err != nil {
		c.logger.WarnCtx(ctx, "Employee was not created", zap.Error(err))
		return common.ErrorFromService(ctx, err)
	}
	return common.CreatedResponse(ctx, employee)
}

// parseCreateRequest принимает как документ {"data": {"attributes": {...}}}, так и плоский объект атрибутов
func parseCreateRequest(body []byte) (CreateRequest, error) {
	var document createDocument
	if err := json.Unmarshal(body, &document); err != nil {
		return CreateRequest{}, common.MalformedRequestError{Message: "malformed request body: " + err.Error()}
	}
	if document.Data != nil {
		return document.Data.Attributes, nil
	}

	var request CreateRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return CreateRequest{}, common.MalformedRequestError{Message: "malformed request body: " + err.Error()}
	}
	return request, nil
}

func parseListRequest(args *fasthttp.Args) ListRequest {
	return ListRequest{
		Name:           query.ParseTerms(peekAll(args, paramFilterName, paramFilterName+"[]")),
		DepartmentName: query.ParseTerms(peekAll(args, paramFilterDepartmentName, paramFilterDepartmentName+"[]")),
		Sort:           peekAll(args, paramSort, paramSort+"[]"),
		PageNumber:     parsePageParam(args, paramPageNumber),
		PageSize:       parsePageParam(args, paramPageSize),
	}
}

// parsePageParam отсутствующий или нечисловой параметр - 0, query.Paginate подставит значение по умолчанию
func parsePageParam(args *fasthttp.Args, key string) int64 {
	value, err := strconv.ParseInt(string(args.Peek(key)), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// peekAll собирает все значения параметра, в том числе повторённого и в форме key[]
func peekAll(args *fasthttp.Args, keys ...string) []string {
	var values []string
	for _, key := range keys {
		for _, value := range args.PeekMulti(key) {
			values = append(values, string(value))
		}
	}
	return values
}
