package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quicklist/todo-api/internal/api/metrics"
	"github.com/quicklist/todo-api/internal/core/domain"
	"github.com/quicklist/todo-api/internal/core/ports"
)

// TodoHandler handles the owner-scoped CRUD endpoints. Every handler runs the
// same sequence: resolve the acting user from context, validate path and body,
// make exactly one service call, map the result. Error branches return plain
// errors for the central HTTP error handler.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// pathID validates the :id path parameter before any store call is attempted.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", domain.ErrInvalidID
	}
	return id, nil
}

// List handles GET /todo.
//
// @Summary      List the user's todos, newest first
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTodosResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /todo [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(todos))
}

// Create handles POST /todo.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      201   {object}  todoDataResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.service.Create(c.Request().Context(), ports.CreateTodoInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, todoDataResponse{Data: toTodoResponse(todo)})
}

// Get handles GET /todo/:id.
//
// @Summary      Get a todo by id
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  todoDataResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /todo/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todoDataResponse{Data: toTodoResponse(todo)})
}

// Update handles PUT /todo/:id.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Todo id"
// @Param        body  body      updateTodoRequest  true  "Fields to update"
// @Success      200   {object}  todoDataResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.service.Update(c.Request().Context(), id, userID, toUpdateInput(req))
	if err != nil {
		return err
	}

	if req.Status != nil && domain.TodoStatus(*req.Status) == domain.StatusCompleted {
		metrics.TodosCompletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, todoDataResponse{Data: toTodoResponse(todo)})
}

// Delete handles DELETE /todo/:id.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	metrics.TodosDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo deleted"})
}
