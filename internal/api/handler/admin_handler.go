package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// AdminHandler handles admin-only task and user management routes. The
// admin role is already enforced by the RBAC middleware.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListTasks handles GET /admin/tasks.
//
// @Summary      List all tasks
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  taskViewResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/tasks [get]
func (h *AdminHandler) ListTasks(c echo.Context) error {
	views, err := h.service.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskViewResponses(views))
}

// UpdateTaskStatus handles PATCH /admin/tasks/:id/status.
//
// @Summary      Approve or reject a task
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Task id"
// @Param        body  body      updateTaskStatusRequest  true  "Review decision"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/tasks/{id}/status [patch]
func (h *AdminHandler) UpdateTaskStatus(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.ReviewTask(c.Request().Context(), ports.ReviewTaskInput{
		TaskID:   c.Param("id"),
		AdminID:  adminID,
		Status:   domain.TaskStatus(req.Status),
		Feedback: req.Feedback,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /admin/tasks/:id.
//
// @Summary      Delete a task
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/tasks/{id} [delete]
func (h *AdminHandler) DeleteTask(c echo.Context) error {
	if err := h.service.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "task deleted successfully"})
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// SetVerification handles PATCH /admin/users/:id/verify.
//
// @Summary      Set a user's verification flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "User id"
// @Param        body  body      setVerificationRequest  true  "Verification flag"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/verify [patch]
func (h *AdminHandler) SetVerification(c echo.Context) error {
	var req setVerificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.SetUserVerification(c.Request().Context(), c.Param("id"), *req.IsVerified)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id.
//
// @Summary      Delete a user and all their tasks
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}
