package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// maxScreenshotBytes caps uploaded screenshots at 5 MB.
const maxScreenshotBytes = 5 << 20

// TaskHandler handles member-facing task routes.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Submit handles POST /tasks/submit.
//
// @Summary      Submit a task for review
// @Tags         tasks
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title       formData  string  true   "Task title"
// @Param        description formData  string  false  "Task description"
// @Param        taskLink    formData  string  true   "Link to the completed task"
// @Param        screenshot  formData  file    false  "Screenshot (image, max 5MB)"
// @Success      201  {object}  domain.Task
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /tasks/submit [post]
func (h *TaskHandler) Submit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var form submitTaskForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.SubmitTaskInput{
		UserID:      userID,
		Title:       form.Title,
		Description: form.Description,
		TaskLink:    form.TaskLink,
	}

	fileHeader, err := c.FormFile("screenshot")
	if err == nil && fileHeader != nil {
		upload, file, err := openScreenshot(fileHeader)
		if err != nil {
			return err
		}
		defer file.Close()
		input.Screenshot = upload
	}

	task, err := h.service.Submit(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// openScreenshot enforces the upload policy (size cap, images only) and
// opens the multipart file for streaming to the image host.
func openScreenshot(fh *multipart.FileHeader) (*ports.ScreenshotUpload, multipart.File, error) {
	if fh.Size > maxScreenshotBytes {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "screenshot exceeds 5MB limit")
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "screenshot must be an image")
	}

	file, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "failed to read screenshot")
	}

	return &ports.ScreenshotUpload{
		Reader:      file,
		Size:        fh.Size,
		ContentType: contentType,
		Filename:    fh.Filename,
	}, file, nil
}

// Gallery handles GET /tasks/gallery.
//
// @Summary      List approved tasks (public gallery)
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  taskViewResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks/gallery [get]
func (h *TaskHandler) Gallery(c echo.Context) error {
	views, err := h.service.Gallery(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskViewResponses(views))
}

// MyTasks handles GET /tasks/my-tasks.
//
// @Summary      List the caller's own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Task
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks/my-tasks [get]
func (h *TaskHandler) MyTasks(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.MyTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskResponses(tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskViewResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	view, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskViewResponse(*view))
}
