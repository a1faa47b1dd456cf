package handler

import (
	"time"

	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// submitTaskForm carries the multipart fields of POST /tasks/submit.
// The screenshot file is handled separately by the handler.
type submitTaskForm struct {
	Title       string `form:"title"       validate:"required"`
	Description string `form:"description"`
	TaskLink    string `form:"taskLink"    validate:"required,url"`
}

type screenshotResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

// taskViewResponse is the enriched task representation used by listings.
type taskViewResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	TaskLink       string             `json:"task_link"`
	Screenshot     screenshotResponse `json:"screenshot"`
	Status         string             `json:"status"`
	Feedback       string             `json:"feedback,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
	ReviewedAt     *time.Time         `json:"reviewed_at,omitempty"`
	SubmitterName  string             `json:"submitter_name,omitempty"`
	SubmitterEmail string             `json:"submitter_email,omitempty"`
	ReviewerName   string             `json:"reviewer_name,omitempty"`
}

func toTaskViewResponse(v ports.TaskView) taskViewResponse {
	return taskViewResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		TaskLink:       v.TaskLink,
		Screenshot:     screenshotResponse{URL: v.Screenshot.URL, PublicID: v.Screenshot.PublicID},
		Status:         v.Status,
		Feedback:       v.Feedback,
		SubmittedAt:    v.SubmittedAt,
		ReviewedAt:     v.ReviewedAt,
		SubmitterName:  v.SubmitterName,
		SubmitterEmail: v.SubmitterEmail,
		ReviewerName:   v.ReviewerName,
	}
}

func toTaskViewResponses(views []ports.TaskView) []taskViewResponse {
	out := make([]taskViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toTaskViewResponse(v))
	}
	return out
}

// taskResponses converts plain domain tasks (my-tasks, review results).
func taskResponses(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}
