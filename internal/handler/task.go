package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"workbook_service/internal/domain"
	"workbook_service/internal/service"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, input *service.CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	SetTaskCompleted(ctx context.Context, userID uuid.UUID, taskID int64, completed bool) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID int64) error
}

type TaskHandler struct {
	svc TaskService
}

func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createTask)
	r.Get("/", h.listTasks)
	r.Patch("/{taskID}", h.updateTask)
	r.Delete("/{taskID}", h.deleteTask)
}

type createTaskRequest struct {
	Title         string  `json:"title"`
	Supplementary *string `json:"supplementary"`
	Deadline      *string `json:"deadline"`
}

type updateTaskRequest struct {
	Completed *bool `json:"completed"`
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createTaskRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	task, err := h.svc.CreateTask(r.Context(), uid, &service.CreateTaskInput{
		Title:         req.Title,
		Supplementary: req.Supplementary,
		Deadline:      req.Deadline,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := parseIDParam(r, "taskID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Completed == nil {
		respondError(w, r, fmt.Errorf("%w: completed is required", ErrBadRequest))
		return
	}

	task, err := h.svc.SetTaskCompleted(r.Context(), uid, id, *req.Completed)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := parseIDParam(r, "taskID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), uid, id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
