package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"workbook_service/internal/cache"
	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
)

type WorkbookService interface {
	CreateWorkbook(ctx context.Context, userID uuid.UUID, title string) (*domain.Workbook, error)
	ListWorkbooks(ctx context.Context, userID uuid.UUID) ([]*domain.WorkbookSummary, error)
	DeleteWorkbook(ctx context.Context, userID uuid.UUID, workbookID int64) error
}

type PageService interface {
	MarkPages(ctx context.Context, userID uuid.UUID, workbookID int64, ranges []pagerange.Range, completed bool) (int, error)
}

type WorkbookHandler struct {
	workbooks WorkbookService
	pages     PageService
	cache     Cache
}

func NewWorkbookHandler(workbooks WorkbookService, pages PageService, cache Cache) *WorkbookHandler {
	return &WorkbookHandler{workbooks: workbooks, pages: pages, cache: cache}
}

func (h *WorkbookHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createWorkbook)
	r.Get("/", h.listWorkbooks)
	r.Delete("/{workbookID}", h.deleteWorkbook)
	r.Post("/{workbookID}/pages", h.markPages)
}

type createWorkbookRequest struct {
	Title string `json:"title"`
}

type workbookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type markPagesRequest struct {
	CompletedRanges pagerange.Payload `json:"completed_ranges"`
	Completed       *bool             `json:"completed"`
}

type markPagesResponse struct {
	Marked int `json:"marked"`
}

func (h *WorkbookHandler) createWorkbook(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createWorkbookRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	wb, err := h.workbooks.CreateWorkbook(r.Context(), uid, req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, workbookResponse{ID: wb.ID, Title: wb.Title, CreatedAt: wb.CreatedAt})
}

func (h *WorkbookHandler) listWorkbooks(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	summaries, err := h.workbooks.ListWorkbooks(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *WorkbookHandler) deleteWorkbook(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := parseIDParam(r, "workbookID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.workbooks.DeleteWorkbook(r.Context(), uid, id); err != nil {
		respondError(w, r, err)
		return
	}

	h.cache.Delete(r.Context(), cache.AssignmentsKey(uid))
	w.WriteHeader(http.StatusNoContent)
}

// markPages defaults to marking pages completed when the flag is omitted.
func (h *WorkbookHandler) markPages(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := parseIDParam(r, "workbookID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req markPagesRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	n, err := h.pages.MarkPages(r.Context(), uid, id, req.CompletedRanges, completed)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.cache.Delete(r.Context(), cache.AssignmentsKey(uid))
	writeJSON(w, http.StatusOK, markPagesResponse{Marked: n})
}
