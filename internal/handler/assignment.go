package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"workbook_service/internal/cache"
	"workbook_service/internal/domain"
	"workbook_service/internal/errdefs"
	"workbook_service/internal/pagerange"
	"workbook_service/internal/service"
)

type AssignmentService interface {
	AddAssignment(ctx context.Context, userID uuid.UUID, input *service.AddAssignmentInput) (*service.AddAssignmentResult, error)
	MergeAssignment(ctx context.Context, userID uuid.UUID, input *service.MergeAssignmentInput) (*domain.Assignment, error)
	DeleteAssignment(ctx context.Context, userID uuid.UUID, assignmentID int64) error
	ListAssignments(ctx context.Context, userID uuid.UUID) ([]*domain.AssignmentSummary, error)
}

type AssignmentHandler struct {
	svc   AssignmentService
	cache Cache
	ttl   time.Duration
}

func NewAssignmentHandler(svc AssignmentService, cache Cache, ttl time.Duration) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, cache: cache, ttl: ttl}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.addAssignment)
	r.Get("/", h.listAssignments)
	r.Post("/merge", h.mergeAssignment)
	r.Delete("/{assignmentID}", h.deleteAssignment)
}

type addAssignmentRequest struct {
	WorkbookID    int64             `json:"workbook_id"`
	Deadline      string            `json:"deadline"`
	Supplementary string            `json:"supplementary"`
	Ranges        pagerange.Payload `json:"assignment_page_ranges"`
	AddType       string            `json:"add_type"`
}

type mergeAssignmentRequest struct {
	WorkbookID         int64             `json:"workbook_id"`
	TargetAssignmentID int64             `json:"merge_target_assignment_id"`
	Supplementary      string            `json:"supplementary"`
	Ranges             pagerange.Payload `json:"assignment_page_ranges"`
}

type assignmentResponse struct {
	ID                   int64      `json:"id"`
	WorkbookID           int64      `json:"workbook_id"`
	Deadline             time.Time  `json:"deadline"`
	Supplementary        string     `json:"supplementary"`
	AssignmentPageRanges [][2]int   `json:"assignment_page_ranges"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

type addAssignmentResponse struct {
	Status         service.AddStatus   `json:"status"`
	Assignment     *assignmentResponse `json:"assignment,omitempty"`
	ConflictingIDs []int64             `json:"conflicting_assignment_ids,omitempty"`
}

// toAssignmentResponse fails only on an inverted stored range, which the
// page_ranges check constraint rules out.
func toAssignmentResponse(a *domain.Assignment) (*assignmentResponse, error) {
	ranges, err := pagerange.Normalize(a.ActiveRanges())
	if err != nil {
		return nil, fmt.Errorf("%w: assignment %d: %w", errdefs.ErrPersistence, a.ID, err)
	}
	return &assignmentResponse{
		ID:                   a.ID,
		WorkbookID:           a.WorkbookID,
		Deadline:             a.Deadline,
		Supplementary:        a.Supplementary,
		AssignmentPageRanges: pagerange.Pairs(ranges),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}, nil
}

func (h *AssignmentHandler) addAssignment(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req addAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	res, err := h.svc.AddAssignment(r.Context(), uid, &service.AddAssignmentInput{
		WorkbookID:    req.WorkbookID,
		Deadline:      req.Deadline,
		Supplementary: req.Supplementary,
		Ranges:        req.Ranges,
		AddType:       service.AddType(req.AddType),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	if res.Status == service.AddStatusConflict {
		writeJSON(w, http.StatusAccepted, addAssignmentResponse{
			Status:         res.Status,
			ConflictingIDs: res.ConflictingIDs,
		})
		return
	}

	h.invalidate(r.Context(), uid)
	resp, err := toAssignmentResponse(res.Assignment)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addAssignmentResponse{
		Status:     res.Status,
		Assignment: resp,
	})
}

func (h *AssignmentHandler) mergeAssignment(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req mergeAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	merged, err := h.svc.MergeAssignment(r.Context(), uid, &service.MergeAssignmentInput{
		WorkbookID:         req.WorkbookID,
		TargetAssignmentID: req.TargetAssignmentID,
		Supplementary:      req.Supplementary,
		Ranges:             req.Ranges,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.invalidate(r.Context(), uid)
	resp, err := toAssignmentResponse(merged)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AssignmentHandler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := parseIDParam(r, "assignmentID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.svc.DeleteAssignment(r.Context(), uid, id); err != nil {
		respondError(w, r, err)
		return
	}

	h.invalidate(r.Context(), uid)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AssignmentHandler) listAssignments(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	key := cache.AssignmentsKey(uid)
	if data, ok := h.cache.Get(r.Context(), key); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	summaries, err := h.svc.ListAssignments(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, data)
	h.cache.Set(r.Context(), key, data, h.ttl)
}

func (h *AssignmentHandler) invalidate(ctx context.Context, uid uuid.UUID) {
	h.cache.Delete(ctx, cache.AssignmentsKey(uid))
}
