package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workbook_service/internal/middleware"
	"workbook_service/pkg/logging"
)

type RouterConfig struct {
	Logger       *logging.Logger
	Assignments  AssignmentService
	Workbooks    WorkbookService
	Pages        PageService
	Tasks        TaskService
	Cache        Cache
	CacheTTL     time.Duration
	MaxBodyBytes int64
	Metrics      http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, maxBody)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	assignmentHandler := NewAssignmentHandler(cfg.Assignments, cfg.Cache, cfg.CacheTTL)
	workbookHandler := NewWorkbookHandler(cfg.Workbooks, cfg.Pages, cfg.Cache)
	taskHandler := NewTaskHandler(cfg.Tasks)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewIdentityMiddleware())

		r.Route("/workbooks", workbookHandler.RegisterRoutes)
		r.Route("/assignments", assignmentHandler.RegisterRoutes)
		r.Route("/tasks", taskHandler.RegisterRoutes)
	})

	return r
}
