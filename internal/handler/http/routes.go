package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.welcome)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// routes behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/api/auth/password", h.changePassword)

		r.Get("/api/user", h.getProfile)
		r.Patch("/api/user", h.updateProfile)

		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{id}", h.getTask)
		r.Patch("/api/tasks/{id}", h.updateTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)
		r.Patch("/api/tasks/restore/{id}", h.restoreTask)
		r.Patch("/api/tasks/complete/{id}", h.completeTask)
		r.Patch("/api/tasks/incomplete/{id}", h.incompleteTask)
	})

	return router
}
