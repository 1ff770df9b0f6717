package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"taskflow/internal/auth"
	"taskflow/internal/config"
	"taskflow/internal/engine"
	"taskflow/internal/http/handler"
	mw "taskflow/internal/http/middleware"
	"taskflow/internal/notify"
	"taskflow/internal/reminder"
	"taskflow/internal/settings"
	"taskflow/internal/task"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, eng *engine.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	taskSvc := &task.Service{DB: db}
	reminderSvc := &reminder.Service{DB: db}

	taskH := &handler.TaskHandler{Svc: taskSvc, Engine: eng}
	taskRead := &handler.TaskReadHandler{Svc: taskSvc, Reminders: reminderSvc}

	r.Route("/tasks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", taskH.Save)
		r.Get("/", taskRead.List)

		r.Get("/{id}", taskRead.Get)
		r.Post("/{id}/complete", taskH.Complete)
		r.Delete("/{id}", taskH.Delete)
		r.Get("/{id}/reminders", taskRead.TaskReminders)
	})

	remH := &handler.ReminderHandler{Svc: reminderSvc, Engine: eng}
	remRead := &handler.ReminderReadHandler{Svc: reminderSvc}

	r.Route("/reminders", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", remH.Save)
		r.Get("/", remRead.List)

		r.Get("/{id}", remRead.Get)
		r.Post("/{id}/status", remH.UpdateStatus)
		r.Delete("/{id}", remH.Delete)
	})

	settingsH := &handler.SettingsHandler{Svc: &settings.Service{DB: db}}
	r.Route("/settings", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", settingsH.Get)
		r.Put("/", settingsH.Update)
	})

	notifH := &handler.NotificationHandler{Svc: &notify.Service{DB: db}}
	r.With(auth.RequireAuth(jwtSvc)).Get("/notifications", notifH.List)

	return r
}
