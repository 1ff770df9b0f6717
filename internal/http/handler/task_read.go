package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"taskflow/internal/auth"
	"taskflow/internal/reminder"
	"taskflow/internal/task"
)

type TaskReadHandler struct {
	Svc       *task.Service
	Reminders *reminder.Service
}

func (h *TaskReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	q := r.URL.Query()

	var f task.ListFilter

	switch strings.ToLower(strings.TrimSpace(q.Get("completed"))) {
	case "true":
		v := true
		f.Completed = &v
	case "false":
		v := false
		f.Completed = &v
	}

	if v := strings.ToUpper(strings.TrimSpace(q.Get("priority"))); v != "" {
		p := task.Priority(v)
		if !p.Valid() {
			http.Error(w, "invalid priority", http.StatusBadRequest)
			return
		}
		f.Priority = p
	}
	if v := strings.ToLower(strings.TrimSpace(q.Get("category"))); v != "" {
		c := task.Category(v)
		if !c.Valid() {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		f.Category = c
	}

	f.Tag = strings.TrimSpace(q.Get("tag"))
	f.Query = strings.TrimSpace(q.Get("q"))

	switch v := strings.ToLower(strings.TrimSpace(q.Get("due"))); v {
	case "", "upcoming", "overdue":
		f.Due = v
	default:
		http.Error(w, "invalid due filter", http.StatusBadRequest)
		return
	}

	rows, err := h.Svc.List(r.Context(), uid, f)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]taskDTO, 0, len(rows))
	for _, t := range rows {
		out = append(out, toTaskDTO(t))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *TaskReadHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	t, err := h.Svc.Get(r.Context(), uid, id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTaskDTO(t))
}

func (h *TaskReadHandler) TaskReminders(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if _, err := h.Svc.Get(r.Context(), uid, id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	rows, err := h.Reminders.ListByTask(r.Context(), uid, id)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]reminderDTO, 0, len(rows))
	for _, rem := range rows {
		out = append(out, toReminderDTO(rem))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
