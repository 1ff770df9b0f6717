package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"taskflow/internal/auth"
	"taskflow/internal/engine"
	"taskflow/internal/task"
)

type TaskHandler struct {
	Svc    *task.Service
	Engine *engine.Engine
}

type saveTaskReq struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	DueDate     *string  `json:"due_date"` // RFC3339 optional
	Tags        []string `json:"tags"`
}

type taskDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

func toTaskDTO(t task.Task) taskDTO {
	return taskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		DueDate:     t.DueDate,
		Tags:        []string(t.Tags),
		CreatedAt:   t.CreatedAt,
		ModifiedAt:  t.ModifiedAt,
	}
}

func (h *TaskHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req saveTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var due *time.Time
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		t, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			http.Error(w, "invalid due_date (RFC3339)", http.StatusBadRequest)
			return
		}
		due = &t
	}

	t, err := h.Svc.Save(r.Context(), uid, task.SaveInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    task.Priority(strings.ToUpper(strings.TrimSpace(req.Priority))),
		Category:    task.Category(strings.ToLower(strings.TrimSpace(req.Category))),
		DueDate:     due,
		Tags:        req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		case errors.Is(err, task.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(toTaskDTO(t))
}

type completeReq struct {
	Completed bool `json:"completed"`
}

// Complete toggles the completion flag through the engine. Pending reminder
// jobs stay scheduled; fire-time suppression covers them.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
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

	var req completeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if err := h.Engine.OnTaskCompleted(r.Context(), id, req.Completed); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete runs the full cascade: jobs cancelled, reminders removed, task
// removed.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Engine.OnTaskDeleted(r.Context(), id); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
