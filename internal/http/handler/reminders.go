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
	"taskflow/internal/reminder"
)

type ReminderHandler struct {
	Svc    *reminder.Service
	Engine *engine.Engine
}

type saveReminderReq struct {
	ID             string `json:"id"`
	TaskID         string `json:"task_id"`
	FireTime       string `json:"fire_time"` // RFC3339
	Title          string `json:"title"`
	Message        string `json:"message"`
	Enabled        *bool  `json:"enabled"`
	Repeating      bool   `json:"repeating"`
	RepeatInterval string `json:"repeat_interval"`
}

type reminderDTO struct {
	ID             string    `json:"id"`
	TaskID         string    `json:"task_id"`
	FireTime       time.Time `json:"fire_time"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Enabled        bool      `json:"enabled"`
	Repeating      bool      `json:"repeating"`
	RepeatInterval string    `json:"repeat_interval,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toReminderDTO(r reminder.Reminder) reminderDTO {
	return reminderDTO{
		ID:             r.ID,
		TaskID:         r.TaskID,
		FireTime:       r.FireTime,
		Title:          r.Title,
		Message:        r.Message,
		Enabled:        r.Enabled,
		Repeating:      r.Repeating,
		RepeatInterval: string(r.RepeatInterval),
		CreatedAt:      r.CreatedAt,
	}
}

// Save persists the reminder and re-applies the scheduling policy: the
// pending job is always superseded, then a new one is scheduled only when
// the policy allows.
func (h *ReminderHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req saveReminderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	fireTime, err := time.Parse(time.RFC3339, strings.TrimSpace(req.FireTime))
	if err != nil {
		http.Error(w, "invalid fire_time (RFC3339)", http.StatusBadRequest)
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	rem, err := h.Svc.Save(r.Context(), uid, reminder.SaveInput{
		ID:             req.ID,
		TaskID:         req.TaskID,
		FireTime:       fireTime,
		Title:          req.Title,
		Message:        req.Message,
		Enabled:        enabled,
		Repeating:      req.Repeating,
		RepeatInterval: reminder.RepeatInterval(strings.ToLower(strings.TrimSpace(req.RepeatInterval))),
	})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		case errors.Is(err, reminder.ErrTaskNotFound):
			http.Error(w, "task not found", http.StatusBadRequest)
		case errors.Is(err, reminder.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	if err := h.Engine.ScheduleReminder(r.Context(), rem, time.Now()); err != nil {
		http.Error(w, "failed to schedule reminder", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(toReminderDTO(rem))
}

type statusReq struct {
	Enabled bool `json:"enabled"`
}

func (h *ReminderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req statusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	rem, err := h.Svc.UpdateStatus(r.Context(), uid, id, req.Enabled)
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// Enabling re-schedules, disabling cancels; both paths are idempotent.
	if rem.Enabled {
		err = h.Engine.ScheduleReminder(r.Context(), rem, time.Now())
	} else {
		err = h.Engine.CancelReminder(r.Context(), rem.ID)
	}
	if err != nil {
		http.Error(w, "failed to update schedule", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toReminderDTO(rem))
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), uid, id); err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	if err := h.Engine.CancelReminder(r.Context(), id); err != nil {
		http.Error(w, "failed to cancel job", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
