package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"taskflow/internal/auth"
	"taskflow/internal/reminder"
)

type ReminderReadHandler struct {
	Svc *reminder.Service
}

func (h *ReminderReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	window := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("window")))
	switch window {
	case "", "24h", "week":
	default:
		http.Error(w, "invalid window", http.StatusBadRequest)
		return
	}

	rows, err := h.Svc.List(r.Context(), uid, window)
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

func (h *ReminderReadHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	rem, err := h.Svc.Get(r.Context(), uid, id)
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toReminderDTO(rem))
}
