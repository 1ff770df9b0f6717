package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskflow/internal/auth"
	"taskflow/internal/notify"
)

type NotificationHandler struct {
	Svc *notify.Service
}

type notificationDTO struct {
	Key         string    `json:"key"`
	TaskID      string    `json:"task_id"`
	ReminderID  string    `json:"reminder_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	rows, err := h.Svc.List(r.Context(), uid, limit)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]notificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, notificationDTO{
			Key:         n.Key,
			TaskID:      n.TaskID,
			ReminderID:  n.ReminderID,
			Title:       n.Title,
			Body:        n.Body,
			DeliveredAt: n.DeliveredAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
