package handler

import (
	"encoding/json"
	"net/http"

	"taskflow/internal/auth"
	"taskflow/internal/settings"
)

type SettingsHandler struct {
	Svc *settings.Service
}

type settingsDTO struct {
	NotificationsEnabled         bool `json:"notifications_enabled"`
	ReminderNotificationsEnabled bool `json:"reminder_notifications_enabled"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	s, err := h.Svc.Get(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settingsDTO{
		NotificationsEnabled:         s.NotificationsEnabled,
		ReminderNotificationsEnabled: s.ReminderNotificationsEnabled,
	})
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req settingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.Svc.Update(r.Context(), uid, req.NotificationsEnabled, req.ReminderNotificationsEnabled)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settingsDTO{
		NotificationsEnabled:         s.NotificationsEnabled,
		ReminderNotificationsEnabled: s.ReminderNotificationsEnabled,
	})
}
