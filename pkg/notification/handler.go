package notification

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasa/kasa-web/internal/rest"
)

type NotificationDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center}
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	active := h.center.Active()
	dtos := make([]NotificationDTO, 0, len(active))
	for _, n := range active {
		dtos = append(dtos, NotificationDTO{
			ID:        n.ID.String(),
			Message:   n.Message,
			Type:      n.Type,
			ExpiresAt: n.ExpiresAt,
		})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["notificationId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid notification id", err.Error())
		return
	}
	if !h.center.Dismiss(id) {
		rest.WriteError(w, http.StatusNotFound, "notification not found", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
