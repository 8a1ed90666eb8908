package contact

import (
	"encoding/json"
	"net/http"

	"github.com/kasa/kasa-web/internal/rest"
	"github.com/kasa/kasa-web/pkg/notification"
)

type MessageDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ResultDTO struct {
	Message string `json:"message"`
}

type Handler struct {
	service  *Service
	notifier *notification.Center
}

// NewHandler reports validation failures through notifier as error
// notifications. notifier may be nil.
func NewHandler(service *Service, notifier *notification.Center) *Handler {
	return &Handler{service: service, notifier: notifier}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto MessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	err := h.service.Submit(r.Context(), Message{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Subject:   dto.Subject,
		Body:      dto.Message,
	})
	if err != nil {
		if msg, ok := UserMessage(err); ok {
			if h.notifier != nil {
				h.notifier.Show(msg, notification.TypeError)
			}
			rest.WriteError(w, http.StatusBadRequest, msg, err.Error())
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	rest.WriteJSON(w, http.StatusAccepted, ResultDTO{Message: notification.MsgContactThanks})
}
