package subscription

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/kasa/kasa-web/internal/rest"
	log "github.com/sirupsen/logrus"
)

type FormDTO struct {
	Email              string `json:"email"`
	EventNotifications bool   `json:"eventNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// Subscribe accepts the form as JSON or as a regular form post.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	log.Debug("Storing subscription")
	dto, err := decodeForm(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	sub, err := h.service.Subscribe(r.Context(), Form{
		Email:              dto.Email,
		EventNotifications: dto.EventNotifications,
		WeeklyDigest:       dto.WeeklyDigest,
	})
	if err != nil {
		if errors.Is(err, ErrEmailRequired) || errors.Is(err, ErrInvalidEmail) {
			rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	rest.WriteJSON(w, http.StatusCreated, sub)
}

func decodeForm(r *http.Request) (FormDTO, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return FormDTO{}, err
		}
		return FormDTO{
			Email:              r.PostForm.Get("email"),
			EventNotifications: checkbox(r.PostForm.Get("eventNotifications")),
			WeeklyDigest:       checkbox(r.PostForm.Get("weeklyDigest")),
		}, nil
	}

	var dto FormDTO
	err := json.NewDecoder(r.Body).Decode(&dto)
	return dto, err
}

func checkbox(value string) bool {
	if value == "on" {
		return true
	}
	b, _ := strconv.ParseBool(value)
	return b
}
