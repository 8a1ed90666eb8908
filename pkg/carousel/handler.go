package carousel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasa/kasa-web/internal/rest"
)

type TestimonialDTO struct {
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type Handler struct {
	carousel *Carousel
}

func NewHandler(c *Carousel) *Handler {
	return &Handler{c}
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.carousel.Current())
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.carousel.Next())
}

func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.carousel.Prev())
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid index", "'index' must be an integer")
		return
	}
	t, err := h.carousel.Show(index)
	if err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			rest.WriteError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	h.write(w, t)
}

func (h *Handler) write(w http.ResponseWriter, t Testimonial) {
	rest.WriteJSON(w, http.StatusOK, TestimonialDTO{
		Index:  h.carousel.Index(),
		Total:  h.carousel.Len(),
		Quote:  t.Quote,
		Author: t.Author,
	})
}
