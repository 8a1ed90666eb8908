package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasa/kasa-web/internal/rest"
	"github.com/kasa/kasa-web/internal/utils"
	log "github.com/sirupsen/logrus"
)

const maxImportSize = 1 << 20

type EventDTO struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CellDTO struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	OtherMonth bool       `json:"otherMonth"`
	Today      bool       `json:"today"`
	HasEvent   bool       `json:"hasEvent"`
	Events     []EventDTO `json:"events,omitempty"`
}

type GridDTO struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Label string    `json:"label"`
	Cells []CellDTO `json:"cells"`
}

type LinksDTO struct {
	GoogleCalendar string      `json:"googleCalendar"`
	Share          []ShareLink `json:"share"`
}

type ImportResultDTO struct {
	Imported int        `json:"imported"`
	Events   []EventDTO `json:"events"`
}

type HandlerOptions struct {
	WeekStart     time.Weekday
	UpcomingLimit int
	PageURL       string
	FileName      string
	Location      *time.Location
}

type Handler struct {
	store    *Store
	exporter *Exporter
	clock    utils.Clock
	opts     HandlerOptions
}

func NewHandler(store *Store, exporter *Exporter, clock utils.Clock, opts HandlerOptions) *Handler {
	if opts.UpcomingLimit <= 0 {
		opts.UpcomingLimit = 3
	}
	if opts.FileName == "" {
		opts.FileName = ExportFileName
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Handler{store: store, exporter: exporter, clock: clock, opts: opts}
}

func (h *Handler) today() Date {
	return DateOf(h.clock.Now().In(h.opts.Location))
}

// GetGrid returns the 42-cell month view. year and month default to today's.
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	cursor := CursorAt(today)

	if s := r.URL.Query().Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid year", "'year' must be an integer")
			return
		}
		cursor.Year = year
	}
	if s := r.URL.Query().Get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid month", "'month' must be an integer")
			return
		}
		cursor = NewCursor(cursor.Year, time.Month(month))
	}

	grid := BuildGrid(cursor.Year, cursor.Month, h.store, today, h.opts.WeekStart)
	rest.WriteJSON(w, http.StatusOK, gridToDTO(grid))
}

func (h *Handler) GetEventsOn(w http.ResponseWriter, r *http.Request) {
	date, err := ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventsToDTO(h.store.EventsOn(date)))
}

func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := h.opts.UpcomingLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid limit", "'limit' must be an integer")
			return
		}
		limit = parsed
	}
	rest.WriteJSON(w, http.StatusOK, eventsToDTO(h.store.Upcoming(h.today(), limit)))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdFromPath(w, r)
	if !ok {
		return
	}
	event, found := h.store.Get(id)
	if !found {
		rest.WriteError(w, http.StatusNotFound, ErrEventNotFound.Error(), "")
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(event))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	event := h.store.Add(draft.Date, draft.Title, draft.Description)
	log.Debugf("created calendar event %s", event.ID)
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(event))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdFromPath(w, r)
	if !ok {
		return
	}
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	if !h.store.Update(id, draft.Date, draft.Title, draft.Description) {
		rest.WriteError(w, http.StatusNotFound, ErrEventNotFound.Error(), "")
		return
	}
	event, _ := h.store.Get(id)
	rest.WriteJSON(w, http.StatusOK, eventToDTO(event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdFromPath(w, r)
	if !ok {
		return
	}
	if !h.store.Remove(id) {
		rest.WriteError(w, http.StatusNotFound, ErrEventNotFound.Error(), "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdFromPath(w, r)
	if !ok {
		return
	}
	event, found := h.store.Get(id)
	if !found {
		rest.WriteError(w, http.StatusNotFound, ErrEventNotFound.Error(), "")
		return
	}
	rest.WriteJSON(w, http.StatusOK, LinksDTO{
		GoogleCalendar: GoogleCalendarURL(event, h.exporter.Defaults()),
		Share:          ShareLinks(event, h.opts.PageURL),
	})
}

// Export streams every stored event as a downloadable .ics file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.opts.FileName))
	w.WriteHeader(http.StatusOK)
	if err := h.exporter.WriteTo(w, h.store.All()); err != nil {
		log.Errorf("failed to write calendar export: %v", err)
	}
}

// Import adds the events of an uploaded .ics body to the store.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	drafts, err := Import(io.LimitReader(r.Body, maxImportSize), h.opts.Location)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid calendar file", err.Error())
		return
	}

	result := ImportResultDTO{Events: make([]EventDTO, 0, len(drafts))}
	for _, d := range drafts {
		event := h.store.Add(d.Date, d.Title, d.Description)
		result.Events = append(result.Events, eventToDTO(event))
	}
	result.Imported = len(result.Events)
	log.Infof("imported %d calendar events", result.Imported)
	rest.WriteJSON(w, http.StatusCreated, result)
}

func eventIdFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["eventId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return Draft{}, false
	}
	date, err := ParseDate(dto.Date)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return Draft{}, false
	}
	draft := Draft{Date: date, Title: dto.Title, Description: dto.Description}
	if err := draft.Validate(); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return Draft{}, false
	}
	return draft, true
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID.String(),
		Date:        e.Date.String(),
		Title:       e.Title,
		Description: e.Description,
	}
}

func eventsToDTO(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	return dtos
}

func gridToDTO(g Grid) GridDTO {
	cells := make([]CellDTO, 0, len(g.Cells))
	for _, c := range g.Cells {
		cell := CellDTO{
			Day:        c.Day,
			Date:       c.Date.String(),
			OtherMonth: c.OtherMonth,
			Today:      c.Today,
			HasEvent:   c.HasEvent,
		}
		if c.HasEvent {
			cell.Events = eventsToDTO(c.Events)
		}
		cells = append(cells, cell)
	}
	return GridDTO{Year: g.Year, Month: int(g.Month), Label: g.Label, Cells: cells}
}
