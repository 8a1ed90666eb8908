package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kasa/kasa-web/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Calendar
	r.HandleFunc("/api/calendar/grid", deps.CalendarHandler.GetGrid).Methods("GET")
	r.HandleFunc("/api/calendar/export", deps.CalendarHandler.Export).Methods("GET")
	r.HandleFunc("/api/calendar/import", deps.CalendarHandler.Import).Methods("POST")
	r.HandleFunc("/api/calendar/event/upcoming", deps.CalendarHandler.GetUpcoming).Methods("GET")
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.GetEventsOn).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.CalendarHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.CalendarHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/calendar/event/{eventId}", deps.CalendarHandler.DeleteEvent).Methods("DELETE")
	r.HandleFunc("/api/calendar/event/{eventId}/links", deps.CalendarHandler.GetLinks).Methods("GET")

	// Notifications
	r.HandleFunc("/api/notifications", deps.NotificationHandler.ListActive).Methods("GET")
	r.HandleFunc("/api/notifications/{notificationId}", deps.NotificationHandler.Dismiss).Methods("DELETE")

	// Testimonials
	r.HandleFunc("/api/testimonials/current", deps.CarouselHandler.Current).Methods("GET")
	r.HandleFunc("/api/testimonials/next", deps.CarouselHandler.Next).Methods("POST")
	r.HandleFunc("/api/testimonials/prev", deps.CarouselHandler.Prev).Methods("POST")
	r.HandleFunc("/api/testimonials/{index}", deps.CarouselHandler.Show).Methods("POST")

	// Forms
	r.HandleFunc("/api/subscription", deps.SubscriptionHandler.Subscribe).Methods("POST")
	r.HandleFunc("/api/contact", deps.ContactHandler.Submit).Methods("POST")
}
