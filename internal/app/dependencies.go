package app

import (
	"fmt"
	"time"

	"github.com/kasa/kasa-web/internal/config"
	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/kasa/kasa-web/internal/utils"
	"github.com/kasa/kasa-web/pkg/calendar"
	"github.com/kasa/kasa-web/pkg/carousel"
	"github.com/kasa/kasa-web/pkg/contact"
	"github.com/kasa/kasa-web/pkg/notification"
	"github.com/kasa/kasa-web/pkg/subscription"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	Location *time.Location
	EventBus *event_bus.EventBus

	CalendarStore    *calendar.Store
	CalendarExporter *calendar.Exporter
	CalendarHandler  *calendar.Handler

	NotificationCenter  *notification.Center
	NotificationHandler *notification.Handler

	Carousel        *carousel.Carousel
	CarouselHandler *carousel.Handler

	SubscriptionRepo    subscription.Repository
	SubscriptionService *subscription.ServiceImpl
	SubscriptionHandler *subscription.Handler

	ContactService *contact.Service
	ContactHandler *contact.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// clock may be nil to use the wall clock in the configured timezone.
func BuildDependencies(cfg config.Application, repo subscription.Repository, clock utils.Clock) (*Dependencies, error) {
	deps := &Dependencies{}

	loc, err := utils.LoadLocationOrLocal(cfg.Timezone)
	if err != nil {
		log.Warnf("unknown timezone %q, using local time: %v", cfg.Timezone, err)
	}
	deps.Location = loc
	if clock == nil {
		clock = utils.SystemClock{Location: loc}
	}
	deps.Clock = clock
	deps.EventBus = event_bus.NewEventBus()

	deps.NotificationCenter = notification.NewCenter(deps.Clock, cfg.Notification.TTL)
	deps.NotificationCenter.Listen(deps.EventBus)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationCenter)

	deps.CalendarStore = calendar.NewStore(deps.EventBus)
	SeedEvents(deps.CalendarStore, cfg.Calendar.Events)
	deps.CalendarExporter = calendar.NewExporter(calendar.EventDefaults{
		StartHour: cfg.Calendar.EventStartHour,
		Duration:  time.Duration(cfg.Calendar.EventDurationHours) * time.Hour,
		Location:  cfg.Calendar.Location,
	}, cfg.Calendar.ProductId, deps.Clock)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarStore, deps.CalendarExporter, deps.Clock, calendar.HandlerOptions{
		WeekStart:     cfg.Calendar.WeekStartDay(),
		UpcomingLimit: cfg.Calendar.UpcomingLimit,
		PageURL:       cfg.Calendar.PageURL,
		FileName:      cfg.Calendar.ExportFileName,
		Location:      loc,
	})

	testimonials := make([]carousel.Testimonial, 0, len(cfg.Carousel.Testimonials))
	for _, t := range cfg.Carousel.Testimonials {
		testimonials = append(testimonials, carousel.Testimonial{Quote: t.Quote, Author: t.Author})
	}
	deps.Carousel, err = carousel.New(testimonials, cfg.Carousel.Interval)
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial carousel: %w", err)
	}
	deps.CarouselHandler = carousel.NewHandler(deps.Carousel)

	deps.SubscriptionRepo = repo
	deps.SubscriptionService = subscription.NewService(repo, cfg.Storage.Key, deps.Clock, deps.EventBus)
	deps.SubscriptionHandler = subscription.NewHandler(deps.SubscriptionService)

	deps.ContactService = contact.NewService(deps.EventBus)
	deps.ContactHandler = contact.NewHandler(deps.ContactService, deps.NotificationCenter)

	return deps, nil
}

// SeedEvents adds the configured events to store, skipping entries that do not validate.
func SeedEvents(store *calendar.Store, seeds []config.EventSeed) {
	for _, seed := range seeds {
		date, err := calendar.ParseDate(seed.Date)
		if err != nil {
			log.Warnf("skipping seed event %q: %v", seed.Title, err)
			continue
		}
		draft := calendar.Draft{Date: date, Title: seed.Title, Description: seed.Description}
		if err := draft.Validate(); err != nil {
			log.Warnf("skipping seed event on %s: %v", seed.Date, err)
			continue
		}
		store.Add(draft.Date, draft.Title, draft.Description)
	}
	log.Debugf("calendar seeded with %d events", store.Len())
}
