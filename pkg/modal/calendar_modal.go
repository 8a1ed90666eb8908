package modal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kasa/kasa-web/internal/utils"
	"github.com/kasa/kasa-web/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownInteraction = errors.New("unknown interaction")

// Interaction names an input the hosting UI forwards to the calendar modal.
type Interaction string

const (
	InteractionOpen         Interaction = "open"
	InteractionClose        Interaction = "close"
	InteractionNextMonth    Interaction = "next-month"
	InteractionPrevMonth    Interaction = "prev-month"
	InteractionDayActivate  Interaction = "day-activate"
	InteractionKey          Interaction = "key"
	InteractionOverlayClick Interaction = "overlay-click"
)

// Payload carries the details of an interaction. Only the field relevant to
// the interaction is read.
type Payload struct {
	Date   calendar.Date
	Key    string
	Target Target
}

// View is what the painter draws while the modal is open.
type View struct {
	Grid     calendar.Grid
	Upcoming []calendar.Event
}

type Painter interface {
	Paint(v View)
	Clear()
}

// Notifier displays a short-lived message.
type Notifier interface {
	Notify(message string)
}

// EventSource is the read-only view of the event store the modal renders from.
type EventSource interface {
	calendar.EventLookup
	Upcoming(from calendar.Date, limit int) []calendar.Event
}

// Bindings are resolved once by the host. Any of them may be nil; the
// matching side effect is then skipped.
type Bindings struct {
	Painter  Painter
	Body     ScrollLock
	Notifier Notifier
}

type CalendarOptions struct {
	WeekStart     time.Weekday
	UpcomingLimit int
	Location      *time.Location
}

// CalendarModal owns the displayed month and routes named interactions to
// their handlers. Events are only read.
type CalendarModal struct {
	mu       sync.Mutex
	shell    *Shell
	events   EventSource
	clock    utils.Clock
	opts     CalendarOptions
	bindings Bindings
	cursor   calendar.Cursor
	view     View
	handlers map[Interaction]func(Payload) error
}

func NewCalendarModal(events EventSource, clock utils.Clock, opts CalendarOptions, bindings Bindings) *CalendarModal {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if opts.UpcomingLimit <= 0 {
		opts.UpcomingLimit = 3
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	m := &CalendarModal{
		shell:    NewShell("calendar", bindings.Body),
		events:   events,
		clock:    clock,
		opts:     opts,
		bindings: bindings,
	}
	m.cursor = calendar.CursorAt(m.today())
	m.handlers = map[Interaction]func(Payload) error{
		InteractionOpen:         m.open,
		InteractionClose:        m.close,
		InteractionNextMonth:    func(Payload) error { return m.navigate(1) },
		InteractionPrevMonth:    func(Payload) error { return m.navigate(-1) },
		InteractionDayActivate:  m.activateDay,
		InteractionKey:          m.key,
		InteractionOverlayClick: m.click,
	}
	return m
}

// Dispatch runs the handler registered for interaction.
func (m *CalendarModal) Dispatch(interaction Interaction, p Payload) error {
	h, ok := m.handlers[interaction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInteraction, interaction)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return h(p)
}

func (m *CalendarModal) State() State {
	return m.shell.State()
}

func (m *CalendarModal) Cursor() calendar.Cursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor
}

// View returns the last rendered view. It is empty until the modal is first opened.
func (m *CalendarModal) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

func (m *CalendarModal) today() calendar.Date {
	return calendar.DateOf(m.clock.Now().In(m.opts.Location))
}

func (m *CalendarModal) open(Payload) error {
	m.cursor = calendar.CursorAt(m.today())
	m.shell.Open()
	m.render()
	return nil
}

func (m *CalendarModal) close(Payload) error {
	if m.shell.Close() {
		m.clear()
	}
	return nil
}

func (m *CalendarModal) navigate(months int) error {
	m.cursor = m.cursor.Shift(months)
	if m.shell.IsOpen() {
		m.render()
	}
	return nil
}

// activateDay shows the events of a displayed-month day as a notification.
// Days without events, or outside the displayed month, do nothing.
func (m *CalendarModal) activateDay(p Payload) error {
	if !m.shell.IsOpen() || p.Date.Year != m.cursor.Year || p.Date.Month != m.cursor.Month {
		return nil
	}
	found := m.events.EventsOn(p.Date)
	if len(found) == 0 || m.bindings.Notifier == nil {
		return nil
	}
	m.bindings.Notifier.Notify(describe(p.Date, found))
	return nil
}

func (m *CalendarModal) key(p Payload) error {
	if m.shell.HandleKey(p.Key) {
		m.clear()
	}
	return nil
}

func (m *CalendarModal) click(p Payload) error {
	if m.shell.HandleClick(p.Target) {
		m.clear()
	}
	return nil
}

func (m *CalendarModal) render() {
	today := m.today()
	m.view = View{
		Grid:     calendar.BuildGrid(m.cursor.Year, m.cursor.Month, m.events, today, m.opts.WeekStart),
		Upcoming: m.events.Upcoming(today, m.opts.UpcomingLimit),
	}
	log.Debugf("calendar modal rendered %s", m.view.Grid.Label)
	if m.bindings.Painter != nil {
		m.bindings.Painter.Paint(m.view)
	}
}

func (m *CalendarModal) clear() {
	if m.bindings.Painter != nil {
		m.bindings.Painter.Clear()
	}
}

func describe(date calendar.Date, events []calendar.Event) string {
	day := date.At(0, time.UTC).Format("January 2, 2006")
	parts := make([]string, 0, len(events))
	for _, e := range events {
		if e.Description == "" {
			parts = append(parts, fmt.Sprintf("%s - %s", e.Title, day))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s - %s: %s", e.Title, day, e.Description))
	}
	return strings.Join(parts, "\n")
}
