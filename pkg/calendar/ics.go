package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/kasa/kasa-web/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	ExportFileName = "KASA-Events.ics"
	ContentType    = "text/calendar"

	floatingLayout = "20060102T150405"
	utcLayout      = "20060102T150405Z"
	uidDomain      = "kasa"
)

// EventDefaults supplies the time-of-day and place that records do not carry.
type EventDefaults struct {
	StartHour int
	Duration  time.Duration
	Location  string
}

func DefaultEventDefaults() EventDefaults {
	return EventDefaults{
		StartHour: 18,
		Duration:  3 * time.Hour,
		Location:  "Kent State University Student Center",
	}
}

// Start returns the synthetic local start time of e.
func (d EventDefaults) Start(e Event) time.Time {
	return e.Date.At(d.StartHour, time.UTC)
}

func (d EventDefaults) End(e Event) time.Time {
	return d.Start(e).Add(d.Duration)
}

// Exporter serializes events into an iCalendar file.
type Exporter struct {
	defaults  EventDefaults
	productId string
	calName   string
	clock     utils.Clock
}

func NewExporter(defaults EventDefaults, productId string, clock utils.Clock) *Exporter {
	if productId == "" {
		productId = "-//KASA//Events Calendar//EN"
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Exporter{
		defaults:  defaults,
		productId: productId,
		calName:   "KASA Events",
		clock:     clock,
	}
}

func (x *Exporter) Defaults() EventDefaults {
	return x.defaults
}

// Export renders one VCALENDAR holding a VEVENT per event. Start and end are
// floating times so calendar apps show them at the same wall-clock hour.
// An empty slice still yields a valid calendar.
func (x *Exporter) Export(events []Event) string {
	return x.calendar(events).Serialize(ics.WithNewLineWindows)
}

// WriteTo writes the export of events to w.
func (x *Exporter) WriteTo(w io.Writer, events []Event) error {
	return x.calendar(events).SerializeTo(w, ics.WithNewLineWindows)
}

func (x *Exporter) calendar(events []Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(x.productId)
	cal.SetMethod(ics.MethodPublish)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(x.calName)

	now := x.clock.Now().UTC()
	for _, e := range events {
		vevent := cal.AddEvent(fmt.Sprintf("%s@%s", e.ID, uidDomain))
		vevent.SetCreatedTime(now)
		vevent.SetDtStampTime(now)
		vevent.SetProperty(ics.ComponentPropertyDtStart, x.defaults.Start(e).Format(floatingLayout))
		vevent.SetProperty(ics.ComponentPropertyDtEnd, x.defaults.End(e).Format(floatingLayout))
		vevent.SetSummary(e.Title)
		vevent.SetDescription(e.Description)
		vevent.SetLocation(x.defaults.Location)
		vevent.SetStatus(ics.ObjectStatusConfirmed)
	}

	log.Debugf("exported %d events to iCalendar", len(events))
	return cal
}

// Import reads VEVENTs from an iCalendar stream. DTSTART values in UTC are
// converted to loc before taking the date; floating and all-day values are
// taken as written. Events without DTSTART or SUMMARY are skipped.
func Import(r io.Reader, loc *time.Location) ([]Draft, error) {
	if loc == nil {
		loc = time.Local
	}
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	drafts := make([]Draft, 0)
	for _, vevent := range cal.Events() {
		summary := vevent.GetProperty(ics.ComponentPropertySummary)
		dtStart := vevent.GetProperty(ics.ComponentPropertyDtStart)
		if summary == nil || dtStart == nil {
			log.Debugf("skipping VEVENT without SUMMARY or DTSTART: %s", uidOf(vevent))
			continue
		}
		date, err := dateFromICS(dtStart.Value, loc)
		if err != nil {
			log.Debugf("skipping VEVENT %s: %v", uidOf(vevent), err)
			continue
		}
		draft := Draft{Date: date, Title: summary.Value}
		if description := vevent.GetProperty(ics.ComponentPropertyDescription); description != nil {
			draft.Description = description.Value
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func dateFromICS(value string, loc *time.Location) (Date, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(utcLayout, value)
		if err != nil {
			return Date{}, err
		}
		return DateOf(t.In(loc)), nil
	}
	if len(value) < 8 {
		return Date{}, fmt.Errorf("invalid date value %q", value)
	}
	t, err := time.Parse("20060102", value[:8])
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func uidOf(vevent *ics.VEvent) string {
	if uid := vevent.GetProperty(ics.ComponentPropertyUniqueId); uid != nil {
		return uid.Value
	}
	return ""
}
