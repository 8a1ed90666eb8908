package calendar

import (
	"fmt"
	"net/url"
)

const googleCalendarURL = "https://calendar.google.com/calendar/render"

// GoogleCalendarURL builds the "add to calendar" link for e using the same
// start hour, duration and location as the export.
func GoogleCalendarURL(e Event, d EventDefaults) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", fmt.Sprintf("%s/%s", d.Start(e).Format(floatingLayout), d.End(e).Format(floatingLayout)))
	q.Set("details", e.Description)
	q.Set("location", d.Location)
	return googleCalendarURL + "?" + q.Encode()
}

type ShareLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// ShareLinks returns the manual share targets shown when the host cannot
// share or copy directly.
func ShareLinks(e Event, pageURL string) []ShareLink {
	text := fmt.Sprintf("%s on %s", e.Title, e.Date.At(0, nil).Format("January 2, 2006"))

	facebook := url.Values{}
	facebook.Set("u", pageURL)

	twitter := url.Values{}
	twitter.Set("text", text)
	twitter.Set("url", pageURL)

	linkedin := url.Values{}
	linkedin.Set("url", pageURL)

	whatsapp := url.Values{}
	whatsapp.Set("text", text+" "+pageURL)

	mail := url.Values{}
	mail.Set("subject", e.Title)
	mail.Set("body", fmt.Sprintf("%s\n\n%s\n%s", text, e.Description, pageURL))

	return []ShareLink{
		{Network: "facebook", URL: "https://www.facebook.com/sharer/sharer.php?" + facebook.Encode()},
		{Network: "twitter", URL: "https://twitter.com/intent/tweet?" + twitter.Encode()},
		{Network: "linkedin", URL: "https://www.linkedin.com/sharing/share-offsite/?" + linkedin.Encode()},
		{Network: "whatsapp", URL: "https://wa.me/?" + whatsapp.Encode()},
		{Network: "email", URL: "mailto:?" + mail.Encode()},
	}
}
