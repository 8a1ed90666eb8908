package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealer_StaggersDelayWithinGroup(t *testing.T) {
	r := NewRevealer()
	r.Add(FadeIn, Box{ID: "faq-1", Top: 2000, Height: 100}, Box{ID: "faq-2", Top: 2100, Height: 100}, Box{ID: "faq-3", Top: 2200, Height: 100})
	r.Add(SlideInRight, Box{ID: "hero-image", Top: 0, Height: 400})

	tests := []struct {
		id    string
		delay time.Duration
	}{
		{"faq-1", 0},
		{"faq-2", 100 * time.Millisecond},
		{"faq-3", 200 * time.Millisecond},
		{"hero-image", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e, ok := r.Element(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.delay, e.Delay)
		})
	}
}

func TestRevealer_RevealsOnce(t *testing.T) {
	r := NewRevealer()
	r.Add(FadeIn, Box{ID: "about", Top: 1000, Height: 200})

	assert.Empty(t, r.Scrolled(0, 800))
	assert.False(t, r.Visible("about"))

	assert.Equal(t, []string{"about"}, r.Scrolled(600, 800))
	assert.True(t, r.Visible("about"))

	assert.Empty(t, r.Scrolled(600, 800), "already revealed")
	r.Scrolled(0, 800)
	assert.True(t, r.Visible("about"), "scrolling away keeps it visible")
}

func TestRevealer_ThresholdAndBottomMargin(t *testing.T) {
	tests := []struct {
		name    string
		scrollY int
		want    bool
	}{
		// viewport 800 with the bottom margin ends at scrollY+750.
		{"hidden behind bottom margin", 240, false},
		{"less than a tenth inside", 269, false},
		{"exactly a tenth inside", 270, true},
		{"fully inside", 600, true},
		{"scrolled past", 1300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRevealer()
			r.Add(FadeIn, Box{ID: "benefit", Top: 1000, Height: 200})

			r.Scrolled(tt.scrollY, 800)

			assert.Equal(t, tt.want, r.Visible("benefit"))
		})
	}
}

func TestRevealer_DuplicateIdsIgnored(t *testing.T) {
	r := NewRevealer()
	r.Add(FadeIn, Box{ID: "contact", Top: 0, Height: 10})
	r.Add(SlideInLeft, Box{ID: "contact", Top: 500, Height: 10})

	e, ok := r.Element("contact")
	require.True(t, ok)
	assert.Equal(t, FadeIn, e.Effect)

	_, ok = r.Element("missing")
	assert.False(t, ok)
}
