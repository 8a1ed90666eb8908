package carousel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const DefaultInterval = 5 * time.Second

var (
	ErrNoTestimonials  = errors.New("carousel needs at least one testimonial")
	ErrIndexOutOfRange = errors.New("testimonial index out of range")
)

type Testimonial struct {
	Quote  string
	Author string
}

// Carousel cycles through testimonials. Rotation runs on an owned cron
// schedule that Stop tears down.
type Carousel struct {
	mu       sync.Mutex
	items    []Testimonial
	index    int
	interval time.Duration
	rotation *cron.Cron
}

// New starts at the first testimonial. Intervals are whole seconds; anything
// below one second uses DefaultInterval.
func New(items []Testimonial, interval time.Duration) (*Carousel, error) {
	if len(items) == 0 {
		return nil, ErrNoTestimonials
	}
	if interval < time.Second {
		interval = DefaultInterval
	}
	return &Carousel{
		items:    append([]Testimonial(nil), items...),
		interval: interval,
	}, nil
}

func (c *Carousel) Len() int {
	return len(c.items)
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Current() Testimonial {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[c.index]
}

// Show jumps to the testimonial at index, as a slider dot does.
func (c *Carousel) Show(index int) (Testimonial, error) {
	if index < 0 || index >= len(c.items) {
		return Testimonial{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = index
	return c.items[index], nil
}

// Next advances one testimonial, wrapping to the first after the last.
func (c *Carousel) Next() Testimonial {
	return c.step(1)
}

// Prev goes back one testimonial, wrapping to the last before the first.
func (c *Carousel) Prev() Testimonial {
	return c.step(-1)
}

func (c *Carousel) step(delta int) Testimonial {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.index = ((c.index+delta)%n + n) % n
	return c.items[c.index]
}

// Start schedules automatic rotation. Calling Start while running does nothing.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rotation != nil {
		return
	}

	c.rotation = cron.New()
	c.rotation.Schedule(cron.Every(c.interval), cron.FuncJob(func() {
		t := c.Next()
		log.Tracef("carousel rotated to %s", t.Author)
	}))
	c.rotation.Start()
	log.Debugf("carousel rotation started every %s", c.interval)
}

// Stop cancels rotation and waits for a rotation in progress to finish.
// It is safe to call more than once.
func (c *Carousel) Stop() {
	c.mu.Lock()
	rotation := c.rotation
	c.rotation = nil
	c.mu.Unlock()

	if rotation == nil {
		return
	}
	<-rotation.Stop().Done()
	log.Debug("carousel rotation stopped")
}

func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation != nil
}
