package navigation

import (
	"testing"

	"github.com/kasa/kasa-web/pkg/modal"
	"github.com/stretchr/testify/assert"
)

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "Section: Welcome", SectionLabel("home"))
	assert.Equal(t, "Section: About Us", SectionLabel("about"))
	assert.Equal(t, "Section: Our Events", SectionLabel("events"))
	assert.Equal(t, "Section: Contact", SectionLabel("contact"))
	assert.Equal(t, "Section: Welcome", SectionLabel("faq"))
}

func TestActiveSection(t *testing.T) {
	sections := []Section{
		{ID: "home", Top: 0, Height: 600},
		{ID: "about", Top: 600, Height: 800},
		{ID: "events", Top: 1400, Height: 500},
	}

	tests := []struct {
		scrollY int
		want    string
		found   bool
	}{
		{0, "home", true},
		{499, "home", true},
		{500, "about", true},
		{1299, "about", true},
		{1300, "events", true},
		{1800, "", false},
	}
	for _, tt := range tests {
		got, found := ActiveSection(tt.scrollY, sections)
		assert.Equal(t, tt.want, got, "scrollY %d", tt.scrollY)
		assert.Equal(t, tt.found, found, "scrollY %d", tt.scrollY)
	}
}

func TestMenu_ToggleLocksScroll(t *testing.T) {
	body := modal.NewBody()
	menu := NewMenu(body)

	assert.True(t, menu.Toggle())
	assert.True(t, body.Locked())
	menu.Open()
	assert.False(t, menu.Toggle())
	assert.False(t, body.Locked())
}

func TestMenu_Closers(t *testing.T) {
	tests := []struct {
		name  string
		act   func(m *Menu)
		close bool
	}{
		{"escape", func(m *Menu) { m.HandleKey(modal.KeyEscape) }, true},
		{"other key", func(m *Menu) { m.HandleKey("Enter") }, false},
		{"outside click", func(m *Menu) { m.HandleOutsideClick(false, false) }, true},
		{"click inside menu", func(m *Menu) { m.HandleOutsideClick(true, false) }, false},
		{"click on toggle", func(m *Menu) { m.HandleOutsideClick(false, true) }, false},
		{"link followed", func(m *Menu) { m.LinkFollowed() }, true},
		{"viewport change", func(m *Menu) { m.ViewportChanged() }, true},
		{"upward swipe", func(m *Menu) { m.TouchStart(400); m.TouchEnd(300) }, true},
		{"short swipe", func(m *Menu) { m.TouchStart(400); m.TouchEnd(350) }, false},
		{"downward swipe", func(m *Menu) { m.TouchStart(300); m.TouchEnd(400) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := modal.NewBody()
			menu := NewMenu(body)
			menu.Open()

			tt.act(menu)

			assert.Equal(t, !tt.close, menu.IsOpen())
			assert.Equal(t, !tt.close, body.Locked())
		})
	}
}

func TestMenu_SharesLockWithModal(t *testing.T) {
	body := modal.NewBody()
	menu := NewMenu(body)
	shell := modal.NewShell("calendar", body)

	menu.Open()
	shell.Open()
	menu.Close()

	assert.True(t, body.Locked(), "dialog still open")
	shell.Close()
	assert.False(t, body.Locked())
}
