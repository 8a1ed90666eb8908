package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccordion(t *testing.T) {
	a := NewAccordion(4)

	_, ok := a.Active()
	assert.False(t, ok)

	a.Toggle(1)
	assert.True(t, a.IsOpen(1))

	a.Toggle(3)
	assert.False(t, a.IsOpen(1))
	assert.True(t, a.IsOpen(3))

	a.Toggle(3)
	_, ok = a.Active()
	assert.False(t, ok, "toggling the open item closes it")

	a.Toggle(7)
	a.Toggle(-1)
	_, ok = a.Active()
	assert.False(t, ok)
}
