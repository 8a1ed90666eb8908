package utils

import "time"

// Clock is the source of "now" for anything that marks today or stamps a record.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	// Location, when set, is applied to every reading.
	Location *time.Location
}

func (s SystemClock) Now() time.Time {
	if s.Location != nil {
		return time.Now().In(s.Location)
	}
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.FixedNow = m.FixedNow.Add(d)
}

// LoadLocationOrLocal resolves an IANA zone name, falling back to time.Local
// when the name is empty or unknown.
func LoadLocationOrLocal(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
