package calendar

import "time"

// Cursor is the (year, month) pair a calendar view is showing.
type Cursor struct {
	Year  int
	Month time.Month
}

// NewCursor normalizes month into 1..12, carrying into the year.
func NewCursor(year int, month time.Month) Cursor {
	d := NewDate(year, month, 1)
	return Cursor{Year: d.Year, Month: d.Month}
}

func CursorAt(d Date) Cursor {
	return NewCursor(d.Year, d.Month)
}

func (c Cursor) Shift(months int) Cursor {
	return NewCursor(c.Year, c.Month+time.Month(months))
}

func (c Cursor) Next() Cursor {
	return c.Shift(1)
}

func (c Cursor) Prev() Cursor {
	return c.Shift(-1)
}

func (c Cursor) First() Date {
	return Date{Year: c.Year, Month: c.Month, Day: 1}
}
