package calendar

import "time"

// GridCells is the fixed size of a month view: six weeks of seven days.
const GridCells = 42

type Cell struct {
	Day        int
	Date       Date
	OtherMonth bool
	Today      bool
	HasEvent   bool
	Events     []Event
}

type Grid struct {
	Year  int
	Month time.Month
	Label string
	Cells []Cell
}

// BuildGrid lays out the month containing (year, month) starting on weekStart.
// The month is normalized first, so month 0 or 13 land in the adjacent year.
// Only cells of the displayed month are matched against today and events;
// events may be nil.
func BuildGrid(year int, month time.Month, events EventLookup, today Date, weekStart time.Weekday) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()

	leading := (int(first.Weekday()) - int(weekStart) + 7) % 7
	daysInMonth := DaysIn(year, month)
	daysInPrev := DaysIn(year, month-1)

	grid := Grid{
		Year:  year,
		Month: month,
		Label: first.Format("January 2006"),
		Cells: make([]Cell, 0, GridCells),
	}

	for i := leading - 1; i >= 0; i-- {
		day := daysInPrev - i
		grid.Cells = append(grid.Cells, Cell{Day: day, Date: NewDate(year, month-1, day), OtherMonth: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := Date{Year: year, Month: month, Day: day}
		cell := Cell{Day: day, Date: date, Today: date == today}
		if events != nil {
			if found := events.EventsOn(date); len(found) > 0 {
				cell.HasEvent = true
				cell.Events = found
			}
		}
		grid.Cells = append(grid.Cells, cell)
	}

	for day := 1; len(grid.Cells) < GridCells; day++ {
		grid.Cells = append(grid.Cells, Cell{Day: day, Date: NewDate(year, month+1, day), OtherMonth: true})
	}

	return grid
}

// DaysIn reports the number of days in the given month, normalizing the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CurrentMonthCells counts the cells that belong to the displayed month.
func (g Grid) CurrentMonthCells() int {
	n := 0
	for _, c := range g.Cells {
		if !c.OtherMonth {
			n++
		}
	}
	return n
}
