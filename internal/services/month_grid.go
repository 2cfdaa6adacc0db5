package services

import (
	"fmt"
	"time"
)

// MonthGrid lays out a month as full weeks starting on Monday. Each week is
// seven day-of-month numbers; cells outside the month hold 0.
func MonthGrid(year int, month time.Month) [][]int {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	leadingBlanks := mondayFirstWeekday(firstDay.Weekday())

	weeks := make([][]int, 0, 6)
	week := make([]int, 7)
	cell := leadingBlanks
	for day := 1; day <= daysInMonth; day++ {
		week[cell] = day
		cell++
		if cell == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			cell = 0
		}
	}
	if cell > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func mondayFirstWeekday(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// MonthKey renders a year-month pair as the YYYY-MM prefix used to match
// stored booking dates.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ClampMonth coerces out-of-range query input back to the reference month.
func ClampMonth(year int, month int, now time.Time) (int, time.Month) {
	if year < 1 || year > 9999 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return year, now.Month()
	}
	return year, time.Month(month)
}
