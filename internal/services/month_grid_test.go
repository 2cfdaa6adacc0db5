package services

import (
	"testing"
	"time"
)

func TestMonthGridMonthStartingOnMonday(t *testing.T) {
	// September 2025 starts on a Monday and has 30 days.
	weeks := MonthGrid(2025, time.September)

	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
	if weeks[0][0] != 1 {
		t.Fatalf("expected day 1 in the first Monday cell, got %d", weeks[0][0])
	}
	if weeks[4][1] != 30 {
		t.Fatalf("expected day 30 on the last Tuesday, got %d", weeks[4][1])
	}
	for cell := 2; cell < 7; cell++ {
		if weeks[4][cell] != 0 {
			t.Fatalf("expected trailing padding zeros, got %d at cell %d", weeks[4][cell], cell)
		}
	}
}

func TestMonthGridMonthStartingOnSunday(t *testing.T) {
	// June 2025 starts on a Sunday, so the first week is six blanks then day 1.
	weeks := MonthGrid(2025, time.June)

	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}
	for cell := 0; cell < 6; cell++ {
		if weeks[0][cell] != 0 {
			t.Fatalf("expected leading padding zeros, got %d at cell %d", weeks[0][cell], cell)
		}
	}
	if weeks[0][6] != 1 {
		t.Fatalf("expected day 1 in the Sunday cell, got %d", weeks[0][6])
	}
	if weeks[5][0] != 30 {
		t.Fatalf("expected day 30 to open the last week, got %d", weeks[5][0])
	}
}

func TestMonthGridExactFourWeekFebruary(t *testing.T) {
	// February 2027 starts on a Monday and has 28 days: a perfect grid.
	weeks := MonthGrid(2027, time.February)

	if len(weeks) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(weeks))
	}
	if weeks[0][0] != 1 || weeks[3][6] != 28 {
		t.Fatalf("expected a full 1..28 grid, got first %d last %d", weeks[0][0], weeks[3][6])
	}
	for _, week := range weeks {
		for _, day := range week {
			if day == 0 {
				t.Fatal("a perfect grid has no padding cells")
			}
		}
	}
}

func TestMonthGridCoversEveryDayExactlyOnce(t *testing.T) {
	weeks := MonthGrid(2026, time.August)

	seen := map[int]int{}
	for _, week := range weeks {
		if len(week) != 7 {
			t.Fatalf("every week must have 7 cells, got %d", len(week))
		}
		for _, day := range week {
			if day != 0 {
				seen[day]++
			}
		}
	}
	for day := 1; day <= 31; day++ {
		if seen[day] != 1 {
			t.Fatalf("day %d should appear exactly once, got %d", day, seen[day])
		}
	}
}

func TestMonthKeyPadsYearAndMonth(t *testing.T) {
	if key := MonthKey(2026, time.March); key != "2026-03" {
		t.Fatalf("expected 2026-03, got %q", key)
	}
	if key := MonthKey(987, time.November); key != "0987-11" {
		t.Fatalf("expected 0987-11, got %q", key)
	}
}

func TestClampMonthCoercesOutOfRangeInput(t *testing.T) {
	now := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	year, month := ClampMonth(2026, 13, now)
	if year != 2026 || month != time.August {
		t.Fatalf("expected the reference month for month 13, got %d-%d", year, month)
	}

	year, month = ClampMonth(0, 5, now)
	if year != 2026 || month != time.May {
		t.Fatalf("expected the reference year for year 0, got %d-%d", year, month)
	}

	year, month = ClampMonth(2027, 2, now)
	if year != 2027 || month != time.February {
		t.Fatalf("in-range input must pass through, got %d-%d", year, month)
	}
}
