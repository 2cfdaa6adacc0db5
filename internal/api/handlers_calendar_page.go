package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/services"
)

// ShowCalendar renders the month view: a Monday-first day grid plus the
// month's bookings grouped by date. A month with zero bookings still renders
// a full grid with an empty mapping.
func (handler *Handler) ShowCalendar(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	year, month := resolveCalendarMonth(c.Query("y"), c.Query("m"), now)

	bookings, err := handler.repositories.Bookings.ListForMonth(services.MonthKey(year, month))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load calendar")
	}

	messages := currentMessages(c)
	previousMonth := time.Date(year, month, 1, 0, 0, 0, 0, handler.location).AddDate(0, -1, 0)
	nextMonth := time.Date(year, month, 1, 0, 0, 0, 0, handler.location).AddDate(0, 1, 0)

	return handler.render(c, "calendar", fiber.Map{
		"Title":     translateMessage(messages, "calendar.title"),
		"Year":      year,
		"Month":     int(month),
		"MonthName": translateMessage(messages, fmt.Sprintf("month.%d", int(month))),
		"Weeks":     services.MonthGrid(year, month),
		"ByDay":     services.GroupBookingsByDate(bookings),
		"PrevYear":  previousMonth.Year(),
		"PrevMonth": int(previousMonth.Month()),
		"NextYear":  nextMonth.Year(),
		"NextMonth": int(nextMonth.Month()),
	})
}

func resolveCalendarMonth(yearRaw string, monthRaw string, now time.Time) (int, time.Month) {
	year := now.Year()
	if parsed, err := strconv.Atoi(strings.TrimSpace(yearRaw)); err == nil {
		year = parsed
	}
	month := int(now.Month())
	if parsed, err := strconv.Atoi(strings.TrimSpace(monthRaw)); err == nil {
		month = parsed
	}
	return services.ClampMonth(year, month, now)
}
