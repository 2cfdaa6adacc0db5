package api

import "github.com/gofiber/fiber/v2"

// ChartsOverview feeds the dashboard charts: the client status breakdown,
// monthly client value grouped by creation month, and booking counts for the
// 14 most recent booking dates in chronological order.
func (handler *Handler) ChartsOverview(c *fiber.Ctx) error {
	stats := handler.repositories.Stats

	breakdown, err := stats.StatusBreakdown()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load charts"})
	}
	revenueByMonth, err := stats.MonthlyRevenue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load charts"})
	}
	bookingsDaily, err := stats.DailyBookingCounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load charts"})
	}

	return c.JSON(fiber.Map{
		"status":         breakdown,
		"rev_month":      revenueByMonth,
		"bookings_daily": bookingsDaily,
	})
}
