package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	stats := handler.repositories.Stats

	totalClients, err := stats.CountClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}
	activeClients, err := stats.CountActiveClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}
	revenue, err := stats.SumClientValues()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}
	upcomingBookings, err := handler.repositories.Bookings.Upcoming()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}
	upcomingTasks, err := handler.repositories.Tasks.Upcoming()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":         translateMessage(currentMessages(c), "dashboard.title"),
		"TotalClients":  totalClients,
		"ActiveClients": activeClients,
		"Revenue":       revenue,
		"Bookings":      upcomingBookings,
		"Tasks":         upcomingTasks,
	})
}
