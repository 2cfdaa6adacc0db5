package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowLoginPage)
	app.Post("/", handler.Login)
	app.Get("/logout", handler.Logout)
	app.Post("/theme/toggle", handler.AuthRequired, handler.ToggleTheme)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/api/charts/overview", handler.AuthRequired, handler.ChartsOverview)

	clients := app.Group("/clients", handler.AuthRequired)
	clients.Get("", handler.ListClients)
	clients.Get("/new", handler.ShowNewClientForm)
	clients.Post("/new", handler.CreateClient)
	clients.Get("/:id", handler.ShowClientDetail)
	clients.Get("/:id/edit", handler.ShowEditClientForm)
	clients.Post("/:id/edit", handler.UpdateClient)
	clients.Post("/:id/delete", handler.DeleteClient)

	bookings := app.Group("/bookings", handler.AuthRequired)
	bookings.Get("", handler.ListBookings)
	bookings.Post("/new", handler.CreateBooking)
	bookings.Post("/:id/status", handler.UpdateBookingStatus)
	bookings.Post("/:id/delete", handler.DeleteBooking)

	tasks := app.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Post("/:id/toggle", handler.ToggleTask)
	tasks.Post("/:id/delete", handler.DeleteTask)

	app.Get("/calendar", handler.AuthRequired, handler.ShowCalendar)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
