package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/db"
	"github.com/terzostudio/gestionale/internal/models"
	"github.com/terzostudio/gestionale/internal/services"
)

func (handler *Handler) ListBookings(c *fiber.Ctx) error {
	filter := db.BookingFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		Status: strings.TrimSpace(c.Query("status")),
	}

	bookings, err := handler.repositories.Bookings.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load bookings")
	}

	clientRefs, err := handler.repositories.Clients.NameIndex()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load clients")
	}

	return handler.render(c, "bookings", fiber.Map{
		"Title":    translateMessage(currentMessages(c), "bookings.title"),
		"Bookings": bookings,
		"Clients":  clientRefs,
		"Query":    filter.Query,
		"Status":   filter.Status,
		"Statuses": models.BookingStatuses(),
	})
}

func (handler *Handler) CreateBooking(c *fiber.Ctx) error {
	booking := services.BuildBooking(services.BookingInput{
		ClientID: c.FormValue("client_id"),
		Date:     c.FormValue("date"),
		Time:     c.FormValue("time"),
		Service:  c.FormValue("service"),
		Amount:   c.FormValue("amount"),
		Status:   c.FormValue("status"),
		Notes:    c.FormValue("notes"),
	})
	booking.CreatedAt = time.Now().In(handler.location)

	if err := handler.repositories.Bookings.Create(&booking); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create booking")
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.booking_created", Category: "success"})
	return c.Redirect("/bookings", fiber.StatusSeeOther)
}

// UpdateBookingStatus tolerates a missing id: zero rows affected is not an
// error and leaves the table unchanged.
func (handler *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID, _ := parseIDParam(c)
	status := models.NormalizeBookingStatus(c.FormValue("status"))

	if _, err := handler.repositories.Bookings.UpdateStatus(bookingID, status); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to update booking status")
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.booking_status_updated", Category: "success"})
	return c.Redirect("/bookings", fiber.StatusSeeOther)
}

func (handler *Handler) DeleteBooking(c *fiber.Ctx) error {
	bookingID, _ := parseIDParam(c)

	if err := handler.repositories.Bookings.Delete(bookingID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete booking")
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.booking_deleted", Category: "warning"})
	return c.Redirect("/bookings", fiber.StatusSeeOther)
}
