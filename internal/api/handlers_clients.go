package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/db"
	"github.com/terzostudio/gestionale/internal/models"
	"github.com/terzostudio/gestionale/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	filter := db.ClientFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Status:   strings.TrimSpace(c.Query("status")),
		Priority: strings.TrimSpace(c.Query("priority")),
	}

	clients, err := handler.repositories.Clients.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load clients")
	}

	return handler.render(c, "clients", fiber.Map{
		"Title":      translateMessage(currentMessages(c), "clients.title"),
		"Clients":    clients,
		"Query":      filter.Query,
		"Status":     filter.Status,
		"Priority":   filter.Priority,
		"Statuses":   models.ClientStatuses(),
		"Priorities": models.Priorities(),
	})
}

func (handler *Handler) ShowNewClientForm(c *fiber.Ctx) error {
	return handler.render(c, "client_form", fiber.Map{
		"Title":      translateMessage(currentMessages(c), "client_form.new_title"),
		"Mode":       "new",
		"Client":     models.Client{},
		"Statuses":   models.ClientStatuses(),
		"Priorities": models.Priorities(),
		"Sources":    models.ClientSources(),
	})
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	client := services.BuildClient(clientInputFromForm(c))
	client.CreatedAt = time.Now().In(handler.location)

	if err := handler.repositories.Clients.Create(&client); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create client")
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.client_created", Category: "success"})
	return c.Redirect("/clients", fiber.StatusSeeOther)
}

func (handler *Handler) ShowClientDetail(c *fiber.Ctx) error {
	clientID, ok := parseIDParam(c)
	if !ok {
		return handler.redirectClientNotFound(c)
	}

	client, err := handler.repositories.Clients.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.redirectClientNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load client")
	}

	bookings, err := handler.repositories.Bookings.ListByClient(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load client bookings")
	}

	return handler.render(c, "client_detail", fiber.Map{
		"Title":    client.Name,
		"Client":   client,
		"Bookings": bookings,
	})
}

func (handler *Handler) ShowEditClientForm(c *fiber.Ctx) error {
	clientID, ok := parseIDParam(c)
	if !ok {
		return handler.redirectClientNotFound(c)
	}

	client, err := handler.repositories.Clients.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.redirectClientNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load client")
	}

	return handler.render(c, "client_form", fiber.Map{
		"Title":      translateMessage(currentMessages(c), "client_form.edit_title"),
		"Mode":       "edit",
		"Client":     client,
		"Statuses":   models.ClientStatuses(),
		"Priorities": models.Priorities(),
		"Sources":    models.ClientSources(),
	})
}

// UpdateClient applies the edit as one conditional UPDATE; a zero row count
// means the id never existed and gets the same not-found treatment as the
// detail page.
func (handler *Handler) UpdateClient(c *fiber.Ctx) error {
	clientID, ok := parseIDParam(c)
	if !ok {
		return handler.redirectClientNotFound(c)
	}

	affected, err := handler.repositories.Clients.Update(clientID, services.BuildClient(clientInputFromForm(c)))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to update client")
	}
	if affected == 0 {
		return handler.redirectClientNotFound(c)
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.client_updated", Category: "success"})
	return c.Redirect(fmt.Sprintf("/clients/%d", clientID), fiber.StatusSeeOther)
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	clientID, ok := parseIDParam(c)
	if !ok {
		return handler.redirectClientNotFound(c)
	}

	if err := handler.repositories.Clients.DeleteWithBookings(clientID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete client")
	}

	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.client_deleted", Category: "warning"})
	return c.Redirect("/clients", fiber.StatusSeeOther)
}

func (handler *Handler) redirectClientNotFound(c *fiber.Ctx) error {
	handler.setFlashCookie(c, FlashPayload{MessageKey: "flash.client_not_found", Category: "danger"})
	return c.Redirect("/clients", fiber.StatusSeeOther)
}

func clientInputFromForm(c *fiber.Ctx) services.ClientInput {
	return services.ClientInput{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		Status:       c.FormValue("status"),
		Priority:     c.FormValue("priority"),
		Source:       c.FormValue("source"),
		Value:        c.FormValue("value"),
		Notes:        c.FormValue("notes"),
		LastContact:  c.FormValue("last_contact"),
		NextFollowup: c.FormValue("next_followup"),
	}
}
