package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/models"
)

// AuthRequired gates every protected route. Pages bounce to the login form,
// the chart API answers with a 401 JSON body; the underlying query never runs
// for an unauthenticated request.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, theme, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	c.Locals(contextThemeKey, theme)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, string, error) {
	claims, err := handler.parseSessionToken(c.Cookies(sessionCookieName))
	if err != nil {
		return nil, "", err
	}

	user, err := handler.repositories.Users.FindByUsername(claims.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, claims.Theme, nil
}
