package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title":    translateMessage(currentMessages(c), "login.title"),
		"Username": "",
	})
}

// Login verifies the submitted credentials against the local user table with
// a bcrypt comparison. A failure re-renders the login form with an inline
// notification and HTTP 200; it never leaks which of the two fields was wrong.
func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.renderLoginFailure(c, input.Username)
	}

	username := strings.TrimSpace(input.Username)
	user, err := handler.repositories.Users.FindByUsername(username)
	if err != nil {
		return handler.renderLoginFailure(c, username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return handler.renderLoginFailure(c, username)
	}

	if err := handler.setSessionCookie(c, user.Username, ThemeLight); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create session")
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (handler *Handler) renderLoginFailure(c *fiber.Ctx, username string) error {
	messages := currentMessages(c)
	return handler.render(c, "login", fiber.Map{
		"Title":         translateMessage(messages, "login.title"),
		"FlashMessage":  translateMessage(messages, "flash.invalid_credentials"),
		"FlashCategory": "danger",
		"Username":      strings.TrimSpace(username),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	clearFlashCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ToggleTheme flips the display preference stored in the session cookie and
// returns to the referring page.
func (handler *Handler) ToggleTheme(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	theme := ThemeLight
	if currentTheme(c) == ThemeLight {
		theme = ThemeDark
	}
	if err := handler.setSessionCookie(c, user.Username, theme); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to update session")
	}
	return c.Redirect(refererOr(c, "/dashboard"), fiber.StatusSeeOther)
}
