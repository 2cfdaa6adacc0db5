package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terzostudio/gestionale/internal/models"
)

const (
	sessionCookieName  = "gestionale_session"
	languageCookieName = "gestionale_lang"
	flashCookieName    = "gestionale_flash"

	contextUserKey     = "current_user"
	contextThemeKey    = "current_theme"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentTheme(c *fiber.Ctx) string {
	theme, ok := c.Locals(contextThemeKey).(string)
	if !ok || theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok {
		return map[string]string{}
	}
	return messages
}
