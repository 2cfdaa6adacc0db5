package api

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatAmount": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
		"dayKey": func(year int, month int, day int) string {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			path := strings.TrimSpace(currentPath)
			if route == "/" {
				return path == "/" || strings.HasPrefix(path, "/?")
			}
			return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
		},
	}
}

// withTemplateDefaults decorates page data with the ambient request state:
// language catalog, theme, authenticated identity, CSRF token and any pending
// flash notification.
func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}

	messages := currentMessages(c)
	payload["Lang"] = currentLanguage(c)
	payload["Messages"] = messages
	payload["Path"] = c.Path()
	payload["CSRFToken"] = csrfToken(c)

	if _, ok := payload["Theme"]; !ok {
		payload["Theme"] = currentTheme(c)
	}
	if _, ok := payload["CurrentUser"]; !ok {
		if user, authenticated := currentUser(c); authenticated {
			payload["CurrentUser"] = user.Username
		}
	}

	if _, ok := payload["FlashMessage"]; !ok {
		if flash := popFlashCookie(c); flash.MessageKey != "" {
			payload["FlashMessage"] = translateMessage(messages, flash.MessageKey)
			payload["FlashCategory"] = flash.Category
		}
	}

	if _, ok := payload["Title"]; !ok {
		payload["Title"] = translateMessage(messages, "app.name")
	}

	return payload
}
