package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func refererOr(c *fiber.Ctx, fallback string) string {
	referer := strings.TrimSpace(c.Get(fiber.HeaderReferer))
	if referer == "" || strings.HasPrefix(referer, "//") {
		return fallback
	}
	if strings.HasPrefix(referer, "/") {
		return referer
	}
	// Absolute referers stay within the app; keep only the path.
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(referer, scheme) {
			rest := referer[len(scheme):]
			if slash := strings.Index(rest, "/"); slash >= 0 {
				return rest[slash:]
			}
			return fallback
		}
	}
	return fallback
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func translateMessage(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}
