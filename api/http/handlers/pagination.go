package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseLimitOffset reads limit/offset. Invalid values are ignored; a zero limit
// lets the use case apply its own default.
func parseLimitOffset(c *fiber.Ctx) (limit, offset int) {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
