package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
)

// countryQuery returns the trimmed ?country= parameter, empty when absent.
// The result is copied out of the request buffer and may be retained.
func countryQuery(c *fiber.Ctx) string {
	return utils.CopyString(strings.TrimSpace(c.Query("country")))
}

// handleError logs err and answers with {"error": code, "message": message}
func handleError(c *fiber.Ctx, status int, code, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}
