// Package presenter shapes the uniform response envelope: every body,
// success or failure, carries a status boolean and a message string.
package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Success writes {status:true,message,...extra}.
func Success(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"status": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	return JSON(c, status, body)
}

// Fail writes {status:false,message}.
func Fail(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, fiber.Map{"status": false, "message": message})
}

// FailValidation writes the 400 validation envelope with per-field errors.
func FailValidation(c *fiber.Ctx, errs any) error {
	return JSON(c, http.StatusBadRequest, fiber.Map{
		"status":  false,
		"message": "validation error",
		"errors":  errs,
	})
}

// FailInternal writes the 500 envelope. The error payload is a fixed
// opaque kind; internals are never serialized to the client.
func FailInternal(c *fiber.Ctx, message string) error {
	return JSON(c, http.StatusInternalServerError, fiber.Map{
		"status":  false,
		"message": message,
		"error":   fiber.Map{"kind": "internal"},
	})
}
