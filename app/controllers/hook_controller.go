package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MHollmann/VendGuard/internal/pkg/hooks"
)

var hookHandler *hooks.Handler

// InitializeHookController wires the hook controller with the event handler
func InitializeHookController(handler *hooks.Handler) {
	hookHandler = handler
}

// HandleLoginHook receives a login event from the host platform. The
// compliance outcome never changes the response: the platform only needs
// to know the delivery was accepted.
func HandleLoginHook(c *fiber.Ctx) error {
	if hookHandler == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "not_ready", "message": "Hook handler not initialized"})
	}

	var ev hooks.LoginEvent
	if err := c.BodyParser(&ev); err != nil {
		log.Printf("hook controller: undecodable login event: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid login event payload"})
	}

	hookHandler.OnLogin(c.UserContext(), ev)

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCompanyUpdateHook receives a company profile-update event from the
// host platform.
func HandleCompanyUpdateHook(c *fiber.Ctx) error {
	if hookHandler == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "not_ready", "message": "Hook handler not initialized"})
	}

	var ev hooks.CompanyUpdateEvent
	if err := c.BodyParser(&ev); err != nil {
		log.Printf("hook controller: undecodable company update event: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid company update payload"})
	}

	hookHandler.OnCompanyUpdate(c.UserContext(), ev)

	return c.SendStatus(fiber.StatusNoContent)
}
