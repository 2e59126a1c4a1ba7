package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MHollmann/VendGuard/internal/pkg/security"
)

// HookSignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const HookSignatureHeader = "X-Hook-Signature"

// HookAuthMiddleware authenticates hook deliveries from the host platform.
// An empty configured secret rejects everything; the platform must never
// be able to drive compliance transitions unauthenticated.
func HookAuthMiddleware(secret string) fiber.Handler {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		log.Print("hook middleware: no signing secret configured, rejecting all deliveries")
	}

	return func(c *fiber.Ctx) error {
		if trimmed == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "not_configured", "message": "Hook signing secret is not configured"})
		}

		signature := c.Get(HookSignatureHeader)
		if strings.TrimSpace(signature) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing hook signature"})
		}

		if !security.VerifyHookSignature(c.Body(), signature, trimmed) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid hook signature"})
		}

		return c.Next()
	}
}
