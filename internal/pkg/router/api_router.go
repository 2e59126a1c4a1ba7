package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/MHollmann/VendGuard/internal/api/v1"
	"github.com/MHollmann/VendGuard/internal/pkg/constants"
)

type ApiRouter struct {
	server *apiv1.APIServer
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})
	api.Get("/ping", h.server.GetPing)

	v1 := api.Group("/v1")
	v1.Get("/companies/:id/status", h.server.GetCompanyStatus)
	v1.Post("/companies/:id/recheck", h.server.PostComplianceRecheck)
	v1.Get("/jobs/:id", h.server.GetJobStatus)
}

func NewApiRouter(server *apiv1.APIServer) *ApiRouter {
	return &ApiRouter{server: server}
}
