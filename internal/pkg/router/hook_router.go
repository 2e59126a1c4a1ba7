package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/MHollmann/VendGuard/app/controllers"
	"github.com/MHollmann/VendGuard/internal/pkg/constants"
	"github.com/MHollmann/VendGuard/internal/pkg/env"
	"github.com/MHollmann/VendGuard/internal/pkg/middleware"
)

type HookRouter struct {
}

// InstallRouter registers the hook delivery endpoints. Deliveries are
// HMAC-authenticated and rate-limited per platform host; limiter state is
// shared across instances through Redis.
func (h HookRouter) InstallRouter(app *fiber.App) {
	cachePort, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		cachePort = 6379
	}

	storage := redisstorage.New(redisstorage.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: cachePort,
	})

	group := app.Group(constants.HooksRoute,
		limiter.New(limiter.Config{
			Max:        120,
			Expiration: 1 * time.Minute,
			Storage:    storage,
		}),
		middleware.HookAuthMiddleware(env.GetEnv("HOOK_SIGNING_SECRET", "")),
	)

	group.Post(constants.HookLoginRoute, controllers.HandleLoginHook)
	group.Post(constants.HookCompanyUpdateRoute, controllers.HandleCompanyUpdateHook)
}

func NewHookRouter() *HookRouter {
	return &HookRouter{}
}
