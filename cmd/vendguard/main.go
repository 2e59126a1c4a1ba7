package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MHollmann/VendGuard/app/controllers"
	"github.com/MHollmann/VendGuard/app/repository"
	apiv1 "github.com/MHollmann/VendGuard/internal/api/v1"
	"github.com/MHollmann/VendGuard/internal/pkg/billing"
	"github.com/MHollmann/VendGuard/internal/pkg/cache"
	"github.com/MHollmann/VendGuard/internal/pkg/compliance"
	"github.com/MHollmann/VendGuard/internal/pkg/database"
	"github.com/MHollmann/VendGuard/internal/pkg/env"
	"github.com/MHollmann/VendGuard/internal/pkg/hooks"
	"github.com/MHollmann/VendGuard/internal/pkg/jobqueue"
	metrics "github.com/MHollmann/VendGuard/internal/pkg/metrics/counter"
	"github.com/MHollmann/VendGuard/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	handler, grace, service := buildComplianceCore()
	controllers.InitializeHookController(handler)

	repos := repository.GetGlobalFactory().GetRepositories()
	manager := jobqueue.InitializeManager(service, repos.Company, grace, jobqueue.ManagerConfig{
		Workers:       envInt("JOBQUEUE_WORKERS", 3),
		SweepInterval: envDuration("COMPLIANCE_SWEEP_INTERVAL", 6*time.Hour),
	})
	manager.Start()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/vendguard to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, apiv1.NewAPIServer(grace))

	return app
}

// buildComplianceCore assembles the compliance components. All
// configuration is resolved here once and injected; the components
// themselves never touch the environment.
func buildComplianceCore() (*hooks.Handler, *compliance.GraceEvaluator, *compliance.Service) {
	repos := repository.GetGlobalFactory().GetRepositories()

	gatewayCfg := billing.Config{
		APILoginID:     env.GetEnv("GATEWAY_API_LOGIN_ID", ""),
		TransactionKey: env.GetEnv("GATEWAY_TRANSACTION_KEY", ""),
		Mode:           env.GetEnv("GATEWAY_MODE", billing.ModeSandbox),
	}

	graceDays, err := strconv.Atoi(env.GetEnv("GRACE_PERIOD_DAYS", "14"))
	if err != nil {
		log.Printf("invalid GRACE_PERIOD_DAYS, grace period disabled: %v", err)
		graceDays = 0
	}
	recheckWindow, err := time.ParseDuration(env.GetEnv("COMPLIANCE_RECHECK_WINDOW", "5m"))
	if err != nil {
		recheckWindow = 0
	}
	complianceCfg := compliance.Config{
		GracePeriodDays: graceDays,
		RecheckWindow:   recheckWindow,
	}

	fetcher := billing.NewFetcher(billing.NewGatewayClient(gatewayCfg), repos.Plan)
	grace := compliance.NewGraceEvaluator(repos.Company, complianceCfg)
	service := compliance.NewService(repos.Company, repos.BillingProfile, fetcher)
	service.SetMetrics(metrics.Recorder{})
	reconciler := compliance.NewReconciler(repos.Payout, grace)
	damper := cache.NewComplianceDamper(cache.GetClient())

	return hooks.NewHandler(grace, service, reconciler, damper, complianceCfg), grace, service
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(env.GetEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(env.GetEnv(key, fallback.String()))
	if err != nil {
		return fallback
	}
	return v
}
