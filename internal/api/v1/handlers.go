package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MHollmann/VendGuard/app/models"
	"github.com/MHollmann/VendGuard/app/repository"
	"github.com/MHollmann/VendGuard/internal/pkg/compliance"
	"github.com/MHollmann/VendGuard/internal/pkg/jobqueue"
)

// APIServer implements the v1 admin surface
type APIServer struct {
	grace *compliance.GraceEvaluator
}

// NewAPIServer creates a new API server instance
func NewAPIServer(grace *compliance.GraceEvaluator) *APIServer {
	return &APIServer{grace: grace}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetCompanyStatus returns the compliance-relevant view of a vendor account.
func (s *APIServer) GetCompanyStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid company id"})
	}

	companies := repository.GetGlobalFactory().GetCompanyRepository()
	company, err := companies.GetByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal", "message": "company lookup failed"})
	}

	payouts := repository.GetGlobalFactory().GetPayoutRepository()
	hasPending := false
	if _, err := payouts.FindPending(company.ID, company.PlanID, models.PAYOUT_TYPE_PAYOUT); err == nil {
		hasPending = true
	}

	return c.JSON(CompanyStatus{
		ID:               company.ID,
		Status:           company.Status,
		PlanID:           company.PlanID,
		RegisteredAt:     company.RegisteredAt,
		InGracePeriod:    s.grace.InGracePeriod(company.ID, time.Now()),
		HasPendingPayout: hasPending,
		CheckCount:       company.CheckCount,
		SuspensionCount:  company.SuspensionCount,
	})
}

// PostComplianceRecheck queues an asynchronous compliance check for a vendor.
func (s *APIServer) PostComplianceRecheck(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid company id"})
	}

	manager := jobqueue.GetManager()
	if manager == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "not_configured", "message": "job queue not running"})
	}

	payload := jobqueue.ComplianceCheckJobPayload{CompanyID: uint(id), Reason: "admin"}
	job, err := manager.GetQueue().EnqueueJob(jobqueue.JobTypeComplianceCheck, payload.ToMap())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal", "message": "failed to enqueue check"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"job_id": job.ID})
}

// GetJobStatus returns the state of a queued compliance check.
func (s *APIServer) GetJobStatus(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "job id missing"})
	}

	manager := jobqueue.GetManager()
	if manager == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "not_configured", "message": "job queue not running"})
	}

	job, err := manager.GetQueue().GetJob(c.UserContext(), jobID)
	if err != nil {
		// Completed jobs are removed from Redis; report them as done.
		return c.JSON(fiber.Map{"id": jobID, "status": string(jobqueue.JobStatusCompleted)})
	}

	return c.JSON(fiber.Map{"id": job.ID, "status": string(job.Status), "error": job.ErrorMsg})
}
