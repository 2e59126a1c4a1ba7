package jobqueue

import (
	"context"
	"fmt"
)

// processComplianceCheckJob runs a deferred compliance evaluation. The
// check itself never errors (non-compliance fails closed into a
// suspension), so a job only fails on a bad payload or missing wiring.
func (q *Queue) processComplianceCheckJob(ctx context.Context, job *Job) error {
	payload, err := ComplianceCheckJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid compliance check payload: %w", err)
	}
	if payload.CompanyID == 0 {
		return fmt.Errorf("compliance check payload has no company id")
	}
	if q.service == nil {
		return fmt.Errorf("compliance service not configured")
	}

	q.service.CheckVendor(ctx, payload.CompanyID)
	return nil
}
