package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyValidate(t *testing.T) {
	company := &Company{
		Name:         "Acme Outdoor Supply",
		Email:        "billing@acme.example",
		Status:       COMPANY_STATUS_ACTIVE,
		PlanID:       1,
		RegisteredAt: time.Now(),
	}

	require.NoError(t, company.Validate())
}

func TestCompanyValidateRejectsBadValues(t *testing.T) {
	company := &Company{
		Name:         "A",
		Email:        "not-an-email",
		Status:       "deactivated",
		RegisteredAt: time.Now(),
	}

	err := company.Validate()
	require.Error(t, err)
}

func TestCompanyStatusHelpers(t *testing.T) {
	company := &Company{Status: COMPANY_STATUS_NEW}
	assert.True(t, company.IsNew())
	assert.False(t, company.IsSuspended())

	company.Status = COMPANY_STATUS_SUSPENDED
	assert.True(t, company.IsSuspended())
	assert.False(t, company.IsNew())

	company.Status = COMPANY_STATUS_ACTIVE
	assert.False(t, company.IsSuspended())
	assert.False(t, company.IsNew())
}
