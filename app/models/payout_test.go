package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutBeforeCreateAssignsUUID(t *testing.T) {
	payout := &Payout{CompanyID: 1, PlanID: 1, Type: PAYOUT_TYPE_PAYOUT}

	require.NoError(t, payout.BeforeCreate(nil))
	require.NotEmpty(t, payout.UUID)

	_, err := uuid.Parse(payout.UUID)
	assert.NoError(t, err)
}

func TestPayoutBeforeCreateKeepsExistingUUID(t *testing.T) {
	existing := uuid.New().String()
	payout := &Payout{UUID: existing}

	require.NoError(t, payout.BeforeCreate(nil))
	assert.Equal(t, existing, payout.UUID)
}

func TestPayoutIsPending(t *testing.T) {
	payout := &Payout{Status: PAYOUT_STATUS_PENDING}
	assert.True(t, payout.IsPending())

	payout.Status = PAYOUT_STATUS_COMPLETED
	assert.False(t, payout.IsPending())
}
