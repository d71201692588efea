package domain_test

import (
	"testing"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCredits(t *testing.T) {
	cases := []struct {
		credits  int64
		expected domain.CreditStatus
	}{
		{1000, domain.StatusGood},
		{101, domain.StatusGood},
		{100, domain.StatusLow},
		{50, domain.StatusLow},
		{21, domain.StatusLow},
		{20, domain.StatusCritical},
		{1, domain.StatusCritical},
		{0, domain.StatusCritical},
		{-5, domain.StatusCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, domain.StatusForCredits(tc.credits), "credits=%d", tc.credits)
	}
}

func TestClientStatus(t *testing.T) {
	client := &domain.Client{Credits: 150}
	assert.Equal(t, domain.StatusGood, client.Status())

	client.Credits = 20
	assert.Equal(t, domain.StatusCritical, client.Status())
}

func TestUsageDescription(t *testing.T) {
	analysis := domain.Usage{
		Type:            domain.UsageQuestionnaireAnalyzed,
		CandidateName:   "Jordan Reyes",
		ProfileDetected: "Strategic Leader",
	}
	assert.Equal(t, "Analysis for Jordan Reyes - Strategic Leader", analysis.Description())

	purchase := domain.Usage{Type: domain.UsageCreditPurchase, Reason: "Starter pack"}
	assert.Equal(t, "Credit purchase - Starter pack", purchase.Description())

	added := domain.Usage{Type: domain.UsageCreditAdded, Reason: "Promotional bonus"}
	assert.Equal(t, "Manual credit addition - Promotional bonus", added.Description())

	unknown := domain.Usage{Type: domain.UsageType("other"), Reason: "Adjustment"}
	assert.Equal(t, "Adjustment", unknown.Description())

	blank := domain.Usage{Type: domain.UsageType("other")}
	assert.Equal(t, "Unknown activity", blank.Description())
}
