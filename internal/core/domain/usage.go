package domain

import (
	"fmt"
	"time"
)

// UsageType is the business reason for a credit balance change.
type UsageType string

const (
	UsageQuestionnaireAnalyzed UsageType = "questionnaire_analyzed"
	UsageCreditPurchase        UsageType = "credit_purchase"
	UsageCreditAdded           UsageType = "credit_added"
)

// Usage is an immutable, timestamped record of a single credit balance
// change. Amount is signed: positive adds credits, negative consumes them.
// Balance is the client's running balance after this record is applied.
// CandidateName and ProfileDetected are only meaningful for
// questionnaire_analyzed records.
type Usage struct {
	UsageID         string    `json:"usageID"`
	ClientID        string    `json:"clientID"`
	Type            UsageType `json:"type"`
	Amount          int64     `json:"amount"`
	Reason          string    `json:"reason"`
	CandidateName   string    `json:"candidateName,omitempty"`
	ProfileDetected string    `json:"profileDetected,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	Balance         int64     `json:"balance"`
}

// Description renders the human-readable feed line for a usage record.
func (u Usage) Description() string {
	switch u.Type {
	case UsageQuestionnaireAnalyzed:
		return fmt.Sprintf("Analysis for %s - %s", u.CandidateName, u.ProfileDetected)
	case UsageCreditPurchase:
		return fmt.Sprintf("Credit purchase - %s", u.Reason)
	case UsageCreditAdded:
		return fmt.Sprintf("Manual credit addition - %s", u.Reason)
	default:
		if u.Reason != "" {
			return u.Reason
		}
		return "Unknown activity"
	}
}
