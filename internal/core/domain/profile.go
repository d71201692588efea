package domain

import "time"

// Profile is a behavioral profile detected by questionnaire analysis.
type Profile struct {
	ProfileID   string    `json:"profileID"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Rules       []Rule    `json:"rules"`
}

// Rule is a threshold condition attached to a profile. Rules describe when
// a profile applies; evaluating them against questionnaire answers happens
// outside this service.
type Rule struct {
	RuleID     string `json:"ruleID"`
	ProfileID  string `json:"profileID"`
	Competency string `json:"competency"`
	Operator   string `json:"operator"` // e.g. "gte", "lte"
	Threshold  int    `json:"threshold"`
}
