package mapping

import (
	"database/sql"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelUsage converts a domain Usage to a model Usage
func ToModelUsage(d domain.Usage) models.Usage {
	return models.Usage{
		UsageID:         d.UsageID,
		ClientID:        d.ClientID,
		Type:            string(d.Type),
		Amount:          d.Amount,
		Reason:          toNullString(d.Reason),
		CandidateName:   toNullString(d.CandidateName),
		ProfileDetected: toNullString(d.ProfileDetected),
		Timestamp:       d.Timestamp,
		Balance:         d.Balance,
	}
}

// ToDomainUsage converts a model Usage to a domain Usage
func ToDomainUsage(m models.Usage) domain.Usage {
	return domain.Usage{
		UsageID:         m.UsageID,
		ClientID:        m.ClientID,
		Type:            domain.UsageType(m.Type),
		Amount:          m.Amount,
		Reason:          m.Reason.String,
		CandidateName:   m.CandidateName.String,
		ProfileDetected: m.ProfileDetected.String,
		Timestamp:       m.Timestamp,
		Balance:         m.Balance,
	}
}

// ToDomainUsageSlice converts a slice of model Usages to a slice of domain Usages
func ToDomainUsageSlice(ms []models.Usage) []domain.Usage {
	ds := make([]domain.Usage, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUsage(m)
	}
	return ds
}
