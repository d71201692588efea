package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// reportingService computes read-only, point-in-time summaries over the full
// set of clients' ledgers. It never mutates ledger state.
type reportingService struct {
	clientRepo        portsrepo.ClientRepository
	ledgerRepo        portsrepo.LedgerRepository
	questionnaireRepo portsrepo.QuestionnaireRepository
	profileRepo       portsrepo.ProfileRepository
	now               func() time.Time
}

// ReportingServiceOption is a functional option for configuring the
// reporting service.
type ReportingServiceOption func(*reportingService)

// WithCatalogCounters provides the repositories used for the dashboard's
// entity counts. Without them DashboardStats reports zero counts.
func WithCatalogCounters(questionnaireRepo portsrepo.QuestionnaireRepository, profileRepo portsrepo.ProfileRepository) ReportingServiceOption {
	return func(s *reportingService) {
		s.questionnaireRepo = questionnaireRepo
		s.profileRepo = profileRepo
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided
// options.
func NewReportingService(clientRepo portsrepo.ClientRepository, ledgerRepo portsrepo.LedgerRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		clientRepo: clientRepo,
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// CreditSummary computes the dashboard roll-up from the current snapshot.
func (s *reportingService) CreditSummary(ctx context.Context) (*domain.CreditSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		logger.Error("Failed to fetch clients for credit summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}

	var total int64
	for _, client := range clients {
		total += client.Credits
	}

	monthly, err := s.monthlyUsage(ctx)
	if err != nil {
		return nil, err
	}

	// Division by zero is defined away: no clients means a zero average.
	average := decimal.Zero
	if len(clients) > 0 {
		average = decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(len(clients))))
	}

	summary := &domain.CreditSummary{
		TotalCredits:   total,
		MonthlyUsage:   monthly,
		ActiveClients:  len(clients),
		AverageBalance: average,
	}
	logger.Debug("Credit summary computed",
		slog.Int64("total_credits", total),
		slog.Int64("monthly_usage", monthly),
		slog.Int("clients", len(clients)))
	return summary, nil
}

// monthlyUsage sums the absolute value of consumption records dated within
// the current calendar month. The month boundary is the first instant of the
// month in the server's local time zone.
func (s *reportingService) monthlyUsage(ctx context.Context) (int64, error) {
	usage, err := s.ledgerRepo.FindAllUsage(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve usage records: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var sum int64
	for _, u := range usage {
		if u.Amount < 0 && !u.Timestamp.Before(monthStart) && !u.Timestamp.After(now) {
			sum += -u.Amount
		}
	}
	return sum, nil
}

// AllTransactions returns the union of every client's usage records,
// annotated with the owning client, newest first. Equal timestamps are
// ordered by usage ID ascending so the feed is stable across reads.
func (s *reportingService) AllTransactions(ctx context.Context) ([]domain.ClientUsage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		logger.Error("Failed to fetch clients for transaction feed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	usage, err := s.ledgerRepo.FindAllUsage(ctx)
	if err != nil {
		logger.Error("Failed to fetch usage records for transaction feed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve usage records: %w", err)
	}

	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ClientID] = client.Name
	}

	feed := make([]domain.ClientUsage, 0, len(usage))
	for _, u := range usage {
		name, ok := names[u.ClientID]
		if !ok {
			// Usage without an owning client is unreachable through the
			// directory; keep the feed consistent with it.
			continue
		}
		feed = append(feed, domain.ClientUsage{Usage: u, ClientName: name})
	}

	sort.Slice(feed, func(i, j int) bool {
		if feed[i].Timestamp.Equal(feed[j].Timestamp) {
			return feed[i].UsageID < feed[j].UsageID
		}
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	return feed, nil
}

// FilteredTransactions restricts AllTransactions to records with a
// timestamp at or after now minus windowDays days.
func (s *reportingService) FilteredTransactions(ctx context.Context, windowDays int) ([]domain.ClientUsage, error) {
	feed, err := s.AllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().AddDate(0, 0, -windowDays)
	filtered := make([]domain.ClientUsage, 0, len(feed))
	for _, t := range feed {
		if !t.Timestamp.Before(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// DashboardStats composes the credit summary with entity counts.
func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.CreditSummary(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{Credits: *summary}

	// Count failures degrade to zero rather than failing the dashboard.
	if s.questionnaireRepo != nil {
		count, err := s.questionnaireRepo.CountActiveQuestionnaires(ctx)
		if err != nil {
			logger.Warn("Failed to count active questionnaires", slog.String("error", err.Error()))
		} else {
			stats.ActiveQuestionnaires = count
		}
	}
	if s.profileRepo != nil {
		count, err := s.profileRepo.CountProfiles(ctx)
		if err != nil {
			logger.Warn("Failed to count profiles", slog.String("error", err.Error()))
		} else {
			stats.TotalProfiles = count
		}
	}

	return stats, nil
}
