package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	questionnaireRepo := newPgxQuestionnaireRepository(dbPool)
	profileRepo := newPgxProfileRepository(dbPool)
	chatbotRepo := newPgxChatbotRepository(dbPool)
	groupRepo := newPgxGroupRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:        clientRepo,
		LedgerRepo:        ledgerRepo,
		QuestionnaireRepo: questionnaireRepo,
		ProfileRepo:       profileRepo,
		ChatbotRepo:       chatbotRepo,
		GroupRepo:         groupRepo,
	}
}
