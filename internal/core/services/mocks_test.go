package services_test

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock LedgerRepository (two-step store, no transaction support) ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) UpdateClientCredits(ctx context.Context, clientID string, newBalance int64) error {
	args := m.Called(ctx, clientID, newBalance)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveUsage(ctx context.Context, usage domain.Usage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindUsageByClientID(ctx context.Context, clientID string) ([]domain.Usage, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Usage), args.Error(1)
}

func (m *MockLedgerRepository) FindAllUsage(ctx context.Context) ([]domain.Usage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Usage), args.Error(1)
}

// --- Mock AtomicLedgerRepository ---
type MockAtomicLedgerRepository struct {
	MockLedgerRepository
}

func (m *MockAtomicLedgerRepository) RecordCreditChange(ctx context.Context, clientID string, newBalance int64, usage domain.Usage) error {
	args := m.Called(ctx, clientID, newBalance, usage)
	return args.Error(0)
}

// --- Mock QuestionnaireRepository ---
type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) SaveQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error {
	args := m.Called(ctx, questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*domain.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) FindQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error {
	args := m.Called(ctx, questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) DeleteQuestionnaire(ctx context.Context, questionnaireID string) error {
	args := m.Called(ctx, questionnaireID)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) CountActiveQuestionnaires(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfiles(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock ChatbotRepository ---
type MockChatbotRepository struct {
	mock.Mock
}

func (m *MockChatbotRepository) SaveResponse(ctx context.Context, response domain.ChatbotResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockChatbotRepository) FindResponse(ctx context.Context, profileID, section, question string) (*domain.ChatbotResponse, error) {
	args := m.Called(ctx, profileID, section, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatbotResponse), args.Error(1)
}

func (m *MockChatbotRepository) FindResponses(ctx context.Context) ([]domain.ChatbotResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatbotResponse), args.Error(1)
}

func (m *MockChatbotRepository) DeleteResponse(ctx context.Context, responseID string) error {
	args := m.Called(ctx, responseID)
	return args.Error(0)
}
