package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/core/services"
	"github.com/profileiq/profileiq-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockClientRepo, suite.mockLedgerRepo)
}

func testClient(credits int64) *domain.Client {
	return &domain.Client{
		ClientID:  uuid.NewString(),
		Name:      "Acme Corp",
		Email:     "billing@acme.example",
		Credits:   credits,
		APIKey:    "profileiq_abc123",
		CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
	}
}

func (suite *LedgerServiceTestSuite) TestAddCredits_Success() {
	ctx := context.Background()
	client := testClient(100)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("UpdateClientCredits", ctx, client.ClientID, int64(150)).Return(nil).Once()
	suite.mockLedgerRepo.On("SaveUsage", ctx, mock.MatchedBy(func(u domain.Usage) bool {
		return u.ClientID == client.ClientID &&
			u.Type == domain.UsageCreditAdded &&
			u.Amount == 50 &&
			u.Reason == "Promotional bonus" &&
			u.Balance == 150 &&
			u.UsageID != ""
	})).Return(nil).Once()

	refreshed := testClient(150)
	refreshed.ClientID = client.ClientID
	history := []domain.Usage{{UsageID: uuid.NewString(), ClientID: client.ClientID, Type: domain.UsageCreditAdded, Amount: 50, Balance: 150}}
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(refreshed, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, client.ClientID).Return(history, nil).Once()

	result, err := suite.service.AddCredits(ctx, client.ClientID, 50, "Promotional bonus")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(150), result.Credits)
	suite.Len(result.Usage, 1)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddCredits_ZeroAmount() {
	ctx := context.Background()

	result, err := suite.service.AddCredits(ctx, uuid.NewString(), 0, "Promotional bonus")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateClientCredits", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_NegativeAmount() {
	ctx := context.Background()

	result, err := suite.service.AddCredits(ctx, uuid.NewString(), -25, "Promotional bonus")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_BlankReason() {
	ctx := context.Background()

	result, err := suite.service.AddCredits(ctx, uuid.NewString(), 50, "   ")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateClientCredits", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveUsage", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_ClientNotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.AddCredits(ctx, clientID, 50, "Promotional bonus")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateClientCredits", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_BalanceUpdateError() {
	ctx := context.Background()
	client := testClient(100)
	expectedErr := assert.AnError

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("UpdateClientCredits", ctx, client.ClientID, int64(150)).Return(expectedErr).Once()

	result, err := suite.service.AddCredits(ctx, client.ClientID, 50, "Promotional bonus")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)
	suite.NotErrorIs(err, apperrors.ErrPartialConsistency)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveUsage", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_UsageAppendFailureIsPartialConsistency() {
	ctx := context.Background()
	client := testClient(100)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("UpdateClientCredits", ctx, client.ClientID, int64(150)).Return(nil).Once()
	suite.mockLedgerRepo.On("SaveUsage", ctx, mock.AnythingOfType("domain.Usage")).Return(assert.AnError).Once()

	result, err := suite.service.AddCredits(ctx, client.ClientID, 50, "Promotional bonus")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPartialConsistency)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddCredits_HistoryReloadFailureDegradesToEmpty() {
	ctx := context.Background()
	client := testClient(100)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Twice()
	suite.mockLedgerRepo.On("UpdateClientCredits", ctx, client.ClientID, int64(150)).Return(nil).Once()
	suite.mockLedgerRepo.On("SaveUsage", ctx, mock.AnythingOfType("domain.Usage")).Return(nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, client.ClientID).Return(nil, assert.AnError).Once()

	result, err := suite.service.AddCredits(ctx, client.ClientID, 50, "Promotional bonus")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.Usage)
}

func (suite *LedgerServiceTestSuite) TestAddCredits_PrefersAtomicStore() {
	ctx := context.Background()
	client := testClient(100)
	mockAtomic := new(MockAtomicLedgerRepository)
	service := services.NewLedgerService(suite.mockClientRepo, mockAtomic)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Twice()
	mockAtomic.On("RecordCreditChange", ctx, client.ClientID, int64(125), mock.MatchedBy(func(u domain.Usage) bool {
		return u.Amount == 25 && u.Balance == 125 && u.Type == domain.UsageCreditAdded
	})).Return(nil).Once()
	mockAtomic.On("FindUsageByClientID", ctx, client.ClientID).Return([]domain.Usage{}, nil).Once()

	result, err := service.AddCredits(ctx, client.ClientID, 25, "Quarterly bonus")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	mockAtomic.AssertExpectations(suite.T())
	mockAtomic.AssertNotCalled(suite.T(), "UpdateClientCredits", mock.Anything, mock.Anything, mock.Anything)
	mockAtomic.AssertNotCalled(suite.T(), "SaveUsage", mock.Anything, mock.Anything)
}

// Sequential additions against the in-memory store: each addition observes
// the balance left by the previous one and appends its own record.
func (suite *LedgerServiceTestSuite) TestAddCredits_SequentialAdditions() {
	ctx := context.Background()
	store := memory.NewStore()
	service := services.NewLedgerService(store, store)

	client := testClient(100)
	suite.Require().NoError(store.SaveClient(ctx, *client))

	result, err := service.AddCredits(ctx, client.ClientID, 50, "Promotional bonus")
	suite.Require().NoError(err)
	suite.Equal(int64(150), result.Credits)
	suite.Len(result.Usage, 1)

	result, err = service.AddCredits(ctx, client.ClientID, 25, "Loyalty bonus")
	suite.Require().NoError(err)
	suite.Equal(int64(175), result.Credits)
	suite.Require().Len(result.Usage, 2)

	// Newest first, balances monotonically increasing through history.
	suite.Equal(int64(175), result.Usage[0].Balance)
	suite.Equal(int64(150), result.Usage[1].Balance)
	suite.Equal(int64(25), result.Usage[0].Amount)
	suite.Equal(int64(50), result.Usage[1].Amount)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
