package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/core/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewClientService(suite.mockClientRepo, suite.mockLedgerRepo, 0)
}

func (suite *ClientServiceTestSuite) TestCreateClient_Defaults() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.example",
		Brand: "Acme Talent!",
	}

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == req.Name &&
			c.Email == req.Email &&
			c.Credits == services.DefaultStartingCredits &&
			strings.HasPrefix(c.APIKey, "profileiq_") &&
			c.BrandSlug == "acme-talent" &&
			c.CustomURL == "talentscanner.app/acme-talent/questionario" &&
			c.ClientID != "" &&
			!c.CreatedAt.IsZero()
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(int64(100), client.Credits)
	suite.Empty(client.Usage)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_NoBrand() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Globex",
		Email: "ops@globex.example",
	}

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.BrandSlug == "" && c.CustomURL == ""
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(client.CustomURL)
}

func (suite *ClientServiceTestSuite) TestCreateClient_ConfiguredStartingCredits() {
	ctx := context.Background()
	service := services.NewClientService(suite.mockClientRepo, suite.mockLedgerRepo, 250)

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Credits == 250
	})).Return(nil).Once()

	client, err := service.CreateClient(ctx, dto.CreateClientRequest{Name: "Initech", Email: "it@initech.example"})

	suite.Require().NoError(err)
	suite.Equal(int64(250), client.Credits)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_MergesUsage() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, Name: "Acme", Credits: 150}
	history := []domain.Usage{
		{UsageID: "u2", ClientID: clientID, Amount: 50, Balance: 150, Timestamp: time.Now().UTC()},
		{UsageID: "u1", ClientID: clientID, Amount: -5, Balance: 100, Timestamp: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, clientID).Return(history, nil).Once()

	result, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Usage, 2)
	suite.Equal("u2", result.Usage[0].UsageID)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_HistoryFailureDegradesToEmpty() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, Name: "Acme", Credits: 150}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, clientID).Return(nil, assert.AnError).Once()

	result, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().NoError(err)
	suite.NotNil(result.Usage)
	suite.Empty(result.Usage)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestListClients_MergesUsagePerClient() {
	ctx := context.Background()
	clients := []domain.Client{
		{ClientID: "c1", Name: "Acme", Credits: 150},
		{ClientID: "c2", Name: "Globex", Credits: 30},
	}

	suite.mockClientRepo.On("FindClients", ctx).Return(clients, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, "c1").Return([]domain.Usage{{UsageID: "u1", ClientID: "c1"}}, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, "c2").Return([]domain.Usage{}, nil).Once()

	result, err := suite.service.ListClients(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Len(result[0].Usage, 1)
	suite.Empty(result[1].Usage)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PartialFields() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, Name: "Acme", Email: "old@acme.example", Credits: 150}
	newName := "Acme Holdings"

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == newName && c.Email == "old@acme.example"
	})).Return(nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, clientID).Return([]domain.Usage{}, nil).Once()

	result, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, result.Name)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NoFieldsSkipsWrite() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, Name: "Acme", Credits: 150}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockLedgerRepo.On("FindUsageByClientID", ctx, clientID).Return([]domain.Usage{}, nil).Once()

	result, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{})

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("DeleteClient", ctx, clientID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, clientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
