package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddCredits(ctx context.Context, clientID string, amount int64, reason string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, amount, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(operator string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "profileiq-test",
		Subject:   operator,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockClientService = new(MockClientService)
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	registerClientRoutes(v1, suite.mockClientService, suite.mockLedgerService)
}

func (suite *ClientHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestListClients_Success() {
	clients := []domain.Client{
		{ClientID: uuid.NewString(), Name: "Acme Talent", Email: "acme@example.com", Credits: 150, Usage: []domain.Usage{}},
		{ClientID: uuid.NewString(), Name: "Globex", Email: "globex@example.com", Credits: 15, Usage: []domain.Usage{}},
	}
	suite.mockClientService.On("ListClients", mock.Anything).Return(clients, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/clients", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListClientsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Clients, 2)
	suite.Equal(domain.StatusGood, resp.Clients[0].Status)
	suite.Equal(domain.StatusCritical, resp.Clients[1].Status)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestListClients_Unauthorized() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "ListClients", mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestGetClientByID_NotFound() {
	clientID := uuid.NewString()
	suite.mockClientService.On("GetClientByID", mock.Anything, clientID).
		Return(nil, fmt.Errorf("failed to find client %s: %w", clientID, apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/clients/"+clientID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	req := dto.CreateClientRequest{Name: "Acme Talent", Email: "acme@example.com", Brand: "Acme Talent"}
	created := &domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Credits:   100,
		APIKey:    "profileiq_0123456789abcdef01",
		BrandSlug: "acme-talent",
		CustomURL: "talentscanner.app/acme-talent/questionario",
		CreatedAt: time.Now().UTC(),
		Usage:     []domain.Usage{},
	}
	suite.mockClientService.On("CreateClient", mock.Anything, req).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/clients", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClientID, resp.ClientID)
	suite.Equal(int64(100), resp.Credits)
	suite.Equal("acme-talent", resp.BrandSlug)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_InvalidEmail() {
	w := suite.performRequest(http.MethodPost, "/api/v1/clients", gin.H{"name": "Acme", "email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestAddCredits_Success() {
	clientID := uuid.NewString()
	updated := &domain.Client{
		ClientID: clientID,
		Name:     "Acme Talent",
		Credits:  150,
		Usage: []domain.Usage{
			{UsageID: uuid.NewString(), ClientID: clientID, Type: domain.UsageCreditAdded, Amount: 50, Reason: "Monthly top-up", Balance: 150, Timestamp: time.Now().UTC()},
		},
	}
	suite.mockLedgerService.On("AddCredits", mock.Anything, clientID, int64(50), "Monthly top-up").
		Return(updated, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/clients/"+clientID+"/credits", dto.AddCreditsRequest{Amount: 50, Reason: "Monthly top-up"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(150), resp.Credits)
	suite.Require().Len(resp.Usage, 1)
	suite.Equal(int64(150), resp.Usage[0].Balance)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestAddCredits_RejectsNonPositiveAmount() {
	clientID := uuid.NewString()

	w := suite.performRequest(http.MethodPost, "/api/v1/clients/"+clientID+"/credits", gin.H{"amount": -5, "reason": "Oops"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestAddCredits_ClientNotFound() {
	clientID := uuid.NewString()
	suite.mockLedgerService.On("AddCredits", mock.Anything, clientID, int64(50), "Monthly top-up").
		Return(nil, fmt.Errorf("failed to find client %s: %w", clientID, apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/clients/"+clientID+"/credits", dto.AddCreditsRequest{Amount: 50, Reason: "Monthly top-up"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestAddCredits_PartialConsistency() {
	clientID := uuid.NewString()
	suite.mockLedgerService.On("AddCredits", mock.Anything, clientID, int64(50), "Monthly top-up").
		Return(nil, fmt.Errorf("%w: usage insert failed", apperrors.ErrPartialConsistency)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/clients/"+clientID+"/credits", dto.AddCreditsRequest{Amount: 50, Reason: "Monthly top-up"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "usage record could not be written")
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_Success() {
	clientID := uuid.NewString()
	suite.mockClientService.On("DeleteClient", mock.Anything, clientID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/clients/"+clientID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
