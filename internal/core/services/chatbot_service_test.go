package services_test

import (
	"context"
	"testing"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ChatbotServiceTestSuite struct {
	suite.Suite
	mockRepo *MockChatbotRepository
	service  portssvc.ChatbotSvcFacade
}

func (suite *ChatbotServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChatbotRepository)
	suite.service = services.NewChatbotService(suite.mockRepo)
}

func (suite *ChatbotServiceTestSuite) TestGetResponse_Configured() {
	ctx := context.Background()
	configured := &domain.ChatbotResponse{
		ResponseID: "r1",
		ProfileID:  "p1",
		Section:    "leadership",
		Question:   "strengths",
		Response:   "Strong delegation and follow-through.",
	}

	suite.mockRepo.On("FindResponse", ctx, "p1", "leadership", "strengths").Return(configured, nil).Once()

	answer, err := suite.service.GetResponse(ctx, "p1", "leadership", "strengths")

	suite.Require().NoError(err)
	suite.Equal(configured.Response, answer)
}

func (suite *ChatbotServiceTestSuite) TestGetResponse_FallsBackWhenMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindResponse", ctx, "p1", "leadership", "weaknesses").Return(nil, apperrors.ErrNotFound).Once()

	answer, err := suite.service.GetResponse(ctx, "p1", "leadership", "weaknesses")

	suite.Require().NoError(err)
	suite.Equal(domain.ChatbotFallbackResponse, answer)
}

func (suite *ChatbotServiceTestSuite) TestGetResponse_StoreError() {
	ctx := context.Background()

	suite.mockRepo.On("FindResponse", ctx, "p1", "leadership", "strengths").Return(nil, assert.AnError).Once()

	answer, err := suite.service.GetResponse(ctx, "p1", "leadership", "strengths")

	suite.Require().Error(err)
	suite.Empty(answer)
	suite.ErrorIs(err, assert.AnError)
}

func TestChatbotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatbotServiceTestSuite))
}
