package services

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/dto"
)

// QuestionnaireSvcFacade defines CRUD over questionnaires and their
// questions.
type QuestionnaireSvcFacade interface {
	CreateQuestionnaire(ctx context.Context, req dto.CreateQuestionnaireRequest) (*domain.Questionnaire, error)
	GetQuestionnaireByID(ctx context.Context, questionnaireID string) (*domain.Questionnaire, error)
	ListQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaireID string, req dto.UpdateQuestionnaireRequest) (*domain.Questionnaire, error)
	DeleteQuestionnaire(ctx context.Context, questionnaireID string) error
}

// ProfileSvcFacade defines CRUD over behavioral profiles and their rules.
type ProfileSvcFacade interface {
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest) (*domain.Profile, error)
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, profileID string) error
}

// ChatbotSvcFacade defines the canned-response lookup and its authoring
// operations.
type ChatbotSvcFacade interface {
	// GetResponse returns the canned answer for the lookup key or the fixed
	// fallback message when none is configured.
	GetResponse(ctx context.Context, profileID, section, question string) (string, error)
	CreateResponse(ctx context.Context, req dto.CreateChatbotResponseRequest) (*domain.ChatbotResponse, error)
	ListResponses(ctx context.Context) ([]domain.ChatbotResponse, error)
	DeleteResponse(ctx context.Context, responseID string) error
}

// GroupSvcFacade defines CRUD over respondent groups.
type GroupSvcFacade interface {
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*domain.Group, error)
	GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error)
	DeleteGroup(ctx context.Context, groupID string) error
}
