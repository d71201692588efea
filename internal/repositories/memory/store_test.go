package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store *memory.Store
	ctx   context.Context
}

func (suite *MemoryStoreTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.ctx = context.Background()
}

func (suite *MemoryStoreTestSuite) newClient(credits int64) domain.Client {
	return domain.Client{
		ClientID:  uuid.NewString(),
		Name:      "Acme",
		Email:     "billing@acme.example",
		Credits:   credits,
		APIKey:    "profileiq_abc",
		CreatedAt: time.Now().UTC(),
	}
}

func (suite *MemoryStoreTestSuite) TestSaveAndFindClient() {
	client := suite.newClient(100)

	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))

	found, err := suite.store.FindClientByID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Equal(client.ClientID, found.ClientID)
	suite.Equal(int64(100), found.Credits)
}

func (suite *MemoryStoreTestSuite) TestSaveClient_Duplicate() {
	client := suite.newClient(100)

	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))
	err := suite.store.SaveClient(suite.ctx, client)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MemoryStoreTestSuite) TestFindClientByID_NotFound() {
	_, err := suite.store.FindClientByID(suite.ctx, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestRecordCreditChange_ReadAfterWrite() {
	client := suite.newClient(100)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))

	usage := domain.Usage{
		UsageID:   uuid.NewString(),
		ClientID:  client.ClientID,
		Type:      domain.UsageCreditAdded,
		Amount:    50,
		Reason:    "Promotional bonus",
		Timestamp: time.Now().UTC(),
		Balance:   150,
	}
	suite.Require().NoError(suite.store.RecordCreditChange(suite.ctx, client.ClientID, 150, usage))

	// Both the balance and the usage record are visible immediately.
	found, err := suite.store.FindClientByID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Equal(int64(150), found.Credits)

	history, err := suite.store.FindUsageByClientID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(usage.UsageID, history[0].UsageID)
}

func (suite *MemoryStoreTestSuite) TestRecordCreditChange_UnknownClient() {
	err := suite.store.RecordCreditChange(suite.ctx, uuid.NewString(), 150, domain.Usage{UsageID: uuid.NewString()})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestFindUsage_NewestFirst() {
	client := suite.newClient(100)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))

	base := time.Now().UTC()
	older := domain.Usage{UsageID: "u-older", ClientID: client.ClientID, Timestamp: base.Add(-time.Hour)}
	newer := domain.Usage{UsageID: "u-newer", ClientID: client.ClientID, Timestamp: base}
	suite.Require().NoError(suite.store.SaveUsage(suite.ctx, older))
	suite.Require().NoError(suite.store.SaveUsage(suite.ctx, newer))

	history, err := suite.store.FindUsageByClientID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("u-newer", history[0].UsageID)
	suite.Equal("u-older", history[1].UsageID)
}

func (suite *MemoryStoreTestSuite) TestFindUsage_EqualTimestampsTieBreakByID() {
	client := suite.newClient(100)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))

	ts := time.Now().UTC()
	suite.Require().NoError(suite.store.SaveUsage(suite.ctx, domain.Usage{UsageID: "u-b", ClientID: client.ClientID, Timestamp: ts}))
	suite.Require().NoError(suite.store.SaveUsage(suite.ctx, domain.Usage{UsageID: "u-a", ClientID: client.ClientID, Timestamp: ts}))

	history, err := suite.store.FindUsageByClientID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Equal("u-a", history[0].UsageID)
	suite.Equal("u-b", history[1].UsageID)
}

func (suite *MemoryStoreTestSuite) TestDeleteClient_CascadesUsage() {
	client := suite.newClient(100)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))
	suite.Require().NoError(suite.store.SaveUsage(suite.ctx, domain.Usage{UsageID: uuid.NewString(), ClientID: client.ClientID, Timestamp: time.Now().UTC()}))

	suite.Require().NoError(suite.store.DeleteClient(suite.ctx, client.ClientID))

	_, err := suite.store.FindClientByID(suite.ctx, client.ClientID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	all, err := suite.store.FindAllUsage(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *MemoryStoreTestSuite) TestUpdateClient_PreservesCredits() {
	client := suite.newClient(100)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, client))
	suite.Require().NoError(suite.store.UpdateClientCredits(suite.ctx, client.ClientID, 175))

	client.Name = "Acme Holdings"
	client.Credits = 9999 // must not leak into the stored balance
	suite.Require().NoError(suite.store.UpdateClient(suite.ctx, client))

	found, err := suite.store.FindClientByID(suite.ctx, client.ClientID)
	suite.Require().NoError(err)
	suite.Equal("Acme Holdings", found.Name)
	suite.Equal(int64(175), found.Credits)
}

func (suite *MemoryStoreTestSuite) TestFindClients_OrderedByCreation() {
	first := suite.newClient(10)
	first.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	second := suite.newClient(20)
	second.CreatedAt = time.Now().UTC().Add(-time.Hour)
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, second))
	suite.Require().NoError(suite.store.SaveClient(suite.ctx, first))

	clients, err := suite.store.FindClients(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(clients, 2)
	suite.Equal(first.ClientID, clients[0].ClientID)
	suite.Equal(second.ClientID, clients[1].ClientID)
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
