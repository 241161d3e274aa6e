// service/fixture_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aegisd/aegis/dao"
	logger "github.com/aegisd/aegis/logging"
	"github.com/aegisd/aegis/model"
	"github.com/aegisd/aegis/service"
	"github.com/aegisd/aegis/test/mock"
	"github.com/aegisd/aegis/util"
)

// fixture wires the full service layer over an in-memory store.
type fixture struct {
	store    *mock.MemoryStore
	services *service.Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger.InitLogger(t.TempDir())

	store := mock.NewMemoryStore()
	services := service.NewServices(
		dao.NewAttributeDAO(store),
		dao.NewUserDAO(store),
		dao.NewPolicyDAO(store),
		dao.NewResourceDAO(store),
		util.NewValidationUtil(),
		util.NewCacheService(store),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
	return &fixture{store: store, services: services}
}

func (f *fixture) defineAttribute(t *testing.T, name, attrType string) {
	t.Helper()
	_, err := f.services.Attribute.DefineAttribute(context.Background(), model.NewAttribute{
		AttributeName: name,
		AttributeType: attrType,
	})
	require.NoError(t, err)
}

func (f *fixture) createUser(t *testing.T, userID string, attributes map[string]interface{}) {
	t.Helper()
	_, err := f.services.User.CreateUser(context.Background(), model.User{
		ID:         userID,
		Attributes: attributes,
	})
	require.NoError(t, err)
}

func (f *fixture) createPolicy(t *testing.T, policyID string, conditions []model.Condition) {
	t.Helper()
	_, err := f.services.Policy.CreatePolicy(context.Background(), model.Policy{
		ID:         policyID,
		Conditions: conditions,
	})
	require.NoError(t, err)
}

func (f *fixture) createResource(t *testing.T, resourceID string, policyIDs []string) {
	t.Helper()
	_, err := f.services.Resource.CreateResource(context.Background(), model.Resource{
		ID:        resourceID,
		PolicyIDs: policyIDs,
	})
	require.NoError(t, err)
}
