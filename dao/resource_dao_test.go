// dao/resource_dao_test.go
package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegisd/aegis/dao"
	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/test/mock"
)

func TestResourceDAOPresenceMarker(t *testing.T) {
	ctx := context.Background()
	store := mock.NewMemoryStore()
	resourceDAO := dao.NewResourceDAO(store)

	// A resource bound to no policies is still observable and conflicts on
	// re-create.
	require.NoError(t, resourceDAO.Create(ctx, "locked", nil))

	policyIDs, err := resourceDAO.GetPolicyIDs(ctx, "locked")
	require.NoError(t, err)
	assert.Empty(t, policyIDs)

	err = resourceDAO.Create(ctx, "locked", []string{"p1"})
	assert.ErrorIs(t, err, aegis_errors.ErrResourceConflict)

	_, err = resourceDAO.GetPolicyIDs(ctx, "missing")
	assert.ErrorIs(t, err, aegis_errors.ErrResourceNotFound)
}

func TestResourceDAOReplacePolicies(t *testing.T) {
	ctx := context.Background()
	store := mock.NewMemoryStore()
	resourceDAO := dao.NewResourceDAO(store)

	require.NoError(t, resourceDAO.Create(ctx, "doc1", []string{"p1", "p2"}))
	require.NoError(t, resourceDAO.ReplacePolicies(ctx, "doc1", []string{"p3"}))

	policyIDs, err := resourceDAO.GetPolicyIDs(ctx, "doc1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p3"}, policyIDs)

	require.NoError(t, resourceDAO.ReplacePolicies(ctx, "doc1", nil))

	policyIDs, err = resourceDAO.GetPolicyIDs(ctx, "doc1")
	require.NoError(t, err)
	assert.Empty(t, policyIDs)
}
