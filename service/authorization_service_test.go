// service/authorization_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

func TestIsAuthorized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.defineAttribute(t, "tired", "boolean")

	f.createUser(t, "alice", map[string]interface{}{"age": 31, "department": "engineering", "tired": false})
	f.createUser(t, "bob", map[string]interface{}{"age": 20, "tired": true})

	f.createPolicy(t, "over30", []model.Condition{
		{AttributeName: "age", Operator: model.OpGreater, Value: 30},
	})
	f.createPolicy(t, "wellRested", []model.Condition{
		{AttributeName: "tired", Operator: model.OpEqual, Value: false},
	})
	f.createPolicy(t, "seniorEngineer", []model.Condition{
		{AttributeName: "age", Operator: model.OpGreater, Value: 30},
		{AttributeName: "department", Operator: model.OpStartsWith, Value: "eng"},
	})

	f.createResource(t, "report", []string{"over30"})
	f.createResource(t, "machine", []string{"wellRested"})
	f.createResource(t, "deploy", []string{"seniorEngineer"})
	f.createResource(t, "lounge", []string{"over30", "wellRested"})
	f.createResource(t, "vault", nil)

	t.Run("GreaterThanAllows", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "report")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("GreaterThanDenies", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "bob", "report")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("BooleanMismatchDenies", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "bob", "machine")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("BooleanMatchAllows", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "machine")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("AllConditionsMustHold", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "deploy")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = f.services.Authorization.IsAuthorized(ctx, "bob", "deploy")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("AnySatisfiedPolicyAllows", func(t *testing.T) {
		// bob fails over30 but alice and bob each satisfy at least one
		// of the lounge policies.
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "lounge")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("UnsetAttributeDenies", func(t *testing.T) {
		// bob has no department value, so seniorEngineer can never hold.
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "bob", "deploy")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("EmptyPolicySetDenies", func(t *testing.T) {
		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "vault")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := f.services.Authorization.IsAuthorized(ctx, "nouser", "report")
		assert.ErrorIs(t, err, aegis_errors.ErrUserNotFound)
	})

	t.Run("UnknownResource", func(t *testing.T) {
		_, err := f.services.Authorization.IsAuthorized(ctx, "alice", "noresource")
		assert.ErrorIs(t, err, aegis_errors.ErrResourceNotFound)
	})
}

func TestIsAuthorizedOperators(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")

	f.createUser(t, "alice", map[string]interface{}{"age": 31, "department": "engineering"})

	f.createPolicy(t, "exactAge", []model.Condition{
		{AttributeName: "age", Operator: model.OpEqual, Value: 31},
	})
	f.createPolicy(t, "under40", []model.Condition{
		{AttributeName: "age", Operator: model.OpLess, Value: 40},
	})
	f.createPolicy(t, "exactDept", []model.Condition{
		{AttributeName: "department", Operator: model.OpEqual, Value: "engineering"},
	})
	f.createPolicy(t, "deptPrefix", []model.Condition{
		{AttributeName: "department", Operator: model.OpStartsWith, Value: "sale"},
	})

	cases := []struct {
		policyID string
		want     bool
	}{
		{"exactAge", true},
		{"under40", true},
		{"exactDept", true},
		{"deptPrefix", false},
	}
	for _, tc := range cases {
		f.createResource(t, "res-"+tc.policyID, []string{tc.policyID})

		allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "res-"+tc.policyID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, allowed, "policy %s", tc.policyID)
	}
}

func TestIsAuthorizedDanglingPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createPolicy(t, "doomed", nil)
	f.createResource(t, "doc1", []string{"doomed"})

	// Simulate an out-of-band removal of the policy record and its cached
	// copy; the decision must fail rather than default to a verdict.
	require.NoError(t, f.store.Delete(ctx, "policy:doomed"))
	require.NoError(t, f.store.Delete(ctx, "cache:policy:doomed"))

	f.defineAttribute(t, "age", "integer")
	f.createUser(t, "alice", map[string]interface{}{"age": 31})

	_, err := f.services.Authorization.IsAuthorized(ctx, "alice", "doc1")
	assert.ErrorIs(t, err, aegis_errors.ErrPolicyNotFound)
}

func TestIsAuthorizedUsesLatestAttributes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.createUser(t, "alice", map[string]interface{}{"age": 20})
	f.createPolicy(t, "over30", []model.Condition{
		{AttributeName: "age", Operator: model.OpGreater, Value: 30},
	})
	f.createResource(t, "report", []string{"over30"})

	allowed, err := f.services.Authorization.IsAuthorized(ctx, "alice", "report")
	require.NoError(t, err)
	assert.False(t, allowed)

	_, err = f.services.User.SetUserAttribute(ctx, "alice", "age", 31)
	require.NoError(t, err)

	allowed, err = f.services.Authorization.IsAuthorized(ctx, "alice", "report")
	require.NoError(t, err)
	assert.True(t, allowed)
}
