// service/policy_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

func TestCreatePolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.defineAttribute(t, "tired", "boolean")

	t.Run("Success", func(t *testing.T) {
		policy, err := f.services.Policy.CreatePolicy(ctx, model.Policy{
			ID: "adults",
			Conditions: []model.Condition{
				{AttributeName: "age", Operator: model.OpGreater, Value: 30},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "adults", policy.ID)
		assert.Len(t, policy.Conditions, 1)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{ID: "adults"})
		assert.ErrorIs(t, err, aegis_errors.ErrPolicyConflict)
	})

	t.Run("EmptyConditionsAllowed", func(t *testing.T) {
		_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{ID: "open"})
		require.NoError(t, err)
	})

	t.Run("UndefinedAttribute", func(t *testing.T) {
		_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{
			ID: "bad",
			Conditions: []model.Condition{
				{AttributeName: "height", Operator: model.OpGreater, Value: 180},
			},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotFound)
	})

	t.Run("OperatorTypeMismatch", func(t *testing.T) {
		cases := []model.Condition{
			{AttributeName: "tired", Operator: model.OpGreater, Value: true},
			{AttributeName: "department", Operator: model.OpLess, Value: "ops"},
			{AttributeName: "age", Operator: model.OpStartsWith, Value: 3},
		}
		for _, condition := range cases {
			_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{
				ID:         "bad",
				Conditions: []model.Condition{condition},
			})
			assert.ErrorIs(t, err, aegis_errors.ErrInvalidConditions,
				"operator %q on %q", condition.Operator, condition.AttributeName)
		}
	})

	t.Run("ValueTypeMismatch", func(t *testing.T) {
		_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{
			ID: "bad",
			Conditions: []model.Condition{
				{AttributeName: "age", Operator: model.OpEqual, Value: "thirty"},
			},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidConditions)
	})

	t.Run("FractionalValueRejected", func(t *testing.T) {
		_, err := f.services.Policy.CreatePolicy(ctx, model.Policy{
			ID: "bad",
			Conditions: []model.Condition{
				{AttributeName: "age", Operator: model.OpGreater, Value: 30.5},
			},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidConditions)
	})
}

func TestGetPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.createPolicy(t, "adults", []model.Condition{
		{AttributeName: "age", Operator: model.OpGreater, Value: 30},
	})

	t.Run("Success", func(t *testing.T) {
		policy, err := f.services.Policy.GetPolicy(ctx, "adults")
		require.NoError(t, err)
		require.Len(t, policy.Conditions, 1)
		assert.Equal(t, "age", policy.Conditions[0].AttributeName)
		assert.Equal(t, model.OpGreater, policy.Conditions[0].Operator)
		assert.EqualValues(t, 30, policy.Conditions[0].Value)
	})

	t.Run("SurvivesCacheEviction", func(t *testing.T) {
		require.NoError(t, f.store.Delete(ctx, "cache:policy:adults"))

		policy, err := f.services.Policy.GetPolicy(ctx, "adults")
		require.NoError(t, err)
		assert.Len(t, policy.Conditions, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.services.Policy.GetPolicy(ctx, "missing")
		assert.ErrorIs(t, err, aegis_errors.ErrPolicyNotFound)
	})
}

func TestUpdatePolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.createPolicy(t, "adults", []model.Condition{
		{AttributeName: "age", Operator: model.OpGreater, Value: 30},
	})

	t.Run("ReplacesConditionList", func(t *testing.T) {
		_, err := f.services.Policy.UpdatePolicy(ctx, model.Policy{
			ID: "adults",
			Conditions: []model.Condition{
				{AttributeName: "department", Operator: model.OpStartsWith, Value: "eng"},
			},
		})
		require.NoError(t, err)

		policy, err := f.services.Policy.GetPolicy(ctx, "adults")
		require.NoError(t, err)
		require.Len(t, policy.Conditions, 1)
		assert.Equal(t, "department", policy.Conditions[0].AttributeName)
	})

	t.Run("FailedValidationPreservesState", func(t *testing.T) {
		_, err := f.services.Policy.UpdatePolicy(ctx, model.Policy{
			ID: "adults",
			Conditions: []model.Condition{
				{AttributeName: "age", Operator: model.OpStartsWith, Value: 1},
			},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidConditions)

		policy, err := f.services.Policy.GetPolicy(ctx, "adults")
		require.NoError(t, err)
		require.Len(t, policy.Conditions, 1)
		assert.Equal(t, "department", policy.Conditions[0].AttributeName)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.services.Policy.UpdatePolicy(ctx, model.Policy{ID: "missing"})
		assert.ErrorIs(t, err, aegis_errors.ErrPolicyNotFound)
	})
}
