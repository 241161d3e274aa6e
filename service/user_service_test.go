// service/user_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.defineAttribute(t, "tired", "boolean")

	t.Run("Success", func(t *testing.T) {
		user, err := f.services.User.CreateUser(ctx, model.User{
			ID: "alice",
			Attributes: map[string]interface{}{
				"age":        31,
				"department": "engineering",
				"tired":      false,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.ID)
		assert.Equal(t, int64(31), user.Attributes["age"])
		assert.Equal(t, "engineering", user.Attributes["department"])
		assert.Equal(t, false, user.Attributes["tired"])
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{ID: "alice"})
		assert.ErrorIs(t, err, aegis_errors.ErrUserConflict)
	})

	t.Run("EmptyAttributesStillConflicts", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{ID: "ghost", Attributes: map[string]interface{}{}})
		require.NoError(t, err)

		_, err = f.services.User.CreateUser(ctx, model.User{
			ID:         "ghost",
			Attributes: map[string]interface{}{"age": 50},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrUserConflict)

		// The original empty attribute map survives the rejected create.
		user, err := f.services.User.GetUser(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, user.Attributes)
	})

	t.Run("UndefinedAttribute", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{
			ID:         "bob",
			Attributes: map[string]interface{}{"height": 180},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotFound)
	})

	t.Run("ValueTypeMismatch", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{
			ID:         "bob",
			Attributes: map[string]interface{}{"age": "old"},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeValue)
	})

	t.Run("BooleanNotCoercedFromNumber", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{
			ID:         "bob",
			Attributes: map[string]interface{}{"tired": 1},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeValue)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := f.services.User.CreateUser(ctx, model.User{ID: ""})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidUserData)
	})
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "tired", "boolean")
	f.createUser(t, "alice", map[string]interface{}{"age": 31, "tired": true})

	t.Run("ReconstructsDeclaredTypes", func(t *testing.T) {
		user, err := f.services.User.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(31), user.Attributes["age"])
		assert.Equal(t, true, user.Attributes["tired"])
	})

	t.Run("FalseRoundTripsAsFalse", func(t *testing.T) {
		f.createUser(t, "carol", map[string]interface{}{"tired": false})

		user, err := f.services.User.GetUser(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, false, user.Attributes["tired"])
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.services.User.GetUser(ctx, "nouser")
		assert.ErrorIs(t, err, aegis_errors.ErrUserNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.createUser(t, "alice", map[string]interface{}{"age": 31, "department": "engineering"})

	t.Run("ReplacesWholeAttributeMap", func(t *testing.T) {
		_, err := f.services.User.UpdateUser(ctx, model.User{
			ID:         "alice",
			Attributes: map[string]interface{}{"department": "sales"},
		})
		require.NoError(t, err)

		user, err := f.services.User.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "sales", user.Attributes["department"])
		assert.NotContains(t, user.Attributes, "age")
	})

	t.Run("FailedValidationPreservesState", func(t *testing.T) {
		_, err := f.services.User.UpdateUser(ctx, model.User{
			ID:         "alice",
			Attributes: map[string]interface{}{"age": "old"},
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeValue)

		user, err := f.services.User.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "sales", user.Attributes["department"])
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.services.User.UpdateUser(ctx, model.User{ID: "nouser"})
		assert.ErrorIs(t, err, aegis_errors.ErrUserNotFound)
	})
}

func TestSetUserAttribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.createUser(t, "alice", map[string]interface{}{"age": 31})

	t.Run("OverwritesExistingValue", func(t *testing.T) {
		result, err := f.services.User.SetUserAttribute(ctx, "alice", "age", 32)
		require.NoError(t, err)
		assert.Equal(t, int64(32), result.Value)

		user, err := f.services.User.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(32), user.Attributes["age"])
	})

	t.Run("UnsetAttributeRejected", func(t *testing.T) {
		_, err := f.services.User.SetUserAttribute(ctx, "alice", "department", "sales")
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotSet)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := f.services.User.SetUserAttribute(ctx, "alice", "age", "old")
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeValue)
	})

	t.Run("UndefinedAttribute", func(t *testing.T) {
		_, err := f.services.User.SetUserAttribute(ctx, "alice", "height", 180)
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotFound)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		_, err := f.services.User.SetUserAttribute(ctx, "nouser", "age", 32)
		assert.ErrorIs(t, err, aegis_errors.ErrUserNotFound)
	})
}

func TestDeleteUserAttribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "age", "integer")
	f.defineAttribute(t, "department", "string")
	f.createUser(t, "alice", map[string]interface{}{"age": 31})

	t.Run("RemovesValue", func(t *testing.T) {
		result, err := f.services.User.DeleteUserAttribute(ctx, "alice", "age")
		require.NoError(t, err)
		assert.True(t, result.Deleted)

		user, err := f.services.User.GetUser(ctx, "alice")
		require.NoError(t, err)
		assert.NotContains(t, user.Attributes, "age")
	})

	t.Run("UnsetAttributeRejected", func(t *testing.T) {
		_, err := f.services.User.DeleteUserAttribute(ctx, "alice", "department")
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotSet)
	})

	t.Run("UndefinedAttribute", func(t *testing.T) {
		_, err := f.services.User.DeleteUserAttribute(ctx, "alice", "height")
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotFound)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		_, err := f.services.User.DeleteUserAttribute(ctx, "nouser", "age")
		assert.ErrorIs(t, err, aegis_errors.ErrUserNotFound)
	})
}
