// service/attribute_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

func TestDefineAttribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		definition, err := f.services.Attribute.DefineAttribute(ctx, model.NewAttribute{
			AttributeName: "age",
			AttributeType: "integer",
		})
		require.NoError(t, err)
		assert.Equal(t, "age", definition.Name)
		assert.Equal(t, model.AttributeTypeInteger, definition.Type)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := f.services.Attribute.DefineAttribute(ctx, model.NewAttribute{
			AttributeName: "age",
			AttributeType: "string",
		})
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeConflict)

		// The first definition wins.
		definition, err := f.services.Attribute.GetAttribute(ctx, "age")
		require.NoError(t, err)
		assert.Equal(t, model.AttributeTypeInteger, definition.Type)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := f.services.Attribute.DefineAttribute(ctx, model.NewAttribute{
			AttributeName: "height",
			AttributeType: "float",
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeType)
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := f.services.Attribute.DefineAttribute(ctx, model.NewAttribute{
			AttributeName: "bad name",
			AttributeType: "string",
		})
		assert.ErrorIs(t, err, aegis_errors.ErrInvalidAttributeType)
	})
}

func TestGetAttribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.defineAttribute(t, "department", "string")

	t.Run("Success", func(t *testing.T) {
		definition, err := f.services.Attribute.GetAttribute(ctx, "department")
		require.NoError(t, err)
		assert.Equal(t, "department", definition.Name)
		assert.Equal(t, model.AttributeTypeString, definition.Type)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.services.Attribute.GetAttribute(ctx, "missing")
		assert.ErrorIs(t, err, aegis_errors.ErrAttributeNotFound)
	})
}
