// dao/attribute_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/aegisd/aegis/db"
	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

const attributeKeyPrefix = "attribute:"

// AttributeDAO persists attribute definitions as scalar name→type entries.
// Definitions are append-only, so Define is the only write path.
type AttributeDAO struct {
	store db.Store
}

func NewAttributeDAO(store db.Store) *AttributeDAO {
	return &AttributeDAO{store: store}
}

// Define registers a new attribute definition. The conditional set makes
// concurrent creators of the same name race safely: exactly one wins.
func (d *AttributeDAO) Define(ctx context.Context, attribute model.Attribute) error {
	ok, err := d.store.SetNX(ctx, attributeKeyPrefix+attribute.Name, string(attribute.Type))
	if err != nil {
		return fmt.Errorf("%w: failed to store attribute definition: %v", aegis_errors.ErrDatabaseOperation, err)
	}
	if !ok {
		return aegis_errors.ErrAttributeConflict
	}
	return nil
}

// Get resolves a registered attribute definition by name.
func (d *AttributeDAO) Get(ctx context.Context, name string) (*model.Attribute, error) {
	raw, err := d.store.Get(ctx, attributeKeyPrefix+name)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, aegis_errors.ErrAttributeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read attribute definition: %v", aegis_errors.ErrDatabaseOperation, err)
	}

	attributeType, ok := model.ParseAttributeType(raw)
	if !ok {
		return nil, fmt.Errorf("stored type %q for attribute %q: %w", raw, name, aegis_errors.ErrInternalServer)
	}
	return &model.Attribute{Name: name, Type: attributeType}, nil
}
