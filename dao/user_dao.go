// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/aegisd/aegis/db"
	aegis_errors "github.com/aegisd/aegis/errors"
)

const (
	userKeyPrefix      = "user:"
	userAttrsKeyPrefix = "user:attrs:"
)

// UserDAO persists subject attributes. Each user is a hash of encoded
// attribute values plus a scalar presence marker; the marker keeps users
// with zero attributes observable (an empty redis hash does not exist) and
// doubles as the conditional-create key for racing creators.
type UserDAO struct {
	store db.Store
}

func NewUserDAO(store db.Store) *UserDAO {
	return &UserDAO{store: store}
}

// Create stores a new user with the given encoded attributes. Returns
// ErrUserConflict if the user id is already taken.
func (d *UserDAO) Create(ctx context.Context, userID string, attributes map[string]string) error {
	ok, err := d.store.SetNX(ctx, userKeyPrefix+userID, "1")
	if err != nil {
		return fmt.Errorf("%w: failed to create user %s: %v", aegis_errors.ErrDatabaseOperation, userID, err)
	}
	if !ok {
		return aegis_errors.ErrUserConflict
	}
	if len(attributes) > 0 {
		if err := d.store.HReplace(ctx, userAttrsKeyPrefix+userID, attributes); err != nil {
			return fmt.Errorf("%w: failed to store attributes for user %s: %v", aegis_errors.ErrDatabaseOperation, userID, err)
		}
	}
	return nil
}

func (d *UserDAO) Exists(ctx context.Context, userID string) (bool, error) {
	exists, err := d.store.Exists(ctx, userKeyPrefix+userID)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check user %s: %v", aegis_errors.ErrDatabaseOperation, userID, err)
	}
	return exists, nil
}

// GetAttributes returns the user's stored attribute map in its encoded
// textual form. Returns ErrUserNotFound for unknown users.
func (d *UserDAO) GetAttributes(ctx context.Context, userID string) (map[string]string, error) {
	exists, err := d.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrUserNotFound
	}

	attributes, err := d.store.HGetAll(ctx, userAttrsKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read attributes for user %s: %v", aegis_errors.ErrDatabaseOperation, userID, err)
	}
	return attributes, nil
}

// ReplaceAttributes atomically swaps the user's whole attribute map. The
// caller validates before this point so a failed validation never touches
// the stored state.
func (d *UserDAO) ReplaceAttributes(ctx context.Context, userID string, attributes map[string]string) error {
	if err := d.store.HReplace(ctx, userAttrsKeyPrefix+userID, attributes); err != nil {
		return fmt.Errorf("%w: failed to replace attributes for user %s: %v", aegis_errors.ErrDatabaseOperation, userID, err)
	}
	return nil
}

// GetAttribute reads one stored attribute value. Returns ErrAttributeNotSet
// when the user has no value for that name.
func (d *UserDAO) GetAttribute(ctx context.Context, userID, name string) (string, error) {
	value, err := d.store.HGet(ctx, userAttrsKeyPrefix+userID, name)
	if errors.Is(err, db.ErrKeyNotFound) {
		return "", aegis_errors.ErrAttributeNotSet
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to read attribute %s for user %s: %v", aegis_errors.ErrDatabaseOperation, name, userID, err)
	}
	return value, nil
}

func (d *UserDAO) SetAttribute(ctx context.Context, userID, name, value string) error {
	if err := d.store.HSet(ctx, userAttrsKeyPrefix+userID, name, value); err != nil {
		return fmt.Errorf("%w: failed to set attribute %s for user %s: %v", aegis_errors.ErrDatabaseOperation, name, userID, err)
	}
	return nil
}

func (d *UserDAO) DeleteAttribute(ctx context.Context, userID, name string) error {
	if err := d.store.HDel(ctx, userAttrsKeyPrefix+userID, name); err != nil {
		return fmt.Errorf("%w: failed to delete attribute %s for user %s: %v", aegis_errors.ErrDatabaseOperation, name, userID, err)
	}
	return nil
}
