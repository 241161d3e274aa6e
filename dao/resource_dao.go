// dao/resource_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/aegisd/aegis/db"
	aegis_errors "github.com/aegisd/aegis/errors"
)

const (
	resourceKeyPrefix         = "resource:"
	resourcePoliciesKeyPrefix = "resource:policies:"
)

// ResourceDAO persists resource→policy bindings as a set plus a scalar
// presence marker. The marker keeps resources with an empty policy set
// observable and makes creation race safe.
type ResourceDAO struct {
	store db.Store
}

func NewResourceDAO(store db.Store) *ResourceDAO {
	return &ResourceDAO{store: store}
}

// Create stores a new resource binding. Returns ErrResourceConflict if the
// resource id is already bound.
func (d *ResourceDAO) Create(ctx context.Context, resourceID string, policyIDs []string) error {
	ok, err := d.store.SetNX(ctx, resourceKeyPrefix+resourceID, "1")
	if err != nil {
		return fmt.Errorf("%w: failed to create resource %s: %v", aegis_errors.ErrDatabaseOperation, resourceID, err)
	}
	if !ok {
		return aegis_errors.ErrResourceConflict
	}
	if err := d.store.SReplace(ctx, resourcePoliciesKeyPrefix+resourceID, policyIDs); err != nil {
		return fmt.Errorf("%w: failed to store policies for resource %s: %v", aegis_errors.ErrDatabaseOperation, resourceID, err)
	}
	return nil
}

func (d *ResourceDAO) Exists(ctx context.Context, resourceID string) (bool, error) {
	exists, err := d.store.Exists(ctx, resourceKeyPrefix+resourceID)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check resource %s: %v", aegis_errors.ErrDatabaseOperation, resourceID, err)
	}
	return exists, nil
}

// GetPolicyIDs returns the bound policy id set. Returns ErrResourceNotFound
// for unknown resources.
func (d *ResourceDAO) GetPolicyIDs(ctx context.Context, resourceID string) ([]string, error) {
	exists, err := d.Exists(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrResourceNotFound
	}

	policyIDs, err := d.store.SMembers(ctx, resourcePoliciesKeyPrefix+resourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read policies for resource %s: %v", aegis_errors.ErrDatabaseOperation, resourceID, err)
	}
	return policyIDs, nil
}

// ReplacePolicies atomically swaps the bound policy set.
func (d *ResourceDAO) ReplacePolicies(ctx context.Context, resourceID string, policyIDs []string) error {
	if err := d.store.SReplace(ctx, resourcePoliciesKeyPrefix+resourceID, policyIDs); err != nil {
		return fmt.Errorf("%w: failed to replace policies for resource %s: %v", aegis_errors.ErrDatabaseOperation, resourceID, err)
	}
	return nil
}
