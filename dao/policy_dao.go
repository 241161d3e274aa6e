// dao/policy_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aegisd/aegis/db"
	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
)

const policyKeyPrefix = "policy:"

// PolicyDAO persists each policy's condition list as a single JSON value,
// so create and update are naturally atomic single-key writes.
type PolicyDAO struct {
	store db.Store
}

func NewPolicyDAO(store db.Store) *PolicyDAO {
	return &PolicyDAO{store: store}
}

// Create stores a new policy. Returns ErrPolicyConflict if the id is taken.
func (d *PolicyDAO) Create(ctx context.Context, policy model.Policy) error {
	encoded, err := json.Marshal(policy.Conditions)
	if err != nil {
		return fmt.Errorf("failed to marshal conditions for policy %s: %w", policy.ID, err)
	}
	ok, err := d.store.SetNX(ctx, policyKeyPrefix+policy.ID, string(encoded))
	if err != nil {
		return fmt.Errorf("%w: failed to store policy %s: %v", aegis_errors.ErrDatabaseOperation, policy.ID, err)
	}
	if !ok {
		return aegis_errors.ErrPolicyConflict
	}
	return nil
}

// Get loads a policy and its conditions. Returns ErrPolicyNotFound if
// absent.
func (d *PolicyDAO) Get(ctx context.Context, policyID string) (*model.Policy, error) {
	raw, err := d.store.Get(ctx, policyKeyPrefix+policyID)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, aegis_errors.ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read policy %s: %v", aegis_errors.ErrDatabaseOperation, policyID, err)
	}

	var conditions []model.Condition
	if err := json.Unmarshal([]byte(raw), &conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conditions for policy %s: %w", policyID, err)
	}
	return &model.Policy{ID: policyID, Conditions: conditions}, nil
}

func (d *PolicyDAO) Exists(ctx context.Context, policyID string) (bool, error) {
	exists, err := d.store.Exists(ctx, policyKeyPrefix+policyID)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check policy %s: %v", aegis_errors.ErrDatabaseOperation, policyID, err)
	}
	return exists, nil
}

// Update replaces the stored condition list wholesale. The caller verifies
// existence and re-validates first.
func (d *PolicyDAO) Update(ctx context.Context, policy model.Policy) error {
	encoded, err := json.Marshal(policy.Conditions)
	if err != nil {
		return fmt.Errorf("failed to marshal conditions for policy %s: %w", policy.ID, err)
	}
	if err := d.store.Set(ctx, policyKeyPrefix+policy.ID, string(encoded)); err != nil {
		return fmt.Errorf("%w: failed to update policy %s: %v", aegis_errors.ErrDatabaseOperation, policy.ID, err)
	}
	return nil
}
