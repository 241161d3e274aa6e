// service/policy_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aegisd/aegis/dao"
	aegis_errors "github.com/aegisd/aegis/errors"
	logger "github.com/aegisd/aegis/logging"
	"github.com/aegisd/aegis/model"
	"github.com/aegisd/aegis/util"
)

// PolicyService owns named policies. Conditions are validated against the
// attribute registry on every create and update: the operator and the value
// runtime type must both be compatible with the attribute's declared type.
type PolicyService struct {
	policyDAO       *dao.PolicyDAO
	attributeDAO    *dao.AttributeDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewPolicyService(
	policyDAO *dao.PolicyDAO,
	attributeDAO *dao.AttributeDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *PolicyService {
	service := &PolicyService{
		policyDAO:       policyDAO,
		attributeDAO:    attributeDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventPolicyCreated, service.handlePolicyChanged)
	eventBus.Subscribe(util.EventPolicyUpdated, service.handlePolicyChanged)

	return service
}

func (s *PolicyService) handlePolicyChanged(ctx context.Context, event util.Event) error {
	policyID, ok := event.Payload.(string)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	changeType := "created"
	if event.Type == util.EventPolicyUpdated {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyPolicyChange(ctx, changeType, policyID); err != nil {
		logger.Warn("Failed to send policy change notification", zap.Error(err), zap.String("policyID", policyID))
	}
	return nil
}

// CreatePolicy validates and stores a new policy.
func (s *PolicyService) CreatePolicy(ctx context.Context, policy model.Policy) (*model.Policy, error) {
	if err := s.validationUtil.ValidateEntityID("policy", policy.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", aegis_errors.ErrInvalidPolicyData, err)
	}

	if err := s.validateConditions(ctx, policy.Conditions); err != nil {
		return nil, err
	}

	if err := s.policyDAO.Create(ctx, policy); err != nil {
		return nil, err
	}

	if err := s.cacheService.SetPolicy(ctx, policy); err != nil {
		logger.Warn("Failed to cache policy", zap.Error(err), zap.String("policyID", policy.ID))
	}

	s.eventBus.Publish(ctx, util.EventPolicyCreated, policy.ID)
	logger.Info("Policy created", zap.String("policyID", policy.ID), zap.Int("conditions", len(policy.Conditions)))
	return &policy, nil
}

// GetPolicy reads a policy cache-aside: the cache is consulted first and
// refilled from the store on a miss.
func (s *PolicyService) GetPolicy(ctx context.Context, policyID string) (*model.Policy, error) {
	cached, err := s.cacheService.GetPolicy(ctx, policyID)
	if err != nil {
		logger.Warn("Policy cache read failed", zap.Error(err), zap.String("policyID", policyID))
	} else if cached != nil {
		return cached, nil
	}

	policy, err := s.policyDAO.Get(ctx, policyID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetPolicy(ctx, *policy); err != nil {
		logger.Warn("Failed to cache policy", zap.Error(err), zap.String("policyID", policyID))
	}
	return policy, nil
}

// UpdatePolicy re-validates and wholesale replaces the condition list. The
// cache entry is overwritten before returning so subsequent decisions see
// the new conditions.
func (s *PolicyService) UpdatePolicy(ctx context.Context, policy model.Policy) (*model.Policy, error) {
	exists, err := s.policyDAO.Exists(ctx, policy.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrPolicyNotFound
	}

	if err := s.validateConditions(ctx, policy.Conditions); err != nil {
		return nil, err
	}

	if err := s.policyDAO.Update(ctx, policy); err != nil {
		return nil, err
	}

	if err := s.cacheService.SetPolicy(ctx, policy); err != nil {
		logger.Warn("Failed to refresh cached policy", zap.Error(err), zap.String("policyID", policy.ID))
		if err := s.cacheService.DeletePolicy(ctx, policy.ID); err != nil {
			return nil, fmt.Errorf("failed to invalidate stale policy cache: %w", err)
		}
	}

	s.eventBus.Publish(ctx, util.EventPolicyUpdated, policy.ID)
	logger.Info("Policy updated", zap.String("policyID", policy.ID), zap.Int("conditions", len(policy.Conditions)))
	return &policy, nil
}

// validateConditions resolves each condition's attribute and enforces the
// operator/type compatibility table. Values are normalized in place so the
// persisted form is canonical.
func (s *PolicyService) validateConditions(ctx context.Context, conditions []model.Condition) error {
	for i, condition := range conditions {
		definition, err := s.attributeDAO.Get(ctx, condition.AttributeName)
		if err != nil {
			return err
		}

		normalized, ok := model.NormalizeValue(condition.Value)
		if !ok {
			return fmt.Errorf("%w: unsupported value for %q", aegis_errors.ErrInvalidConditions, condition.AttributeName)
		}

		if !model.ValueMatchesType(definition.Type, normalized) || !operatorAllowed(definition.Type, condition.Operator) {
			return fmt.Errorf("%w: invalid condition for %q", aegis_errors.ErrInvalidConditions, condition.AttributeName)
		}

		conditions[i].Value = normalized
	}
	return nil
}

func operatorAllowed(t model.AttributeType, operator string) bool {
	switch t {
	case model.AttributeTypeInteger:
		return operator == model.OpEqual || operator == model.OpLess || operator == model.OpGreater
	case model.AttributeTypeBoolean:
		return operator == model.OpEqual
	case model.AttributeTypeString:
		return operator == model.OpEqual || operator == model.OpStartsWith
	default:
		return false
	}
}
