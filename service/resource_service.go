// service/resource_service.go
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

// ResourceService owns resource→policy bindings. Every referenced policy
// must exist at bind time; references are not re-validated afterwards, so a
// later policy removal leaves a dangling reference that fails closed at
// decision time.
type ResourceService struct {
	resourceDAO     *dao.ResourceDAO
	policyDAO       *dao.PolicyDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewResourceService(
	resourceDAO *dao.ResourceDAO,
	policyDAO *dao.PolicyDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *ResourceService {
	service := &ResourceService{
		resourceDAO:     resourceDAO,
		policyDAO:       policyDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventResourceCreated, service.handleResourceChanged)
	eventBus.Subscribe(util.EventResourceUpdated, service.handleResourceChanged)

	return service
}

func (s *ResourceService) handleResourceChanged(ctx context.Context, event util.Event) error {
	resourceID, ok := event.Payload.(string)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	changeType := "created"
	if event.Type == util.EventResourceUpdated {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyResourceChange(ctx, changeType, resourceID); err != nil {
		logger.Warn("Failed to send resource change notification", zap.Error(err), zap.String("resourceID", resourceID))
	}
	return nil
}

// CreateResource binds a resource id to a set of existing policies.
func (s *ResourceService) CreateResource(ctx context.Context, resource model.Resource) (*model.Resource, error) {
	if err := s.validationUtil.ValidateEntityID("resource", resource.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", aegis_errors.ErrInvalidResourceData, err)
	}

	if err := s.validatePolicies(ctx, resource.PolicyIDs); err != nil {
		return nil, err
	}

	if err := s.resourceDAO.Create(ctx, resource.ID, resource.PolicyIDs); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventResourceCreated, resource.ID)
	logger.Info("Resource created", zap.String("resourceID", resource.ID), zap.Int("policies", len(resource.PolicyIDs)))
	return &resource, nil
}

func (s *ResourceService) GetResource(ctx context.Context, resourceID string) (*model.Resource, error) {
	policyIDs, err := s.resourceDAO.GetPolicyIDs(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return &model.Resource{ID: resourceID, PolicyIDs: policyIDs}, nil
}

// UpdateResource validates the new policy set and atomically replaces the
// stored binding.
func (s *ResourceService) UpdateResource(ctx context.Context, resource model.Resource) (*model.Resource, error) {
	exists, err := s.resourceDAO.Exists(ctx, resource.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrResourceNotFound
	}

	if err := s.validatePolicies(ctx, resource.PolicyIDs); err != nil {
		return nil, err
	}

	if err := s.resourceDAO.ReplacePolicies(ctx, resource.ID, resource.PolicyIDs); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventResourceUpdated, resource.ID)
	logger.Info("Resource updated", zap.String("resourceID", resource.ID), zap.Int("policies", len(resource.PolicyIDs)))
	return &resource, nil
}

func (s *ResourceService) validatePolicies(ctx context.Context, policyIDs []string) error {
	for _, policyID := range policyIDs {
		exists, err := s.policyDAO.Exists(ctx, policyID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", aegis_errors.ErrPolicyNotFound, policyID)
		}
	}
	return nil
}
