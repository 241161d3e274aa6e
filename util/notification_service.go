// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/aegisd/aegis/logging"
)

// NotificationService broadcasts entity changes to interested systems. The
// current implementation logs; swapping in a message queue client only
// touches this type.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyPolicyChange(ctx context.Context, changeType, policyID string) error {
	switch changeType {
	case "created", "updated":
		logger.Info("NOTIFICATION: Policy "+changeType, zap.String("policyID", policyID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyResourceChange(ctx context.Context, changeType, resourceID string) error {
	switch changeType {
	case "created", "updated":
		logger.Info("NOTIFICATION: Resource "+changeType, zap.String("resourceID", resourceID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType, userID string) error {
	switch changeType {
	case "created", "updated":
		logger.Info("NOTIFICATION: User "+changeType, zap.String("userID", userID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}
