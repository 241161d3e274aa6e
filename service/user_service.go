// service/user_service.go
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

// UserService owns subject attributes. Every write validates attribute
// names against the registry and value runtime types against the declared
// types; values cross the store through the canonical codec.
type UserService struct {
	userDAO         *dao.UserDAO
	attributeDAO    *dao.AttributeDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewUserService(
	userDAO *dao.UserDAO,
	attributeDAO *dao.AttributeDAO,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *UserService {
	service := &UserService{
		userDAO:         userDAO,
		attributeDAO:    attributeDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventUserCreated, service.handleUserChanged)
	eventBus.Subscribe(util.EventUserUpdated, service.handleUserChanged)

	return service
}

func (s *UserService) handleUserChanged(ctx context.Context, event util.Event) error {
	userID, ok := event.Payload.(string)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	changeType := "created"
	if event.Type == util.EventUserUpdated {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyUserChange(ctx, changeType, userID); err != nil {
		logger.Warn("Failed to send user change notification", zap.Error(err), zap.String("userID", userID))
	}
	return nil
}

// CreateUser stores a new subject with validated, canonically encoded
// attribute values.
func (s *UserService) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if err := s.validationUtil.ValidateEntityID("user", user.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", aegis_errors.ErrInvalidUserData, err)
	}

	typed, encoded, err := s.validateAttributes(ctx, user.Attributes)
	if err != nil {
		return nil, err
	}

	if err := s.userDAO.Create(ctx, user.ID, encoded); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserCreated, user.ID)
	logger.Info("User created", zap.String("userID", user.ID), zap.Int("attributes", len(typed)))
	return &model.User{ID: user.ID, Attributes: typed}, nil
}

// GetUser returns the subject with attribute values reconstructed to their
// declared types.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	stored, err := s.userDAO.GetAttributes(ctx, userID)
	if err != nil {
		return nil, err
	}

	attributes := make(map[string]interface{}, len(stored))
	for name, raw := range stored {
		definition, err := s.attributeDAO.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolving stored attribute %s: %w", name, err)
		}
		value, err := model.DecodeValue(definition.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("decoding stored attribute %s: %w", name, err)
		}
		attributes[name] = value
	}
	return &model.User{ID: userID, Attributes: attributes}, nil
}

// UpdateUser replaces the subject's whole attribute map. Validation runs
// before any write, so a failed update leaves the prior state intact; the
// swap itself is atomic to concurrent readers.
func (s *UserService) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	exists, err := s.userDAO.Exists(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrUserNotFound
	}

	typed, encoded, err := s.validateAttributes(ctx, user.Attributes)
	if err != nil {
		return nil, err
	}

	if err := s.userDAO.ReplaceAttributes(ctx, user.ID, encoded); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserUpdated, user.ID)
	logger.Info("User updated", zap.String("userID", user.ID), zap.Int("attributes", len(typed)))
	return &model.User{ID: user.ID, Attributes: typed}, nil
}

// SetUserAttribute overwrites a single attribute value. The attribute must
// already carry a value for this user; adding brand-new attributes goes
// through UpdateUser.
func (s *UserService) SetUserAttribute(ctx context.Context, userID, name string, value interface{}) (*model.UserAttribute, error) {
	exists, err := s.userDAO.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrUserNotFound
	}

	definition, err := s.attributeDAO.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	normalized, ok := model.NormalizeValue(value)
	if !ok || !model.ValueMatchesType(definition.Type, normalized) {
		return nil, fmt.Errorf("%w: attribute %s requires %s", aegis_errors.ErrInvalidAttributeValue, name, definition.Type)
	}

	if _, err := s.userDAO.GetAttribute(ctx, userID, name); err != nil {
		return nil, err
	}

	if err := s.userDAO.SetAttribute(ctx, userID, name, model.EncodeValue(normalized)); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserUpdated, userID)
	return &model.UserAttribute{UserID: userID, Name: name, Value: normalized}, nil
}

// DeleteUserAttribute removes a single attribute value from the subject.
func (s *UserService) DeleteUserAttribute(ctx context.Context, userID, name string) (*model.DeletedUserAttribute, error) {
	exists, err := s.userDAO.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, aegis_errors.ErrUserNotFound
	}

	if _, err := s.attributeDAO.Get(ctx, name); err != nil {
		return nil, err
	}

	if _, err := s.userDAO.GetAttribute(ctx, userID, name); err != nil {
		return nil, err
	}

	if err := s.userDAO.DeleteAttribute(ctx, userID, name); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserUpdated, userID)
	return &model.DeletedUserAttribute{UserID: userID, Name: name, Deleted: true}, nil
}

// validateAttributes resolves every name against the registry and checks
// runtime types, returning both the normalized typed map (for responses)
// and the encoded map (for storage).
func (s *UserService) validateAttributes(ctx context.Context, attributes map[string]interface{}) (map[string]interface{}, map[string]string, error) {
	typed := make(map[string]interface{}, len(attributes))
	encoded := make(map[string]string, len(attributes))

	for name, value := range attributes {
		definition, err := s.attributeDAO.Get(ctx, name)
		if err != nil {
			return nil, nil, err
		}

		normalized, ok := model.NormalizeValue(value)
		if !ok || !model.ValueMatchesType(definition.Type, normalized) {
			return nil, nil, fmt.Errorf("%w: attribute %s requires %s", aegis_errors.ErrInvalidAttributeValue, name, definition.Type)
		}

		typed[name] = normalized
		encoded[name] = model.EncodeValue(normalized)
	}
	return typed, encoded, nil
}
