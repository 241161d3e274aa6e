// service/attribute_service.go
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

// AttributeService owns the attribute registry: the universe of valid
// attribute names and their declared types. Definitions are append-only.
type AttributeService struct {
	attributeDAO   *dao.AttributeDAO
	validationUtil *util.ValidationUtil
}

func NewAttributeService(attributeDAO *dao.AttributeDAO, validationUtil *util.ValidationUtil) *AttributeService {
	return &AttributeService{
		attributeDAO:   attributeDAO,
		validationUtil: validationUtil,
	}
}

func (s *AttributeService) DefineAttribute(ctx context.Context, attribute model.NewAttribute) (*model.Attribute, error) {
	if err := s.validationUtil.ValidateAttributeName(attribute.AttributeName); err != nil {
		return nil, fmt.Errorf("%w: %v", aegis_errors.ErrInvalidAttributeType, err)
	}

	attributeType, ok := model.ParseAttributeType(attribute.AttributeType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", aegis_errors.ErrInvalidAttributeType, attribute.AttributeType)
	}

	definition := model.Attribute{Name: attribute.AttributeName, Type: attributeType}
	if err := s.attributeDAO.Define(ctx, definition); err != nil {
		return nil, err
	}

	logger.Info("Attribute defined",
		zap.String("name", definition.Name),
		zap.String("type", string(definition.Type)))
	return &definition, nil
}

func (s *AttributeService) GetAttribute(ctx context.Context, name string) (*model.Attribute, error) {
	return s.attributeDAO.Get(ctx, name)
}
