// service/services.go
package service

import (
	"context"

	"github.com/aegisd/aegis/dao"
	"github.com/aegisd/aegis/model"
	"github.com/aegisd/aegis/util"
)

type IAttributeService interface {
	DefineAttribute(ctx context.Context, attribute model.NewAttribute) (*model.Attribute, error)
	GetAttribute(ctx context.Context, name string) (*model.Attribute, error)
}

type IUserService interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User) (*model.User, error)
	SetUserAttribute(ctx context.Context, userID, name string, value interface{}) (*model.UserAttribute, error)
	DeleteUserAttribute(ctx context.Context, userID, name string) (*model.DeletedUserAttribute, error)
}

type IPolicyService interface {
	CreatePolicy(ctx context.Context, policy model.Policy) (*model.Policy, error)
	GetPolicy(ctx context.Context, policyID string) (*model.Policy, error)
	UpdatePolicy(ctx context.Context, policy model.Policy) (*model.Policy, error)
}

type IResourceService interface {
	CreateResource(ctx context.Context, resource model.Resource) (*model.Resource, error)
	GetResource(ctx context.Context, resourceID string) (*model.Resource, error)
	UpdateResource(ctx context.Context, resource model.Resource) (*model.Resource, error)
}

type IAuthorizationService interface {
	IsAuthorized(ctx context.Context, userID, resourceID string) (bool, error)
}

// Services bundles the wired service layer for the transport adapter.
type Services struct {
	Attribute     IAttributeService
	User          IUserService
	Policy        IPolicyService
	Resource      IResourceService
	Authorization IAuthorizationService
}

// NewServices wires the service layer over the DAOs and shared utilities.
func NewServices(
	attributeDAO *dao.AttributeDAO,
	userDAO *dao.UserDAO,
	policyDAO *dao.PolicyDAO,
	resourceDAO *dao.ResourceDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *Services {
	attributeService := NewAttributeService(attributeDAO, validationUtil)
	userService := NewUserService(userDAO, attributeDAO, validationUtil, notificationSvc, eventBus)
	policyService := NewPolicyService(policyDAO, attributeDAO, validationUtil, cacheService, notificationSvc, eventBus)
	resourceService := NewResourceService(resourceDAO, policyDAO, validationUtil, notificationSvc, eventBus)
	authorizationService := NewAuthorizationService(userDAO, resourceDAO, policyService)

	return &Services{
		Attribute:     attributeService,
		User:          userService,
		Policy:        policyService,
		Resource:      resourceService,
		Authorization: authorizationService,
	}
}
