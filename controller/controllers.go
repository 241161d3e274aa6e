// controller/controllers.go
package controller

import "github.com/aegisd/aegis/service"

// Controllers bundles the HTTP layer for route registration.
type Controllers struct {
	Attribute     *AttributeController
	User          *UserController
	Policy        *PolicyController
	Resource      *ResourceController
	Authorization *AuthorizationController
}

func NewControllers(services *service.Services) *Controllers {
	return &Controllers{
		Attribute:     NewAttributeController(services.Attribute),
		User:          NewUserController(services.User),
		Policy:        NewPolicyController(services.Policy),
		Resource:      NewResourceController(services.Resource),
		Authorization: NewAuthorizationController(services.Authorization),
	}
}
