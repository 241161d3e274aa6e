// controller/authorization_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/service"
	"github.com/aegisd/aegis/util"
)

type AuthorizationController struct {
	authorizationService service.IAuthorizationService
}

func NewAuthorizationController(authorizationService service.IAuthorizationService) *AuthorizationController {
	return &AuthorizationController{
		authorizationService: authorizationService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthorizationController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/is_authorized", ac.IsAuthorized)
}

// IsAuthorized endpoint
func (ac *AuthorizationController) IsAuthorized(c *gin.Context) {
	userID := c.Query("user_id")
	resourceID := c.Query("resource_id")
	if userID == "" || resourceID == "" {
		util.RespondWithError(c, http.StatusBadRequest, "user_id and resource_id are required", nil)
		return
	}

	allowed, err := ac.authorizationService.IsAuthorized(c, userID, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, aegis_errors.ErrResourceNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Resource not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate authorization", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}
