// controller/resource_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	aegis_errors "github.com/aegisd/aegis/errors"
	"github.com/aegisd/aegis/model"
	"github.com/aegisd/aegis/service"
	"github.com/aegisd/aegis/util"
)

type ResourceController struct {
	resourceService service.IResourceService
}

func NewResourceController(resourceService service.IResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// RegisterRoutes registers the API routes
func (rc *ResourceController) RegisterRoutes(r *gin.RouterGroup) {
	resources := r.Group("/resources")
	{
		resources.POST("", rc.CreateResource)
		resources.GET("/:id", rc.GetResource)
		resources.PUT("/:id", rc.UpdateResource)
	}
}

// CreateResource endpoint
func (rc *ResourceController) CreateResource(c *gin.Context) {
	var resource model.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid resource data", aegis_errors.ErrInvalidResourceData)
		return
	}

	createdResource, err := rc.resourceService.CreateResource(c, resource)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrResourceConflict):
			util.RespondWithError(c, http.StatusConflict, "Resource already exists", err)
		case errors.Is(err, aegis_errors.ErrPolicyNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Policy not found", err)
		case errors.Is(err, aegis_errors.ErrInvalidResourceData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid resource data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create resource", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdResource)
}

// GetResource endpoint
func (rc *ResourceController) GetResource(c *gin.Context) {
	resourceID := c.Param("id")

	resource, err := rc.resourceService.GetResource(c, resourceID)
	if err != nil {
		if errors.Is(err, aegis_errors.ErrResourceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Resource not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve resource", err)
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// UpdateResource endpoint
func (rc *ResourceController) UpdateResource(c *gin.Context) {
	var body model.PolicyIDs
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid resource data", err)
		return
	}
	resource := model.Resource{ID: c.Param("id"), PolicyIDs: body.PolicyIDs}

	updatedResource, err := rc.resourceService.UpdateResource(c, resource)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrResourceNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Resource not found", err)
		case errors.Is(err, aegis_errors.ErrPolicyNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Policy not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update resource", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedResource)
}
