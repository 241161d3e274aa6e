// controller/attribute_controller.go
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

type AttributeController struct {
	attributeService service.IAttributeService
}

func NewAttributeController(attributeService service.IAttributeService) *AttributeController {
	return &AttributeController{
		attributeService: attributeService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AttributeController) RegisterRoutes(r *gin.RouterGroup) {
	attributes := r.Group("/attributes")
	{
		attributes.POST("", ac.DefineAttribute)
		attributes.GET("/:name", ac.GetAttribute)
	}
}

// DefineAttribute endpoint
func (ac *AttributeController) DefineAttribute(c *gin.Context) {
	var attribute model.NewAttribute
	if err := c.ShouldBindJSON(&attribute); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", err)
		return
	}

	definition, err := ac.attributeService.DefineAttribute(c, attribute)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrAttributeConflict):
			util.RespondWithError(c, http.StatusConflict, "Attribute already exists", err)
		case errors.Is(err, aegis_errors.ErrInvalidAttributeType):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute type", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to define attribute", err)
		}
		return
	}

	c.JSON(http.StatusCreated, definition)
}

// GetAttribute endpoint
func (ac *AttributeController) GetAttribute(c *gin.Context) {
	name := c.Param("name")

	definition, err := ac.attributeService.GetAttribute(c, name)
	if err != nil {
		if errors.Is(err, aegis_errors.ErrAttributeNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Attribute not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attribute", err)
		}
		return
	}

	c.JSON(http.StatusOK, definition)
}
