// controller/policy_controller.go
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

type PolicyController struct {
	policyService service.IPolicyService
}

func NewPolicyController(policyService service.IPolicyService) *PolicyController {
	return &PolicyController{
		policyService: policyService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PolicyController) RegisterRoutes(r *gin.RouterGroup) {
	policies := r.Group("/policies")
	{
		policies.POST("", pc.CreatePolicy)
		policies.GET("/:id", pc.GetPolicy)
		policies.PUT("/:id", pc.UpdatePolicy)
	}
}

// CreatePolicy endpoint
func (pc *PolicyController) CreatePolicy(c *gin.Context) {
	var policy model.Policy
	if err := c.ShouldBindJSON(&policy); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid policy data", aegis_errors.ErrInvalidPolicyData)
		return
	}

	createdPolicy, err := pc.policyService.CreatePolicy(c, policy)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrPolicyConflict):
			util.RespondWithError(c, http.StatusConflict, "Policy already exists", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrInvalidConditions),
			errors.Is(err, aegis_errors.ErrInvalidPolicyData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid policy conditions", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create policy", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdPolicy)
}

// GetPolicy endpoint
func (pc *PolicyController) GetPolicy(c *gin.Context) {
	policyID := c.Param("id")

	policy, err := pc.policyService.GetPolicy(c, policyID)
	if err != nil {
		if errors.Is(err, aegis_errors.ErrPolicyNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Policy not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve policy", err)
		}
		return
	}

	c.JSON(http.StatusOK, policy)
}

// UpdatePolicy endpoint
func (pc *PolicyController) UpdatePolicy(c *gin.Context) {
	var conditions []model.Condition
	if err := c.ShouldBindJSON(&conditions); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid policy data", err)
		return
	}
	policy := model.Policy{ID: c.Param("id"), Conditions: conditions}

	updatedPolicy, err := pc.policyService.UpdatePolicy(c, policy)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrPolicyNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Policy not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrInvalidConditions):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid policy conditions", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update policy", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedPolicy)
}
