// controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", uc.CreateUser)
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id", uc.UpdateUser)
		users.PATCH("/:id/attributes/:name", uc.SetUserAttribute)
		users.DELETE("/:id/attributes/:name", uc.DeleteUserAttribute)
	}
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", aegis_errors.ErrInvalidUserData)
		return
	}

	createdUser, err := uc.userService.CreateUser(c, user)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrInvalidAttributeValue),
			errors.Is(err, aegis_errors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdUser)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		if errors.Is(err, aegis_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	var body model.AttributeCollection
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	user := model.User{ID: c.Param("id"), Attributes: body.Attributes}

	updatedUser, err := uc.userService.UpdateUser(c, user)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrInvalidAttributeValue):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update user", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedUser)
}

// SetUserAttribute endpoint
func (uc *UserController) SetUserAttribute(c *gin.Context) {
	var body model.NewAttributeValue
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute value", err)
		return
	}

	result, err := uc.userService.SetUserAttribute(c, c.Param("id"), c.Param("name"), body.Value)
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotSet):
			util.RespondWithError(c, http.StatusBadRequest, "User has no value for attribute", err)
		case errors.Is(err, aegis_errors.ErrInvalidAttributeValue):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute value", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to set user attribute", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteUserAttribute endpoint
func (uc *UserController) DeleteUserAttribute(c *gin.Context) {
	result, err := uc.userService.DeleteUserAttribute(c, c.Param("id"), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, aegis_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Attribute not found", err)
		case errors.Is(err, aegis_errors.ErrAttributeNotSet):
			util.RespondWithError(c, http.StatusBadRequest, "User has no value for attribute", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user attribute", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
