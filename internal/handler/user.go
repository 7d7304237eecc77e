package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationError(c, err)
		return
	}

	items, err := h.userService.List(c.Request.Context(), req)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			badRequest(c, "Username already exists")
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			badRequest(c, "Email already exists")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c)
		return
	}

	deleted(c, fmt.Sprintf("User %d deleted successfully", id))
}
