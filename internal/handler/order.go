package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationError(c, err)
		return
	}

	items, err := h.orderService.List(c.Request.Context(), req)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			notFound(c, "Order not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		// Referential misses are the caller's mistake, not a lookup miss.
		if errors.Is(err, service.ErrOrderPetMissing) {
			badRequest(c, "Pet not found")
			return
		}
		if errors.Is(err, service.ErrOrderUserMissing) {
			badRequest(c, "User not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			notFound(c, "Order not found")
			return
		}
		internalError(c)
		return
	}

	deleted(c, fmt.Sprintf("Order %d deleted successfully", id))
}
