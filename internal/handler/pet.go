package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/service"
)

type PetHandler struct {
	petService *service.PetService
}

func NewPetHandler(petService *service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

func (h *PetHandler) List(c *gin.Context) {
	var req dto.ListPetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationError(c, err)
		return
	}

	items, err := h.petService.List(c.Request.Context(), req)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PetHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.petService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			notFound(c, "Pet not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	resp, err := h.petService.Create(c.Request.Context(), req)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	resp, err := h.petService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			notFound(c, "Pet not found")
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.petService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			notFound(c, "Pet not found")
			return
		}
		internalError(c)
		return
	}

	deleted(c, fmt.Sprintf("Pet %d deleted successfully", id))
}

// Inventory reports current pet counts keyed by status.
func (h *PetHandler) Inventory(c *gin.Context) {
	counts, err := h.petService.Inventory(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, counts)
}
