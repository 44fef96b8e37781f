package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/services"
)

type PricingHandler struct {
	catalogService services.CatalogService
}

func NewPricingHandler(catalogService services.CatalogService) *PricingHandler {
	return &PricingHandler{catalogService: catalogService}
}

func (ph *PricingHandler) List(c *gin.Context) {
	result, err := ph.catalogService.ListPricing(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pricing_fetch_failed", errors.New("failed to fetch pricing plans"))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ph *PricingHandler) Create(c *gin.Context) {
	var req services.PricingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_pricing_data", err)
		return
	}
	plan, err := ph.catalogService.CreatePricingPlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pricing_create_failed", errors.New("failed to create pricing plan"))
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ph *PricingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "pricing_not_found", errors.New("pricing plan not found"))
		return
	}
	var req services.PricingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_pricing_data", err)
		return
	}
	plan, err := ph.catalogService.UpdatePricingPlan(c.Request.Context(), id, req)
	if errors.Is(err, apperr.ErrNotFound) {
		respondError(c, http.StatusNotFound, "pricing_not_found", errors.New("pricing plan not found"))
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pricing_update_failed", errors.New("failed to update pricing plan"))
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ph *PricingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := ph.catalogService.DeletePricingPlan(c.Request.Context(), id); err != nil {
			respondError(c, http.StatusInternalServerError, "pricing_delete_failed", errors.New("failed to delete pricing plan"))
			return
		}
	}
	c.Status(http.StatusNoContent)
}
