package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/services"
)

type PortfolioHandler struct {
	catalogService services.CatalogService
}

func NewPortfolioHandler(catalogService services.CatalogService) *PortfolioHandler {
	return &PortfolioHandler{catalogService: catalogService}
}

func (ph *PortfolioHandler) List(c *gin.Context) {
	result, err := ph.catalogService.ListPortfolio(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "portfolio_fetch_failed", errors.New("failed to fetch portfolio items"))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ph *PortfolioHandler) Create(c *gin.Context) {
	var req services.PortfolioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_portfolio_data", err)
		return
	}
	item, err := ph.catalogService.CreatePortfolioItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "portfolio_create_failed", errors.New("failed to create portfolio item"))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ph *PortfolioHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "portfolio_not_found", errors.New("portfolio item not found"))
		return
	}
	var req services.PortfolioUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_portfolio_data", err)
		return
	}
	item, err := ph.catalogService.UpdatePortfolioItem(c.Request.Context(), id, req)
	if errors.Is(err, apperr.ErrNotFound) {
		respondError(c, http.StatusNotFound, "portfolio_not_found", errors.New("portfolio item not found"))
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "portfolio_update_failed", errors.New("failed to update portfolio item"))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ph *PortfolioHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := ph.catalogService.DeletePortfolioItem(c.Request.Context(), id); err != nil {
			respondError(c, http.StatusInternalServerError, "portfolio_delete_failed", errors.New("failed to delete portfolio item"))
			return
		}
	}
	c.Status(http.StatusNoContent)
}
