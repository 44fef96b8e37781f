package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/services"
)

type ServiceHandler struct {
	catalogService services.CatalogService
}

func NewServiceHandler(catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

func (sh *ServiceHandler) List(c *gin.Context) {
	result, err := sh.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "services_fetch_failed", errors.New("failed to fetch services"))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (sh *ServiceHandler) Create(c *gin.Context) {
	var req services.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_service_data", err)
		return
	}
	service, err := sh.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "service_create_failed", errors.New("failed to create service"))
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (sh *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "service_not_found", errors.New("service not found"))
		return
	}
	var req services.ServiceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_service_data", err)
		return
	}
	service, err := sh.catalogService.UpdateService(c.Request.Context(), id, req)
	if errors.Is(err, apperr.ErrNotFound) {
		respondError(c, http.StatusNotFound, "service_not_found", errors.New("service not found"))
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "service_update_failed", errors.New("failed to update service"))
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sh *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := sh.catalogService.DeleteService(c.Request.Context(), id); err != nil {
			respondError(c, http.StatusInternalServerError, "service_delete_failed", errors.New("failed to delete service"))
			return
		}
	}
	// Deleting something that never existed is still a success.
	c.Status(http.StatusNoContent)
}
