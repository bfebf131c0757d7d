package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paasops/glusterfs-broker/internal/api/dto"
	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/service"
)

type InstanceService interface {
	Create(ctx context.Context, instanceID string, req dto.ProvisionRequest) (*domain.ServiceInstance, bool, error)
	Get(ctx context.Context, instanceID string) (*domain.ServiceInstance, error)
	Update(ctx context.Context, instanceID string, req dto.UpdateRequest) (*domain.ServiceInstance, error)
	Delete(ctx context.Context, instanceID string) error
}

type InstanceHandler struct {
	*BaseHandler
	service      InstanceService
	dashboardURL string
}

func NewInstanceHandler(service InstanceService, dashboardURL string) *InstanceHandler {
	return &InstanceHandler{BaseHandler: &BaseHandler{}, service: service, dashboardURL: dashboardURL}
}

func (h *InstanceHandler) instanceResponse(instance *domain.ServiceInstance) dto.InstanceResponse {
	return dto.InstanceResponse{
		InstanceID:   instance.InstanceID,
		ServiceID:    instance.ServiceDefinitionID,
		PlanID:       instance.PlanID,
		DashboardURL: fmt.Sprintf("%s/%s", h.dashboardURL, instance.InstanceID),
	}
}

// ProvisionInstance handles PUT /v2/service_instances/:instance_id.
// Provisioning an instance that already exists identically returns 200;
// a conflicting definition returns 409.
func (h *InstanceHandler) ProvisionInstance(c *gin.Context) {
	var req dto.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	instance, created, err := h.service.Create(h.RequestCtx(c), c.Param("instance_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInstanceExists):
			c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
		case errors.Is(err, domain.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, h.instanceResponse(instance))
}

// GetInstance handles GET /v2/service_instances/:instance_id.
func (h *InstanceHandler) GetInstance(c *gin.Context) {
	instance, err := h.service.Get(h.RequestCtx(c), c.Param("instance_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}
	if instance == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "service instance not found"})
		return
	}
	c.JSON(http.StatusOK, h.instanceResponse(instance))
}

// UpdateInstance handles PATCH /v2/service_instances/:instance_id.
func (h *InstanceHandler) UpdateInstance(c *gin.Context) {
	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	instance, err := h.service.Update(h.RequestCtx(c), c.Param("instance_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInstanceNotFound):
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		case errors.Is(err, domain.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, service.ErrUpdateNotSupported):
			c.JSON(http.StatusUnprocessableEntity, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, h.instanceResponse(instance))
}

// DeprovisionInstance handles DELETE /v2/service_instances/:instance_id.
// Deleting an absent instance is a no-op success.
func (h *InstanceHandler) DeprovisionInstance(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("instance_id")); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
