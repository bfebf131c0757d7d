package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paasops/glusterfs-broker/internal/api/dto"
	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/service"
)

type BindingService interface {
	Bind(ctx context.Context, bindingID, instanceID, appGUID string) (*domain.Binding, bool, error)
	Unbind(ctx context.Context, bindingID string) error
	BindingsForInstance(ctx context.Context, instanceID string) ([]domain.Binding, error)
}

// TenantResolver provides the tenant identity returned inside binding
// credentials.
type TenantResolver interface {
	TenantByInstanceID(ctx context.Context, instanceID string) (*domain.Tenant, error)
}

type BindingHandler struct {
	*BaseHandler
	service BindingService
	tenants TenantResolver
}

func NewBindingHandler(service BindingService, tenants TenantResolver) *BindingHandler {
	return &BindingHandler{BaseHandler: &BaseHandler{}, service: service, tenants: tenants}
}

// CreateBinding handles
// PUT /v2/service_instances/:instance_id/service_bindings/:binding_id.
func (h *BindingHandler) CreateBinding(c *gin.Context) {
	var req dto.BindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	instanceID := c.Param("instance_id")

	binding, created, err := h.service.Bind(ctx, c.Param("binding_id"), instanceID, req.AppGUID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBindingExists):
			c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
		case errors.Is(err, service.ErrInstanceNotFound):
			c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	tenant, err := h.tenants.TenantByInstanceID(ctx, instanceID)
	if err != nil || tenant == nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "tenant record not found for bound instance"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.BindResponse{
		BindingID: binding.BindingID,
		Credentials: dto.Credentials{
			Username:   binding.Username,
			Password:   binding.Password,
			TenantName: tenant.TenantName,
			TenantID:   tenant.TenantID,
		},
	})
}

// DeleteBinding handles
// DELETE /v2/service_instances/:instance_id/service_bindings/:binding_id.
// Unbinding an absent binding is a no-op success.
func (h *BindingHandler) DeleteBinding(c *gin.Context) {
	if err := h.service.Unbind(h.RequestCtx(c), c.Param("binding_id")); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
