package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/paasops/glusterfs-broker/internal/api/dto"
	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/gluster"
	"github.com/paasops/glusterfs-broker/internal/repository"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

// TenantProvisioner is the remote side of the lifecycle, implemented by
// gluster.Provisioner.
//
//go:generate mockery --name TenantProvisioner --output ../mocks
type TenantProvisioner interface {
	CreateTenant(ctx context.Context, instanceID, planID string) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, instanceID string) error
	SetQuota(ctx context.Context, tenantID, planID string) error
	CreateCredential(ctx context.Context, tenantID, username, password string) error
	DeleteCredential(ctx context.Context, username string) error
	LookupUserID(ctx context.Context, username string) (string, error)
	GrantAccess(ctx context.Context, tenantID, userID string) error
}

// InstanceService implements the provisioned-instance lifecycle:
// idempotent create, plain read, plan-only update, idempotent delete.
type InstanceService struct {
	repo        repository.Repository
	provisioner TenantProvisioner
	log         *logger.Logger
}

func NewInstanceService(repo repository.Repository, provisioner TenantProvisioner, log *logger.Logger) *InstanceService {
	return &InstanceService{repo: repo, provisioner: provisioner, log: log}
}

// Create provisions a new instance. A request exactly matching an
// existing record (same instance, plan and service definition) returns
// that record with created=false; any other collision is a conflict.
func (s *InstanceService) Create(ctx context.Context, instanceID string, req dto.ProvisionRequest) (*domain.ServiceInstance, bool, error) {
	existing, err := s.repo.Instance().FindByID(ctx, instanceID)
	if err != nil {
		return nil, false, fmt.Errorf("find instance %s: %w", instanceID, err)
	}
	if existing != nil {
		if existing.PlanID == req.PlanID && existing.ServiceDefinitionID == req.ServiceID {
			return existing, false, nil
		}
		return nil, false, ErrInstanceExists
	}

	tenant, err := s.provisioner.CreateTenant(ctx, instanceID, req.PlanID)
	if err != nil {
		if errors.Is(err, gluster.ErrConflict) {
			return nil, false, ErrInstanceExists
		}
		return nil, false, err
	}

	instance := &domain.ServiceInstance{
		InstanceID:          instanceID,
		ServiceDefinitionID: req.ServiceID,
		PlanID:              req.PlanID,
		OrganizationGUID:    req.OrganizationGUID,
		SpaceGUID:           req.SpaceGUID,
		TenantName:          tenant.TenantName,
		TenantID:            tenant.TenantID,
	}
	if err := s.repo.Instance().Save(ctx, instance); err != nil {
		return nil, false, fmt.Errorf("save instance %s: %w", instanceID, err)
	}

	s.log.Info("service instance provisioned",
		zap.String("instance_id", instanceID),
		zap.String("tenant_id", tenant.TenantID),
		zap.String("tenant_name", tenant.TenantName),
		zap.String("plan_id", req.PlanID))
	return instance, true, nil
}

// Get returns the instance or (nil, nil) when it does not exist.
func (s *InstanceService) Get(ctx context.Context, instanceID string) (*domain.ServiceInstance, error) {
	return s.repo.Instance().FindByID(ctx, instanceID)
}

// Update supports plan changes only. An unchanged plan performs no
// remote call; any quota failure surfaces as an unsupported update.
func (s *InstanceService) Update(ctx context.Context, instanceID string, req dto.UpdateRequest) (*domain.ServiceInstance, error) {
	instance, err := s.repo.Instance().FindByID(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("find instance %s: %w", instanceID, err)
	}
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	if req.PlanID == "" || req.PlanID == instance.PlanID {
		return instance, nil
	}

	if err := s.provisioner.SetQuota(ctx, instance.TenantID, req.PlanID); err != nil {
		if errors.Is(err, domain.ErrUnknownPlan) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpdateNotSupported, err)
	}

	if err := s.repo.Instance().UpdatePlan(ctx, instanceID, req.PlanID); err != nil {
		return nil, fmt.Errorf("update plan for instance %s: %w", instanceID, err)
	}

	instance.PlanID = req.PlanID
	s.log.Info("service instance plan updated",
		zap.String("instance_id", instanceID),
		zap.String("plan_id", req.PlanID))
	return instance, nil
}

// Delete deprovisions the instance. A missing record is a no-op
// success. The remote tenant is removed first; a failure deleting the
// local record afterwards leaves a stale row, which is reported rather
// than hidden.
func (s *InstanceService) Delete(ctx context.Context, instanceID string) error {
	instance, err := s.repo.Instance().FindByID(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("find instance %s: %w", instanceID, err)
	}
	if instance == nil {
		return nil
	}

	if err := s.provisioner.DeleteTenant(ctx, instanceID); err != nil {
		return err
	}

	if err := s.repo.Instance().Delete(ctx, instanceID); err != nil {
		s.log.Error("remote tenant deleted but local record remains", err,
			zap.String("instance_id", instanceID),
			zap.String("tenant_id", instance.TenantID))
		return fmt.Errorf("delete instance record %s: %w", instanceID, err)
	}

	s.log.Info("service instance deprovisioned",
		zap.String("instance_id", instanceID),
		zap.String("tenant_id", instance.TenantID))
	return nil
}
