package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/gluster"
	"github.com/paasops/glusterfs-broker/internal/repository"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

// BindingService issues and revokes credentials against a provisioned
// instance. Each binding owns a dedicated cluster user named after the
// binding id.
type BindingService struct {
	repo        repository.Repository
	provisioner TenantProvisioner
	log         *logger.Logger
}

func NewBindingService(repo repository.Repository, provisioner TenantProvisioner, log *logger.Logger) *BindingService {
	return &BindingService{repo: repo, provisioner: provisioner, log: log}
}

// Bind creates the cluster user, grants it the tenant role and persists
// the binding. Re-binding the same id for the same instance and app
// returns the stored credentials; a mismatched rebind is a conflict.
func (s *BindingService) Bind(ctx context.Context, bindingID, instanceID, appGUID string) (*domain.Binding, bool, error) {
	existing, err := s.repo.Binding().FindByID(ctx, bindingID)
	if err != nil {
		return nil, false, fmt.Errorf("find binding %s: %w", bindingID, err)
	}
	if existing != nil {
		if existing.InstanceID == instanceID && existing.AppGUID == appGUID {
			return existing, false, nil
		}
		return nil, false, ErrBindingExists
	}

	tenant, err := s.repo.Instance().TenantByInstanceID(ctx, instanceID)
	if err != nil {
		return nil, false, fmt.Errorf("find tenant for instance %s: %w", instanceID, err)
	}
	if tenant == nil {
		return nil, false, ErrInstanceNotFound
	}

	username := gluster.DerivedID(bindingID)
	password := uuid.NewString()

	if err := s.provisioner.CreateCredential(ctx, tenant.TenantID, username, password); err != nil {
		if errors.Is(err, gluster.ErrConflict) {
			return nil, false, ErrBindingExists
		}
		return nil, false, err
	}

	userID, err := s.provisioner.LookupUserID(ctx, username)
	if err != nil {
		return nil, false, err
	}

	if err := s.provisioner.GrantAccess(ctx, tenant.TenantID, userID); err != nil {
		if !errors.Is(err, gluster.ErrConflict) {
			return nil, false, err
		}
		// Role already granted on a previous attempt.
		s.log.Warn("role already assigned",
			zap.String("binding_id", bindingID),
			zap.String("tenant_id", tenant.TenantID))
	}

	binding := &domain.Binding{
		BindingID:  bindingID,
		InstanceID: instanceID,
		AppGUID:    appGUID,
		Username:   username,
		Password:   password,
	}
	if err := s.repo.Binding().Save(ctx, binding); err != nil {
		return nil, false, fmt.Errorf("save binding %s: %w", bindingID, err)
	}

	s.log.Info("service binding created",
		zap.String("binding_id", bindingID),
		zap.String("instance_id", instanceID),
		zap.String("username", username))
	return binding, true, nil
}

// Unbind deletes the cluster user and the binding record. A missing
// binding is a no-op success.
func (s *BindingService) Unbind(ctx context.Context, bindingID string) error {
	binding, err := s.repo.Binding().FindByID(ctx, bindingID)
	if err != nil {
		return fmt.Errorf("find binding %s: %w", bindingID, err)
	}
	if binding == nil {
		return nil
	}

	if err := s.provisioner.DeleteCredential(ctx, binding.Username); err != nil {
		return err
	}

	if err := s.repo.Binding().Delete(ctx, bindingID); err != nil {
		s.log.Error("cluster user deleted but binding record remains", err,
			zap.String("binding_id", bindingID),
			zap.String("username", binding.Username))
		return fmt.Errorf("delete binding record %s: %w", bindingID, err)
	}

	s.log.Info("service binding deleted",
		zap.String("binding_id", bindingID),
		zap.String("instance_id", binding.InstanceID))
	return nil
}

// BindingsForInstance lists the credentials issued against an instance.
func (s *BindingService) BindingsForInstance(ctx context.Context, instanceID string) ([]domain.Binding, error) {
	return s.repo.Binding().FindByInstanceID(ctx, instanceID)
}
