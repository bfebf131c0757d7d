package gluster

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/pkg/logger"
)

// TenantStore resolves the remote-tenant projection of an instance.
// Satisfied by the instance repository.
type TenantStore interface {
	TenantByInstanceID(ctx context.Context, instanceID string) (*domain.Tenant, error)
}

// Provisioner sequences the dependent cluster calls for tenant and
// credential lifecycle. All remote calls go through the invoker; no
// step retries on its own.
type Provisioner struct {
	invoker *Invoker
	client  *Client
	plans   *domain.PlanCatalog
	tenants TenantStore
	role    string
	log     *logger.Logger
}

func NewProvisioner(invoker *Invoker, client *Client, plans *domain.PlanCatalog, tenants TenantStore, role string, log *logger.Logger) *Provisioner {
	return &Provisioner{
		invoker: invoker,
		client:  client,
		plans:   plans,
		tenants: tenants,
		role:    role,
		log:     log,
	}
}

// CreateTenant creates the project and immediately applies the plan
// quota. A quota failure leaves an orphaned project with no quota; that
// state is surfaced as ErrQuotaNotSet and never rolled back.
func (p *Provisioner) CreateTenant(ctx context.Context, instanceID, planID string) (*domain.Tenant, error) {
	name := TenantName(instanceID)

	var project *Project
	err := p.invoker.Invoke(ctx, "create project", func(ctx context.Context, token string) error {
		created, err := p.client.CreateProject(ctx, token, name)
		if err != nil {
			return err
		}
		project = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := p.applyQuota(ctx, project.ID, planID); err != nil {
		p.log.Error("provisioned project left without quota", err,
			zap.String("instance_id", instanceID),
			zap.String("tenant_id", project.ID),
			zap.String("plan_id", planID))
		return nil, errors.Join(ErrQuotaNotSet, err)
	}

	return &domain.Tenant{
		InstanceID: instanceID,
		TenantName: project.Name,
		TenantID:   project.ID,
	}, nil
}

// SetQuota applies the quota of planID to an existing tenant. Used for
// plan changes.
func (p *Provisioner) SetQuota(ctx context.Context, tenantID, planID string) error {
	return p.applyQuota(ctx, tenantID, planID)
}

func (p *Provisioner) applyQuota(ctx context.Context, tenantID, planID string) error {
	quota, err := p.plans.QuotaFor(planID)
	if err != nil {
		return err
	}
	return p.invoker.Invoke(ctx, "set quota", func(ctx context.Context, token string) error {
		return p.client.SetQuota(ctx, token, tenantID, quota)
	})
}

// DeleteTenant removes the remote project of an instance. A missing
// tenant record is a not-found error.
func (p *Provisioner) DeleteTenant(ctx context.Context, instanceID string) error {
	tenant, err := p.tenants.TenantByInstanceID(ctx, instanceID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return fmt.Errorf("tenant record for instance %s: %w", instanceID, ErrNotFound)
	}

	return p.invoker.Invoke(ctx, "delete project", func(ctx context.Context, token string) error {
		return p.client.DeleteProject(ctx, token, tenant.TenantID)
	})
}

// CreateCredential creates a cluster user scoped to the tenant.
func (p *Provisioner) CreateCredential(ctx context.Context, tenantID, username, password string) error {
	return p.invoker.Invoke(ctx, "create user", func(ctx context.Context, token string) error {
		return p.client.CreateUser(ctx, token, tenantID, username, password)
	})
}

// DeleteCredential resolves the user by name and deletes it.
func (p *Provisioner) DeleteCredential(ctx context.Context, username string) error {
	userID, err := p.LookupUserID(ctx, username)
	if err != nil {
		return err
	}
	return p.invoker.Invoke(ctx, "delete user", func(ctx context.Context, token string) error {
		return p.client.DeleteUser(ctx, token, userID)
	})
}

func (p *Provisioner) LookupUserID(ctx context.Context, username string) (string, error) {
	var userID string
	err := p.invoker.Invoke(ctx, "find user", func(ctx context.Context, token string) error {
		id, err := p.client.FindUserIDByName(ctx, token, username)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	return userID, err
}

// GrantAccess assigns the configured role to the user on the tenant.
// The role id is resolved fresh on every call; role definitions can
// change out of band, so it is never cached.
func (p *Provisioner) GrantAccess(ctx context.Context, tenantID, userID string) error {
	var roleID string
	err := p.invoker.Invoke(ctx, "find role", func(ctx context.Context, token string) error {
		id, err := p.client.FindRoleIDByName(ctx, token, p.role)
		if err != nil {
			return err
		}
		roleID = id
		return nil
	})
	if err != nil {
		return err
	}

	return p.invoker.Invoke(ctx, "assign role", func(ctx context.Context, token string) error {
		return p.client.AssignRole(ctx, token, tenantID, userID, roleID)
	})
}
