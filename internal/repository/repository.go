package repository

import (
	"context"

	"github.com/paasops/glusterfs-broker/internal/domain"
)

//go:generate mockery --name InstanceRepository --output ../mocks
type InstanceRepository interface {
	// FindByID returns (nil, nil) when no record exists; absence is a
	// normal lifecycle result, not an error.
	FindByID(ctx context.Context, instanceID string) (*domain.ServiceInstance, error)
	// Save upserts the instance row, tenant columns included.
	Save(ctx context.Context, instance *domain.ServiceInstance) error
	UpdatePlan(ctx context.Context, instanceID, planID string) error
	Delete(ctx context.Context, instanceID string) error
	// TenantByInstanceID returns the remote-tenant projection of the
	// instance row, or (nil, nil) when the instance does not exist.
	TenantByInstanceID(ctx context.Context, instanceID string) (*domain.Tenant, error)
}

//go:generate mockery --name BindingRepository --output ../mocks
type BindingRepository interface {
	FindByID(ctx context.Context, bindingID string) (*domain.Binding, error)
	FindByInstanceID(ctx context.Context, instanceID string) ([]domain.Binding, error)
	Save(ctx context.Context, binding *domain.Binding) error
	Delete(ctx context.Context, bindingID string) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Instance() InstanceRepository
	Binding() BindingRepository
}
