package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paasops/glusterfs-broker/internal/domain"
)

type InstanceRepository struct {
	db *gorm.DB
}

func NewInstanceRepository(db *gorm.DB) *InstanceRepository {
	return &InstanceRepository{db: db}
}

func (r *InstanceRepository) FindByID(ctx context.Context, instanceID string) (*domain.ServiceInstance, error) {
	var instance domain.ServiceInstance
	err := r.db.WithContext(ctx).First(&instance, "instance_id = ?", instanceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *InstanceRepository) Save(ctx context.Context, instance *domain.ServiceInstance) error {
	// Upsert keyed on instance_id, matching the broker's insert-or-update
	// persistence of the instance row.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "instance_id"}},
		UpdateAll: true,
	}).Create(instance).Error
}

func (r *InstanceRepository) UpdatePlan(ctx context.Context, instanceID, planID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.ServiceInstance{}).
		Where("instance_id = ?", instanceID).
		Update("plan_id", planID).Error
}

func (r *InstanceRepository) Delete(ctx context.Context, instanceID string) error {
	return r.db.WithContext(ctx).
		Delete(&domain.ServiceInstance{}, "instance_id = ?", instanceID).Error
}

func (r *InstanceRepository) TenantByInstanceID(ctx context.Context, instanceID string) (*domain.Tenant, error) {
	instance, err := r.FindByID(ctx, instanceID)
	if err != nil || instance == nil {
		return nil, err
	}
	return &domain.Tenant{
		InstanceID: instance.InstanceID,
		TenantName: instance.TenantName,
		TenantID:   instance.TenantID,
	}, nil
}
