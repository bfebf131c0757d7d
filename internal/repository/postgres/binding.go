package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paasops/glusterfs-broker/internal/domain"
)

type BindingRepository struct {
	db *gorm.DB
}

func NewBindingRepository(db *gorm.DB) *BindingRepository {
	return &BindingRepository{db: db}
}

func (r *BindingRepository) FindByID(ctx context.Context, bindingID string) (*domain.Binding, error) {
	var binding domain.Binding
	err := r.db.WithContext(ctx).First(&binding, "binding_id = ?", bindingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &binding, nil
}

func (r *BindingRepository) FindByInstanceID(ctx context.Context, instanceID string) ([]domain.Binding, error) {
	var bindings []domain.Binding
	if err := r.db.WithContext(ctx).Find(&bindings, "instance_id = ?", instanceID).Error; err != nil {
		return nil, err
	}
	return bindings, nil
}

func (r *BindingRepository) Save(ctx context.Context, binding *domain.Binding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "binding_id"}},
		UpdateAll: true,
	}).Create(binding).Error
}

func (r *BindingRepository) Delete(ctx context.Context, bindingID string) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Binding{}, "binding_id = ?", bindingID).Error
}
