package postgres

import (
	"gorm.io/gorm"

	"github.com/paasops/glusterfs-broker/internal/domain"
	"github.com/paasops/glusterfs-broker/internal/repository"
)

type postgresRepository struct {
	db           *gorm.DB
	instanceRepo repository.InstanceRepository
	bindingRepo  repository.BindingRepository
}

func NewPostgresRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{
		db:           db,
		instanceRepo: NewInstanceRepository(db),
		bindingRepo:  NewBindingRepository(db),
	}
}

func (r *postgresRepository) Instance() repository.InstanceRepository {
	return r.instanceRepo
}

func (r *postgresRepository) Binding() repository.BindingRepository {
	return r.bindingRepo
}

// Migrate creates the broker tables when they do not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ServiceInstance{}, &domain.Binding{})
}
