package domain

// ServiceInstance is one provisioned storage allocation as the platform
// sees it. The remote tenant identity lives in the same row, mirroring
// the broker schema: one instance maps to exactly one tenant.
type ServiceInstance struct {
	InstanceID          string `gorm:"column:instance_id;primaryKey" json:"instance_id"`
	ServiceDefinitionID string `gorm:"column:service_id;not null" json:"service_id"`
	PlanID              string `gorm:"column:plan_id;not null" json:"plan_id"`
	OrganizationGUID    string `gorm:"column:organization_guid" json:"organization_guid"`
	SpaceGUID           string `gorm:"column:space_guid" json:"space_guid"`
	TenantName          string `gorm:"column:tenant_name" json:"tenant_name"`
	TenantID            string `gorm:"column:tenant_id" json:"tenant_id"`
}

func (ServiceInstance) TableName() string {
	return "service_instances"
}

// Tenant is the remote-tenant projection of a provisioned instance:
// the locally derived name plus the id the cluster assigned.
type Tenant struct {
	InstanceID string `json:"instance_id"`
	TenantName string `json:"tenant_name"`
	TenantID   string `json:"tenant_id"`
}
