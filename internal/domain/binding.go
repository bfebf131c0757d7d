package domain

// Binding is one set of issued credentials against an instance. Many
// bindings may exist per instance; each owns a dedicated cluster user.
type Binding struct {
	BindingID  string `gorm:"column:binding_id;primaryKey" json:"binding_id"`
	InstanceID string `gorm:"column:instance_id;not null;index" json:"instance_id"`
	AppGUID    string `gorm:"column:app_id" json:"app_id"`
	Username   string `gorm:"column:username;not null" json:"username"`
	Password   string `gorm:"column:password;not null" json:"-"`
}

func (Binding) TableName() string {
	return "service_bindings"
}
