package dto

// InstanceResponse is returned for provision, fetch and update calls.
type InstanceResponse struct {
	InstanceID   string `json:"instance_id"`
	ServiceID    string `json:"service_id"`
	PlanID       string `json:"plan_id"`
	DashboardURL string `json:"dashboard_url"`
}

// Credentials are the secrets a bound application uses against the
// storage cluster.
type Credentials struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	TenantName string `json:"tenant_name"`
	TenantID   string `json:"tenant_id"`
}

// BindResponse is returned for binding calls.
type BindResponse struct {
	BindingID   string      `json:"binding_id"`
	Credentials Credentials `json:"credentials"`
}
