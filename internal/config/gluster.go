package config

// GlusterConfig holds everything needed to talk to the storage cluster:
// the keystone identity endpoints, the swift proxy used for quota calls,
// the admin credentials for token refresh, and the per-operation URI
// templates. Templates carry #TENANT_ID / #USER_ID / #USER_NAME /
// #ROLE_NAME / #ROLE_ID placeholders substituted at call time.
type GlusterConfig struct {
	AuthURL    string
	Endpoint   string
	SwiftProxy string

	Username   string
	Password   string
	DomainName string
	Timezone   string
	RoleName   string

	URIAuth         string
	URICreateTenant string
	URIDeleteTenant string
	URIAccount      string
	URICreateUsers  string
	URIDeleteUsers  string
	URIUserInfo     string
	URIRoleInfo     string
	URIAssignRole   string
}

func DefaultGlusterConfig() *GlusterConfig {
	return &GlusterConfig{
		AuthURL:    getEnvWithDefault("GLUSTER_AUTH_URL", "http://localhost:5000"),
		Endpoint:   getEnvWithDefault("GLUSTER_ENDPOINT", "http://localhost:35357"),
		SwiftProxy: getEnvWithDefault("GLUSTER_SWIFT_PROXY", "http://localhost:8080"),

		Username:   getEnvWithDefault("GLUSTER_USERNAME", "admin"),
		Password:   getEnvWithDefault("GLUSTER_PASSWORD", ""),
		DomainName: getEnvWithDefault("GLUSTER_DOMAIN_NAME", "default"),
		Timezone:   getEnvWithDefault("GLUSTER_TIMEZONE", "Asia/Seoul"),
		RoleName:   getEnvWithDefault("GLUSTER_ROLE_NAME", "_member_"),

		URIAuth:         getEnvWithDefault("GLUSTER_URI_AUTH", "/v3/auth/tokens"),
		URICreateTenant: getEnvWithDefault("GLUSTER_URI_CREATE_TENANT", "/v3/projects"),
		URIDeleteTenant: getEnvWithDefault("GLUSTER_URI_DELETE_TENANT", "/v3/projects/#TENANT_ID"),
		URIAccount:      getEnvWithDefault("GLUSTER_URI_ACCOUNT", "/v1/AUTH_#TENANT_ID"),
		URICreateUsers:  getEnvWithDefault("GLUSTER_URI_CREATE_USERS", "/v3/users"),
		URIDeleteUsers:  getEnvWithDefault("GLUSTER_URI_DELETE_USERS", "/v3/users/#USER_ID"),
		URIUserInfo:     getEnvWithDefault("GLUSTER_URI_USER_INFO", "/v3/users?name=#USER_NAME"),
		URIRoleInfo:     getEnvWithDefault("GLUSTER_URI_ROLE_INFO", "/v3/roles?name=#ROLE_NAME"),
		URIAssignRole:   getEnvWithDefault("GLUSTER_URI_ASSIGN_ROLE", "/v3/projects/#TENANT_ID/users/#USER_ID/roles/#ROLE_ID"),
	}
}

// PlanConfig is one entry of the fixed plan catalog.
type PlanConfig struct {
	ID         string
	QuotaBytes int64
}

// DefaultPlanConfigs returns the three plans this deployment offers.
// The ids and byte sizes are overridable but fixed after process start.
func DefaultPlanConfigs() []PlanConfig {
	return []PlanConfig{
		{
			ID:         getEnvWithDefault("PLAN_A_ID", "ty8u76yi-b086-4a24-b041-0aeef1a819d1"),
			QuotaBytes: getEnvInt64WithDefault("PLAN_A_QUOTA_BYTES", 5*1024*1024),
		},
		{
			ID:         getEnvWithDefault("PLAN_B_ID", "sd456f21-9bc5-4a86-937f-e2c14bb9f497"),
			QuotaBytes: getEnvInt64WithDefault("PLAN_B_QUOTA_BYTES", 100*1024*1024),
		},
		{
			ID:         getEnvWithDefault("PLAN_C_ID", "koi908i7-9bc5-4a86-937f-e2c14bb9f497"),
			QuotaBytes: getEnvInt64WithDefault("PLAN_C_QUOTA_BYTES", 1000*1024*1024),
		},
	}
}
