package dto

// ProvisionRequest is the body of an instance provision call.
type ProvisionRequest struct {
	ServiceID        string `json:"service_id" binding:"required"`
	PlanID           string `json:"plan_id" binding:"required"`
	OrganizationGUID string `json:"organization_guid"`
	SpaceGUID        string `json:"space_guid"`
}

// UpdateRequest carries an instance update; only plan changes are
// honored.
type UpdateRequest struct {
	ServiceID string `json:"service_id"`
	PlanID    string `json:"plan_id"`
}

// BindRequest is the body of a binding call.
type BindRequest struct {
	ServiceID string `json:"service_id"`
	PlanID    string `json:"plan_id"`
	AppGUID   string `json:"app_guid"`
}
