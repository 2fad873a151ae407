package domain

// Project groups documents under a client engagement. The code is unique per
// organization.
type Project struct {
	ProjectID      string  `json:"projectId"`
	OrganizationID string  `json:"organizationId"`
	ClientID       *string `json:"clientId,omitempty"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Timestamps
}
