package domain

// Organization membership roles, in decreasing order of privilege.
const (
	OrgRoleOwner  = "OWNER"
	OrgRoleAdmin  = "ADMIN"
	OrgRoleMember = "MEMBER"
)

var orgRoleRank = map[string]int{
	OrgRoleOwner:  3,
	OrgRoleAdmin:  2,
	OrgRoleMember: 1,
}

// RoleAtLeast reports whether role carries at least the privilege of minimum.
// Unknown roles rank below every known role.
func RoleAtLeast(role, minimum string) bool {
	return orgRoleRank[role] >= orgRoleRank[minimum]
}

// Organization is a tenant. All business entities hang off an organization and
// are only visible to its members.
type Organization struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Subdomain      string `json:"subdomain"`
	CreatedByID    string `json:"createdById"`
	Timestamps
}

// OrganizationUser links a user to an organization with a role.
type OrganizationUser struct {
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	Role           string `json:"role"`
	Timestamps
}
