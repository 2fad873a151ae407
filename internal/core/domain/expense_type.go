package domain

// ExpenseType is an organization-scoped expense category. Names are unique per
// organization, compared case-insensitively.
type ExpenseType struct {
	ExpenseTypeID  string  `json:"expenseTypeId"`
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Timestamps
}
