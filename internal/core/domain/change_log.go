package domain

import "time"

// Entity names recorded in change logs.
const (
	ChangeLogEntityOrganizations        = "ORGANIZATIONS"
	ChangeLogEntityClients              = "CLIENTS"
	ChangeLogEntityClientContactPersons = "CLIENT_CONTACT_PERSONS"
	ChangeLogEntityProjects             = "PROJECTS"
	ChangeLogEntityExpenseTypes         = "EXPENSE_TYPES"
	ChangeLogEntityInvoices             = "INVOICES"
	ChangeLogEntityQuotes               = "QUOTES"
)

// Change types recorded in change logs.
const (
	ChangeTypeCreated = "CREATED"
	ChangeTypeUpdated = "UPDATED"
	ChangeTypeDeleted = "DELETED"
)

// ChangedField records a single field mutation inside a change log entry.
type ChangedField struct {
	FieldName string `json:"fieldName"`
	OldValue  any    `json:"oldValue"`
	NewValue  any    `json:"newValue"`
}

// ChangeLogDetails is the jsonb details payload of a change log entry.
type ChangeLogDetails struct {
	ChangedFields  []ChangedField `json:"changedFields,omitempty"`
	ChangeMessages []string       `json:"changeMessages,omitempty"`
	CustomDetails  map[string]any `json:"customDetails,omitempty"`
}

// EntityChangeLog is the audit record written alongside every mutation.
type EntityChangeLog struct {
	ChangeLogID    string           `json:"changeLogId"`
	EntityName     string           `json:"entityName"`
	EntityID       string           `json:"entityId"`
	ChangeType     string           `json:"changeType"`
	UserID         string           `json:"userId"`
	OrganizationID *string          `json:"organizationId,omitempty"`
	Details        ChangeLogDetails `json:"details"`
	CreatedAt      time.Time        `json:"createdAt"`
}
