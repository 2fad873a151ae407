package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// changeSet applies requested values to an entity in place while recording
// every field that actually changed. Update services build one per request;
// an empty set after applying all fields means the request is a no-op and no
// write or change log should happen.
type changeSet struct {
	fields   []domain.ChangedField
	messages []string
}

func (c *changeSet) record(fieldName string, oldValue, newValue any, message string) {
	c.fields = append(c.fields, domain.ChangedField{
		FieldName: fieldName,
		OldValue:  oldValue,
		NewValue:  newValue,
	})
	c.messages = append(c.messages, message)
}

// String applies a required string field. A differing value is written to
// target and recorded.
func (c *changeSet) String(fieldName, label string, target *string, newValue string) {
	if *target == newValue {
		return
	}
	c.record(fieldName, *target, newValue,
		fmt.Sprintf("%s changed from '%s' to '%s'", label, *target, newValue))
	*target = newValue
}

// NullString applies an optional string field. Nil and absent are treated as
// equal, so sending null for an unset field records nothing.
func (c *changeSet) NullString(fieldName, label string, target **string, newValue *string) {
	oldValue := *target
	switch {
	case oldValue == nil && newValue == nil:
		return
	case oldValue != nil && newValue != nil && *oldValue == *newValue:
		return
	case oldValue == nil:
		c.record(fieldName, nil, *newValue,
			fmt.Sprintf("%s set to '%s'", label, *newValue))
	case newValue == nil:
		c.record(fieldName, *oldValue, nil,
			fmt.Sprintf("%s '%s' removed", label, *oldValue))
	default:
		c.record(fieldName, *oldValue, *newValue,
			fmt.Sprintf("%s changed from '%s' to '%s'", label, *oldValue, *newValue))
	}
	*target = newValue
}

// Int applies a required integer field.
func (c *changeSet) Int(fieldName, label string, target *int, newValue int) {
	if *target == newValue {
		return
	}
	c.record(fieldName, *target, newValue,
		fmt.Sprintf("%s changed from %d to %d", label, *target, newValue))
	*target = newValue
}

// Bool applies a boolean field.
func (c *changeSet) Bool(fieldName, label string, target *bool, newValue bool) {
	if *target == newValue {
		return
	}
	c.record(fieldName, *target, newValue,
		fmt.Sprintf("%s changed from %t to %t", label, *target, newValue))
	*target = newValue
}

// Decimal applies a decimal field. Values are compared numerically, so
// 100 and 100.00 are the same value, and recorded as strings.
func (c *changeSet) Decimal(fieldName, label string, target *decimal.Decimal, newValue decimal.Decimal) {
	if target.Equal(newValue) {
		return
	}
	c.record(fieldName, target.String(), newValue.String(),
		fmt.Sprintf("%s changed from %s to %s", label, target.String(), newValue.String()))
	*target = newValue
}

// Custom records a change that was detected and applied outside the typed
// helpers, such as a replaced item list.
func (c *changeSet) Custom(fieldName string, oldValue, newValue any, message string) {
	c.record(fieldName, oldValue, newValue, message)
}

// HasChanges reports whether any field changed.
func (c *changeSet) HasChanges() bool {
	return len(c.fields) > 0
}

// Details builds the change log details payload.
func (c *changeSet) Details() domain.ChangeLogDetails {
	return domain.ChangeLogDetails{
		ChangedFields:  c.fields,
		ChangeMessages: c.messages,
	}
}

// nullStringEqual compares two optional strings, treating nil and absent as
// equal only to each other.
func nullStringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// newChangeLog builds a change log entry for a mutation of an
// organization-scoped entity.
func newChangeLog(entityName, entityID, changeType, userID string, organizationID *string, details domain.ChangeLogDetails) domain.EntityChangeLog {
	return domain.EntityChangeLog{
		ChangeLogID:    domain.NewID(),
		EntityName:     entityName,
		EntityID:       entityID,
		ChangeType:     changeType,
		UserID:         userID,
		OrganizationID: organizationID,
		Details:        details,
		CreatedAt:      time.Now(),
	}
}
