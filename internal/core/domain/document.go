package domain

// DocumentOtherDetails is the jsonb payload stored alongside invoices and
// quotes. Contact persons are snapshotted at save time so later edits to the
// client do not rewrite issued documents.
type DocumentOtherDetails struct {
	ContactPersons []DocumentContactPerson `json:"contactPersons,omitempty"`
}

// DocumentContactPerson is the snapshot of a client contact person attached to
// a document.
type DocumentContactPerson struct {
	ContactPersonID   string  `json:"contactPersonId"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	MobileCountryCode *string `json:"mobileCountryCode,omitempty"`
	MobileNumber      *string `json:"mobileNumber,omitempty"`
}
