package persistence

// EmployeeRow is the stored wire shape of one employee. Dates are
// YYYY-MM-DD strings; Name is derived from the name parts and kept for
// compatibility with older payloads.
type EmployeeRow struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Department       string `json:"department"`
	Email            string `json:"email"`
	DateOfEmployment string `json:"dateOfEmployment"`
	DateOfBirth      string `json:"dateOfBirth"`
	PhoneNumber      string `json:"phoneNumber"`
	Position         string `json:"position"`
}

// PendingResultRow is a one-shot stored notice surfaced after a redirect.
type PendingResultRow struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Name      string `json:"name,omitempty"`
}
