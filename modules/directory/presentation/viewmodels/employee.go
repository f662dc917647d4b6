package viewmodels

// Employee is the outward-facing record shape.
type Employee struct {
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

// Notice is a localized one-shot result message.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EmployeeList is the full list page payload: the current page of
// records plus the pagination and view state needed to render controls.
type EmployeeList struct {
	Employees  []Employee `json:"employees"`
	Total      int        `json:"total"`
	Filtered   int        `json:"filtered"`
	Search     string     `json:"search"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	PageSizes  []int      `json:"pageSizes"`
	TotalPages int        `json:"totalPages"`
	PageWindow []int      `json:"pageWindow"`
	View       string     `json:"view"`
	Notice     *Notice    `json:"notice,omitempty"`
}
