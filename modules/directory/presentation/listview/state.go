// Package listview holds the pure pagination and filtering state of the
// employee list page. It performs no I/O; the controller feeds it a
// snapshot and reads the derived page back out.
package listview

import (
	"strings"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
)

const DefaultPageSize = 5

// PageSizes are the selectable page sizes, in display order.
var PageSizes = []int{3, 5, 10}

// maxPagesToShow caps the numbered page window around the current page.
const maxPagesToShow = 5

type State struct {
	employees []employee.Employee
	search    string
	page      int
	pageSize  int
	view      string
}

func NewState(employees []employee.Employee) *State {
	return &State{
		employees: employees,
		page:      1,
		pageSize:  DefaultPageSize,
		view:      "list",
	}
}

func (s *State) Search() string { return s.search }

func (s *State) Page() int { return s.page }

func (s *State) PageSize() int { return s.pageSize }

func (s *State) View() string { return s.view }

func (s *State) Total() int { return len(s.employees) }

// SetEmployees replaces the snapshot, clamping the current page so a
// shrinking dataset never leaves the cursor past the end.
func (s *State) SetEmployees(employees []employee.Employee) {
	s.employees = employees
	if total := s.TotalPages(); s.page > total && total >= 1 {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}

// SetSearch replaces the filter query and returns to the first page.
func (s *State) SetSearch(query string) {
	if s.search == query {
		return
	}
	s.search = query
	s.page = 1
}

// SetPageSize switches to one of the allowed page sizes and returns to
// the first page. Unknown sizes are ignored.
func (s *State) SetPageSize(size int) {
	allowed := false
	for _, candidate := range PageSizes {
		if candidate == size {
			allowed = true
			break
		}
	}
	if !allowed || size == s.pageSize {
		return
	}
	s.pageSize = size
	s.page = 1
}

func (s *State) SetView(view string) {
	s.view = view
}

// GoToPage moves the cursor. Out-of-range targets are ignored.
func (s *State) GoToPage(page int) {
	if page >= 1 && page <= s.TotalPages() {
		s.page = page
	}
}

func (s *State) NextPage() { s.GoToPage(s.page + 1) }

func (s *State) PreviousPage() { s.GoToPage(s.page - 1) }

// Filtered returns the employees matching the search query: a
// case-insensitive substring match over name, department, email and the
// name parts, plus a literal substring match over the phone number. An
// empty or whitespace-only query matches everything.
func (s *State) Filtered() []employee.Employee {
	if strings.TrimSpace(s.search) == "" {
		return s.employees
	}
	term := strings.ToLower(s.search)
	matched := make([]employee.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if strings.Contains(strings.ToLower(emp.FullName()), term) ||
			strings.Contains(strings.ToLower(emp.Department().String()), term) ||
			strings.Contains(strings.ToLower(emp.Email()), term) ||
			strings.Contains(strings.ToLower(emp.FirstName()), term) ||
			strings.Contains(strings.ToLower(emp.LastName()), term) ||
			strings.Contains(emp.Phone(), s.search) {
			matched = append(matched, emp)
		}
	}
	return matched
}

// PageItems returns the slice of filtered employees on the current page.
func (s *State) PageItems() []employee.Employee {
	filtered := s.Filtered()
	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return []employee.Employee{}
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages is the number of pages the filtered set spans. An empty
// set has zero pages.
func (s *State) TotalPages() int {
	filtered := len(s.Filtered())
	if filtered == 0 {
		return 0
	}
	return (filtered + s.pageSize - 1) / s.pageSize
}

// PageWindow returns up to five numbered pages centered on the current
// page, clamped to the valid range. A single page yields no window.
func (s *State) PageWindow() []int {
	totalPages := s.TotalPages()
	if totalPages <= 1 {
		return []int{}
	}
	start := s.page - 2
	if start < 1 {
		start = 1
	}
	end := start + maxPagesToShow - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start < maxPagesToShow-1 {
		start = end - maxPagesToShow + 1
		if start < 1 {
			start = 1
		}
	}
	window := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		window = append(window, page)
	}
	return window
}
