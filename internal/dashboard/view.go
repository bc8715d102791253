package dashboard

import (
	"strings"

	"pallet-returns-dashboard/internal/models"
)

// DefaultPageSize is the number of cards shown per page.
const DefaultPageSize = 6

// Filter keeps the records whose customer name or order id contains term,
// ignoring case. An empty term keeps everything.
func Filter(records []models.ReturnRequest, term string) []models.ReturnRequest {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	out := make([]models.ReturnRequest, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.CustomerName), term) ||
			strings.Contains(strings.ToLower(r.OrderID), term) {
			out = append(out, r)
		}
	}
	return out
}

// TotalPages is the number of pages needed for n items.
func TotalPages(n, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	return (n + size - 1) / size
}

// ClampPage keeps page within [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Page is one window of a record list.
type Page struct {
	Items      []models.ReturnRequest
	Number     int
	TotalPages int
	Total      int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate returns the requested page, clamped to the valid range.
func Paginate(records []models.ReturnRequest, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(records)
	pages := TotalPages(total, size)
	page = ClampPage(page, pages)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return Page{
		Items:      records[start:end],
		Number:     page,
		TotalPages: pages,
		Total:      total,
	}
}

// Stats counts records per status.
type Stats struct {
	Total     int
	Pending   int
	Completed int
	Rejected  int
}

func ComputeStats(records []models.ReturnRequest) Stats {
	s := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusCompleted:
			s.Completed++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// State is the local search and pagination state of one dashboard.
type State struct {
	Search   string
	Page     int
	PageSize int
}

func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{Page: 1, PageSize: pageSize}
}

// SetSearch changes the search term. A different term sends the view back to
// the first page.
func (s *State) SetSearch(term string) {
	if term == s.Search {
		return
	}
	s.Search = term
	s.Page = 1
}

// Next, Prev and GoTo move between pages of a list holding total items.
func (s *State) Next(total int) {
	s.GoTo(s.Page+1, total)
}

func (s *State) Prev(total int) {
	s.GoTo(s.Page-1, total)
}

func (s *State) GoTo(page, total int) {
	s.Page = ClampPage(page, TotalPages(total, s.PageSize))
}

// View is everything the dashboard renders.
type View struct {
	Search   string
	Page     Page
	Stats    Stats
	Statuses []models.Status
}
