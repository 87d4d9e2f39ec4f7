// Package model defines the catalog entities exchanged with the book backend.
package model

import "strings"

// Book is a single catalog entry as returned by the backend. The client never
// mutates books; every edit goes through the API and is followed by a refetch.
type Book struct {
	ID             string  `json:"book_id"`
	Name           string  `json:"book_name"`
	Author         string  `json:"book_author"`
	Publisher      string  `json:"book_publisher"`
	ISBN           string  `json:"book_isbn"`
	Price          float64 `json:"book_price"`
	InterviewTimes int     `json:"interview_times"`
}

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Sortable book fields accepted by the backend.
const (
	FieldID             = "book_id"
	FieldName           = "book_name"
	FieldAuthor         = "book_author"
	FieldPublisher      = "book_publisher"
	FieldISBN           = "book_isbn"
	FieldPrice          = "book_price"
	FieldInterviewTimes = "interview_times"
)

// SortFields lists the sortable fields in display order.
var SortFields = []string{
	FieldID,
	FieldName,
	FieldAuthor,
	FieldPublisher,
	FieldPrice,
	FieldInterviewTimes,
}

// ListQuery describes one page request against the paginated list endpoint.
type ListQuery struct {
	Page      int       `json:"page"`
	PerPage   int       `json:"per_page"`
	Search    string    `json:"search"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultListQuery returns the query the list view starts from.
func DefaultListQuery() ListQuery {
	return ListQuery{
		Page:      1,
		PerPage:   12,
		SortBy:    FieldID,
		SortOrder: SortAsc,
	}
}

// FieldSearch restricts a keyword to a single field of the advanced filter.
type FieldSearch struct {
	Field   string `json:"field"`
	Keyword string `json:"keyword"`
}

// AdvancedFilter is the structured multi-field query. Range bounds are sent
// as strings because blank means "unset"; the backend parses them.
type AdvancedFilter struct {
	PriceMin    string       `json:"price_min,omitempty"`
	PriceMax    string       `json:"price_max,omitempty"`
	BorrowMin   string       `json:"borrow_min,omitempty"`
	BorrowMax   string       `json:"borrow_max,omitempty"`
	Publisher   string       `json:"publisher,omitempty"`
	Author      string       `json:"author,omitempty"`
	FieldSearch *FieldSearch `json:"field_search,omitempty"`
}

// IsEmpty reports whether no filter field is set. An empty advanced filter is
// equivalent to "inactive" and falls back to plain search semantics.
func (f AdvancedFilter) IsEmpty() bool {
	return strings.TrimSpace(f.PriceMin) == "" &&
		strings.TrimSpace(f.PriceMax) == "" &&
		strings.TrimSpace(f.BorrowMin) == "" &&
		strings.TrimSpace(f.BorrowMax) == "" &&
		strings.TrimSpace(f.Publisher) == "" &&
		strings.TrimSpace(f.Author) == "" &&
		(f.FieldSearch == nil || f.FieldSearch.Field == "" || strings.TrimSpace(f.FieldSearch.Keyword) == "")
}

// Normalize trims keyword fields and drops an incomplete field search so that
// IsEmpty and the wire shape agree.
func (f AdvancedFilter) Normalize() AdvancedFilter {
	f.PriceMin = strings.TrimSpace(f.PriceMin)
	f.PriceMax = strings.TrimSpace(f.PriceMax)
	f.BorrowMin = strings.TrimSpace(f.BorrowMin)
	f.BorrowMax = strings.TrimSpace(f.BorrowMax)
	f.Publisher = strings.TrimSpace(f.Publisher)
	f.Author = strings.TrimSpace(f.Author)
	if f.FieldSearch != nil {
		fs := *f.FieldSearch
		fs.Keyword = strings.TrimSpace(fs.Keyword)
		if fs.Field == "" || fs.Keyword == "" {
			f.FieldSearch = nil
		} else {
			f.FieldSearch = &fs
		}
	}
	return f
}

// Pagination is the server-reported paging metadata for a list response.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// BookPage is one fetched page of books plus its paging metadata.
type BookPage struct {
	Books      []Book
	Pagination Pagination
}

// PublisherCount is one slice of the publisher distribution.
type PublisherCount struct {
	Publisher string `json:"book_publisher"`
	Count     int    `json:"count"`
}

// Statistics is the aggregate snapshot behind the stats panel and charts.
type Statistics struct {
	Total          int              `json:"total"`
	AvgPrice       float64          `json:"avg_price"`
	MinPrice       float64          `json:"min_price"`
	MaxPrice       float64          `json:"max_price"`
	TotalBorrows   int              `json:"total_borrows"`
	PopularBook    string           `json:"popular_book"`
	PopularBorrows int              `json:"popular_borrows"`
	Publishers     []PublisherCount `json:"publishers"`
}

// ImportReport summarizes a CSV import round-trip.
type ImportReport struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}
