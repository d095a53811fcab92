package dto

import (
	"net/url"
	"strconv"

	"github.com/erp/erpapi/internal/application/resource"
)

// ListResponse is the paginated envelope returned by every collection endpoint
// @Description Paginated list of records
type ListResponse struct {
	Count    int64   `json:"count" example:"1"`
	Next     *string `json:"next" example:"http://localhost:8080/api/accounting/vendors/?page=3"`
	Previous *string `json:"previous" example:"http://localhost:8080/api/accounting/vendors/?page=1"`
	Results  []any   `json:"results"`
}

// NewListResponse builds the envelope for page. self is the absolute URL of the
// request; next and previous keep its query and replace only the page number.
func NewListResponse(page *resource.Page[any], self *url.URL) ListResponse {
	resp := ListResponse{
		Count:   page.Count,
		Results: page.Results,
	}
	if resp.Results == nil {
		resp.Results = []any{}
	}
	if page.HasNext() {
		next := PageURL(self, page.Page+1)
		resp.Next = &next
	}
	if page.HasPrevious() {
		prev := PageURL(self, page.Page-1)
		resp.Previous = &prev
	}
	return resp
}

// PageURL returns self with its page parameter set to page. The first page
// is addressed without a page parameter.
func PageURL(self *url.URL, page int) string {
	u := *self
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// StatusResponse is returned by module actions that report an outcome
// @Description Outcome of a module action
type StatusResponse struct {
	Status string `json:"status" example:"leave approved"`
}

// VisibilityResponse is returned by the widget visibility toggle
type VisibilityResponse struct {
	IsVisible bool `json:"is_visible"`
}

// ReadResponse is returned when an alert is marked as read
type ReadResponse struct {
	IsRead bool `json:"is_read"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"ok"`
}
