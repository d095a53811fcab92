package resource

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Query parameter names understood by list endpoints.
const (
	ParamPage     = "page"
	ParamPageSize = "page_size"
	ParamSearch   = "search"
	ParamOrdering = "ordering"
	lastPage      = "last"
)

// Pagination bounds the page size of list endpoints.
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultPagination is 50 rows per page, at most 1000.
var DefaultPagination = Pagination{DefaultPageSize: 50, MaxPageSize: 1000}

// PageSize resolves the requested page size. Missing, malformed or
// non-positive values fall back to the default; larger ones are clamped.
func (p Pagination) PageSize(params url.Values) int {
	raw := last(params, ParamPageSize)
	if raw == "" {
		return p.DefaultPageSize
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return p.DefaultPageSize
	}
	return min(n, p.MaxPageSize)
}

// pageNumber resolves ?page= against the total row count.
func pageNumber(params url.Values, count int64, size int) (page, pages int, err error) {
	pages = int(math.Ceil(float64(count) / float64(size)))
	if pages == 0 {
		pages = 1
	}
	raw := strings.TrimSpace(last(params, ParamPage))
	switch raw {
	case "":
		return 1, pages, nil
	case lastPage:
		return pages, pages, nil
	}
	page, convErr := strconv.Atoi(raw)
	if convErr != nil || page < 1 || page > pages {
		return 0, pages, shared.ErrInvalidPage
	}
	return page, pages, nil
}

// filterConditions turns allow-listed query keys into typed equality
// conditions. Unknown keys and empty values are ignored.
func filterConditions(def Definition, meta *Meta, params url.Values) ([]shared.Condition, error) {
	verr := shared.NewValidationError()
	var conds []shared.Condition
	for _, name := range def.Filters {
		raw := strings.TrimSpace(last(params, name))
		if raw == "" {
			continue
		}
		f, ok := meta.Field(name)
		if !ok {
			continue
		}
		value, msg := parseFilter(f, raw)
		if msg != "" {
			verr.Add(name, msg)
			continue
		}
		conds = append(conds, shared.Condition{Field: name, Value: value})
	}
	return conds, verr.OrNil()
}

func parseFilter(f Field, raw string) (any, string) {
	invalidChoice := fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", raw)
	switch f.Kind {
	case KindBoolean:
		switch raw {
		case "true", "True", "1":
			return true, ""
		case "false", "False", "0":
			return false, ""
		}
		return nil, invalidChoice
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, "Select a valid choice. That choice is not one of the available choices."
		}
		return id, ""
	case KindInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "Enter a whole number."
		}
		return n, ""
	case KindDecimal, KindNumber:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, "Enter a number."
		}
		return d, ""
	case KindDate:
		d, err := shared.ParseDate(raw)
		if err != nil {
			return nil, "Enter a valid date."
		}
		return d, ""
	case KindString:
		if len(f.Choices) > 0 && !slices.Contains(f.Choices, raw) {
			return nil, invalidChoice
		}
		return raw, ""
	}
	return raw, ""
}

// searchTerms splits ?search= on whitespace and commas.
func searchTerms(def Definition, params url.Values) *shared.Search {
	if len(def.Search) == 0 {
		return nil
	}
	raw := strings.ReplaceAll(last(params, ParamSearch), "\x00", "")
	terms := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(terms) == 0 {
		return nil
	}
	return &shared.Search{Terms: terms, Fields: def.Search}
}

// ordering resolves ?ordering= against the allow-list, falls back to the
// default ordering and always ends with id.
func ordering(def Definition, meta *Meta, params url.Values) []shared.Order {
	allowed := func(name string) bool {
		if len(def.Ordering) > 0 {
			return slices.Contains(def.Ordering, name)
		}
		f, ok := meta.Field(name)
		return ok && f.Kind != KindJSON
	}

	var orders []shared.Order
	for _, term := range strings.Split(last(params, ParamOrdering), ",") {
		order, ok := parseOrder(strings.TrimSpace(term))
		if ok && allowed(order.Field) {
			orders = append(orders, order)
		}
	}
	if len(orders) == 0 {
		for _, term := range def.DefaultOrdering {
			if order, ok := parseOrder(term); ok {
				orders = append(orders, order)
			}
		}
	}
	orders = lo.UniqBy(orders, func(o shared.Order) string { return o.Field })
	if !lo.ContainsBy(orders, func(o shared.Order) bool { return o.Field == "id" }) {
		orders = append(orders, shared.Order{Field: "id"})
	}
	return orders
}

func parseOrder(term string) (shared.Order, bool) {
	desc := strings.HasPrefix(term, "-")
	name := strings.TrimPrefix(term, "-")
	if name == "" {
		return shared.Order{}, false
	}
	return shared.Order{Field: name, Desc: desc}, true
}

// last returns the last value of a repeated query parameter.
func last(params url.Values, key string) string {
	values := params[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}
