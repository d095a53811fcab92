// Package resource implements the generic collection endpoint shared by every
// business module: filtered, searched, ordered and paginated listing, plus
// validated create, update and delete with per-reference delete policies.
package resource

import (
	"strings"
	"unicode"

	"github.com/erp/erpapi/internal/domain/shared"
)

// Definition declares how one entity is exposed.
type Definition struct {
	Module string // URL segment of the owning module, e.g. "accounting"
	Path   string // plural URL segment, e.g. "vendor-invoices"
	Name   string // entity name used in messages, e.g. "VendorInvoice"

	Filters         []string // fields accepted as equality filters
	Search          []string // fields matched by ?search=
	Ordering        []string // fields accepted in ?ordering=, empty means any
	DefaultOrdering []string // applied when ?ordering= yields nothing, "-" for descending

	Unique         []string
	UniqueTogether [][]string
	References     []Reference
	ReadOnly       []string // server-managed fields beyond id and timestamps

	AppendOnly bool // list, retrieve and create only
	Audited    bool // mutations are recorded in the audit log
}

// Reference declares that a field holds the id of a row in another table.
type Reference struct {
	Field    string
	Target   string // table name of the referenced entity
	OnDelete shared.DeletePolicy
}

// Ref is shorthand for declaring a reference.
func Ref(field, target string, policy shared.DeletePolicy) Reference {
	return Reference{Field: field, Target: target, OnDelete: policy}
}

// Route returns the collection path below the API prefix.
func (d Definition) Route() string {
	return "/" + d.Module + "/" + d.Path + "/"
}

// Verbose returns the lower-case, space separated entity name.
func (d Definition) Verbose() string {
	return verboseName(d.Name)
}

func (d Definition) reference(field string) (Reference, bool) {
	for _, r := range d.References {
		if r.Field == field {
			return r, true
		}
	}
	return Reference{}, false
}

// ReferenceColumn is the column holding a reference field.
func ReferenceColumn(field string) string {
	return field + "_id"
}

func verboseName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func fieldWords(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
