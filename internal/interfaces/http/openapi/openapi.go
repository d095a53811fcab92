// Package openapi builds the Swagger 2.0 document of the registered
// resources and registers it with swag for gin-swagger to serve.
package openapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/swaggo/swag/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InstanceName is the swag instance the document is registered under.
const InstanceName = "erpapi"

// Info describes the API in the document header.
type Info struct {
	Title       string
	Description string
	Version     string
	BasePath    string
}

// Doc is a rendered Swagger document. It implements swag.Swagger.
type Doc struct {
	raw []byte
}

// ReadDoc returns the JSON document.
func (d *Doc) ReadDoc() string { return string(d.raw) }

var (
	current      atomic.Pointer[Doc]
	registerOnce sync.Once
)

// served forwards to the most recently registered document; swag accepts
// one registration per instance name.
type served struct{}

func (served) ReadDoc() string {
	if d := current.Load(); d != nil {
		return d.ReadDoc()
	}
	return "{}"
}

// Register makes d the document gin-swagger serves under InstanceName.
func (d *Doc) Register() {
	current.Store(d)
	registerOnce.Do(func() { swag.Register(InstanceName, served{}) })
}

// Action documents a non-CRUD route.
type Action struct {
	Method  string
	Path    string // below BasePath, gin syntax
	Tag     string
	Summary string
	Body    bool
}

type object = map[string]any

// Build renders the document for eps and actions.
func Build(info Info, eps []resource.Endpoint, actions []Action) (*Doc, error) {
	paths := map[string]object{}
	definitions := object{}

	names := schemaNames(eps)
	for _, ep := range eps {
		def := ep.Definition()
		tag := Tag(def.Module)
		name := names[def.Route()]
		ref := object{"$ref": "#/definitions/" + name}
		definitions[name] = schema(ep.Meta())

		collection := def.Route()
		detail := swaggerPath(collection + ":id/")
		list := operation(tag, "List "+plural(def), name+"List", listParameters(def))
		list["responses"] = object{
			"200": object{"description": "OK", "schema": listSchema(ref)},
			"404": errorResponse("Invalid page."),
		}
		create := operation(tag, "Create "+def.Verbose(), name+"Create", []any{bodyParameter(ref)})
		create["responses"] = object{
			"201": object{"description": "Created", "schema": ref},
			"400": validationResponse(),
		}
		paths[collection] = object{"get": list, "post": create}

		idParam := []any{object{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"}}
		ops := object{}
		get := operation(tag, "Retrieve "+def.Verbose(), name+"Retrieve", idParam)
		get["responses"] = object{"200": object{"description": "OK", "schema": ref}, "404": errorResponse("Not found.")}
		ops["get"] = get
		if !def.AppendOnly {
			for _, m := range []struct{ method, summary, id string }{
				{http.MethodPut, "Update ", "Update"},
				{http.MethodPatch, "Partially update ", "PartialUpdate"},
			} {
				op := operation(tag, m.summary+def.Verbose(), name+m.id,
					append([]any{bodyParameter(ref)}, idParam...))
				op["responses"] = object{
					"200": object{"description": "OK", "schema": ref},
					"400": validationResponse(),
					"404": errorResponse("Not found."),
				}
				ops[strings.ToLower(m.method)] = op
			}
			del := operation(tag, "Delete "+def.Verbose(), name+"Delete", idParam)
			del["responses"] = object{
				"204": object{"description": "No Content"},
				"404": errorResponse("Not found."),
				"409": errorResponse("Referenced through protected foreign keys."),
			}
			ops["delete"] = del
		}
		paths[detail] = ops
	}

	for _, a := range actions {
		p := swaggerPath(a.Path)
		var params []any
		if strings.Contains(a.Path, ":id") {
			params = append(params, object{"name": "id", "in": "path", "required": true, "type": "string", "format": "uuid"})
		}
		if a.Body {
			params = append(params, bodyParameter(object{"type": "object"}))
		}
		op := operation(a.Tag, a.Summary, "", params)
		op["responses"] = object{
			"200": object{"description": "OK", "schema": object{"type": "object"}},
			"400": validationResponse(),
			"404": errorResponse("Not found."),
		}
		if paths[p] == nil {
			paths[p] = object{}
		}
		paths[p][strings.ToLower(a.Method)] = op
	}

	definitions["Error"] = object{
		"type":       "object",
		"properties": object{"detail": object{"type": "string"}},
	}
	definitions["ValidationErrors"] = object{
		"type":                 "object",
		"additionalProperties": object{"type": "array", "items": object{"type": "string"}},
	}

	raw, err := json.Marshal(object{
		"swagger": "2.0",
		"info": object{
			"title":       info.Title,
			"description": info.Description,
			"version":     info.Version,
		},
		"basePath":    info.BasePath,
		"consumes":    []string{"application/json"},
		"produces":    []string{"application/json"},
		"tags":        tags(eps),
		"paths":       paths,
		"definitions": definitions,
	})
	if err != nil {
		return nil, err
	}
	return &Doc{raw: raw}, nil
}

// Tag returns the display name of a module, e.g. "Accounts Payable".
func Tag(module string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(module, "-", " "))
}

func tags(eps []resource.Endpoint) []object {
	seen := map[string]bool{}
	var out []object
	for _, ep := range eps {
		m := ep.Definition().Module
		if !seen[m] {
			seen[m] = true
			out = append(out, object{"name": Tag(m)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i]["name"].(string) < out[j]["name"].(string) })
	return out
}

// schemaNames keys definitions by entity name, qualifying names that more
// than one module uses with the module tag.
func schemaNames(eps []resource.Endpoint) map[string]string {
	seen := make(map[string]int, len(eps))
	for _, ep := range eps {
		seen[ep.Definition().Name]++
	}
	names := make(map[string]string, len(eps))
	for _, ep := range eps {
		def := ep.Definition()
		if seen[def.Name] > 1 {
			names[def.Route()] = strings.ReplaceAll(Tag(def.Module), " ", "") + def.Name
		} else {
			names[def.Route()] = def.Name
		}
	}
	return names
}

func plural(def resource.Definition) string {
	return strings.ReplaceAll(def.Path, "-", " ")
}

// swaggerPath converts gin parameters to Swagger templates.
func swaggerPath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func operation(tag, summary, id string, params []any) object {
	op := object{"tags": []string{tag}, "summary": summary}
	if id != "" {
		op["operationId"] = id
	}
	if len(params) > 0 {
		op["parameters"] = params
	}
	return op
}

func bodyParameter(s object) object {
	return object{"name": "body", "in": "body", "required": true, "schema": s}
}

func errorResponse(description string) object {
	return object{"description": description, "schema": object{"$ref": "#/definitions/Error"}}
}

func validationResponse() object {
	return object{"description": "Validation failed", "schema": object{"$ref": "#/definitions/ValidationErrors"}}
}

func listSchema(item object) object {
	return object{
		"type": "object",
		"properties": object{
			"count":    object{"type": "integer"},
			"next":     object{"type": "string", "format": "uri", "x-nullable": true},
			"previous": object{"type": "string", "format": "uri", "x-nullable": true},
			"results":  object{"type": "array", "items": item},
		},
	}
}

func listParameters(def resource.Definition) []any {
	params := []any{
		object{"name": "page", "in": "query", "type": "string", "description": "page number or \"last\""},
		object{"name": "page_size", "in": "query", "type": "integer"},
	}
	if len(def.Search) > 0 {
		params = append(params, object{"name": "search", "in": "query", "type": "string",
			"description": "matches " + strings.Join(def.Search, ", ")})
	}
	params = append(params, object{"name": "ordering", "in": "query", "type": "string"})
	for _, f := range def.Filters {
		params = append(params, object{"name": f, "in": "query", "type": "string"})
	}
	return params
}

func schema(meta *resource.Meta) object {
	props := object{}
	var required []string
	if meta != nil {
		for _, f := range meta.Fields {
			props[f.Name] = property(f)
			if f.Required && !f.ReadOnly {
				required = append(required, f.Name)
			}
		}
	}
	s := object{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func property(f resource.Field) object {
	p := object{}
	switch f.Kind {
	case resource.KindInteger:
		p["type"] = "integer"
	case resource.KindNumber:
		p["type"] = "number"
	case resource.KindBoolean:
		p["type"] = "boolean"
	case resource.KindJSON:
		p["type"] = "object"
	case resource.KindDecimal:
		p["type"], p["format"] = "string", "decimal"
	case resource.KindDate, resource.KindDateTime, resource.KindUUID, resource.KindTime:
		p["type"], p["format"] = "string", string(f.Kind)
	default:
		p["type"] = "string"
	}
	if len(f.Choices) > 0 {
		p["enum"] = f.Choices
	}
	if f.MaxLength > 0 {
		p["maxLength"] = f.MaxLength
	}
	if f.ReadOnly {
		p["readOnly"] = true
	}
	if f.Nullable {
		p["x-nullable"] = true
	}
	return p
}
