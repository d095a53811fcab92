package resource

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the wire type of a field.
type Kind string

const (
	KindString    Kind = "string"
	KindInteger   Kind = "integer"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindDecimal   Kind = "decimal"
	KindDate      Kind = "date"
	KindTime      Kind = "time"
	KindDateTime  Kind = "date-time"
	KindUUID      Kind = "uuid"
	KindJSON      Kind = "json"
	KindUnhandled Kind = "unhandled"
)

var (
	typeDecimal   = reflect.TypeOf(decimal.Decimal{})
	typeDate      = reflect.TypeOf(shared.Date{})
	typeTimeOfDay = reflect.TypeOf(shared.TimeOfDay{})
	typeTime      = reflect.TypeOf(time.Time{})
	typeUUID      = reflect.TypeOf(uuid.UUID{})
	typeJSON      = reflect.TypeOf(shared.JSON{})
)

// Field describes one serialized attribute of an entity.
type Field struct {
	Name      string
	Kind      Kind
	Nullable  bool
	Required  bool
	ReadOnly  bool
	Choices   []string
	MaxLength int
	Rules     string // validate tag without presence rules

	index []int
	typ   reflect.Type // element type when Nullable
}

// Meta is the reflected field list of an entity type.
type Meta struct {
	Fields []Field
	byName map[string]int
}

// Field returns the named field.
func (m *Meta) Field(name string) (Field, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Field{}, false
	}
	return m.Fields[i], true
}

func newMeta(t reflect.Type, def Definition) *Meta {
	m := &Meta{byName: make(map[string]int)}
	collectFields(t, nil, def, m)
	return m
}

func collectFields(t reflect.Type, parent []int, def Definition, m *Meta) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(slices.Clone(parent), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, index, def, m)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		f := Field{Name: name, index: index, typ: sf.Type}
		if sf.Type.Kind() == reflect.Pointer {
			f.Nullable = true
			f.typ = sf.Type.Elem()
		}
		f.Kind = kindOf(f.typ)

		rules := strings.Split(sf.Tag.Get("validate"), ",")
		kept := rules[:0]
		for _, rule := range rules {
			switch {
			case rule == "":
			case rule == "required":
				f.Required = true
				if f.Kind == KindString {
					kept = append(kept, rule)
				}
			case strings.HasPrefix(rule, "oneof="):
				f.Choices = strings.Fields(strings.TrimPrefix(rule, "oneof="))
				kept = append(kept, rule)
			case strings.HasPrefix(rule, "max=") && f.Kind == KindString:
				f.MaxLength, _ = strconv.Atoi(strings.TrimPrefix(rule, "max="))
				kept = append(kept, rule)
			default:
				kept = append(kept, rule)
			}
		}
		f.Rules = strings.Join(kept, ",")
		f.ReadOnly = name == "id" || isAutoTime(sf) || slices.Contains(def.ReadOnly, name)

		m.byName[name] = len(m.Fields)
		m.Fields = append(m.Fields, f)
	}
}

func kindOf(t reflect.Type) Kind {
	switch t {
	case typeDecimal:
		return KindDecimal
	case typeDate:
		return KindDate
	case typeTimeOfDay:
		return KindTime
	case typeTime:
		return KindDateTime
	case typeUUID:
		return KindUUID
	case typeJSON:
		return KindJSON
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	}
	return KindUnhandled
}

// isAutoTime reports whether gorm maintains the field itself.
func isAutoTime(sf reflect.StructField) bool {
	if sf.Type != typeTime {
		return false
	}
	if sf.Name == "CreatedAt" || sf.Name == "UpdatedAt" {
		return true
	}
	tag := sf.Tag.Get("gorm")
	return strings.Contains(tag, "autoCreateTime") || strings.Contains(tag, "autoUpdateTime")
}

// value returns the field of the entity pointed to by v.
func (f Field) value(v reflect.Value) reflect.Value {
	return v.Elem().FieldByIndex(f.index)
}

// Interface returns the field value of entity, nil for unset nullable fields.
func (f Field) Interface(entity any) any {
	fv := f.value(reflect.ValueOf(entity))
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		return fv.Elem().Interface()
	}
	return fv.Interface()
}
